// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package auth implements the credential and token service backing the
// demo API's protected routes.
//
// A fixed in-memory user directory is seeded once at startup (passwords
// held only as bcrypt hashes) and never mutated. The token service
// issues HMAC-signed JWTs with {sub, exp} claims and verifies them
// statelessly; verification is a pure function of the token, the
// process secret, and the clock, so it is safe under any concurrency.
//
// The HTTP guard is deliberately two-staged: a request with no bearer
// header at all is rejected with 403 at credential extraction, while a
// present-but-invalid token is rejected with 401 at verification.
// External tests assert on that split, so it is a contract, not an
// accident. The 401 path never reveals which verification check failed.
package auth
