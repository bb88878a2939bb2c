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

package routes

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/NVIDIA/k8s-test-api/pkg/auth"
	"github.com/NVIDIA/k8s-test-api/pkg/serializers"
)

// LoginRequest is the credential payload for /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the successful login body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProtectedResponse is the body served behind the bearer guard.
type ProtectedResponse struct {
	Message   string     `json:"message"`
	User      *auth.User `json:"user"`
	Timestamp time.Time  `json:"timestamp"`
}

// handleLogin exchanges credentials for a bearer token. Failed
// authentication never reveals whether the username or the password
// was wrong.
func (b *Builder) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		serializers.RespondDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := b.Directory.Authenticate(req.Username, req.Password)
	if err != nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		serializers.RespondDetail(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	token, err := b.Tokens.Issue(user.Username)
	if err != nil {
		slog.Error("token issuance failed", "error", err, "username", user.Username)
		serializers.RespondDetail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	serializers.RespondJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// handleProtected runs behind Tokens.Middleware, which placed the
// verified user on the request context.
func (b *Builder) handleProtected(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		serializers.RespondDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	serializers.RespondJSON(w, http.StatusOK, ProtectedResponse{
		Message:   fmt.Sprintf("Hello %s! This is a protected endpoint.", user.Username),
		User:      user,
		Timestamp: now(),
	})
}
