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

package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// User is a single directory record. The password hash is unexported so
// it can never leak through serialization.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`

	passwordHash []byte
}

// Seed describes a user to load into the directory at startup.
type Seed struct {
	Username string
	Email    string
	Password string
}

// DefaultSeeds returns the fixed demo user the service ships with.
func DefaultSeeds() []Seed {
	return []Seed{
		{Username: "testuser", Email: "test@example.com", Password: "testpassword"},
	}
}

// Directory is the in-memory user store. It is populated once at
// process start and read-only afterwards, so no locking is needed.
// There is no registration endpoint; records live for the process
// lifetime.
type Directory struct {
	users map[string]*User
}

// NewDirectory hashes each seed password with bcrypt (fresh random salt
// per hash) and builds the directory. Plaintext passwords are not
// retained.
func NewDirectory(seeds ...Seed) (*Directory, error) {
	users := make(map[string]*User, len(seeds))
	for _, seed := range seeds {
		if seed.Username == "" {
			return nil, fmt.Errorf("seed user with empty username")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password for %s: %w", seed.Username, err)
		}
		users[seed.Username] = &User{
			Username:     seed.Username,
			Email:        seed.Email,
			passwordHash: hash,
		}
	}
	return &Directory{users: users}, nil
}

// Lookup returns the record for username, if present.
func (d *Directory) Lookup(username string) (*User, bool) {
	u, ok := d.users[username]
	return u, ok
}

// Authenticate verifies a username/password pair against the directory.
// An unknown user and a wrong password both return
// ErrInvalidCredentials; the caller cannot tell which. Password
// comparison goes through bcrypt's constant-time comparator, never a
// raw equality check.
func (d *Directory) Authenticate(username, password string) (*User, error) {
	u, ok := d.users[username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
