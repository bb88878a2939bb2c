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
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func testDirectory(t *testing.T) *Directory {
	t.Helper()
	d, err := NewDirectory(DefaultSeeds()...)
	if err != nil {
		t.Fatalf("NewDirectory: %v", err)
	}
	return d
}

func TestAuthenticate_Success(t *testing.T) {
	d := testDirectory(t)

	u, err := d.Authenticate("testuser", "testpassword")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if u.Username != "testuser" {
		t.Errorf("username mismatch: got %q", u.Username)
	}
	if u.Email != "test@example.com" {
		t.Errorf("email mismatch: got %q", u.Email)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	d := testDirectory(t)

	_, err := d.Authenticate("testuser", "wrongpassword")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	d := testDirectory(t)

	_, err := d.Authenticate("nosuchuser", "testpassword")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestNewDirectory_RejectsEmptyUsername(t *testing.T) {
	if _, err := NewDirectory(Seed{Password: "x"}); err == nil {
		t.Fatal("expected error for empty username")
	}
}

func TestNewDirectory_FreshSaltPerHash(t *testing.T) {
	// Two directories seeded with the same password must not share
	// hashes; bcrypt salts every hash.
	d1 := testDirectory(t)
	d2 := testDirectory(t)

	u1, _ := d1.Lookup("testuser")
	u2, _ := d2.Lookup("testuser")
	if string(u1.passwordHash) == string(u2.passwordHash) {
		t.Error("expected distinct hashes for identical passwords")
	}
}

func TestUserSerializationOmitsHash(t *testing.T) {
	d := testDirectory(t)
	u, _ := d.Lookup("testuser")

	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "$2") || strings.Contains(strings.ToLower(string(b)), "hash") {
		t.Errorf("serialized user leaks password material: %s", b)
	}
}
