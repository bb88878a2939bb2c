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
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/NVIDIA/k8s-test-api/pkg/defaults"
)

// TokenService issues and verifies signed, time-limited bearer tokens.
// Tokens are stateless: validity is fully determined by the signature
// and the exp claim at verification time. There is no revocation list;
// a token dies only by expiring.
type TokenService struct {
	directory *Directory
	secret    []byte
	method    jwt.SigningMethod
	ttl       time.Duration
}

// NewTokenService builds a token service bound to the given directory.
// algorithm must name an HMAC family method (HS256, HS384, HS512);
// anything else is rejected to keep the keying model symmetric.
// ttl is the lifetime used by Issue; if zero, the configured default
// login lifetime applies.
func NewTokenService(directory *Directory, secret, algorithm string, ttl time.Duration) (*TokenService, error) {
	if directory == nil {
		return nil, fmt.Errorf("token service requires a user directory")
	}
	if secret == "" {
		return nil, fmt.Errorf("token service requires a signing secret")
	}

	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported token algorithm %q: only HMAC family methods are allowed", algorithm)
	}

	if ttl <= 0 {
		ttl = defaults.TokenTTL
	}

	return &TokenService{
		directory: directory,
		secret:    []byte(secret),
		method:    method,
		ttl:       ttl,
	}, nil
}

// Issue signs a token for username with the service's configured
// lifetime. This is the login path.
func (s *TokenService) Issue(username string) (string, error) {
	return s.IssueToken(username, s.ttl)
}

// IssueToken signs a token for username with claims {sub, exp}.
// A non-positive ttl falls back to the shorter ad-hoc default.
func (s *TokenService) IssueToken(username string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaults.TokenTTLFallback
	}

	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify decodes and checks a token, returning the directory record its
// subject resolves to. A token is accepted if and only if the signature
// verifies under the process secret and algorithm, it has not expired,
// and the sub claim is present and resolves to a user. The distinct
// sentinels returned here all collapse to one 401 at the HTTP layer.
func (s *TokenService) Verify(tokenString string) (*User, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	user, ok := s.directory.Lookup(claims.Subject)
	if !ok {
		return nil, ErrUnknownSubject
	}
	return user, nil
}
