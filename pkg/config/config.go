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

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/NVIDIA/k8s-test-api/pkg/defaults"
	"github.com/NVIDIA/k8s-test-api/pkg/version"
)

// Environment variable names consumed at startup.
const (
	EnvSecretKey         = "SECRET_KEY"
	EnvTokenAlgorithm    = "TOKEN_ALGORITHM"
	EnvTokenTTLMinutes   = "ACCESS_TOKEN_EXPIRE_MINUTES"
	EnvAppVersion        = "APP_VERSION"
	EnvAppEnvironment    = "APP_ENVIRONMENT"
	EnvDeploymentVersion = "DEPLOYMENT_VERSION"
)

const (
	defaultSecretKey      = "your-secret-key-change-this-in-production"
	defaultTokenAlgorithm = "HS256"
	defaultAppVersion     = "1.0.0"
	defaultEnvironment    = "development"
	defaultDeployment     = "blue"
)

// Config is the immutable application configuration snapshot. It is
// read from the environment exactly once at process start; nothing
// mutates it afterwards.
type Config struct {
	// SecretKey signs and verifies access tokens.
	SecretKey string `json:"-" yaml:"-"`

	// TokenAlgorithm is the JWT signing algorithm identifier.
	// Only the HMAC family (HS256, HS384, HS512) is accepted.
	TokenAlgorithm string `json:"tokenAlgorithm" yaml:"tokenAlgorithm"`

	// TokenTTL is the access token lifetime handed out by the login
	// endpoint.
	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`

	// AppVersion is the advertised application version.
	AppVersion string `json:"appVersion" yaml:"appVersion"`

	// Environment names the deployment environment (development,
	// staging, production).
	Environment string `json:"environment" yaml:"environment"`

	// DeploymentVersion is the blue/green routing color of this instance.
	DeploymentVersion string `json:"deploymentVersion" yaml:"deploymentVersion"`
}

// Load reads the application configuration from the environment.
// Returns an error only for values that cannot be safely defaulted
// (an unsupported signing algorithm or a malformed TTL).
func Load() (*Config, error) {
	cfg := &Config{
		SecretKey:         envOrDefault(EnvSecretKey, defaultSecretKey),
		TokenAlgorithm:    envOrDefault(EnvTokenAlgorithm, defaultTokenAlgorithm),
		TokenTTL:          defaults.TokenTTL,
		AppVersion:        envOrDefault(EnvAppVersion, defaultAppVersion),
		Environment:       envOrDefault(EnvAppEnvironment, defaultEnvironment),
		DeploymentVersion: envOrDefault(EnvDeploymentVersion, defaultDeployment),
	}

	switch cfg.TokenAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return nil, fmt.Errorf("unsupported token algorithm %q: only HMAC family algorithms are allowed", cfg.TokenAlgorithm)
	}

	if ttlStr := os.Getenv(EnvTokenTTLMinutes); ttlStr != "" {
		minutes, err := strconv.Atoi(ttlStr)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid %s value %q: expected a positive integer of minutes", EnvTokenTTLMinutes, ttlStr)
		}
		cfg.TokenTTL = time.Duration(minutes) * time.Minute
	}

	// The version string is advertised as-is; an unparsable one is
	// worth a warning because dashboards sort on it.
	if _, err := version.ParseVersion(cfg.AppVersion); err != nil {
		slog.Warn("APP_VERSION is not semver-shaped", "value", cfg.AppVersion, "error", err)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
