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
	"net/http"
	"time"

	"github.com/NVIDIA/k8s-test-api/pkg/serializers"
)

// DeploymentVersionResponse reports which color this instance serves.
type DeploymentVersionResponse struct {
	DeploymentVersion string    `json:"deployment_version"`
	AppVersion        string    `json:"app_version"`
	Environment       string    `json:"environment"`
	Timestamp         time.Time `json:"timestamp"`
}

// DeploymentResponse is the canned blue/green payload used to verify
// traffic switching during deployments.
type DeploymentResponse struct {
	Deployment string    `json:"deployment"`
	Message    string    `json:"message"`
	Version    string    `json:"version"`
	Color      string    `json:"color"`
	Timestamp  time.Time `json:"timestamp"`
}

func (b *Builder) handleDeploymentVersion(w http.ResponseWriter, _ *http.Request) {
	serializers.RespondJSON(w, http.StatusOK, DeploymentVersionResponse{
		DeploymentVersion: b.Config.DeploymentVersion,
		AppVersion:        b.Config.AppVersion,
		Environment:       b.Config.Environment,
		Timestamp:         now(),
	})
}

func (b *Builder) handleDeploymentBlue(w http.ResponseWriter, _ *http.Request) {
	serializers.RespondJSON(w, http.StatusOK, DeploymentResponse{
		Deployment: "blue",
		Message:    "This is the BLUE deployment",
		Version:    b.Config.AppVersion,
		Color:      "#0066CC",
		Timestamp:  now(),
	})
}

func (b *Builder) handleDeploymentGreen(w http.ResponseWriter, _ *http.Request) {
	serializers.RespondJSON(w, http.StatusOK, DeploymentResponse{
		Deployment: "green",
		Message:    "This is the GREEN deployment",
		Version:    b.Config.AppVersion,
		Color:      "#00CC66",
		Timestamp:  now(),
	})
}
