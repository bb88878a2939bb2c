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
	"runtime"
	"time"

	"github.com/NVIDIA/k8s-test-api/pkg/serializers"
	"github.com/NVIDIA/k8s-test-api/pkg/sysinfo"
)

// RootResponse is the service banner served at /.
type RootResponse struct {
	Message           string    `json:"message"`
	Version           string    `json:"version"`
	Environment       string    `json:"environment"`
	DeploymentVersion string    `json:"deployment_version"`
	DocsURL           string    `json:"docs_url"`
	Timestamp         time.Time `json:"timestamp"`
}

// PingResponse is the connectivity probe body.
type PingResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SystemInfo carries the host statistics embedded in the health body.
type SystemInfo struct {
	Hostname        string  `json:"hostname"`
	Platform        string  `json:"platform"`
	GoVersion       string  `json:"go_version"`
	CPUCount        int     `json:"cpu_count"`
	MemoryTotal     uint64  `json:"memory_total"`
	MemoryAvailable uint64  `json:"memory_available"`
	DiskUsage       float64 `json:"disk_usage"`
}

// HealthResponse is the comprehensive health check body.
type HealthResponse struct {
	Status            string     `json:"status"`
	Timestamp         time.Time  `json:"timestamp"`
	Version           string     `json:"version"`
	Environment       string     `json:"environment"`
	DeploymentVersion string     `json:"deployment_version"`
	SystemInfo        SystemInfo `json:"system_info"`
}

// VersionResponse is the version report body.
type VersionResponse struct {
	Version           string    `json:"version"`
	Environment       string    `json:"environment"`
	DeploymentVersion string    `json:"deployment_version"`
	BuildTimestamp    time.Time `json:"build_timestamp"`
}

// handleRoot serves the banner at / and, because the pattern is the
// mux catch-all, a JSON 404 for every unregistered path.
func (b *Builder) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		serializers.RespondDetail(w, http.StatusNotFound, "Not Found")
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		serializers.RespondDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	serializers.RespondJSON(w, http.StatusOK, RootResponse{
		Message:           "Kubernetes Test Application",
		Version:           b.Config.AppVersion,
		Environment:       b.Config.Environment,
		DeploymentVersion: b.Config.DeploymentVersion,
		DocsURL:           "/docs",
		Timestamp:         now(),
	})
}

func (b *Builder) handlePing(w http.ResponseWriter, _ *http.Request) {
	serializers.RespondJSON(w, http.StatusOK, PingResponse{
		Message:   "pong",
		Timestamp: now(),
	})
}

func (b *Builder) handleHealth(w http.ResponseWriter, _ *http.Request) {
	mem := b.System.Memory()

	serializers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:            "healthy",
		Timestamp:         now(),
		Version:           b.Config.AppVersion,
		Environment:       b.Config.Environment,
		DeploymentVersion: b.Config.DeploymentVersion,
		SystemInfo: SystemInfo{
			Hostname:        sysinfo.Hostname(),
			Platform:        sysinfo.Platform(),
			GoVersion:       runtime.Version(),
			CPUCount:        sysinfo.CPUCount(),
			MemoryTotal:     mem.Total,
			MemoryAvailable: mem.Available,
			DiskUsage:       sysinfo.DiskUsagePercent("/"),
		},
	})
}

func (b *Builder) handleVersion(w http.ResponseWriter, _ *http.Request) {
	serializers.RespondJSON(w, http.StatusOK, VersionResponse{
		Version:           b.Config.AppVersion,
		Environment:       b.Config.Environment,
		DeploymentVersion: b.Config.DeploymentVersion,
		BuildTimestamp:    now(),
	})
}
