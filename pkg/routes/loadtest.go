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

	"github.com/NVIDIA/k8s-test-api/pkg/defaults"
	"github.com/NVIDIA/k8s-test-api/pkg/serializers"
	"github.com/NVIDIA/k8s-test-api/pkg/sysinfo"
)

const cpuTaskIterations = 1_000_000

// LoadTestInfoResponse identifies the instance that served the request,
// so load balancing tests can count request distribution.
type LoadTestInfoResponse struct {
	InstanceID    string    `json:"instance_id"`
	Hostname      string    `json:"hostname"`
	CPUPercent    float64   `json:"cpu_percent"`
	MemoryPercent float64   `json:"memory_percent"`
	Timestamp     time.Time `json:"timestamp"`
}

// CPUTaskResponse reports the result of the busy-loop workload.
type CPUTaskResponse struct {
	Message    string    `json:"message"`
	Duration   float64   `json:"duration"`
	Result     int64     `json:"result"`
	InstanceID string    `json:"instance_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// MemoryResponse carries a detailed host memory snapshot.
type MemoryResponse struct {
	Memory     sysinfo.Memory `json:"memory"`
	InstanceID string         `json:"instance_id"`
	Timestamp  time.Time      `json:"timestamp"`
}

// AsyncTaskResponse reports the simulated asynchronous workload.
type AsyncTaskResponse struct {
	Message    string    `json:"message"`
	Duration   float64   `json:"duration"`
	InstanceID string    `json:"instance_id"`
	Timestamp  time.Time `json:"timestamp"`
}

func (b *Builder) handleLoadTestInfo(w http.ResponseWriter, _ *http.Request) {
	serializers.RespondJSON(w, http.StatusOK, LoadTestInfoResponse{
		InstanceID:    sysinfo.InstanceID(),
		Hostname:      sysinfo.Hostname(),
		CPUPercent:    b.System.CPUPercent(),
		MemoryPercent: b.System.Memory().Percent,
		Timestamp:     now(),
	})
}

// handleLoadTestCPU burns CPU on purpose. The loop is kept observable
// through its sum so the compiler cannot elide it.
func (b *Builder) handleLoadTestCPU(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()

	var result int64
	for i := int64(0); i < cpuTaskIterations; i++ {
		result += i * i
	}

	serializers.RespondJSON(w, http.StatusOK, CPUTaskResponse{
		Message:    "CPU intensive task completed",
		Duration:   time.Since(start).Seconds(),
		Result:     result,
		InstanceID: sysinfo.InstanceID(),
		Timestamp:  now(),
	})
}

func (b *Builder) handleLoadTestMemory(w http.ResponseWriter, _ *http.Request) {
	serializers.RespondJSON(w, http.StatusOK, MemoryResponse{
		Memory:     b.System.Memory(),
		InstanceID: sysinfo.InstanceID(),
		Timestamp:  now(),
	})
}

func (b *Builder) handleLoadTestAsync(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !sleep(r.Context(), defaults.AsyncTaskDelay) {
		// Client went away mid-wait; nothing left to answer.
		return
	}

	serializers.RespondJSON(w, http.StatusOK, AsyncTaskResponse{
		Message:    "Async task completed",
		Duration:   time.Since(start).Seconds(),
		InstanceID: sysinfo.InstanceID(),
		Timestamp:  now(),
	})
}
