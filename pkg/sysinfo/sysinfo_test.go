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

package sysinfo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeminfo(t *testing.T) {
	input := `MemTotal:       16384000 kB
MemFree:         4096000 kB
MemAvailable:    8192000 kB
Buffers:          512000 kB
SwapTotal:             0 kB
`
	m := parseMeminfo(strings.NewReader(input))

	assert.Equal(t, uint64(16384000*1024), m.Total)
	assert.Equal(t, uint64(8192000*1024), m.Available)
	assert.Equal(t, uint64(4096000*1024), m.Free)
	assert.Equal(t, m.Total-m.Available, m.Used)
	assert.Equal(t, 50.0, m.Percent)
}

func TestParseMeminfo_MalformedLines(t *testing.T) {
	input := "garbage line\nMemTotal: notanumber kB\nMemFree:\n"
	m := parseMeminfo(strings.NewReader(input))

	assert.Zero(t, m.Total)
	assert.Zero(t, m.Percent)
}

func TestReadCPUSample(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stat")
	content := "cpu  100 0 50 800 50 0 0 0 0 0\ncpu0 100 0 50 800 50 0 0 0 0 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	busy, total, err := readCPUSample(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), total)
	// idle (800) + iowait (50) are not busy
	assert.Equal(t, uint64(150), busy)
}

func TestReadCPUSample_MissingFile(t *testing.T) {
	_, _, err := readCPUSample(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestCPUPercent_FirstCallIsZero(t *testing.T) {
	c := NewCollector()

	// Only the delta between calls is meaningful.
	assert.Zero(t, c.CPUPercent())
}

func TestCollectorLiveReads(t *testing.T) {
	// Smoke check against the real procfs where present.
	if _, err := os.Stat("/proc/meminfo"); err != nil {
		t.Skip("procfs not available")
	}

	c := NewCollector()
	m := c.Memory()
	assert.NotZero(t, m.Total, "expected non-zero MemTotal from live procfs")
	assert.GreaterOrEqual(t, m.Percent, 0.0)
	assert.LessOrEqual(t, m.Percent, 100.0)

	du := DiskUsagePercent("/")
	assert.GreaterOrEqual(t, du, 0.0)
	assert.LessOrEqual(t, du, 100.0)

	assert.GreaterOrEqual(t, CPUCount(), 1)
	assert.Contains(t, InstanceID(), "-")
}
