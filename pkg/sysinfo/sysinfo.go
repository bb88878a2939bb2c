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

// Package sysinfo samples host statistics from procfs for the health
// and load-test payloads. Readings are best effort: on any read or
// parse failure the zero value is reported rather than an error, since
// none of the consuming endpoints treat stats as critical.
package sysinfo

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"syscall"
)

var (
	filePathMeminfo = "/proc/meminfo"
	filePathStat    = "/proc/stat"
)

// Memory holds a point-in-time view of system memory, in bytes.
type Memory struct {
	Total     uint64  `json:"total"`
	Available uint64  `json:"available"`
	Percent   float64 `json:"percent"`
	Used      uint64  `json:"used"`
	Free      uint64  `json:"free"`
}

// Collector samples host statistics. CPU utilization is derived from
// the delta between consecutive calls, so the first reading after
// startup reports 0. Safe for concurrent use.
type Collector struct {
	mu        sync.Mutex
	lastBusy  uint64
	lastTotal uint64
}

// NewCollector returns a ready Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Memory reads /proc/meminfo.
func (c *Collector) Memory() Memory {
	f, err := os.Open(filePathMeminfo)
	if err != nil {
		return Memory{}
	}
	defer f.Close()
	return parseMeminfo(f)
}

// parseMeminfo extracts the key/value lines of a meminfo-shaped stream.
// Values are reported by the kernel in kB.
func parseMeminfo(r io.Reader) Memory {
	values := make(map[string]uint64)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, rest, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		kb, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}
		values[strings.TrimSpace(key)] = kb * 1024
	}

	m := Memory{
		Total:     values["MemTotal"],
		Available: values["MemAvailable"],
		Free:      values["MemFree"],
	}
	if m.Total > 0 {
		m.Used = m.Total - m.Available
		m.Percent = round1(float64(m.Used) / float64(m.Total) * 100)
	}
	return m
}

// CPUPercent returns the aggregate CPU utilization since the previous
// call, 0.0 on the first call or on any read failure.
func (c *Collector) CPUPercent() float64 {
	busy, total, err := readCPUSample(filePathStat)
	if err != nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	lastBusy, lastTotal := c.lastBusy, c.lastTotal
	c.lastBusy, c.lastTotal = busy, total

	if lastTotal == 0 || total <= lastTotal || busy < lastBusy {
		return 0
	}
	return round1(float64(busy-lastBusy) / float64(total-lastTotal) * 100)
}

// readCPUSample parses the aggregate "cpu" line of /proc/stat into
// busy and total jiffy counters. Idle and iowait count as not busy.
func readCPUSample(path string) (busy, total uint64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}
		fields := strings.Fields(line)[1:]
		var idle uint64
		for i, field := range fields {
			v, perr := strconv.ParseUint(field, 10, 64)
			if perr != nil {
				return 0, 0, perr
			}
			total += v
			// fields 3 and 4 are idle and iowait
			if i == 3 || i == 4 {
				idle += v
			}
		}
		return total - idle, total, nil
	}
	return 0, 0, fmt.Errorf("no aggregate cpu line in %s", path)
}

// DiskUsagePercent returns the used-space percentage of the filesystem
// holding path, 0.0 on failure.
func DiskUsagePercent(path string) float64 {
	var fs syscall.Statfs_t
	if err := syscall.Statfs(path, &fs); err != nil {
		return 0
	}

	used := fs.Blocks - fs.Bfree
	usable := used + fs.Bavail
	if usable == 0 {
		return 0
	}
	return round1(float64(used) / float64(usable) * 100)
}

// CPUCount returns the number of logical CPUs usable by the process.
func CPUCount() int {
	return runtime.NumCPU()
}

// Hostname returns the host name, empty on failure.
func Hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return ""
	}
	return h
}

// Platform describes the runtime platform (e.g. "linux/amd64").
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}

// InstanceID identifies this process instance for load-balancer
// fan-out tests: hostname plus pid, unique per pod restart.
func InstanceID() string {
	return fmt.Sprintf("%s-%d", Hostname(), os.Getpid())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
