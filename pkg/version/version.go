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

// Package version parses the loosely semver-shaped version strings the
// service is deployed with (APP_VERSION, image tags).
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// Version represents a version number with up to three numeric
// components. Precision records how many components were present in the
// parsed string; Extras preserves any trailing build metadata such as
// "-rc1" or "+build.7".
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor,omitempty"`
	Patch int `json:"patch,omitempty"`

	// Precision indicates how many components are significant (1, 2, or 3)
	Precision int `json:"precision,omitempty"`

	// Extras stores trailing metadata like "-rc1"
	Extras string `json:"extras,omitempty"`
}

// String returns the string representation respecting precision.
// Extras are not included.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// ParseVersion parses strings like "1", "1.2", "v1.2.3", or
// "1.2.3-rc1" into a Version. The "v" prefix is stripped; metadata
// after '-' or '+' following a digit is kept in Extras.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	s = strings.TrimPrefix(s, "v")

	var v Version
	mainPart := s
	for i := 1; i < len(s); i++ {
		if (s[i] == '-' || s[i] == '+') && s[i-1] >= '0' && s[i-1] <= '9' {
			mainPart = s[:i]
			v.Extras = s[i:]
			break
		}
	}

	parts := strings.Split(mainPart, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	for i, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}

		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}

	v.Precision = len(parts)
	return v, nil
}

// EqualsOrNewer returns true if v is equal to or newer than other,
// compared up to the precision of v.
func (v Version) EqualsOrNewer(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	if v.Precision == 1 {
		return true
	}
	if v.Minor != other.Minor {
		return v.Minor > other.Minor
	}
	if v.Precision == 2 {
		return true
	}
	return v.Patch >= other.Patch
}
