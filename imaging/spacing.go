// Copyright 2026 the DICOM-viewer authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package imaging

import (
	"fmt"
	"strconv"
	"strings"
)

// PixelSpacing is the physical distance between pixel centers in mm, row
// spacing first, as encoded by the Pixel Spacing attribute (0028,0030).
type PixelSpacing struct {
	Row    float64
	Column float64
}

// ParsePixelSpacing parses the backslash-delimited two-value decimal string
// of the Pixel Spacing attribute, e.g. "0.5\\0.5". Anything other than
// exactly two decimal fields yields ErrInvalidPixelSpacing.
func ParsePixelSpacing(s string) (PixelSpacing, error) {
	fields := strings.Split(s, `\`)
	if len(fields) != 2 {
		return PixelSpacing{}, fmt.Errorf("%w: %q has %d values, want 2", ErrInvalidPixelSpacing, s, len(fields))
	}
	row, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return PixelSpacing{}, fmt.Errorf("%w: row spacing %q", ErrInvalidPixelSpacing, fields[0])
	}
	column, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return PixelSpacing{}, fmt.Errorf("%w: column spacing %q", ErrInvalidPixelSpacing, fields[1])
	}
	return PixelSpacing{Row: row, Column: column}, nil
}
