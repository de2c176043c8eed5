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

package render

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/utevo/DICOM-viewer/imaging"
)

// AutoWindow estimates a window from the raster's sample distribution, using
// the [lo, hi] quantile range as the visible span. It is a viewing aid for
// files without windowing hints; it does not replace the fixed defaults of
// imaging.ResolveVOI.
func AutoWindow(r imaging.Raster, lo, hi float64) (imaging.Window, error) {
	if lo < 0 || hi > 1 || lo >= hi {
		return imaging.Window{}, fmt.Errorf("render: invalid quantile range [%v, %v]", lo, hi)
	}

	samples, err := samplesOf(r)
	if err != nil {
		return imaging.Window{}, err
	}
	if len(samples) == 0 {
		return imaging.Window{}, ErrEmptyRaster
	}

	sort.Float64s(samples)
	low := stat.Quantile(lo, stat.Empirical, samples, nil)
	high := stat.Quantile(hi, stat.Empirical, samples, nil)

	width := high - low
	if width < 1 {
		width = 1
	}
	return imaging.Window{Center: (low + high) / 2, Width: width}, nil
}
