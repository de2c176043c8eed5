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

// Package render maps decoded rasters to displayable images. It consumes the
// imaging package's Raster and VOILUTModule values and owns nothing about how
// the result reaches a screen; file export is the only sink provided here.
package render

import (
	"errors"
	"image"
	"math"

	"github.com/utevo/DICOM-viewer/imaging"
)

var (
	// ErrColorRaster is returned for RGB rasters: windowing is defined over
	// single-channel sample values only.
	ErrColorRaster = errors.New("render: color rasters cannot be windowed")

	// ErrEmptyRaster is returned when a raster holds no samples.
	ErrEmptyRaster = errors.New("render: raster holds no samples")
)

// ApplyWindow maps the raster's samples through the VOI LUT response curve
// into an 8-bit grayscale image, per the window semantics of
// http://dicom.nema.org/medical/dicom/current/output/html/part03.html#sect_C.11.2.1.2
//
// Window values are applied as given: a window lying outside the sample range
// simply saturates the output, it is not an error.
func ApplyWindow(r imaging.Raster, voi imaging.VOILUTModule) (*image.Gray, error) {
	samples, err := samplesOf(r)
	if err != nil {
		return nil, err
	}

	rows, columns := r.Bounds()
	img := image.NewGray(image.Rect(0, 0, columns, rows))
	for i, x := range samples {
		img.Pix[i] = mapSample(x, voi)
	}
	return img, nil
}

// samplesOf flattens a grayscale raster into float64 sample values in
// row-major order.
func samplesOf(r imaging.Raster) ([]float64, error) {
	switch g := r.(type) {
	case *imaging.Gray8:
		out := make([]float64, len(g.Samples))
		for i, v := range g.Samples {
			out[i] = float64(v)
		}
		return out, nil
	case *imaging.Gray16:
		out := make([]float64, len(g.Samples))
		for i, v := range g.Samples {
			out[i] = float64(v)
		}
		return out, nil
	case *imaging.Gray32:
		out := make([]float64, len(g.Samples))
		for i, v := range g.Samples {
			out[i] = float64(v)
		}
		return out, nil
	case *imaging.RGB:
		return nil, ErrColorRaster
	}
	return nil, errors.New("render: unknown raster type")
}

const (
	displayMin = 0
	displayMax = 255
)

func mapSample(x float64, voi imaging.VOILUTModule) uint8 {
	c, w := voi.Window.Center, voi.Window.Width

	var y float64
	switch voi.Function {
	case imaging.LinearExact:
		switch {
		case x <= c-w/2:
			y = displayMin
		case x > c+w/2:
			y = displayMax
		default:
			y = ((x-c)/w+0.5)*(displayMax-displayMin) + displayMin
		}
	case imaging.Sigmoid:
		if w == 0 {
			// zero width degenerates to a step at the center
			if x < c {
				return displayMin
			}
			return displayMax
		}
		y = (displayMax-displayMin)/(1+math.Exp(-4*(x-c)/w)) + displayMin
	default: // Linear
		// The standard's LINEAR ramp spans w-1 output steps centered on
		// c-0.5. The boundary checks come first, so the division is never
		// reached for degenerate widths.
		switch {
		case x <= c-0.5-(w-1)/2:
			y = displayMin
		case x > c-0.5+(w-1)/2:
			y = displayMax
		default:
			y = ((x-(c-0.5))/(w-1)+0.5)*(displayMax-displayMin) + displayMin
		}
	}

	y = math.Round(y)
	if y < displayMin {
		return displayMin
	}
	if y > displayMax {
		return displayMax
	}
	return uint8(y)
}
