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

// PhotometricInterpretation is the closed set of defined terms for the
// Photometric Interpretation attribute (0028,0004). Only the monochrome
// members are decodable by the grayscale path.
type PhotometricInterpretation int

const (
	Monochrome1 PhotometricInterpretation = iota
	Monochrome2
	PaletteColor
	RGBInterpretation
	HSV
	ARGB
	CMYK
	YBRFull
	YBRFull422
	YBRPartial422
	YBRPartial420
)

// photometricByTerm maps the persisted CS defined terms. DON'T CHANGE the
// string values: they are part of the DICOM wire format.
var photometricByTerm = map[string]PhotometricInterpretation{
	"MONOCHROME1":     Monochrome1,
	"MONOCHROME2":     Monochrome2,
	"PALETTE COLOR":   PaletteColor,
	"RGB":             RGBInterpretation,
	"HSV":             HSV,
	"ARGB":            ARGB,
	"CMYK":            CMYK,
	"YBR_FULL":        YBRFull,
	"YBR_FULL_422":    YBRFull422,
	"YBR_PARTIAL_422": YBRPartial422,
	"YBR_PARTIAL_420": YBRPartial420,
}

// IsMonochrome reports whether the interpretation is one of the two
// grayscale polarities
func (pi PhotometricInterpretation) IsMonochrome() bool {
	return pi == Monochrome1 || pi == Monochrome2
}

// String returns the DICOM defined term for the interpretation
func (pi PhotometricInterpretation) String() string {
	for term, member := range photometricByTerm {
		if member == pi {
			return term
		}
	}
	return fmt.Sprintf("PhotometricInterpretation(%d)", int(pi))
}

// PixelRepresentation is the closed set of values for (0028,0103).
type PixelRepresentation int

const (
	Unsigned PixelRepresentation = iota
	Signed
)

// PlanarConfiguration is the closed set of values for (0028,0006). It is only
// meaningful for multi-sample (color) layouts.
type PlanarConfiguration int

const (
	Interlaced PlanarConfiguration = iota
	Separated
)

// PixelDataVR is the value representation of the Pixel Data element. Only the
// two bulk data kinds are recognized.
type PixelDataVR int

const (
	OtherByte PixelDataVR = iota // "OB"
	OtherWord                    // "OW"
)

// WindowHint carries the optional windowing attributes of a file. Center and
// Width are nil when the corresponding tag is absent or unreadable; Function
// is always populated, defaulting to Linear when the file names none.
type WindowHint struct {
	Center   *float64
	Width    *float64
	Function VOIFunction
}

// ImageMetadata is the validated, immutable set of attributes needed to
// interpret a file's pixel data element. PixelData is an owned copy: the
// TagSource it was extracted from may be released afterwards.
type ImageMetadata struct {
	Rows                      int
	Columns                   int
	SamplesPerPixel           int
	PhotometricInterpretation PhotometricInterpretation
	PlanarConfiguration       PlanarConfiguration
	BitsAllocated             int
	BitsStored                int
	HighBit                   int
	PixelRepresentation       PixelRepresentation
	PixelDataVR               PixelDataVR
	PixelData                 []byte
	Window                    *WindowHint
}

// ExtractImageMetadata reads the image module attributes from src, failing
// fast on the first missing or malformed required attribute. The returned
// metadata owns its pixel data bytes.
func ExtractImageMetadata(src TagSource) (*ImageMetadata, error) {
	rows, err := requireUint16(src, RowsTag, ErrMissingRows)
	if err != nil {
		return nil, err
	}
	columns, err := requireUint16(src, ColumnsTag, ErrMissingColumns)
	if err != nil {
		return nil, err
	}
	samples, err := requireUint16(src, SamplesPerPixelTag, ErrMissingSamplesPerPixel)
	if err != nil {
		return nil, err
	}

	term, err := src.StringAt(PhotometricInterpretationTag)
	if err != nil {
		return nil, ErrMissingPhotometricInterpretation
	}
	photometric, ok := photometricByTerm[strings.TrimSpace(term)]
	if !ok {
		return nil, &InvalidEnumeratedValueError{Field: "PhotometricInterpretation", Value: term}
	}

	// Planar Configuration is optional and defaults to interleaved samples.
	planar := Interlaced
	if src.Contains(PlanarConfigurationTag) {
		raw, err := src.UInt16At(PlanarConfigurationTag)
		if err != nil {
			return nil, &InvalidEnumeratedValueError{Field: "PlanarConfiguration", Value: "unreadable"}
		}
		switch raw {
		case 0:
			planar = Interlaced
		case 1:
			planar = Separated
		default:
			return nil, &InvalidEnumeratedValueError{Field: "PlanarConfiguration", Value: int(raw)}
		}
	}

	bitsAllocated, err := requireUint16(src, BitsAllocatedTag, ErrMissingBitsAllocated)
	if err != nil {
		return nil, err
	}
	bitsStored, err := requireUint16(src, BitsStoredTag, ErrMissingBitsStored)
	if err != nil {
		return nil, err
	}
	highBit, err := requireUint16(src, HighBitTag, ErrMissingHighBit)
	if err != nil {
		return nil, err
	}

	rawRepresentation, err := requireUint16(src, PixelRepresentationTag, ErrMissingPixelRepresentation)
	if err != nil {
		return nil, err
	}
	var representation PixelRepresentation
	switch rawRepresentation {
	case 0:
		representation = Unsigned
	case 1:
		representation = Signed
	default:
		return nil, &InvalidEnumeratedValueError{Field: "PixelRepresentation", Value: int(rawRepresentation)}
	}

	// A VOI LUT Sequence declares a table-based, non-linear windowing scheme
	// this package does not implement.
	if src.Contains(VOILUTSequenceTag) {
		return nil, ErrUnsupportedVOILUTSequence
	}

	elem, err := src.ElementAt(PixelDataTag)
	if err != nil {
		return nil, ErrMissingPixelData
	}
	var pixelVR PixelDataVR
	switch elem.VR {
	case "OB":
		pixelVR = OtherByte
	case "OW":
		pixelVR = OtherWord
	default:
		return nil, &InvalidEnumeratedValueError{Field: "PixelData VR", Value: elem.VR}
	}
	pixelData := make([]byte, len(elem.Value))
	copy(pixelData, elem.Value)

	return &ImageMetadata{
		Rows:                      int(rows),
		Columns:                   int(columns),
		SamplesPerPixel:           int(samples),
		PhotometricInterpretation: photometric,
		PlanarConfiguration:       planar,
		BitsAllocated:             int(bitsAllocated),
		BitsStored:                int(bitsStored),
		HighBit:                   int(highBit),
		PixelRepresentation:       representation,
		PixelDataVR:               pixelVR,
		PixelData:                 pixelData,
		Window:                    extractWindowHint(src),
	}, nil
}

func requireUint16(src TagSource, tag Tag, missing error) (uint16, error) {
	v, err := src.UInt16At(tag)
	if err != nil {
		return 0, missing
	}
	return v, nil
}

// extractWindowHint reads the optional windowing attributes. Unlike the
// required attributes above, each is independently optional and a malformed
// value is treated as absent: windowing is a display preference, not part of
// the data validity contract.
func extractWindowHint(src TagSource) *WindowHint {
	center, hasCenter := decimalAt(src, WindowCenterTag)
	width, hasWidth := decimalAt(src, WindowWidthTag)
	name, errName := src.StringAt(VOILUTFunctionTag)
	hasFunction := errName == nil

	if !hasFunction && !hasCenter {
		return nil
	}

	hint := &WindowHint{Function: Linear}
	if hasFunction {
		hint.Function = ParseVOIFunction(name)
	}
	if hasCenter {
		hint.Center = &center
	}
	if hasWidth {
		hint.Width = &width
	}
	return hint
}

// decimalAt reads the first value of a decimal string element. DS elements
// may be multi-valued ("40\\400"); windowing uses the first window.
func decimalAt(src TagSource, tag Tag) (float64, bool) {
	s, err := src.StringAt(tag)
	if err != nil {
		return 0, false
	}
	first, _, _ := strings.Cut(s, `\`)
	v, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
