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
	"errors"
	"fmt"
)

// Failures are typed and final: no caller in this package attempts a partial
// or best-effort decode after one of these is returned.
var (
	// ErrUnrecognizedTransferSyntax is returned by ResolveTransferSyntax for a
	// UID outside the recognized table.
	ErrUnrecognizedTransferSyntax = errors.New("dicom: unrecognized transfer syntax")

	// ErrTagNotFound is returned by a TagSource when the requested tag is
	// absent or its value cannot be read as the requested type.
	ErrTagNotFound = errors.New("dicom: tag not found")

	// Missing required image module attributes, one sentinel per attribute so
	// callers can report exactly which tag the file lacks.
	ErrMissingRows                      = errors.New("dicom: missing Rows (0028,0010)")
	ErrMissingColumns                   = errors.New("dicom: missing Columns (0028,0011)")
	ErrMissingSamplesPerPixel           = errors.New("dicom: missing Samples per Pixel (0028,0002)")
	ErrMissingPhotometricInterpretation = errors.New("dicom: missing Photometric Interpretation (0028,0004)")
	ErrMissingBitsAllocated             = errors.New("dicom: missing Bits Allocated (0028,0100)")
	ErrMissingBitsStored                = errors.New("dicom: missing Bits Stored (0028,0101)")
	ErrMissingHighBit                   = errors.New("dicom: missing High Bit (0028,0102)")
	ErrMissingPixelRepresentation       = errors.New("dicom: missing Pixel Representation (0028,0103)")
	ErrMissingPixelData                 = errors.New("dicom: missing Pixel Data (7FE0,0010)")

	// Recognized but unsupported attribute combinations.
	ErrUnsupportedCompression               = errors.New("dicom: decoding compressed pixel data is not implemented")
	ErrUnsupportedColorLayout               = errors.New("dicom: decoding non-monochrome pixel data is not implemented")
	ErrUnsupportedVOILUTSequence            = errors.New("dicom: VOI LUT sequence windowing is not implemented")
	ErrUnsupportedPixelDataRepresentation   = errors.New("dicom: OW pixel data requires 16 bits allocated")
	ErrUnsupportedBitLayout                 = errors.New("dicom: high bit + 1 must equal bits stored")
	ErrUnsupportedPhotometricInterpretation = errors.New("dicom: MONOCHROME1 inverted intensities are not supported")
	ErrUnsupportedPixelRepresentation       = errors.New("dicom: signed pixel representation is not supported")
	ErrUnsupportedBitDepth                  = errors.New("dicom: bits allocated must be 8, 16 or 32")

	// ErrTruncatedPixelData is returned when the pixel data element holds
	// fewer bytes than the declared dimensions require.
	ErrTruncatedPixelData = errors.New("dicom: pixel data shorter than declared dimensions")

	// ErrInvalidPixelSpacing is returned for a Pixel Spacing string that is
	// not two backslash-delimited decimal values.
	ErrInvalidPixelSpacing = errors.New("dicom: invalid pixel spacing")
)

// InvalidEnumeratedValueError reports an attribute whose value lies outside
// its closed set of defined terms.
type InvalidEnumeratedValueError struct {
	Field string
	Value any
}

func (e *InvalidEnumeratedValueError) Error() string {
	return fmt.Sprintf("dicom: invalid enumerated value %v for %s", e.Value, e.Field)
}
