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
	"encoding/binary"
	"fmt"
)

// list of transfer syntaxes obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_A
const (
	// ImplicitVRLittleEndianUID is the Implicit VR Little Endian UID
	ImplicitVRLittleEndianUID = "1.2.840.10008.1.2"
	// ExplicitVRLittleEndianUID is the Explicit VR Little Endian UID
	ExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1"
	// ExplicitVRBigEndianUID is the Explicit VR Big Endian UID
	ExplicitVRBigEndianUID = "1.2.840.10008.1.2.2"
	// JPEGBaselineUID is the JPEG Baseline (Process 1) UID
	JPEGBaselineUID = "1.2.840.10008.1.2.4.50"
	// JPEGExtendedUID is the JPEG Extended (Process 2 & 4) UID
	JPEGExtendedUID = "1.2.840.10008.1.2.4.51"
	// JPEGLosslessUID is the JPEG Lossless (Process 14) UID
	JPEGLosslessUID = "1.2.840.10008.1.2.4.57"
	// JPEGLosslessSV1UID is the JPEG Lossless (Process 14, Selection Value 1) UID
	JPEGLosslessSV1UID = "1.2.840.10008.1.2.4.70"
	// JPEG2000LosslessUID is the JPEG 2000 (Lossless Only) UID
	JPEG2000LosslessUID = "1.2.840.10008.1.2.4.90"
	// JPEG2000UID is the JPEG 2000 (lossy or lossless) UID
	JPEG2000UID = "1.2.840.10008.1.2.4.91"
	// RLELosslessUID is the RLE Lossless UID
	RLELosslessUID = "1.2.840.10008.1.2.5"
)

// TransferSyntax is the closed set of transfer syntaxes this package
// recognizes. A value is derived once per file from the Transfer Syntax UID
// and never changes afterwards.
type TransferSyntax int

const (
	UncompressedLittleEndian TransferSyntax = iota
	UncompressedBigEndian
	JPEGBaseline
	JPEGLossless
	JPEG2000
	RLE
)

// String returns a short human-readable name for the transfer syntax
func (ts TransferSyntax) String() string {
	switch ts {
	case UncompressedLittleEndian:
		return "uncompressed little endian"
	case UncompressedBigEndian:
		return "uncompressed big endian"
	case JPEGBaseline:
		return "jpeg baseline"
	case JPEGLossless:
		return "jpeg lossless"
	case JPEG2000:
		return "jpeg 2000"
	case RLE:
		return "rle"
	}
	return fmt.Sprintf("TransferSyntax(%d)", int(ts))
}

// Compression is the pixel data compression scheme implied by a transfer
// syntax.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionJPEGBaseline
	CompressionJPEGLossless
	CompressionJPEG2000
	CompressionRLE
)

// String returns a short human-readable name for the compression scheme
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionJPEGBaseline:
		return "jpeg baseline"
	case CompressionJPEGLossless:
		return "jpeg lossless"
	case CompressionJPEG2000:
		return "jpeg 2000"
	case CompressionRLE:
		return "rle"
	}
	return fmt.Sprintf("Compression(%d)", int(c))
}

// transferSyntaxByUID is the exact-match lookup table used by
// ResolveTransferSyntax. Each recognized UID maps to exactly one member.
var transferSyntaxByUID = map[string]TransferSyntax{
	ImplicitVRLittleEndianUID: UncompressedLittleEndian,
	ExplicitVRLittleEndianUID: UncompressedLittleEndian,
	ExplicitVRBigEndianUID:    UncompressedBigEndian,
	JPEGBaselineUID:           JPEGBaseline,
	JPEGExtendedUID:           JPEGBaseline,
	JPEGLosslessUID:           JPEGLossless,
	JPEGLosslessSV1UID:        JPEGLossless,
	JPEG2000LosslessUID:       JPEG2000,
	JPEG2000UID:               JPEG2000,
	RLELosslessUID:            RLE,
}

// ResolveTransferSyntax maps a Transfer Syntax UID to a TransferSyntax by
// exact match. A UID outside the recognized table yields
// ErrUnrecognizedTransferSyntax; it is never defaulted silently.
func ResolveTransferSyntax(uid string) (TransferSyntax, error) {
	ts, ok := transferSyntaxByUID[uid]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedTransferSyntax, uid)
	}
	return ts, nil
}

// DefaultTransferSyntax returns the transfer syntax a caller should assume
// when the file carries no Transfer Syntax UID element at all. It is not a
// fallback for unrecognized UIDs.
func DefaultTransferSyntax() TransferSyntax {
	return UncompressedLittleEndian
}

// Classify returns the (compression, byte order) pair of a transfer syntax.
// The mapping is total over the TransferSyntax members; an out-of-range value
// can only come from a caller fabricating one and panics rather than decoding
// with a wrong byte order.
func Classify(ts TransferSyntax) (Compression, binary.ByteOrder) {
	switch ts {
	case UncompressedLittleEndian:
		return CompressionNone, binary.LittleEndian
	case UncompressedBigEndian:
		return CompressionNone, binary.BigEndian
	case JPEGBaseline:
		return CompressionJPEGBaseline, binary.LittleEndian
	case JPEGLossless:
		return CompressionJPEGLossless, binary.LittleEndian
	case JPEG2000:
		return CompressionJPEG2000, binary.LittleEndian
	case RLE:
		return CompressionRLE, binary.LittleEndian
	}
	panic(fmt.Sprintf("imaging: unhandled transfer syntax %d", int(ts)))
}
