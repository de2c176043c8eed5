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

import "encoding/binary"

// Raster is the decoded pixel buffer of a single image. It is one of Gray8,
// Gray16, Gray32 or RGB; the grayscale variant matches the file's Bits
// Allocated. A Raster is produced once by Decode and never mutated.
type Raster interface {
	// Bounds returns the raster dimensions as (rows, columns)
	Bounds() (rows, columns int)

	isRaster()
}

// Gray8 is a single-channel raster with 8 bits allocated per sample.
type Gray8 struct {
	Rows    int
	Columns int
	Samples []uint8
}

// Gray16 is a single-channel raster with 16 bits allocated per sample.
type Gray16 struct {
	Rows    int
	Columns int
	Samples []uint16
}

// Gray32 is a single-channel raster with 32 bits allocated per sample.
type Gray32 struct {
	Rows    int
	Columns int
	Samples []uint32
}

// RGB is a color raster of 32-bit packed pixels. It is only produced by the
// best-effort color path; see DecodeRGBBestEffort.
type RGB struct {
	Rows    int
	Columns int
	Pixels  []uint32
}

// Bounds returns the raster dimensions as (rows, columns)
func (r *Gray8) Bounds() (int, int) { return r.Rows, r.Columns }

// Bounds returns the raster dimensions as (rows, columns)
func (r *Gray16) Bounds() (int, int) { return r.Rows, r.Columns }

// Bounds returns the raster dimensions as (rows, columns)
func (r *Gray32) Bounds() (int, int) { return r.Rows, r.Columns }

// Bounds returns the raster dimensions as (rows, columns)
func (r *RGB) Bounds() (int, int) { return r.Rows, r.Columns }

func (*Gray8) isRaster()  {}
func (*Gray16) isRaster() {}
func (*Gray32) isRaster() {}
func (*RGB) isRaster()    {}

// Decode unpacks the pixel data of meta into a typed raster. Every check
// below is a hard precondition: the first unsupported attribute combination
// aborts the decode with a typed error and no partial result.
//
// The sample bytes are reinterpreted in the byte order declared by syntax and
// returned in native order, so a big-endian source gets an explicit swap pass
// here rather than a surprise at display time. No rescale or shift is
// applied; window mapping is a display-time concern.
func Decode(meta *ImageMetadata, syntax TransferSyntax) (Raster, error) {
	compression, order := Classify(syntax)
	if compression != CompressionNone {
		return nil, ErrUnsupportedCompression
	}

	if !meta.PhotometricInterpretation.IsMonochrome() || meta.SamplesPerPixel != 1 {
		// The color path ignores planar configuration, bit depth and
		// signedness, so it cannot produce a structurally correct buffer.
		// DecodeRGBBestEffort exposes it for callers that accept that.
		return nil, ErrUnsupportedColorLayout
	}
	if meta.PixelDataVR == OtherWord && meta.BitsAllocated != 16 {
		return nil, ErrUnsupportedPixelDataRepresentation
	}
	if meta.HighBit+1 != meta.BitsStored {
		return nil, ErrUnsupportedBitLayout
	}
	if meta.PhotometricInterpretation == Monochrome1 {
		return nil, ErrUnsupportedPhotometricInterpretation
	}
	if meta.PixelRepresentation != Unsigned {
		return nil, ErrUnsupportedPixelRepresentation
	}

	count := meta.Rows * meta.Columns
	switch meta.BitsAllocated {
	case 8:
		if len(meta.PixelData) < count {
			return nil, ErrTruncatedPixelData
		}
		samples := make([]uint8, count)
		copy(samples, meta.PixelData)
		return &Gray8{Rows: meta.Rows, Columns: meta.Columns, Samples: samples}, nil
	case 16:
		if len(meta.PixelData) < 2*count {
			return nil, ErrTruncatedPixelData
		}
		samples := make([]uint16, count)
		for i := range samples {
			samples[i] = order.Uint16(meta.PixelData[2*i:])
		}
		return &Gray16{Rows: meta.Rows, Columns: meta.Columns, Samples: samples}, nil
	case 32:
		if len(meta.PixelData) < 4*count {
			return nil, ErrTruncatedPixelData
		}
		samples := make([]uint32, count)
		for i := range samples {
			samples[i] = order.Uint32(meta.PixelData[4*i:])
		}
		return &Gray32{Rows: meta.Rows, Columns: meta.Columns, Samples: samples}, nil
	}
	return nil, ErrUnsupportedBitDepth
}

// DecodeRGBBestEffort reinterprets the pixel data as 32-bit packed color
// pixels without consulting planar configuration, bits allocated, high bit or
// pixel representation. It is a known-incomplete placeholder kept only for
// callers that explicitly opt into a possibly wrong buffer; Decode never
// routes here.
func DecodeRGBBestEffort(meta *ImageMetadata) (*RGB, error) {
	count := meta.Rows * meta.Columns
	if len(meta.PixelData) < 4*count {
		return nil, ErrTruncatedPixelData
	}
	pixels := make([]uint32, count)
	for i := range pixels {
		pixels[i] = binary.LittleEndian.Uint32(meta.PixelData[4*i:])
	}
	return &RGB{Rows: meta.Rows, Columns: meta.Columns, Pixels: pixels}, nil
}
