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

// stubSource is an in-memory TagSource used to drive the extractor in tests.
type stubSource struct {
	strings  map[Tag]string
	uint16s  map[Tag]uint16
	elements map[Tag]*Element
}

func newStubSource() *stubSource {
	return &stubSource{
		strings:  map[Tag]string{},
		uint16s:  map[Tag]uint16{},
		elements: map[Tag]*Element{},
	}
}

func (s *stubSource) StringAt(tag Tag) (string, error) {
	v, ok := s.strings[tag]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrTagNotFound, tag)
	}
	return v, nil
}

func (s *stubSource) UInt16At(tag Tag) (uint16, error) {
	v, ok := s.uint16s[tag]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrTagNotFound, tag)
	}
	return v, nil
}

func (s *stubSource) ElementAt(tag Tag) (*Element, error) {
	v, ok := s.elements[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrTagNotFound, tag)
	}
	return v, nil
}

func (s *stubSource) Contains(tag Tag) bool {
	if _, ok := s.strings[tag]; ok {
		return true
	}
	if _, ok := s.uint16s[tag]; ok {
		return true
	}
	_, ok := s.elements[tag]
	return ok
}

// monochromeSource returns a valid 2x3 MONOCHROME2 16-bit source holding the
// little-endian samples 0..5.
func monochromeSource() *stubSource {
	src := newStubSource()
	src.uint16s[RowsTag] = 2
	src.uint16s[ColumnsTag] = 3
	src.uint16s[SamplesPerPixelTag] = 1
	src.strings[PhotometricInterpretationTag] = "MONOCHROME2"
	src.uint16s[BitsAllocatedTag] = 16
	src.uint16s[BitsStoredTag] = 16
	src.uint16s[HighBitTag] = 15
	src.uint16s[PixelRepresentationTag] = 0
	src.elements[PixelDataTag] = &Element{VR: "OW", Length: 12, Value: sampleBytes16(binary.LittleEndian, 0, 1, 2, 3, 4, 5)}
	return src
}

func sampleBytes16(order binary.ByteOrder, values ...uint16) []byte {
	buf := make([]byte, 2*len(values))
	for i, v := range values {
		order.PutUint16(buf[2*i:], v)
	}
	return buf
}

func float64Ptr(v float64) *float64 {
	return &v
}
