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

// Package dataset adapts a parsed DICOM data set to the imaging.TagSource
// interface. The container parsing itself is delegated to
// github.com/suyashkumar/dicom; this package only maps tags and coerces
// element values.
package dataset

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/utevo/DICOM-viewer/imaging"
)

// Source is a read-only imaging.TagSource over a parsed DICOM data set.
type Source struct {
	ds dicom.Dataset
}

// Open parses the DICOM file at path into a Source. Pixel data is kept as
// raw unprocessed bytes so the imaging package can apply its own bit-depth
// and byte-order rules.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stating %s: %w", path, err)
	}

	ds, err := dicom.Parse(file, info.Size(), nil, dicom.SkipProcessingPixelDataValue())
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &Source{ds: ds}, nil
}

// FromDataset wraps an already parsed data set.
func FromDataset(ds dicom.Dataset) *Source {
	return &Source{ds: ds}
}

// TransferSyntaxUID returns the Transfer Syntax UID of the file meta group,
// or an error wrapping imaging.ErrTagNotFound when the file carries none.
func (s *Source) TransferSyntaxUID() (string, error) {
	return s.StringAt(imaging.TransferSyntaxUIDTag)
}

// StringAt implements imaging.TagSource
func (s *Source) StringAt(t imaging.Tag) (string, error) {
	elem, err := s.find(t)
	if err != nil {
		return "", err
	}
	switch v := elem.Value.GetValue().(type) {
	case []string:
		if len(v) == 0 {
			return "", fmt.Errorf("%w: %v has no values", imaging.ErrTagNotFound, t)
		}
		return strings.TrimSpace(v[0]), nil
	case string:
		return strings.TrimSpace(v), nil
	}
	return "", fmt.Errorf("%w: %v is not a string element", imaging.ErrTagNotFound, t)
}

// UInt16At implements imaging.TagSource
func (s *Source) UInt16At(t imaging.Tag) (uint16, error) {
	elem, err := s.find(t)
	if err != nil {
		return 0, err
	}
	ints, ok := elem.Value.GetValue().([]int)
	if !ok || len(ints) == 0 {
		return 0, fmt.Errorf("%w: %v is not a binary number element", imaging.ErrTagNotFound, t)
	}
	v := ints[0]
	if v < 0 || v > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %v value %d out of uint16 range", imaging.ErrTagNotFound, t, v)
	}
	return uint16(v), nil
}

// ElementAt implements imaging.TagSource. It is intended for bulk data
// elements such as Pixel Data; the returned Value may alias the parser's
// buffer.
func (s *Source) ElementAt(t imaging.Tag) (*imaging.Element, error) {
	elem, err := s.find(t)
	if err != nil {
		return nil, err
	}

	out := &imaging.Element{
		VR:     elem.RawValueRepresentation,
		Length: elem.ValueLength,
	}
	switch v := elem.Value.GetValue().(type) {
	case dicom.PixelDataInfo:
		if !v.IntentionallyUnprocessed {
			return nil, fmt.Errorf("%w: %v was processed by the parser", imaging.ErrTagNotFound, t)
		}
		out.Value = v.UnprocessedValueData
	case []byte:
		out.Value = v
	default:
		return nil, fmt.Errorf("%w: %v is not a bulk data element", imaging.ErrTagNotFound, t)
	}
	return out, nil
}

// Contains implements imaging.TagSource
func (s *Source) Contains(t imaging.Tag) bool {
	_, err := s.find(t)
	return err == nil
}

func (s *Source) find(t imaging.Tag) (*dicom.Element, error) {
	elem, err := s.ds.FindElementByTag(tag.Tag{Group: t.GroupNumber(), Element: t.ElementNumber()})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", imaging.ErrTagNotFound, t)
	}
	return elem, nil
}
