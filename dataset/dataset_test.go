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

package dataset

import (
	"errors"
	"testing"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/utevo/DICOM-viewer/imaging"
)

func mustNewElement(t *testing.T, nativeTag tag.Tag, value interface{}) *dicom.Element {
	t.Helper()
	elem, err := dicom.NewElement(nativeTag, value)
	if err != nil {
		t.Fatalf("NewElement(%v): %v", nativeTag, err)
	}
	return elem
}

func testSource(t *testing.T) *Source {
	t.Helper()
	ds := dicom.Dataset{Elements: []*dicom.Element{
		mustNewElement(t, tag.PhotometricInterpretation, []string{"MONOCHROME2 "}),
		mustNewElement(t, tag.Rows, []int{512}),
		mustNewElement(t, tag.Columns, []int{256}),
		mustNewElement(t, tag.WindowCenter, []string{`40\400`}),
	}}
	return FromDataset(ds)
}

func TestStringAt(t *testing.T) {
	src := testSource(t)

	got, err := src.StringAt(imaging.PhotometricInterpretationTag)
	if err != nil {
		t.Fatalf("StringAt: %v", err)
	}
	if want := "MONOCHROME2"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStringAtMissing(t *testing.T) {
	src := testSource(t)

	if _, err := src.StringAt(imaging.VOILUTFunctionTag); !errors.Is(err, imaging.ErrTagNotFound) {
		t.Fatalf("got %v, want %v", err, imaging.ErrTagNotFound)
	}
}

func TestUInt16At(t *testing.T) {
	src := testSource(t)

	got, err := src.UInt16At(imaging.RowsTag)
	if err != nil {
		t.Fatalf("UInt16At: %v", err)
	}
	if want := uint16(512); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUInt16AtWrongType(t *testing.T) {
	src := testSource(t)

	// Photometric Interpretation is a string element; reading it as a binary
	// number must report the tag as unusable, not coerce it.
	if _, err := src.UInt16At(imaging.PhotometricInterpretationTag); !errors.Is(err, imaging.ErrTagNotFound) {
		t.Fatalf("got %v, want %v", err, imaging.ErrTagNotFound)
	}
}

func TestContains(t *testing.T) {
	src := testSource(t)

	if !src.Contains(imaging.RowsTag) {
		t.Fatalf("Contains(%v) = false, want true", imaging.RowsTag)
	}
	if src.Contains(imaging.VOILUTSequenceTag) {
		t.Fatalf("Contains(%v) = true, want false", imaging.VOILUTSequenceTag)
	}
}
