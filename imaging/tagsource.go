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

// Element is the raw view of a single data element as exposed by a TagSource.
// Value holds the element's value field bytes in the byte order declared by
// the source's transfer syntax.
type Element struct {
	// VR is the 2-character value representation code, e.g. "OB" or "OW"
	VR string

	// Length is the declared value field length in bytes
	Length uint32

	// Value is the value field. The slice may alias the source's underlying
	// buffer; callers that outlive the source must copy it.
	Value []byte
}

// TagSource is a read-only, tag-keyed view over a parsed DICOM data set.
// Implementations are provided by the container parser, which this package
// deliberately does not depend on.
//
// All getters report an absent tag, and a tag whose value cannot be read as
// the requested type, by returning an error that wraps ErrTagNotFound.
type TagSource interface {
	// StringAt returns the value of a text element as a string
	StringAt(tag Tag) (string, error)

	// UInt16At returns the value of a binary US element
	UInt16At(tag Tag) (uint16, error)

	// ElementAt returns the raw view of an element, used for bulk data such
	// as Pixel Data
	ElementAt(tag Tag) (*Element, error)

	// Contains reports whether the data set carries the tag at all
	Contains(tag Tag) bool
}
