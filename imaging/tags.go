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

import "fmt"

// Tag is a unique identifier for a data element composed of a pair of numbers
// called the group number and the element number as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
//
// The least significant 16 bits is the element number. The most significant
// 16 bits is the group number.
type Tag uint32

// GroupNumber returns the group number component of the Tag
func (t Tag) GroupNumber() uint16 {
	return uint16(t >> 16)
}

// ElementNumber returns the element number component of the Tag
func (t Tag) ElementNumber() uint16 {
	return uint16(t & 0xFFFF)
}

// String returns the tag in (GGGG,EEEE) form
func (t Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.GroupNumber(), t.ElementNumber())
}

// Tags consumed by this package. Values obtained from the DICOM data
// dictionary, http://dicom.nema.org/medical/dicom/current/output/html/part06.html
const (
	TransferSyntaxUIDTag         Tag = 0x00020010
	SamplesPerPixelTag           Tag = 0x00280002
	PhotometricInterpretationTag Tag = 0x00280004
	PlanarConfigurationTag       Tag = 0x00280006
	RowsTag                      Tag = 0x00280010
	ColumnsTag                   Tag = 0x00280011
	PixelSpacingTag              Tag = 0x00280030
	BitsAllocatedTag             Tag = 0x00280100
	BitsStoredTag                Tag = 0x00280101
	HighBitTag                   Tag = 0x00280102
	PixelRepresentationTag       Tag = 0x00280103
	WindowCenterTag              Tag = 0x00281050
	WindowWidthTag               Tag = 0x00281051
	VOILUTFunctionTag            Tag = 0x00281056
	VOILUTSequenceTag            Tag = 0x00283010
	PixelDataTag                 Tag = 0x7FE00010
)
