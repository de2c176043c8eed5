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

// Package imaging decodes DICOM image pixel data into in-memory rasters and
// derives the VOI LUT (windowing) configuration used to display them.
//
// The package operates on an abstract TagSource, a tag-keyed view over an
// already parsed DICOM data set. It resolves the transfer syntax UID into a
// (compression, byte order) pair, extracts and validates the image module
// attributes needed to interpret the embedded pixel data element, unpacks the
// pixel bytes into a typed sample buffer, and resolves window center/width
// hints into a VOILUTModule. Container parsing, entropy decoding of
// compressed pixel streams and on-screen rendering are deliberately outside
// this package; unsupported inputs are rejected with typed errors rather than
// decoded on a best-effort basis.
package imaging
