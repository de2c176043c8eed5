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

// VOIFunction selects the response curve used to map sample values to display
// intensities, per http://dicom.nema.org/medical/dicom/current/output/html/part03.html#sect_C.11.2
type VOIFunction int

const (
	Linear VOIFunction = iota
	LinearExact
	Sigmoid
)

// Persisted CS defined terms. DON'T CHANGE the string values: they
// round-trip through DICOM files.
const (
	linearTerm      = "LINEAR"
	linearExactTerm = "LINEAR_EXACT"
	sigmoidTerm     = "SIGMOID"
)

// String returns the DICOM defined term for the function
func (f VOIFunction) String() string {
	switch f {
	case LinearExact:
		return linearExactTerm
	case Sigmoid:
		return sigmoidTerm
	default:
		return linearTerm
	}
}

// ParseVOIFunction maps a VOI LUT Function defined term to a VOIFunction.
// Unknown terms fall back to Linear, the standard's default response.
func ParseVOIFunction(term string) VOIFunction {
	switch term {
	case linearExactTerm:
		return LinearExact
	case sigmoidTerm:
		return Sigmoid
	default:
		return Linear
	}
}

// Window is a VOI window given by its center and width. Values are taken
// verbatim from the file; windowing is a view transform, so out-of-range
// values are not an error.
type Window struct {
	Center float64
	Width  float64
}

// DefaultWindow is used when a file carries no windowing hint at all.
var DefaultWindow = Window{Center: 1024, Width: 4096}

// VOILUTModule is the resolved windowing configuration handed to the
// rendering layer.
type VOILUTModule struct {
	Window   Window
	Function VOIFunction
}

// ResolveVOI derives the windowing configuration from an optional hint. Hint
// values present in the file are used verbatim without validation; absent
// values fall back to DefaultWindow and Linear. ResolveVOI never fails.
func ResolveVOI(hint *WindowHint) VOILUTModule {
	if hint == nil {
		return VOILUTModule{Window: DefaultWindow, Function: Linear}
	}
	window := DefaultWindow
	if hint.Center != nil {
		window.Center = *hint.Center
	}
	if hint.Width != nil {
		window.Width = *hint.Width
	}
	return VOILUTModule{Window: window, Function: hint.Function}
}
