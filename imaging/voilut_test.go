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

import "testing"

func TestResolveVOI(t *testing.T) {
	tests := []struct {
		name string
		hint *WindowHint
		want VOILUTModule
	}{
		{
			"no hint",
			nil,
			VOILUTModule{Window: Window{Center: 1024, Width: 4096}, Function: Linear},
		},
		{
			"center and width verbatim",
			&WindowHint{Center: float64Ptr(200), Width: float64Ptr(400), Function: Linear},
			VOILUTModule{Window: Window{Center: 200, Width: 400}, Function: Linear},
		},
		{
			"center only keeps default width",
			&WindowHint{Center: float64Ptr(40), Function: Linear},
			VOILUTModule{Window: Window{Center: 40, Width: 4096}, Function: Linear},
		},
		{
			"sigmoid function",
			&WindowHint{Center: float64Ptr(600), Width: float64Ptr(1200), Function: Sigmoid},
			VOILUTModule{Window: Window{Center: 600, Width: 1200}, Function: Sigmoid},
		},
		{
			"out-of-range values accepted",
			&WindowHint{Center: float64Ptr(-50000), Width: float64Ptr(1e9), Function: LinearExact},
			VOILUTModule{Window: Window{Center: -50000, Width: 1e9}, Function: LinearExact},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveVOI(tc.hint); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseVOIFunction(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want VOIFunction
	}{
		{"linear", "LINEAR", Linear},
		{"linear exact", "LINEAR_EXACT", LinearExact},
		{"sigmoid", "SIGMOID", Sigmoid},
		{"unknown falls back to linear", "GAMMA", Linear},
		{"empty falls back to linear", "", Linear},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseVOIFunction(tc.in); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVOIFunctionString(t *testing.T) {
	tests := []struct {
		in   VOIFunction
		want string
	}{
		{Linear, "LINEAR"},
		{LinearExact, "LINEAR_EXACT"},
		{Sigmoid, "SIGMOID"},
	}

	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}
