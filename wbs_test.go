// Copyright 2026 lythd
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

package wbs

import (
	"testing"

	"github.com/lythd/wbsc/diagnostics"
	"github.com/lythd/wbsc/phrase"
)

func TestParse(t *testing.T) {
	t.Parallel()

	lexemes := Parse("const x = 3")
	if len(lexemes) != 4 {
		t.Fatalf("Parse returned %d lexemes, want 4", len(lexemes))
	}
	want := []string{"const", "x", "=", "3"}
	for i, w := range want {
		if lexemes[i].Value != w {
			t.Errorf("lexeme %d = %q, want %q", i, lexemes[i].Value, w)
		}
	}
}

func TestBuildTree_CleanInput(t *testing.T) {
	t.Parallel()

	root, diags := BuildTree("const x = 3")
	if diags != nil {
		t.Errorf("BuildTree diagnostics = %v, want nil", diags)
	}
	if got := phrase.Dump(root); got != "CONST:const(ASSIGNMENT:=(NAME:x, NUMERIC_LITERAL:3))" {
		t.Errorf("BuildTree dump = %s", got)
	}
}

func TestBuildTree_EmptyInput(t *testing.T) {
	t.Parallel()

	root, diags := BuildTree("")
	if root != nil {
		t.Errorf("BuildTree(empty) root = %v, want nil", root)
	}
	if diags != nil {
		t.Errorf("BuildTree(empty) diagnostics = %v, want nil", diags)
	}
}

func TestBuildTree_UnterminatedStringDiagnostic(t *testing.T) {
	t.Parallel()

	_, diags := BuildTree(`"hi`)
	if len(diags) != 1 {
		t.Fatalf("BuildTree diagnostics = %v, want exactly one", diags)
	}
	if diags[0].Kind != diagnostics.IncompletePhrase {
		t.Errorf("diagnostic kind = %v, want IncompletePhrase", diags[0].Kind)
	}
}

func TestToVector(t *testing.T) {
	t.Parallel()

	root, _ := BuildTree("const x = 3")
	vec := ToVector(root)
	if len(vec) == 0 {
		t.Fatal("ToVector returned no entries for a non-empty tree")
	}
	if got := ToVector(nil); got != nil {
		t.Errorf("ToVector(nil) = %v, want nil", got)
	}
}
