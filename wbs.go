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

// Package wbs ties the lexer, builder, and diagnostics packages together
// into the small surface a collaborator (editor, CLI) actually needs:
// lex text, build its phrase tree, and collect the diagnostics against it.
package wbs

import (
	"github.com/lythd/wbsc/builder"
	"github.com/lythd/wbsc/diagnostics"
	"github.com/lythd/wbsc/lexeme"
	"github.com/lythd/wbsc/phrase"
)

// Parse lexes text into its raw lexeme stream. Exposed mainly for tooling
// that wants positions without paying for a tree build.
func Parse(text string) []lexeme.Lexeme {
	return lexeme.Lex(text)
}

// BuildTree lexes and builds text's phrase forest, returning its root (nil
// for empty input) along with every diagnostic raised against it.
func BuildTree(text string) (*phrase.Node, []diagnostics.SyntaxError) {
	root := builder.Build(lexeme.Lex(text))
	return root, diagnostics.Collect(root)
}

// ToVector linearizes root for debug display; see phrase.ToVector.
func ToVector(root *phrase.Node) []string {
	return phrase.ToVector(root)
}
