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

// Package diagnostics turns a built phrase tree into the flat list of
// syntax errors a collaborator (editor, CLI) displays to a user. There is
// no recovery or suppression: every offending node is reported, in source
// order, with no deduplication.
package diagnostics

import (
	"errors"
	"fmt"

	"github.com/lythd/wbsc/phrase"
	"github.com/lythd/wbsc/token"
)

// Kind is the closed set of diagnostic kinds.
type Kind int

const (
	IncompletePhrase Kind = iota
	UnknownToken
)

func (k Kind) String() string {
	switch k {
	case IncompletePhrase:
		return "Incomplete phrase"
	case UnknownToken:
		return "Cannot parse token"
	default:
		return "unknown diagnostic"
	}
}

// Sentinel errors letting a single SyntaxError compose with errors.Is and
// errors.As against a diagnostic's kind.
var (
	ErrIncompletePhrase = errors.New("incomplete phrase")
	ErrUnknownToken     = errors.New("cannot parse token")
)

// SyntaxError is one diagnostic: a kind and the source position of the node
// it was raised against.
type SyntaxError struct {
	Kind   Kind
	Line   uint32
	Column uint32
}

// Error implements the error interface.
func (e SyntaxError) Error() string {
	return fmt.Sprintf("Error: %s on Line %d:%d.", e.Kind, e.Line, e.Column)
}

// Unwrap lets errors.Is(err, ErrUnknownToken) and friends work against a
// SyntaxError value.
func (e SyntaxError) Unwrap() error {
	if e.Kind == UnknownToken {
		return ErrUnknownToken
	}
	return ErrIncompletePhrase
}

// Collect performs the single final-validation pass over root: one
// diagnostic per node that is UNKNOWN, not is_complete, or holding a bare
// NAME in a slot that accepts one only mid-construction, in source order,
// without deduplication.
func Collect(root *phrase.Node) []SyntaxError {
	var errs []SyntaxError
	phrase.Walk(root, func(n *phrase.Node) {
		switch {
		case n.Token.Kind == token.UNKNOWN:
			errs = append(errs, SyntaxError{Kind: UnknownToken, Line: n.Token.Line, Column: n.Token.Column})
		case !n.IsComplete():
			errs = append(errs, SyntaxError{Kind: IncompletePhrase, Line: n.Token.Line, Column: n.Token.Column})
		default:
			for i := 0; i < n.ChildrenCount(); i++ {
				c := n.Child(i).Token
				if c.Kind == token.NAME && token.Accepts(n.Token, c, i, false) && !token.Accepts(n.Token, c, i, true) {
					errs = append(errs, SyntaxError{Kind: IncompletePhrase, Line: n.Token.Line, Column: n.Token.Column})
					break
				}
			}
		}
	})
	return errs
}
