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

// Package builder implements the incremental phrase-tree builder: the
// token-by-token dispatch that turns a lexeme stream into a forest of
// phrase nodes, performing operator fusion, bracket matching, and
// call-syntax rewrites in place as each token arrives.
package builder

import (
	"github.com/lythd/wbsc/lexeme"
	"github.com/lythd/wbsc/phrase"
	"github.com/lythd/wbsc/token"
)

// Tree holds the running state of an in-progress build: the current
// insertion anchor and the node it replaced. It is mutated by Feed and is
// not safe for concurrent use by multiple goroutines.
type Tree struct {
	last     *phrase.Node
	lastLast *phrase.Node
}

// Build consumes lexemes left-to-right and returns the root of the
// resulting forest, or nil if lexemes is empty.
func Build(lexemes []lexeme.Lexeme) *phrase.Node {
	t := &Tree{}
	for _, lx := range lexemes {
		t.Feed(lx)
	}
	if t.last == nil {
		return nil
	}
	return phrase.Root(t.last)
}

// Feed classifies one lexeme against the tree's current state and performs
// the corresponding mutation. See spec §4.4.3 for the dispatch this
// mirrors.
func (t *Tree) Feed(lx lexeme.Lexeme) {
	ctx := t.context()
	layerA := token.ClassifyLiteral(lx.Value, ctx.InLink)
	kind, value := token.Promote(layerA, lx.Value, ctx)
	c := token.Token{Kind: kind, Value: value, Line: lx.Line, Column: lx.Column}

	// Empty tree: the first token always just becomes the root.
	if t.last == nil {
		t.last = phrase.New(c)
		return
	}

	if c.Kind == token.ASSIGNMENT {
		t.feedAssignment(c)
		return
	}

	if c.Kind == token.BINARY_OPERATOR {
		t.feedBinary(c)
		return
	}

	switch {
	case c.Kind == token.UNARY_OPERATOR:
		c = t.rewriteUnary(c)
	case c.Kind == token.FILE_LITERAL:
		if t.last.Token.Kind == token.FILE_LITERAL {
			t.mergeFileLiteral(c)
			return
		}
	case c.Kind == token.FILLER && (c.Value == ")" || c.Value == "]"):
		if closed := t.closeBracket(c); closed != nil {
			// last may have been the trailing-comma sentinel just
			// disconnected above; re-anchor on the now-closed list so it
			// stays a valid insertion point for anything that follows.
			t.last = closed
			return
		}
		// No matching opener: mark UNKNOWN so the node surfaces as an
		// UnknownToken diagnostic once it lands (step 7/8 below), instead
		// of silently validating as an ordinary filler. This is the fixed
		// reading of the closer branch; see DESIGN.md.
		c.Kind = token.UNKNOWN
	}

	t.attach(c)
}

// context derives (first, in_link, in_html) from t.last. See spec §4.4.2.
func (t *Tree) context() token.Context {
	ctx := token.Context{First: true}
	last := t.last
	if last == nil {
		return ctx
	}

	if last.Token.Kind == token.KEYWORD && (last.Token.Value == "open" || last.Token.Value == "file") {
		ctx.InLink = true
	} else if p := last.Parent(); p != nil &&
		(p.Token.Kind == token.FILE_LITERAL ||
			(p.Token.Kind == token.KEYWORD && (p.Token.Value == "open" || p.Token.Value == "file"))) {
		ctx.InLink = true
	}

	if token.PhraseLength(last.Token) > last.ChildrenCount() {
		ctx.First = last.ChildrenCount() > 0
	} else if p := last.Parent(); p != nil {
		ctx.First = token.PhraseLength(p.Token) <= p.ChildrenCount()
	}

	if last.Token.Kind == token.KEYWORD && last.Token.Value == "create" {
		ctx.InHTML = true
	}
	return ctx
}

// feedAssignment implements the assignment-fusion rules of dispatch step 2.
func (t *Tree) feedAssignment(c token.Token) {
	parent := t.last.Parent()

	if parent == nil || (parent.Token.Kind != token.CONST && parent.Token.Kind != token.ARGUMENT_LIST) {
		c.Kind = token.BINARY_OPERATOR
		c.Value = "="
	}

	if parent != nil && parent.ChildrenCount() == 1 &&
		(parent.Token.Kind == token.BINARY_OPERATOR || parent.Token.Kind == token.ASSIGNMENT) &&
		parent.Token.Value == "=" {
		parent.Token.Kind = token.BINARY_OPERATOR
		parent.Token.Value = "=="
		return
	}

	if parent != nil && parent.ChildrenCount() == 1 && parent.Token.Kind == token.BINARY_OPERATOR {
		switch parent.Token.Value {
		case "<":
			parent.Token.Value = "≤"
			return
		case ">":
			parent.Token.Value = "≥"
			return
		}
	}

	// A dangling unary '!' ("not") or '~' wraps exactly last: its phrase is
	// already complete with last as its one child, so no pointer surgery is
	// needed — only a retype and re-anchoring of last onto the operator
	// itself so the next token attaches as its right operand.
	if p := t.last.Parent(); p != nil && p.Token.Kind == token.UNARY_OPERATOR &&
		(p.Token.Value == "not" || p.Token.Value == "~") {
		if p.Token.Value == "not" {
			p.Token.Value = "≠"
		} else {
			p.Token.Value = "≈"
		}
		p.Token.Kind = token.BINARY_OPERATOR
		t.lastLast = t.last
		t.last = p
		return
	}

	t.gobbleUp(c)
}

// feedBinary implements the binary-operator-fusion rules of dispatch step 3.
func (t *Tree) feedBinary(c token.Token) {
	parent := t.last.Parent()
	if parent != nil && parent.ChildrenCount() == 1 && parent.Token.Kind == token.BINARY_OPERATOR &&
		parent.Token.Value == c.Value {
		switch c.Value {
		case "*":
			parent.Token.Value = "**"
		case "/":
			parent.Token.Value = "//"
		case "^":
			parent.Token.Value = "xor"
		case "&":
			parent.Token.Value = "and"
		case "|":
			parent.Token.Value = "or"
		default:
			t.gobbleUp(c)
			return
		}
		return
	}

	if c.Value == "/" && t.last.Token.Kind == token.FILE_LITERAL {
		t.last.Token.Value += "/"
		return
	}

	// Precedence reordering is a known TODO upstream (spec §9 item 1); this
	// stays purely left-associative.
	t.gobbleUp(c)
}

// rewriteUnary implements dispatch step 4. It may mutate c (a unary '/'
// always becomes a file literal; a unary '(' may become a call's argument
// list, wrapping t.last in a new binary '(' node first).
func (t *Tree) rewriteUnary(c token.Token) token.Token {
	switch c.Value {
	case "/":
		return token.Token{Kind: token.FILE_LITERAL, Value: "", Line: c.Line, Column: c.Column}
	case "(":
		if t.last.Token.Kind == token.HTMLPART ||
			(token.IsValueExpression(t.last.Token) && t.last.IsComplete()) {
			newNode := phrase.New(token.Token{Kind: token.BINARY_OPERATOR, Value: "(", Line: c.Line, Column: c.Column})
			phrase.SwapInSlot(t.last, newNode)
			t.lastLast = newNode
			return token.Token{Kind: token.ARGUMENT_LIST, Value: c.Value, Line: c.Line, Column: c.Column}
		}
	}
	return c
}

// mergeFileLiteral implements dispatch step 5.
func (t *Tree) mergeFileLiteral(c token.Token) {
	prev := t.last.Token.Value
	next := c.Value
	sep := "/"
	if (prev == "" || prev[len(prev)-1] == '/') || (next == "" || next[0] == '/') {
		sep = ""
	}
	t.last.Token.Value = prev + sep + next
}

// closeBracket implements dispatch step 6's match case, returning the
// matched ancestor (nil if none was found). On a match the ancestor's value
// becomes the closed pair and any trailing comma filler is disconnected.
func (t *Tree) closeBracket(c token.Token) *phrase.Node {
	match := "("
	if c.Value == "]" {
		match = "["
	}

	lastp := t.last
	for lastp != nil {
		if lastp.Token.Value == match &&
			(lastp.Token.Kind == token.UNARY_OPERATOR || lastp.Token.Kind == token.ARGUMENT_LIST ||
				lastp.Token.Kind == token.LIST_LITERAL) {
			break
		}
		lastp = lastp.Parent()
	}
	if lastp == nil {
		return nil
	}

	lastp.Token.Value = match + c.Value
	if lastp.Token.Kind != token.UNARY_OPERATOR {
		if lc := lastp.Child(-1); lc != nil && lc.Token.Kind == token.FILLER && lc.Token.Value == "," {
			lc.Disconnect()
		}
	}
	return lastp
}

// attach implements dispatch steps 7 and 8: general attachment by walking
// ancestors from last upward, falling back to a new top-level sibling.
func (t *Tree) attach(c token.Token) {
	for lastp := t.last; lastp != nil; lastp = lastp.Parent() {
		if !lastp.IsComplete() && token.Accepts(lastp.Token, c, lastp.ChildrenCount(), false) {
			node := phrase.New(c)
			lastp.AddChild(node)
			t.lastLast = t.last
			t.last = node

			if c.Kind == token.ARGUMENT_LIST || c.Kind == token.LIST_LITERAL {
				comma := phrase.New(token.Token{Kind: token.FILLER, Value: ",", Line: c.Line, Column: c.Column})
				node.AddChild(comma)
				t.lastLast = t.last
				t.last = comma
			}
			return
		}
	}

	node := phrase.New(c)
	phrase.Root(t.last).AddSibling(node)
	t.lastLast = t.last
	t.last = node
}

// gobbleUp replaces t.last in its own slot with a new node carrying c,
// t.last becoming that node's first child. This is the one structural move
// behind every fusion rule that isn't a pure in-place value mutation.
func (t *Tree) gobbleUp(c token.Token) {
	newNode := phrase.New(c)
	phrase.SwapInSlot(t.last, newNode)
	t.lastLast = newNode
}
