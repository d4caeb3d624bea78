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

// Package token classifies lexemes into the closed set of WBS token kinds
// and exposes the per-kind arity and positional-acceptance rules the phrase
// tree builder needs. Classification is a pure, two-layer function of a
// lexeme's value and a small amount of context the builder supplies; it
// does not itself touch the tree.
package token

import "strings"

// Kind is a WBS token kind. The set is closed: every lexeme classifies to
// exactly one Kind.
type Kind int

const (
	UNSET Kind = iota
	KEYWORD
	FILLER
	NAME
	HTMLPART
	STRING_LITERAL
	BOOL_LITERAL
	NUMERIC_LITERAL
	THIS_LITERAL
	FILE_LITERAL
	COLOR_LITERAL
	LIST_LITERAL
	ARGUMENT_LIST
	UNARY_OPERATOR
	BINARY_OPERATOR
	ASSIGNMENT
	CONST
	UNKNOWN
)

//go:generate stringer -type=Kind

// String returns a human-readable name for k, used by the debug tree
// linearization.
func (k Kind) String() string {
	switch k {
	case UNSET:
		return "UNSET"
	case KEYWORD:
		return "KEYWORD"
	case FILLER:
		return "FILLER"
	case NAME:
		return "NAME"
	case HTMLPART:
		return "HTMLPART"
	case STRING_LITERAL:
		return "STRING_LITERAL"
	case BOOL_LITERAL:
		return "BOOL_LITERAL"
	case NUMERIC_LITERAL:
		return "NUMERIC_LITERAL"
	case THIS_LITERAL:
		return "THIS_LITERAL"
	case FILE_LITERAL:
		return "FILE_LITERAL"
	case COLOR_LITERAL:
		return "COLOR_LITERAL"
	case LIST_LITERAL:
		return "LIST_LITERAL"
	case ARGUMENT_LIST:
		return "ARGUMENT_LIST"
	case UNARY_OPERATOR:
		return "UNARY_OPERATOR"
	case BINARY_OPERATOR:
		return "BINARY_OPERATOR"
	case ASSIGNMENT:
		return "ASSIGNMENT"
	case CONST:
		return "CONST"
	default:
		return "UNKNOWN"
	}
}

// Token is a classified lexeme: a Kind, its (possibly stripped or rewritten)
// value, and the source position of the lexeme it was classified from.
type Token struct {
	Kind   Kind
	Value  string
	Line   uint32
	Column uint32
}

// Variable marks a phrase arity as variable-length (argument lists and list
// literals), as opposed to a fixed child count.
const Variable = -1

// PreRelease gates the pre-release "output" keyword. It mirrors the
// original implementation's Ver0_1_0 compile-time macro as runtime
// configuration rather than a build tag.
var PreRelease = false

var keywords = map[string]bool{
	"create":   true,
	"open":     true,
	"file":     true,
	"colorset": true,
	"foreach":  true,
	"using":    true,
	"export":   true,
}

func isKeyword(value string) bool {
	if keywords[value] {
		return true
	}
	return value == "output" && PreRelease
}

var fillers = map[string]bool{
	"as": true,
	"in": true,
	"do": true,
	",":  true,
}

// ClassifyLiteral is layer A of classification: a pure function of a
// lexeme's value and whether it appears in a file-path (in_link) context.
func ClassifyLiteral(value string, inLink bool) Kind {
	if strings.HasPrefix(value, `"`) {
		return STRING_LITERAL
	}
	switch value {
	case "true", "false":
		return BOOL_LITERAL
	case "this":
		return THIS_LITERAL
	case "const":
		return CONST
	}
	// A path segment is classified by shape, not spelling: inside a file
	// path, a word that happens to also be a keyword (the "file" in
	// /path/to/file) or a filler still names a path component. See
	// DESIGN.md.
	if inLink && isNameChars(value, inLink) && !isDigitsOrDot(value) {
		return FILE_LITERAL
	}
	if isKeyword(value) {
		return KEYWORD
	}
	if fillers[value] {
		return FILLER
	}
	switch value {
	case "xor", "and", "or", "not":
		return UNKNOWN
	}
	if strings.HasPrefix(value, "#") {
		if isHex(value[1:]) {
			return COLOR_LITERAL
		}
		return UNKNOWN
	}
	if isDigitsOrDot(value) {
		return NUMERIC_LITERAL
	}
	if isNameChars(value, inLink) {
		if inLink {
			return FILE_LITERAL
		}
		return NAME
	}
	return UNKNOWN
}

// Context is the builder-supplied context needed to resolve layer A into a
// final Token kind.
type Context struct {
	// First is derived by the builder from its insertion anchor: while the
	// anchor's own phrase still has open slots, First is true once that
	// phrase holds at least one child; otherwise it is true when the
	// anchor's parent already has all its children, or when it has no
	// parent.
	First bool
	// InLink is true while parsing a file-path argument to open/file.
	InLink bool
	// InHTML is true in the immediate child slot of create.
	InHTML bool
}

// Promote is layer B of classification: it takes the layer-A kind and the
// builder's context and produces the final Kind and stored value.
func Promote(layerA Kind, value string, ctx Context) (Kind, string) {
	switch layerA {
	case NAME:
		if ctx.InHTML {
			return HTMLPART, value
		}
		return NAME, value
	case STRING_LITERAL:
		// Only the leading quote is stripped; the trailing quote (if any)
		// is preserved verbatim. This is intentional: see DESIGN.md.
		return STRING_LITERAL, value[1:]
	case COLOR_LITERAL:
		return COLOR_LITERAL, value[1:]
	case UNKNOWN:
		return promoteUnknown(value, ctx)
	default:
		return layerA, value
	}
}

// promoteUnknown resolves a layer-A UNKNOWN value into its final operator
// kind, using ctx to disambiguate the prefix/infix symbols +, -, and /.
func promoteUnknown(value string, ctx Context) (Kind, string) {
	switch value {
	case "xor", "and", "or":
		return BINARY_OPERATOR, value
	case "not":
		return UNARY_OPERATOR, value
	case "+", "-":
		if ctx.First {
			return UNARY_OPERATOR, value
		}
		return BINARY_OPERATOR, value
	case "/":
		// Unlike +/-, a leading slash reads as a prefix exactly when the
		// phrase it's entering hasn't taken any children yet (opening a
		// file literal); a slash arriving once that phrase already holds
		// one reads as infix (continuing/appending to it). That's the
		// opposite sense of ctx.First from the +/- case above. See
		// DESIGN.md.
		if !ctx.First && ctx.InLink {
			return UNARY_OPERATOR, value
		}
		return BINARY_OPERATOR, value
	case "!":
		return UNARY_OPERATOR, "not"
	case "~":
		return UNARY_OPERATOR, value
	case "=":
		return ASSIGNMENT, value
	case "[":
		return LIST_LITERAL, value
	case "(":
		return UNARY_OPERATOR, value
	case "]", ")":
		return FILLER, value
	case "*", "%", "&", "|", "^", "<", ">", "≥", "≤", "≠", "≈":
		return BINARY_OPERATOR, value
	}
	return UNKNOWN, value
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return false
		}
	}
	return true
}

func isDigitsOrDot(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9') && r != '.' {
			return false
		}
	}
	return true
}

func isNameChars(s string, inLink bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
		if alnum {
			continue
		}
		if inLink && r == '.' {
			continue
		}
		return false
	}
	return true
}

// PhraseLength returns the expected child count for t's phrase, or
// Variable for argument lists and list literals.
func PhraseLength(t Token) int {
	switch t.Kind {
	case KEYWORD:
		switch t.Value {
		case "create":
			return 1
		case "open", "file":
			return 1
		case "colorset":
			return 3
		case "foreach", "using":
			return 5
		case "export":
			return 1
		case "output":
			if PreRelease {
				return 1
			}
		}
		return 0
	case CONST:
		return 1
	case ASSIGNMENT:
		return 2
	case BINARY_OPERATOR:
		return 2
	case UNARY_OPERATOR:
		return 1
	case ARGUMENT_LIST, LIST_LITERAL:
		return Variable
	default:
		return 0
	}
}

// Accepts reports whether a candidate child token t may attach at child
// index pos of a phrase with token parent. final distinguishes
// mid-construction acceptance (a bare NAME may transiently occupy an
// assignment slot) from final validation.
func Accepts(parent, t Token, pos int, final bool) bool {
	switch parent.Kind {
	case KEYWORD:
		return acceptsKeyword(parent.Value, t, pos, final)
	case CONST:
		if pos != 0 {
			return false
		}
		if t.Kind == ASSIGNMENT {
			return true
		}
		if t.Kind == NAME {
			return !final
		}
		return false
	case ASSIGNMENT:
		if pos == 0 {
			return t.Kind == NAME
		}
		if pos == 1 {
			return IsValueExpression(t)
		}
		return false
	case BINARY_OPERATOR:
		// A call's "(" marker takes its argument list directly in slot 1;
		// an ARGUMENT_LIST is not itself a value expression.
		if pos == 1 && parent.Value == "(" && t.Kind == ARGUMENT_LIST {
			return true
		}
		return (pos == 0 || pos == 1) && IsValueExpression(t)
	case UNARY_OPERATOR:
		return pos == 0 && IsValueExpression(t)
	case ARGUMENT_LIST:
		if t.Kind == ASSIGNMENT {
			return true
		}
		if t.Kind == NAME {
			return !final
		}
		return t.Kind == FILLER && t.Value == ","
	case LIST_LITERAL:
		if IsValueExpression(t) {
			return true
		}
		if t.Kind == NAME {
			return !final
		}
		return t.Kind == FILLER && t.Value == ","
	default:
		return false
	}
}

func acceptsKeyword(value string, t Token, pos int, final bool) bool {
	switch value {
	case "create":
		return pos == 0 && t.Kind == HTMLPART
	case "open", "file":
		return pos == 0 && t.Kind == FILE_LITERAL
	case "colorset":
		if pos < 0 || pos > 2 {
			return false
		}
		if t.Kind == ASSIGNMENT {
			return true
		}
		if t.Kind == NAME {
			return !final
		}
		return false
	case "foreach":
		switch pos {
		case 0:
			return t.Kind == NAME
		case 1:
			return t.Kind == FILLER && t.Value == "in"
		case 2:
			return IsValueExpression(t)
		case 3:
			return t.Kind == FILLER && t.Value == "do"
		case 4:
			return IsFullPhrase(t)
		}
		return false
	case "using":
		switch pos {
		case 0:
			return IsValueExpression(t)
		case 1:
			return t.Kind == FILLER && t.Value == "as"
		case 2:
			return t.Kind == NAME
		case 3:
			return t.Kind == FILLER && t.Value == "do"
		case 4:
			return IsFullPhrase(t)
		}
		return false
	case "export", "output":
		return pos == 0 && IsValueExpression(t)
	default:
		return false
	}
}

// IsValueExpression reports whether t can stand in any slot that accepts a
// value: a keyword phrase, a name, a string, bool, numeric, this, color or
// list literal, or an operator. File literals are not value expressions.
func IsValueExpression(t Token) bool {
	switch t.Kind {
	case KEYWORD, NAME, STRING_LITERAL, BOOL_LITERAL, NUMERIC_LITERAL,
		THIS_LITERAL, COLOR_LITERAL, LIST_LITERAL, UNARY_OPERATOR, BINARY_OPERATOR:
		return true
	default:
		return false
	}
}

// IsFullPhrase reports whether t may stand as a top-level phrase: a value
// expression, or a CONST declaration.
func IsFullPhrase(t Token) bool {
	return IsValueExpression(t) || t.Kind == CONST
}

// IsPhrase reports whether t's kind ever carries children.
func IsPhrase(t Token) bool {
	switch t.Kind {
	case KEYWORD, CONST, ASSIGNMENT, ARGUMENT_LIST, LIST_LITERAL, UNARY_OPERATOR, BINARY_OPERATOR:
		return true
	default:
		return false
	}
}
