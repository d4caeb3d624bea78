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

// Package lexeme implements the first stage of the WBS front-end: turning
// raw source text into a flat, positioned stream of lexemes. It knows
// nothing about WBS keywords or operators; it only groups characters into
// words, quoted strings, and single-character symbols, and strips comments.
package lexeme

import (
	"strings"
	"unicode"

	"github.com/ianlewis/runeio"
)

// Lexeme is a positioned raw string produced by Lex. Line and Column report
// the position of the lexeme's last character. Line is 0-based; Column
// counts the characters read on that line up to and including the last
// character, so a lexeme ending at a line's first character has Column 1.
type Lexeme struct {
	Value  string
	Line   uint32
	Column uint32
}

// Lex scans text into an ordered, left-to-right sequence of Lexemes. It
// never fails: an unterminated string produces one Lexeme holding the
// remainder of the input starting at the opening quote, and any other
// malformed input is simply emitted as single-character symbols.
func Lex(text string) []Lexeme {
	r := runeio.NewReader(strings.NewReader(text))

	var lexemes []Lexeme
	var cur strings.Builder
	var line, column uint32
	var inString, inComment bool
	var prev rune

	// flush emits the pending word at (l, c), the position of its last rune.
	flush := func(l, c uint32) {
		if cur.Len() > 0 {
			lexemes = append(lexemes, Lexeme{Value: cur.String(), Line: l, Column: c})
			cur.Reset()
		}
	}

	for {
		rn, _, err := r.ReadRune()
		if err != nil {
			break
		}

		prevRune := prev
		prev = rn
		prevLine, prevColumn := line, column

		if rn == '\n' {
			line++
			column = 0
		} else {
			column++
		}

		switch {
		case inComment:
			if rn == '\n' {
				inComment = false
			}
			continue
		case inString:
			cur.WriteRune(rn)
			if rn == '"' {
				lexemes = append(lexemes, Lexeme{Value: cur.String(), Line: line, Column: column})
				cur.Reset()
				inString = false
			}
			continue
		}

		// A comment starts when the immediately preceding source rune was
		// also '/', mirroring the original's text[i-1]=='/' check exactly
		// (tokenparser.cpp). Tracking the raw previous rune, rather than the
		// last emitted lexeme, matters when whitespace separates the two
		// slashes (e.g. "a / // note" or "x/ /y"): the lexeme-based check
		// would still see a standalone "/" lexeme and misfire.
		if rn == '/' && prevRune == '/' {
			inComment = true
			lexemes = lexemes[:len(lexemes)-1]
			continue
		}

		if rn == '"' {
			inString = true
			cur.WriteRune(rn)
			continue
		}

		if isWordRune(rn) || (cur.Len() == 0 && rn == '#') {
			cur.WriteRune(rn)
			continue
		}

		// The pending word ended at the previous rune, not at this delimiter.
		flush(prevLine, prevColumn)

		if !unicode.IsSpace(rn) {
			lexemes = append(lexemes, Lexeme{Value: string(rn), Line: line, Column: column})
		}
	}

	// Flushes a trailing word, or the remainder of an unterminated string.
	flush(line, column)

	return lexemes
}

// isWordRune reports whether rn is a WBS word character: ASCII letters,
// digits, underscore, or period. Period is a word character so that dotted
// paths and filenames like file.ext lex as a single lexeme.
func isWordRune(rn rune) bool {
	return (rn >= 'a' && rn <= 'z') ||
		(rn >= 'A' && rn <= 'Z') ||
		(rn >= '0' && rn <= '9') ||
		rn == '_' || rn == '.'
}
