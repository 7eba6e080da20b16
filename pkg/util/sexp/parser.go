// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package sexp

import (
	"unicode"

	"github.com/consensys/go-rook/pkg/util/source"
)

// Parse a given source file into an S-expression, or return an error if the
// text is malformed.  A source map is also returned so that consumers can
// report errors against the original text.
func Parse(srcfile *source.File) (SExp, *source.Map[SExp], *source.SyntaxError) {
	p := NewParser(srcfile)
	// Parse the input
	sExp, err := p.Parse()
	// Sanity check everything was parsed
	if err == nil && sExp == nil {
		return nil, nil, p.error(p.index, "unexpected end-of-file")
	}
	//
	if err == nil {
		p.skipWhiteSpace()
		//
		if p.index != len(p.text) {
			return nil, nil, p.error(p.index, "unexpected remainder")
		}
	}
	// Done
	return sExp, p.srcmap, err
}

// Parser represents a parser in the process of parsing a given string into one
// or more S-expressions.
type Parser struct {
	// Source file being parsed
	srcfile *source.File
	// Cache (for simplicity)
	text []rune
	// Determines current position within text
	index int
	// Mapping from constructed S-Expressions to their spans in the original text.
	srcmap *source.Map[SExp]
}

// NewParser constructs a new instance of Parser
func NewParser(srcfile *source.File) *Parser {
	return &Parser{
		srcfile: srcfile,
		text:    srcfile.Contents(),
		index:   0,
		srcmap:  source.NewMap[SExp](srcfile),
	}
}

// SourceMap returns the internal source map constructed during parsing.
func (p *Parser) SourceMap() *source.Map[SExp] {
	return p.srcmap
}

// Parse the next S-Expression in the stream, or produce an error.  Returns nil
// once the end of the stream is reached.
func (p *Parser) Parse() (SExp, *source.SyntaxError) {
	p.skipWhiteSpace()
	// Record start of this term
	start := p.index
	//
	if p.index == len(p.text) {
		return nil, nil
	}
	//
	switch p.text[p.index] {
	case ')':
		return nil, p.error(p.index, "unexpected end-of-list")
	case '(':
		p.index++
		//
		elements, err := p.parseList()
		if err != nil {
			return nil, err
		}
		//
		list := NewList(elements)
		p.srcmap.Put(list, source.NewSpan(start, p.index))
		//
		return list, nil
	case '"':
		return p.parseString()
	default:
		return p.parseSymbol()
	}
}

// Parse the elements of a list up to (and including) the closing brace.
func (p *Parser) parseList() ([]SExp, *source.SyntaxError) {
	elements := make([]SExp, 0)
	//
	for {
		p.skipWhiteSpace()
		//
		if p.index == len(p.text) {
			return nil, p.error(p.index, "unexpected end-of-file")
		} else if p.text[p.index] == ')' {
			p.index++
			return elements, nil
		}
		//
		element, err := p.Parse()
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, element)
	}
}

// Parse a quoted string literal, retaining its enclosing quotes.
func (p *Parser) parseString() (SExp, *source.SyntaxError) {
	start := p.index
	p.index++
	//
	for p.index < len(p.text) {
		switch p.text[p.index] {
		case '\\':
			p.index += 2
		case '"':
			p.index++
			//
			symbol := NewSymbol(string(p.text[start:p.index]))
			p.srcmap.Put(symbol, source.NewSpan(start, p.index))
			//
			return symbol, nil
		default:
			p.index++
		}
	}
	//
	return nil, p.error(start, "unterminated string literal")
}

// Parse a bare symbol (i.e. a name or a number).
func (p *Parser) parseSymbol() (SExp, *source.SyntaxError) {
	start := p.index
	//
	for p.index < len(p.text) && !isTerminator(p.text[p.index]) {
		p.index++
	}
	//
	symbol := NewSymbol(string(p.text[start:p.index]))
	p.srcmap.Put(symbol, source.NewSpan(start, p.index))
	//
	return symbol, nil
}

// Skip over any whitespace and comments.  Comments run from a semicolon to the
// end of the line.
func (p *Parser) skipWhiteSpace() {
	for p.index < len(p.text) {
		switch {
		case unicode.IsSpace(p.text[p.index]):
			p.index++
		case p.text[p.index] == ';':
			for p.index < len(p.text) && p.text[p.index] != '\n' {
				p.index++
			}
		default:
			return
		}
	}
}

// Construct a syntax error at a given position in the text.
func (p *Parser) error(index int, msg string) *source.SyntaxError {
	end := min(index+1, len(p.text))
	return p.srcfile.SyntaxError(source.NewSpan(index, end), msg)
}

func isTerminator(c rune) bool {
	return unicode.IsSpace(c) || c == '(' || c == ')' || c == ';' || c == '"'
}
