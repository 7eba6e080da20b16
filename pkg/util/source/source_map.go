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
package source

// Map provides a mechanism for mapping terms of an AST back to spans within
// their originating source file.  This is needed when reporting errors against
// constructs which no longer carry their own source position.
type Map[T comparable] struct {
	srcfile *File
	// Maps a given AST item to a span in the source file.
	mapping map[T]Span
}

// NewMap constructs an initially empty source map for a given file.
func NewMap[T comparable](srcfile *File) *Map[T] {
	return &Map[T]{srcfile, make(map[T]Span)}
}

// SourceFile returns the source file this map is over.
func (p *Map[T]) SourceFile() *File {
	return p.srcfile
}

// Put registers a new AST item with a given span.  Observe that, if the item
// already exists, then its span is overwritten.
func (p *Map[T]) Put(item T, span Span) {
	p.mapping[item] = span
}

// Get determines the span associated with a given AST item.
func (p *Map[T]) Get(item T) (Span, bool) {
	span, ok := p.mapping[item]
	return span, ok
}

// SyntaxError constructs a syntax error for a given AST item with a given
// message.  Items with no recorded span are reported against the start of the
// file.
func (p *Map[T]) SyntaxError(item T, msg string) *SyntaxError {
	span, ok := p.mapping[item]
	if !ok {
		span = NewSpan(0, 0)
	}
	//
	return p.srcfile.SyntaxError(span, msg)
}
