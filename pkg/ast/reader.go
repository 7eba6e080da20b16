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
package ast

import (
	"fmt"
	"strconv"

	"github.com/consensys/go-rook/pkg/util/sexp"
	"github.com/consensys/go-rook/pkg/util/source"
)

// Read loads a serialised abstract syntax tree from a given source file.  The
// tree is stored as a single S-expression (as written out by the parser
// front end).  A source map is returned alongside the tree so that later
// compilation errors can be reported against the original text.
func Read(srcfile *source.File) (*Node, *source.Map[*Node], *source.SyntaxError) {
	sExp, sexpmap, err := sexp.Parse(srcfile)
	if err != nil {
		return nil, nil, err
	}
	//
	reader := &reader{srcfile, sexpmap, source.NewMap[*Node](srcfile)}
	//
	node, err := reader.readNode(sExp)
	if err != nil {
		return nil, nil, err
	}
	//
	return node, reader.nodemap, nil
}

// Reader translates S-expressions into AST nodes, stamping each node with its
// source coordinates as it goes.
type reader struct {
	srcfile *source.File
	sexpmap *source.Map[sexp.SExp]
	nodemap *source.Map[*Node]
}

// Translate a single S-expression into an AST node.
func (p *reader) readNode(sExp sexp.SExp) (*Node, *source.SyntaxError) {
	list := sExp.AsList()
	//
	if list == nil {
		return nil, p.errorOn(sExp, "expected a node")
	} else if list.Len() == 0 || list.Get(0).AsSymbol() == nil {
		return nil, p.errorOn(sExp, "expected a node tag")
	}
	//
	var (
		tag  = list.Get(0).AsSymbol().Value
		node *Node
		err  *source.SyntaxError
	)
	//
	switch tag {
	case "ident":
		node, err = p.readNamed(KindIdent, list, 0)
	case "const":
		node, err = p.readConst(list)
	case "ivar":
		node, err = p.readNamed(KindIVar, list, 0)
	case "integer":
		node, err = p.readInteger(list)
	case "float":
		node, err = p.readFloat(list)
	case "string":
		node, err = p.readString(list)
	case "self":
		node, err = p.readFixed(KindSelf, list, 0, 0)
	case "array":
		node, err = p.readVariadic(KindArray, list, 1)
	case "block":
		node, err = p.readVariadic(KindBlock, list, 1)
	case "let":
		node, err = p.readFixed(KindLet, list, 2, 2)
	case "assign":
		node, err = p.readFixed(KindAssign, list, 2, 2)
	case "send":
		node, err = p.readSend(list)
	case "class":
		node, err = p.readClass(list)
	case "method":
		node, err = p.readMethod(list)
	case "closure":
		node, err = p.readClosure(list)
	case "return":
		node, err = p.readFixed(KindReturn, list, 0, 1)
	case "import":
		node, err = p.readNamed(KindImport, list, 0)
	case "match":
		node, err = p.readVariadic(KindMatch, list, 2)
	case "try":
		node, err = p.readFixed(KindTry, list, 1, 2)
	case "if":
		node, err = p.readFixed(KindIf, list, 2, 3)
	case "while":
		node, err = p.readFixed(KindWhile, list, 2, 2)
	case "loop":
		node, err = p.readFixed(KindLoop, list, 1, 1)
	case "break":
		node, err = p.readFixed(KindBreak, list, 0, 0)
	case "next":
		node, err = p.readFixed(KindNext, list, 0, 0)
	case "rest":
		node, err = p.readFixed(KindRest, list, 1, 1)
	case "type":
		node, err = p.readNamed(KindType, list, -1)
	default:
		return nil, p.errorOn(list, fmt.Sprintf("unknown node tag \"%s\"", tag))
	}
	//
	if err != nil {
		return nil, err
	}
	//
	p.position(node, list)
	//
	return node, nil
}

// Read a node carrying just a name payload (ident, ivar, import, type).  When
// arity is negative, any number of trailing children is permitted.
func (p *reader) readNamed(kind Kind, list *sexp.List, arity int) (*Node, *source.SyntaxError) {
	if list.Len() < 2 || list.Get(1).AsSymbol() == nil {
		return nil, p.errorOn(list, fmt.Sprintf("%s: expected a name", list.Get(0)))
	} else if arity >= 0 && list.Len() != arity+2 {
		return nil, p.errorOn(list, fmt.Sprintf("%s: malformed node", list.Get(0)))
	}
	//
	node := &Node{Kind: kind, Text: list.Get(1).AsSymbol().Unquote()}
	//
	for i := 2; i < list.Len(); i++ {
		child, err := p.readNode(list.Get(i))
		if err != nil {
			return nil, err
		}
		//
		node.Children = append(node.Children, child)
	}
	//
	return node, nil
}

// Read a constant reference, with an optional explicit receiver.
func (p *reader) readConst(list *sexp.List) (*Node, *source.SyntaxError) {
	node, err := p.readNamed(KindConst, list, -1)
	//
	if err != nil {
		return nil, err
	} else if len(node.Children) > 1 {
		return nil, p.errorOn(list, "const: malformed node")
	}
	//
	return node, nil
}

// Read a node with between min and max children and no payload.
func (p *reader) readFixed(kind Kind, list *sexp.List, min int, max int) (*Node, *source.SyntaxError) {
	if list.Len() < min+1 || list.Len() > max+1 {
		return nil, p.errorOn(list, fmt.Sprintf("%s: malformed node", list.Get(0)))
	}
	//
	return p.readChildren(kind, list, 1)
}

// Read a node with at least from-1 trailing children and no payload.
func (p *reader) readVariadic(kind Kind, list *sexp.List, from int) (*Node, *source.SyntaxError) {
	if list.Len() < from {
		return nil, p.errorOn(list, fmt.Sprintf("%s: malformed node", list.Get(0)))
	}
	//
	return p.readChildren(kind, list, 1)
}

func (p *reader) readChildren(kind Kind, list *sexp.List, from int) (*Node, *source.SyntaxError) {
	node := &Node{Kind: kind}
	//
	for i := from; i < list.Len(); i++ {
		child, err := p.readChild(list.Get(i))
		if err != nil {
			return nil, err
		}
		//
		node.Children = append(node.Children, child)
	}
	//
	return node, nil
}

// Read a child position, where the placeholder "_" denotes an absent child
// (e.g. the implicit receiver of a send).
func (p *reader) readChild(sExp sexp.SExp) (*Node, *source.SyntaxError) {
	if symbol := sExp.AsSymbol(); symbol != nil && symbol.Value == "_" {
		return nil, nil
	}
	//
	return p.readNode(sExp)
}

func (p *reader) readInteger(list *sexp.List) (*Node, *source.SyntaxError) {
	if list.Len() != 2 || list.Get(1).AsSymbol() == nil {
		return nil, p.errorOn(list, "integer: malformed node")
	}
	//
	val, err := strconv.ParseInt(list.Get(1).AsSymbol().Value, 10, 64)
	if err != nil {
		return nil, p.errorOn(list.Get(1), "integer literal out of range")
	}
	//
	return &Node{Kind: KindInteger, Int: val}, nil
}

func (p *reader) readFloat(list *sexp.List) (*Node, *source.SyntaxError) {
	if list.Len() != 2 || list.Get(1).AsSymbol() == nil {
		return nil, p.errorOn(list, "float: malformed node")
	}
	//
	val, err := strconv.ParseFloat(list.Get(1).AsSymbol().Value, 64)
	if err != nil {
		return nil, p.errorOn(list.Get(1), "malformed float literal")
	}
	//
	return &Node{Kind: KindFloat, Float: val}, nil
}

func (p *reader) readString(list *sexp.List) (*Node, *source.SyntaxError) {
	if list.Len() != 2 || list.Get(1).AsSymbol() == nil {
		return nil, p.errorOn(list, "string: malformed node")
	}
	//
	return &Node{Kind: KindString, Text: list.Get(1).AsSymbol().Unquote()}, nil
}

// Read a message send "(send receiver name args...)", where the receiver may
// be the placeholder "_" for the implicit self.
func (p *reader) readSend(list *sexp.List) (*Node, *source.SyntaxError) {
	if list.Len() < 3 || list.Get(2).AsSymbol() == nil {
		return nil, p.errorOn(list, "send: malformed node")
	}
	//
	receiver, err := p.readChild(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	node := &Node{Kind: KindSend, Text: list.Get(2).AsSymbol().Unquote()}
	node.Children = append(node.Children, receiver)
	//
	for i := 3; i < list.Len(); i++ {
		child, cerr := p.readNode(list.Get(i))
		if cerr != nil {
			return nil, cerr
		}
		//
		node.Children = append(node.Children, child)
	}
	//
	return node, nil
}

// Read a class definition "(class Name receiver parent body)", where receiver
// and parent may be the placeholder "_".
func (p *reader) readClass(list *sexp.List) (*Node, *source.SyntaxError) {
	if list.Len() != 5 || list.Get(1).AsSymbol() == nil {
		return nil, p.errorOn(list, "class: malformed node")
	}
	//
	node := &Node{Kind: KindClass, Text: list.Get(1).AsSymbol().Value}
	//
	for i := 2; i < 5; i++ {
		child, err := p.readChild(list.Get(i))
		if err != nil {
			return nil, err
		}
		//
		node.Children = append(node.Children, child)
	}
	//
	if node.Children[2] == nil || node.Children[2].Kind != KindBlock {
		return nil, p.errorOn(list, "class: expected a body block")
	}
	//
	return node, nil
}

// Read a method definition "(method name (params...) body)", optionally
// followed by the symbol "private".
func (p *reader) readMethod(list *sexp.List) (*Node, *source.SyntaxError) {
	if list.Len() < 4 || list.Len() > 5 || list.Get(1).AsSymbol() == nil {
		return nil, p.errorOn(list, "method: malformed node")
	}
	//
	node := &Node{Kind: KindMethod, Text: list.Get(1).AsSymbol().Unquote()}
	//
	if list.Len() == 5 {
		visibility := list.Get(4).AsSymbol()
		if visibility == nil || visibility.Value != "private" {
			return nil, p.errorOn(list.Get(4), "method: expected \"private\"")
		}
		//
		node.Int = 1
	}
	//
	return p.readRoutine(node, list.Get(2), list.Get(3))
}

// Read a closure literal "(closure (params...) body)".
func (p *reader) readClosure(list *sexp.List) (*Node, *source.SyntaxError) {
	if list.Len() != 3 {
		return nil, p.errorOn(list, "closure: malformed node")
	}
	//
	return p.readRoutine(&Node{Kind: KindClosure}, list.Get(1), list.Get(2))
}

// Read the parameter list and body shared by methods and closures.  Bare
// symbols in the parameter list are positional parameters; a trailing "(rest
// name)" collects remaining arguments.
func (p *reader) readRoutine(node *Node, params sexp.SExp, body sexp.SExp) (*Node, *source.SyntaxError) {
	plist := params.AsList()
	if plist == nil {
		return nil, p.errorOn(params, "expected a parameter list")
	}
	//
	pblock := &Node{Kind: KindBlock}
	p.position(pblock, params)
	//
	for i := 0; i < plist.Len(); i++ {
		param, err := p.readParameter(plist.Get(i))
		if err != nil {
			return nil, err
		}
		//
		pblock.Children = append(pblock.Children, param)
	}
	//
	bnode, err := p.readNode(body)
	if err != nil {
		return nil, err
	} else if bnode.Kind != KindBlock {
		return nil, p.errorOn(body, "expected a body block")
	}
	//
	node.Children = append(node.Children, pblock, bnode)
	//
	return node, nil
}

func (p *reader) readParameter(sExp sexp.SExp) (*Node, *source.SyntaxError) {
	if symbol := sExp.AsSymbol(); symbol != nil {
		node := &Node{Kind: KindIdent, Text: symbol.Value}
		p.position(node, sExp)
		//
		return node, nil
	}
	//
	list := sExp.AsList()
	if list == nil || list.Len() != 2 || list.Get(0).AsSymbol() == nil ||
		list.Get(0).AsSymbol().Value != "rest" || list.Get(1).AsSymbol() == nil {
		//
		return nil, p.errorOn(sExp, "malformed parameter")
	}
	//
	node := &Node{Kind: KindRest, Text: list.Get(1).AsSymbol().Value}
	p.position(node, sExp)
	//
	return node, nil
}

// Stamp a node with the source coordinates of the S-expression it came from,
// and record it in the node map.
func (p *reader) position(node *Node, sExp sexp.SExp) {
	if span, ok := p.sexpmap.Get(sExp); ok {
		node.Line, node.Column = p.srcfile.LineColumn(span)
		p.nodemap.Put(node, span)
	} else {
		node.Line, node.Column = 1, 1
	}
}

func (p *reader) errorOn(sExp sexp.SExp, msg string) *source.SyntaxError {
	if span, ok := p.sexpmap.Get(sExp); ok {
		return p.srcfile.SyntaxError(span, msg)
	}
	//
	return p.srcfile.SyntaxError(source.NewSpan(0, 0), msg)
}
