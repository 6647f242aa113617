// Package object defines the runtime value representation produced by
// the evaluator: integers, booleans, null, functions, and the two
// internal signal objects (ReturnValue, Error) used to thread control
// flow through the tree walk.
package object

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/srclang/srclang/ast"
)

// Type is the runtime type tag of an Object. These exact strings are
// part of the external contract: runtime error messages embed them
// verbatim (e.g. "type mismatch: INTEGER + BOOLEAN"), so renaming any
// of them is a breaking change.
type Type string

const (
	INTEGER_OBJ      Type = "INTEGER"
	BOOLEAN_OBJ      Type = "BOOLEAN"
	NULL_OBJ         Type = "NULL"
	RETURN_VALUE_OBJ Type = "RETURN_VALUE"
	ERROR_OBJ        Type = "ERROR"
	FUNCTION_OBJ     Type = "FUNCTION_OBJ"
)

// Object is the interface every runtime value implements.
type Object interface {
	Type() Type
	Inspect() string
}

// Integer wraps a signed 64-bit integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() Type      { return INTEGER_OBJ }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Boolean wraps a bool value. The evaluator shares two singleton
// instances (TRUE and FALSE, see evaluator package) rather than
// allocating a Boolean per comparison.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type      { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// Null is the absence of a value: an empty block, a condition with no
// matching branch, a bare `return;`. There is exactly one instance,
// shared by the evaluator.
type Null struct{}

func (n *Null) Type() Type      { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }

// ReturnValue wraps the operand of a `return` statement so it can
// unwind through nested Block evaluations without being mistaken for an
// ordinary value. It must never escape evaluator.Eval's top-level
// Program case — the evaluator unwraps it there.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() Type      { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Error carries a free-form runtime error message. Once produced, an
// Error short-circuits every enclosing expression, statement, block and
// program; it is returned to the caller of Eval as-is, never swallowed.
type Error struct {
	Message string
}

func (e *Error) Type() Type      { return ERROR_OBJ }
func (e *Error) Inspect() string { return e.Message }

// Function is a closure: its parameter list and body come straight from
// the ast.Function literal that produced it, and Env is the environment
// frame that was active when that literal was evaluated — not the frame
// active at any particular call site. That captured reference is what
// makes closures and recursion-via-let work (see environment.go).
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.Block
	Env        *Environment
}

func (f *Function) Type() Type { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer

	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("fn")
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}
