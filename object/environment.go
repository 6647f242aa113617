package object

// Environment is a chain of name-to-value frames implementing lexical
// scope. LookUp walks from the innermost frame outward; Bind always
// writes into the current frame, never an outer one.
//
// Environments are shared by reference: a Function captures a pointer
// to the Environment active at its literal's evaluation, and every call
// site builds a fresh child frame rooted at that captured pointer (not
// at the caller's frame). Go's garbage collector owns the resulting
// object graph, including the reference cycle a recursive closure forms
// with the environment that binds its own name — there is no arena or
// manual cycle-breaking to manage.
type Environment struct {
	Variables map[string]Object
	Parent    *Environment
}

// NewEnvironment creates a fresh top-level environment with no parent
// scope. Used once per top-level evaluation (e.g. one REPL session).
func NewEnvironment() *Environment {
	return &Environment{Variables: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a new frame whose Parent is parent.
// Function calls use this to bind parameters without mutating the
// caller's or the closure's own frame.
func NewEnclosedEnvironment(parent *Environment) *Environment {
	env := NewEnvironment()
	env.Parent = parent
	return env
}

// LookUp looks up name in this frame, then in each parent frame in
// turn. The bool result reports whether the name was found anywhere in
// the chain.
func (e *Environment) LookUp(name string) (Object, bool) {
	obj, ok := e.Variables[name]
	if !ok && e.Parent != nil {
		return e.Parent.LookUp(name)
	}
	return obj, ok
}

// Bind binds name to val in the current frame only and returns val, so
// callers can write `return env.Bind(name, val)` from a let-statement
// evaluation.
func (e *Environment) Bind(name string, val Object) Object {
	e.Variables[name] = val
	return val
}
