package evaluator

// Environment is an ordered name to Value frame with an optional outer
// frame. Every stored value is a private copy and every lookup returns a
// fresh copy, so a binding can never alias a live value. A frame never
// writes into its outer frame; the outer link is read-only.
type Environment struct {
	names []string
	store map[string]Value
	outer *Environment
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get searches this frame and then the outer chain.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if val, ok := env.store[name]; ok {
			return val.Copy(), true
		}
	}
	return nil, false
}

// GetLocal searches only this frame.
func (e *Environment) GetLocal(name string) (Value, bool) {
	if val, ok := e.store[name]; ok {
		return val.Copy(), true
	}
	return nil, false
}

// Set binds name in this frame, overwriting in place if it exists.
func (e *Environment) Set(name string, val Value) {
	if _, ok := e.store[name]; !ok {
		e.names = append(e.names, name)
	}
	e.store[name] = val.Copy()
}

// Define binds name in the outermost frame of the chain.
func (e *Environment) Define(name string, val Value) {
	e.Root().Set(name, val)
}

// Root returns the frame with no outer link.
func (e *Environment) Root() *Environment {
	env := e
	for env.outer != nil {
		env = env.outer
	}
	return env
}

// Copy returns a frame with the same outer link and a deep copy of every
// binding.
func (e *Environment) Copy() *Environment {
	n := &Environment{
		names: make([]string, len(e.names)),
		store: make(map[string]Value, len(e.store)),
		outer: e.outer,
	}
	copy(n.names, e.names)
	for name, val := range e.store {
		n.store[name] = val.Copy()
	}
	return n
}

func (e *Environment) Outer() *Environment { return e.outer }

// SetOuter relinks this frame; used when a closure is fully applied.
func (e *Environment) SetOuter(outer *Environment) { e.outer = outer }

// Names lists the local bindings in definition order.
func (e *Environment) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

func (e *Environment) Len() int { return len(e.names) }
