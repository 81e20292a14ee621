package lang

import (
	"strings"
	"sync"
)

// Scope is a lexical environment. Each Scope has an optional lexical parent,
// which is consulted when a name is not bound locally, and an optional caller,
// which is used to propagate the stop flag.
//
// A Scope is shared by pointer and is safe for concurrent use. Declarations
// always happen in the leaf; child scopes never affect their ancestors.
type Scope struct {
	mu       sync.Mutex
	parent   *Scope
	caller   *Scope
	isLoop   bool
	stopped  bool
	readonly bool
	name     string
	bindings map[string]Value
	uses     []*Scope
}

// NewScope creates a new root scope.
func NewScope() *Scope {
	return &Scope{bindings: make(map[string]Value)}
}

// CreateChild creates a new scope whose lexical parent is the receiver. The
// caller is the scope of the code that caused the child to be created; it may
// be nil. If isLoop is true, the child is a loop scope, where Break stops
// propagating.
//
// The receiver is not modified.
func (sc *Scope) CreateChild(caller *Scope, isLoop bool) *Scope {
	return &Scope{
		parent:   sc,
		caller:   caller,
		isLoop:   isLoop,
		bindings: make(map[string]Value),
	}
}

// CreateNamespace creates a child scope and declares it under name in the
// receiver.
func (sc *Scope) CreateNamespace(name string) (*Scope, error) {
	ns := sc.CreateChild(nil, false)
	ns.name = name
	if err := sc.Declare(name, ns); err != nil {
		return nil, err
	}
	return ns, nil
}

// Use makes the bindings of ns visible in the receiver, after the receiver's
// own bindings and before its parent's.
func (sc *Scope) Use(ns *Scope) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.uses = append(sc.uses, ns)
}

// Declare binds name to v in the receiver. It fails with ErrReadonlyScope if
// the scope has been made readonly.
func (sc *Scope) Declare(name string, v Value) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.readonly {
		return ErrReadonlyScope
	}
	sc.bindings[name] = v
	return nil
}

// Lookup looks up name in the receiver, the namespaces it uses, and then its
// lexical ancestors.
func (sc *Scope) Lookup(name string) (Value, bool) {
	for s := sc; s != nil; s = s.parent {
		if v, ok := s.lookupHere(name); ok {
			return v, true
		}
	}
	return nil, false
}

func (sc *Scope) lookupHere(name string) (Value, bool) {
	sc.mu.Lock()
	v, ok := sc.bindings[name]
	uses := sc.uses
	sc.mu.Unlock()
	if ok {
		return v, true
	}
	for _, ns := range uses {
		if v, ok := ns.lookupLocal(name); ok {
			return v, true
		}
	}
	return nil, false
}

func (sc *Scope) lookupLocal(name string) (Value, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	v, ok := sc.bindings[name]
	return v, ok
}

// LookupPath resolves a name path. The first element is looked up with
// Lookup; each following element is looked up in the namespace the previous
// element resolved to.
func (sc *Scope) LookupPath(path []string) (Value, bool) {
	if len(path) == 0 {
		return nil, false
	}
	v, ok := sc.Lookup(path[0])
	for _, name := range path[1:] {
		if !ok {
			return nil, false
		}
		ns, isNs := v.(*Scope)
		if !isNs {
			return nil, false
		}
		v, ok = ns.lookupLocal(name)
	}
	return v, ok
}

// Readonly locks the scope against further declarations. Lookups are not
// affected.
func (sc *Scope) Readonly() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.readonly = true
}

// Stop sets the stop flag of the receiver.
func (sc *Scope) Stop() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.stopped = true
}

// Break sets the stop flag of the receiver and of each scope in its caller
// chain, up to and including the nearest loop scope. It reports whether a
// loop scope was found.
func (sc *Scope) Break() bool {
	for s := sc; s != nil; s = s.caller {
		s.Stop()
		if s.isLoop {
			return true
		}
	}
	return false
}

// IsStopped reports whether the stop flag of the receiver or of any scope in
// its caller chain is set.
func (sc *Scope) IsStopped() bool {
	for s := sc; s != nil; s = s.caller {
		s.mu.Lock()
		stopped := s.stopped
		s.mu.Unlock()
		if stopped {
			return true
		}
	}
	return false
}

// Names returns the names bound directly in the receiver.
func (sc *Scope) Names() []string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	names := make([]string, 0, len(sc.bindings))
	for name := range sc.bindings {
		names = append(names, name)
	}
	return names
}

func (sc *Scope) String() string {
	if sc.name != "" {
		return "<scope " + sc.name + ">"
	}
	return "<scope>"
}

// FormatName formats a name path for display.
func FormatName(path []string) string {
	return strings.Join(path, ":")
}
