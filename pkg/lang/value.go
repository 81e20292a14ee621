package lang

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Value is a value in crush. The core only cares about whether a value is
// one of the callable kinds (*SimpleCommand, *ConditionCommand and *Closure);
// all other values are passed around opaquely.
//
// Besides the callables, the following Go types are used as values:
// string, int, bool, File, *List and *Scope (as a namespace).
type Value = any

// File is a value that refers to a path on the filesystem.
type File string

// Kind returns the name of the kind of a value.
func Kind(v Value) string {
	switch v := v.(type) {
	case nil:
		return "empty"
	case string:
		return "string"
	case int:
		return "integer"
	case bool:
		return "bool"
	case File:
		return "file"
	case *List:
		return "list"
	case *Scope:
		return "scope"
	case *SimpleCommand, *ConditionCommand:
		return "command"
	case *Closure:
		return "closure"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// ToString converts a value to a string for display.
func ToString(v Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case File:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// List is a mutable list of values. It is safe for concurrent use.
type List struct {
	mu    sync.Mutex
	items []Value
}

// NewList creates a List containing the given values.
func NewList(items ...Value) *List {
	return &List{items: append([]Value(nil), items...)}
}

// Append appends values to the list.
func (l *List) Append(vs ...Value) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, vs...)
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Dump returns a copy of the elements of the list.
func (l *List) Dump() []Value {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Value(nil), l.items...)
}

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range l.Dump() {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(ToString(v))
	}
	sb.WriteString("]")
	return sb.String()
}
