package backend

import (
	"fmt"
	"sort"
	"strings"
)

// Style is a derived, immutable styling handle.
type Style interface {
	// Render wraps text with the style.
	Render(text string) string
}

// Backend provides styles and the operations that derive new ones.
type Backend interface {
	// Name identifies the backend in error messages.
	Name() string
	// Base returns the unstyled starting point of every chain.
	Base() Style
	// Basic applies a basic style such as "red" or "bold" to s.
	Basic(s Style, name string) (Style, bool)
	// Operation looks up a callable directive.
	Operation(name string) (Operation, bool)
}

// ArgKind is the kind of argument list an operation accepts.
type ArgKind int

const (
	// StringArg operations take exactly one string.
	StringArg ArgKind = iota
	// IntTupleArg operations take a fixed number of integers.
	IntTupleArg
)

// String returns the string representation of the kind
func (k ArgKind) String() string {
	switch k {
	case StringArg:
		return "string"
	case IntTupleArg:
		return "integer tuple"
	default:
		return "unknown"
	}
}

// Args carries the parsed arguments of a call directive. Exactly one of Str
// or Ints is meaningful, depending on Kind.
type Args struct {
	Kind ArgKind
	Str  string
	Ints []int
}

// StringArgs builds a single string argument list.
func StringArgs(s string) Args {
	return Args{Kind: StringArg, Str: s}
}

// IntArgs builds an integer tuple argument list.
func IntArgs(v ...int) Args {
	return Args{Kind: IntTupleArg, Ints: v}
}

// String renders the arguments the way they would be written in markup.
func (a Args) String() string {
	if a.Kind == StringArg {
		return fmt.Sprintf("%q", a.Str)
	}
	parts := make([]string, len(a.Ints))
	for i, v := range a.Ints {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}

// ApplyFunc derives a new style from s.
type ApplyFunc func(s Style, args Args) (Style, error)

// Operation describes a callable directive.
type Operation struct {
	Name  string
	Kind  ArgKind
	Arity int
	Apply ApplyFunc
}

// Call validates args against the descriptor and applies the operation.
func (op Operation) Call(s Style, args Args) (Style, error) {
	if args.Kind != op.Kind {
		return nil, fmt.Errorf("%s expects %s arguments, got %s", op.Name, op.Kind, args.Kind)
	}
	if op.Kind == IntTupleArg && op.Arity > 0 && len(args.Ints) != op.Arity {
		return nil, fmt.Errorf("%s expects %d integer arguments, got %d", op.Name, op.Arity, len(args.Ints))
	}
	if op.Apply == nil {
		return nil, fmt.Errorf("%s has no implementation", op.Name)
	}
	return op.Apply(s, args)
}

// Operations is a closed name to descriptor table that backends embed to
// implement Backend.Operation.
type Operations map[string]Operation

// Register adds an operation to the table, keyed by its name.
func (o Operations) Register(op Operation) {
	o[op.Name] = op
}

// Lookup returns the named operation.
func (o Operations) Lookup(name string) (Operation, bool) {
	op, ok := o[name]
	return op, ok
}

// Names returns the sorted operation names.
func (o Operations) Names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
