package oslg

import "reflect"

// Kind describes the type a value is expected to have. It is what
// Mismatch checks an object against.
type Kind interface {
	// Name is the type name shown in diagnostics (e.g. "float64").
	Name() string
	// Match reports whether v already satisfies the kind.
	Match(v any) bool
}

type typeKind[T any] struct{}

// TypeOf returns the Kind satisfied by values of type T.
// For interface types, any value implementing T matches.
func TypeOf[T any]() Kind {
	return typeKind[T]{}
}

func (typeKind[T]) Name() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func (typeKind[T]) Match(v any) bool {
	_, ok := v.(T)
	return ok
}

type funcKind struct {
	name  string
	match func(any) bool
}

// KindFunc returns a Kind named name and satisfied by any value for which
// match returns true. It returns nil when match is nil.
func KindFunc(name string, match func(any) bool) Kind {
	if match == nil {
		return nil
	}
	return funcKind{name: name, match: match}
}

func (k funcKind) Name() string { return k.name }

func (k funcKind) Match(v any) bool { return k.match(v) }

// kindName returns the trimmed name of k, or "" when k is unusable.
func kindName(k Kind) (name string) {
	if k == nil {
		return ""
	}
	defer func() {
		if recover() != nil {
			name = ""
		}
	}()
	return Trim(k.Name())
}
