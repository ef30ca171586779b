package oslg

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/valyala/fasttemplate"
)

// Message templates for the guard helpers.
var (
	invalidTmpl  = fasttemplate.New("Invalid '{{id}}'{{arg}} ({{mth}})", "{{", "}}")
	mismatchTmpl = fasttemplate.New("'{{id}}' {{type}}? expecting {{kind}} ({{mth}})", "{{", "}}")
	hashkeyTmpl  = fasttemplate.New("Missing '{{key}}' key in {{id}} ({{mth}})", "{{", "}}")
	emptyTmpl    = fasttemplate.New("Empty '{{id}}' ({{mth}})", "{{", "}}")
	zeroTmpl     = fasttemplate.New("Zero '{{id}}' ({{mth}})", "{{", "}}")
	negativeTmpl = fasttemplate.New("Negative '{{id}}' ({{mth}})", "{{", "}}")
)

// guardArgs trims the object and method identifiers and reports whether
// they, and level, are usable by a guard.
func guardArgs(id, mth string, level Level) (string, string, bool) {
	id, mth = Trim(id), Trim(mth)
	if id == "" || mth == "" || !level.Valid() {
		return "", "", false
	}
	return id, mth, true
}

func (l *Logger) emit(level Level, t *fasttemplate.Template, vars map[string]any) bool {
	_, ok := l.record(level, t.ExecuteString(vars), MaxLength)
	return ok
}

// Invalid logs "Invalid '<id>' arg #<argPos> (<mth>)". The argument
// ordinal is omitted unless argPos > 0. Returns whether an entry was recorded.
func (l *Logger) Invalid(id, mth string, argPos int, level Level) bool {
	id, mth, ok := guardArgs(id, mth, level)
	if !ok {
		return false
	}
	arg := ""
	if argPos > 0 {
		arg = " arg #" + strconv.Itoa(argPos)
	}
	return l.emit(level, invalidTmpl, map[string]any{"id": id, "arg": arg, "mth": mth})
}

// Mismatch logs "'<id>' <type of obj>? expecting <kind> (<mth>)" unless
// obj already matches kind. A nil or unnamed kind is ignored.
// Returns whether an entry was recorded.
func (l *Logger) Mismatch(id string, obj any, kind Kind, mth string, level Level) bool {
	id, mth, ok := guardArgs(id, mth, level)
	if !ok {
		return false
	}
	name := kindName(kind)
	if name == "" || matches(kind, obj) {
		return false
	}
	return l.emit(level, mismatchTmpl, map[string]any{
		"id":   id,
		"type": fmt.Sprintf("%T", obj),
		"kind": name,
		"mth":  mth,
	})
}

// matches reports whether obj satisfies kind; a panicking predicate counts as a match.
func matches(kind Kind, obj any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = true
		}
	}()
	return kind.Match(obj)
}

// Hashkey logs "Missing '<key>' key in <id> (<mth>)" unless dct holds key.
// dct must be a non-nil map and key comparable, otherwise nothing is logged.
// Returns whether an entry was recorded.
func (l *Logger) Hashkey(id string, dct any, key any, mth string, level Level) bool {
	id, mth, ok := guardArgs(id, mth, level)
	if !ok {
		return false
	}
	if present, valid := hasKey(dct, key); !valid || present {
		return false
	}
	return l.emit(level, hashkeyTmpl, map[string]any{"key": Trim(key), "id": id, "mth": mth})
}

// hasKey looks key up in the map m. valid is false when m is not a
// non-nil map or key cannot be used as a map key.
func hasKey(m, key any) (present, valid bool) {
	mv := reflect.ValueOf(m)
	if mv.Kind() != reflect.Map || mv.IsNil() {
		return false, false
	}
	keyType := mv.Type().Key()
	kv := reflect.ValueOf(key)
	if !kv.IsValid() {
		switch keyType.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Chan:
			kv = reflect.Zero(keyType)
		default:
			return false, true
		}
	}
	if !kv.Comparable() {
		return false, false
	}
	if !kv.Type().AssignableTo(keyType) {
		// a key of another type can never be present
		return false, true
	}
	return mv.MapIndex(kv).IsValid(), true
}

// Empty logs "Empty '<id>' (<mth>)". Returns whether an entry was recorded.
func (l *Logger) Empty(id, mth string, level Level) bool {
	id, mth, ok := guardArgs(id, mth, level)
	if !ok {
		return false
	}
	return l.emit(level, emptyTmpl, map[string]any{"id": id, "mth": mth})
}

// Zero logs "Zero '<id>' (<mth>)". Returns whether an entry was recorded.
func (l *Logger) Zero(id, mth string, level Level) bool {
	id, mth, ok := guardArgs(id, mth, level)
	if !ok {
		return false
	}
	return l.emit(level, zeroTmpl, map[string]any{"id": id, "mth": mth})
}

// Negative logs "Negative '<id>' (<mth>)". Returns whether an entry was recorded.
func (l *Logger) Negative(id, mth string, level Level) bool {
	id, mth, ok := guardArgs(id, mth, level)
	if !ok {
		return false
	}
	return l.emit(level, negativeTmpl, map[string]any{"id": id, "mth": mth})
}

// --- Package-level guards operating on the default logger ---
//
// Each returns res untouched so validation code can stay on one line:
//
//	if radius < 0 {
//	    return oslg.Negative("radius", "area", oslg.ErrorLevel, false)
//	}

// Invalid logs an invalid object entry on the default logger and returns res.
func Invalid[T any](id, mth string, argPos int, level Level, res T) T {
	std.Invalid(id, mth, argPos, level)
	return res
}

// Mismatch logs a type mismatch entry on the default logger and returns res.
func Mismatch[T any](id string, obj any, kind Kind, mth string, level Level, res T) T {
	std.Mismatch(id, obj, kind, mth, level)
	return res
}

// Hashkey logs a missing key entry on the default logger and returns res.
func Hashkey[K comparable, V, T any](id string, dct map[K]V, key K, mth string, level Level, res T) T {
	std.Hashkey(id, dct, key, mth, level)
	return res
}

// Empty logs an empty object entry on the default logger and returns res.
func Empty[T any](id, mth string, level Level, res T) T {
	std.Empty(id, mth, level)
	return res
}

// Zero logs a zero value entry on the default logger and returns res.
func Zero[T any](id, mth string, level Level, res T) T {
	std.Zero(id, mth, level)
	return res
}

// Negative logs a negative value entry on the default logger and returns res.
func Negative[T any](id, mth string, level Level, res T) T {
	std.Negative(id, mth, level)
	return res
}
