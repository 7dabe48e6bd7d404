// Package script constructs the JavaScript expressions evaluated against the sandboxed player object.
package script

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Expression is an immutable unit of executable script text.
type Expression struct {
	raw string
}

// Raw returns the executable script text.
func (e Expression) Raw() string {
	return e.raw
}

func (e Expression) String() string {
	return e.raw
}

// Call builds a function-call expression on the given target object.
// Each argument is serialized independently, in order, to a JavaScript
// literal or JSON fragment. The first argument that fails to serialize
// aborts the whole build; no evaluation is ever attempted for a partial
// expression.
func Call(object, function string, args ...any) (Expression, error) {
	literals := make([]string, 0, len(args))
	for i, arg := range args {
		lit, err := literal(arg)
		if err != nil {
			return Expression{}, fmt.Errorf("encode argument %d of %s: %w", i, function, err)
		}
		literals = append(literals, lit)
	}

	return Expression{
		raw: fmt.Sprintf("%s.%s(%s);", object, function, strings.Join(literals, ", ")),
	}, nil
}

// Property builds an expression that evaluates a property path on the
// target object, without invoking anything.
func Property(object, path string) Expression {
	return Expression{raw: fmt.Sprintf("%s.%s;", object, path)}
}

// Immediate wraps arbitrary freeform statements in an immediately-invoked
// function expression, so statement sequences can still yield a value.
func Immediate(body string) Expression {
	return Expression{raw: fmt.Sprintf("(function() { %s })();", body)}
}

// literal serializes a single argument to its JavaScript literal form.
// JSON is a subset of JavaScript literals, so any encodable value works:
// nil becomes null, strings are quoted and escaped, structs and maps
// become object fragments.
func literal(arg any) (string, error) {
	if arg == nil {
		return "null", nil
	}
	encoded, err := json.Marshal(arg)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
