// Package convert turns raw evaluation results into typed values through a declarative, composable pipeline.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/mo"
	"github.com/stormychel/YouTubePlayerKit/jsvalue"
)

// Converter is a pure, total mapping from a raw value to a typed result.
// Failures only ever travel through the error channel.
type Converter[T any] func(jsvalue.Value) (T, error)

// Error describes a raw value that did not match the declared expected shape.
type Error struct {
	Expected string
	Got      jsvalue.Kind
	Field    string
	Cause    error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("cannot convert field %q: expected %s, got %s", e.Field, e.Expected, e.Got)
	}
	if e.Cause != nil {
		return fmt.Sprintf("cannot convert response: expected %s, got %s: %v", e.Expected, e.Got, e.Cause)
	}
	return fmt.Sprintf("cannot convert response: expected %s, got %s", e.Expected, e.Got)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Void discards the raw value. It only distinguishes success from failure,
// which the evaluation layer reports before conversion ever runs.
func Void() Converter[struct{}] {
	return func(jsvalue.Value) (struct{}, error) {
		return struct{}{}, nil
	}
}

// Bool asserts a boolean raw value.
func Bool() Converter[bool] {
	return func(v jsvalue.Value) (bool, error) {
		b, ok := v.AsBool()
		if !ok {
			return false, &Error{Expected: "bool", Got: v.Kind()}
		}
		return b, nil
	}
}

// Float asserts a numeric raw value.
func Float() Converter[float64] {
	return func(v jsvalue.Value) (float64, error) {
		n, ok := v.AsNumber()
		if !ok {
			return 0, &Error{Expected: "number", Got: v.Kind()}
		}
		return n, nil
	}
}

// Int asserts a numeric raw value and truncates it to an integer.
func Int() Converter[int] {
	return func(v jsvalue.Value) (int, error) {
		n, ok := v.AsNumber()
		if !ok {
			return 0, &Error{Expected: "number", Got: v.Kind()}
		}
		return int(n), nil
	}
}

// String asserts a string raw value.
func String() Converter[string] {
	return func(v jsvalue.Value) (string, error) {
		s, ok := v.AsString()
		if !ok {
			return "", &Error{Expected: "string", Got: v.Kind()}
		}
		return s, nil
	}
}

// StringSlice asserts an array of strings, preserving order.
func StringSlice() Converter[[]string] {
	return func(v jsvalue.Value) ([]string, error) {
		arr, ok := v.AsArray()
		if !ok {
			return nil, &Error{Expected: "array of strings", Got: v.Kind()}
		}
		out := make([]string, 0, len(arr))
		for i, item := range arr {
			s, ok := item.AsString()
			if !ok {
				return nil, &Error{Expected: "string", Got: item.Kind(), Field: fmt.Sprintf("[%d]", i)}
			}
			out = append(out, s)
		}
		return out, nil
	}
}

// FloatSlice asserts an array of numbers, preserving order.
func FloatSlice() Converter[[]float64] {
	return func(v jsvalue.Value) ([]float64, error) {
		arr, ok := v.AsArray()
		if !ok {
			return nil, &Error{Expected: "array of numbers", Got: v.Kind()}
		}
		out := make([]float64, 0, len(arr))
		for i, item := range arr {
			n, ok := item.AsNumber()
			if !ok {
				return nil, &Error{Expected: "number", Got: item.Kind(), Field: fmt.Sprintf("[%d]", i)}
			}
			out = append(out, n)
		}
		return out, nil
	}
}

// Map applies a transform after a successful conversion. A prior failure
// short-circuits without invoking the transform.
func Map[T, U any](c Converter[T], f func(T) U) Converter[U] {
	return func(v jsvalue.Value) (U, error) {
		t, err := c(v)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(t), nil
	}
}

// Optional accepts null as an absent value and otherwise applies the
// wrapped converter.
func Optional[T any](c Converter[T]) Converter[mo.Option[T]] {
	return func(v jsvalue.Value) (mo.Option[T], error) {
		if v.IsNull() {
			return mo.None[T](), nil
		}
		t, err := c(v)
		if err != nil {
			return mo.None[T](), err
		}
		return mo.Some(t), nil
	}
}

// Decode performs a structured decode of an object raw value into T.
// The error names the first field that could not be matched or coerced.
func Decode[T any]() Converter[T] {
	return func(v jsvalue.Value) (T, error) {
		var out T
		if _, ok := v.AsObject(); !ok {
			return out, &Error{Expected: "object", Got: v.Kind()}
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return out, &Error{Expected: "object", Got: v.Kind(), Cause: err}
		}
		if err := json.Unmarshal(encoded, &out); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				return out, &Error{Expected: typeErr.Type.String(), Got: v.Kind(), Field: typeErr.Field, Cause: err}
			}
			return out, &Error{Expected: "object", Got: v.Kind(), Cause: err}
		}
		return out, nil
	}
}
