// Package util provides a collection of domain-agnostic utility functions.
package util

import (
	"fmt"
	"strings"
)

// Quantify returns a pluralized string representation of a count and its associated labels.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize transforms the first rune of a string to its uppercase equivalent.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Ignore runs the given closure and explicitly discards its error.
func Ignore(f func() error) {
	_ = f()
}

// PrintErasable prints a transient message and returns a closure that erases it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Printf("\r%s", msg)
	return func() {
		fmt.Printf("\r%s\r", strings.Repeat(" ", len(msg)))
	}
}
