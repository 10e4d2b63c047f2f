package dsl

import (
	"fmt"

	"github.com/mathpict/mathpict/internal/i18n"
)

// ParseError reports malformed DSL input. It always carries the
// offending substring and an i18n message key; the parser never returns
// partially parsed output alongside one.
type ParseError struct {
	// Input is the substring that failed to parse.
	Input string
	// Key is the i18n message key describing the failure.
	Key string
	// Args are the named arguments for the message key.
	Args map[string]any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Key, e.Input)
}

// Translate renders the error through the caller's localization seam.
func (e *ParseError) Translate(t i18n.Translator) string {
	args := map[string]any{"input": e.Input}
	for k, v := range e.Args {
		args[k] = v
	}
	return t(e.Key, args)
}

func parseErrf(input, key string) *ParseError {
	return &ParseError{Input: input, Key: key}
}

// Local aliases keep call sites short.
const (
	keyUnbalanced       = i18n.KeyUnbalanced
	keyMissingOperation = i18n.KeyMissingOperation
	keyEmptyOperand     = i18n.KeyEmptyOperand
	keyBadProperty      = i18n.KeyBadProperty
	keyParseFailed      = i18n.KeyParseFailed
)
