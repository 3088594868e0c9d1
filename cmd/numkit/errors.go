package main

import (
	"fmt"

	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// suggestionFor picks advice matching the kind of a rejected value.
func suggestionFor(err error) string {
	switch numkiterrors.KindOf(err) {
	case numkiterrors.KindEmpty:
		return "Provide a non-empty value."
	case numkiterrors.KindInvalidFormat:
		return "Use plain digits with an optional sign and decimal point. Separate a negative value from the flags with --."
	case numkiterrors.KindOverflow, numkiterrors.KindUnderflow:
		return "Use a wider precision class or a value inside its range."
	case numkiterrors.KindTooManyDecimals:
		return "Round the value or allow more decimal places for the class."
	default:
		return "Check the class and range settings, then retry."
	}
}
