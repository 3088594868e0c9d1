package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

// convertValidationError normalizes validator errors into validation errors
// keyed by the document path of the offending value.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := documentPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return numkiterrors.NewValidationError(field, msg, err)
	}

	return numkiterrors.NewValidationError("config", err.Error(), err)
}

// documentPath turns "File.fields[0].range.max" into "fields[0].range.max".
func documentPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldPath(index int, field string) string {
	return fmt.Sprintf("fields[%d].%s", index, field)
}
