package apperror

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FromValidation turns ozzo-validation output into a Validation AppError.
// Nested errors (slices of structs) are flattened as "field.index.sub".
// Non-validation errors are returned as Internal.
func FromValidation(err error) *AppError {
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return Internal(err)
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		var single validation.Error
		if errors.As(err, &single) {
			return Validation("", FieldError{Message: single.Error()})
		}
		return Validation("", FieldError{Message: err.Error()})
	}

	fields := flatten("", verrs)
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return Validation("", fields...)
}

func flatten(prefix string, verrs validation.Errors) []FieldError {
	var out []FieldError
	for field, fe := range verrs {
		name := field
		if prefix != "" {
			name = prefix + "." + field
		}
		var nested validation.Errors
		if errors.As(fe, &nested) {
			out = append(out, flatten(name, nested)...)
			continue
		}
		out = append(out, FieldError{Field: name, Message: fe.Error()})
	}
	return out
}
