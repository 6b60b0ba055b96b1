// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validator caches struct metadata, so share one instance
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks required fields
func (s ScoreCreate) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		detail := FieldError{
			Loc:  []string{"body", fe.Field()},
			Msg:  "Field required",
			Type: "missing",
		}
		if fe.Tag() != "required" {
			detail.Msg = "Invalid value"
			detail.Type = fe.Tag()
		}
		verr.Detail = append(verr.Detail, detail)
	}
	return verr
}

// BodyDecodeError turns a JSON decoding failure into a ValidationError
func BodyDecodeError(err error) *ValidationError {
	// Field-level problems found while decoding are already in shape
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		detail := FieldError{
			Loc:  append([]string{"body"}, strings.Split(typeErr.Field, ".")...),
			Msg:  "Input should be a valid " + typeErr.Type.Kind().String(),
			Type: typeErr.Type.Kind().String() + "_type",
		}
		switch typeErr.Type.Kind() {
		case reflect.Float32, reflect.Float64:
			detail.Msg = "Input should be a valid number"
			detail.Type = "float_type"
		case reflect.String:
			detail.Msg = "Input should be a valid string"
			detail.Type = "string_type"
		}
		return &ValidationError{Detail: []FieldError{detail}}
	}

	if errors.As(err, &typeErr) {
		return &ValidationError{Detail: []FieldError{{
			Loc:  []string{"body"},
			Msg:  "Input should be a valid dictionary or object",
			Type: "model_attributes_type",
		}}}
	}

	return &ValidationError{Detail: []FieldError{{
		Loc:  []string{"body"},
		Msg:  "JSON decode error",
		Type: "json_invalid",
	}}}
}

// QueryIntError reports a query parameter that is not an integer
func QueryIntError(param string) *ValidationError {
	return &ValidationError{Detail: []FieldError{{
		Loc:  []string{"query", param},
		Msg:  "Input should be a valid integer, unable to parse string as an integer",
		Type: "int_parsing",
	}}}
}
