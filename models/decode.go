// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// UnmarshalJSON coerces numeric strings for time ("12.5" → 12.5) and
// reports fields that are present but null or of the wrong type. Absent
// fields stay nil for Validate to flag.
func (s *ScoreCreate) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name json.RawMessage `json:"name"`
		Time json.RawMessage `json:"time"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	verr := &ValidationError{}
	*s = ScoreCreate{}

	if raw.Name != nil {
		var name string
		if bytes.Equal(raw.Name, jsonNull) || json.Unmarshal(raw.Name, &name) != nil {
			verr.Detail = append(verr.Detail, FieldError{
				Loc:  []string{"body", "name"},
				Msg:  "Input should be a valid string",
				Type: "string_type",
			})
		} else {
			s.Name = &name
		}
	}

	if raw.Time != nil {
		seconds, detail, ok := parseSeconds(raw.Time)
		if ok {
			s.Time = &seconds
		} else {
			verr.Detail = append(verr.Detail, detail)
		}
	}

	if len(verr.Detail) > 0 {
		return verr
	}
	return nil
}

// parseSeconds accepts a JSON number or a string holding one
func parseSeconds(raw json.RawMessage) (float64, FieldError, bool) {
	typeErr := FieldError{
		Loc:  []string{"body", "time"},
		Msg:  "Input should be a valid number",
		Type: "float_type",
	}

	var seconds float64
	switch {
	case bytes.Equal(raw, jsonNull):
		return 0, typeErr, false
	case len(raw) > 0 && raw[0] == '"':
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, typeErr, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			typeErr.Msg = "Input should be a valid number, unable to parse string as a number"
			typeErr.Type = "float_parsing"
			return 0, typeErr, false
		}
		seconds = v
	default:
		if err := json.Unmarshal(raw, &seconds); err != nil {
			return 0, typeErr, false
		}
	}

	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		typeErr.Msg = "Input should be a finite number"
		typeErr.Type = "finite_number"
		return 0, typeErr, false
	}
	return seconds, FieldError{}, true
}
