// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and error types for the API.

# Request Types

  - ScoreCreate: name, time (both required)

ScoreCreate.Validate runs go-playground/validator over the struct tags and
returns a *ValidationError listing every missing field.

# Response Types

  - Score: id, name, time
  - MessageResponse: message
  - StatusResponse: status
  - ErrorResponse: error, message

# Validation Errors

Validation failures are reported with status 422 as

	{"detail": [{"loc": ["body", "time"], "msg": "Field required", "type": "missing"}]}

BodyDecodeError maps JSON decoding failures (syntax errors, wrong types)
onto the same shape, and QueryIntError covers non-integer query
parameters.
*/
package models
