// Package schema validates project payloads before they reach storage.
//
// Validation is fail-fast: fields are checked in a fixed order and only the
// first failure is reported, so the same body always yields the same error.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
)

const (
	FieldClientName = "clientName"
	FieldProjectNo  = "projectNo"
	FieldMedia      = "media"
	FieldStatus     = "status"
)

// FieldError identifies the first field that failed validation. Field is
// empty when the body itself could not be decoded.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result carries either a validated value or the first validation failure.
type Result[T any] struct {
	Value T
	Err   *FieldError
}

func (r Result[T]) OK() bool { return r.Err == nil }

type fieldRule struct {
	name     string
	required bool
	rules    string
}

var (
	insertRules = []fieldRule{
		{name: FieldClientName, required: true, rules: "notblank"},
		{name: FieldProjectNo, required: true, rules: "notblank"},
		{name: FieldMedia, required: true, rules: "notblank"},
		{name: FieldStatus, rules: "notblank"},
	}
	updateRules = []fieldRule{
		{name: FieldClientName, rules: "notblank"},
		{name: FieldProjectNo, rules: "notblank"},
		{name: FieldMedia, rules: "notblank"},
		{name: FieldStatus, rules: "notblank"},
	}
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ParseInsert validates a create body. clientName, projectNo and media are
// required; status is optional and defaults to domain.DefaultStatus.
func ParseInsert(body []byte) Result[domain.NewProject] {
	values, ferr := parse(body, insertRules)
	if ferr != nil {
		return Result[domain.NewProject]{Err: ferr}
	}

	in := domain.NewProject{
		ClientName: *values[FieldClientName],
		ProjectNo:  *values[FieldProjectNo],
		Media:      *values[FieldMedia],
		Status:     domain.DefaultStatus,
	}
	if s := values[FieldStatus]; s != nil {
		in.Status = *s
	}
	return Result[domain.NewProject]{Value: in}
}

// ParseUpdate validates a partial update body. Every field is optional and an
// empty object is valid.
func ParseUpdate(body []byte) Result[domain.ProjectPatch] {
	values, ferr := parse(body, updateRules)
	if ferr != nil {
		return Result[domain.ProjectPatch]{Err: ferr}
	}

	return Result[domain.ProjectPatch]{Value: domain.ProjectPatch{
		ClientName: values[FieldClientName],
		ProjectNo:  values[FieldProjectNo],
		Media:      values[FieldMedia],
		Status:     values[FieldStatus],
	}}
}

// ValidateProject checks a project read back from the API.
func ValidateProject(p domain.Project) *FieldError {
	if p.ID <= 0 {
		return &FieldError{Field: "id", Message: "Expected positive integer"}
	}
	checks := []struct {
		name  string
		value string
	}{
		{FieldClientName, p.ClientName},
		{FieldProjectNo, p.ProjectNo},
		{FieldMedia, p.Media},
		{FieldStatus, p.Status},
	}
	for _, c := range checks {
		if ferr := check(c.name, c.value, "notblank"); ferr != nil {
			return ferr
		}
	}
	if p.CreatedAt.IsZero() {
		return &FieldError{Field: "createdAt", Message: "Expected timestamp"}
	}
	return nil
}

func parse(body []byte, rules []fieldRule) (map[string]*string, *FieldError) {
	raw := map[string]json.RawMessage{}
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
		if trimmed[0] != '{' {
			return nil, &FieldError{Message: "Expected object"}
		}
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, &FieldError{Message: "Invalid JSON body"}
		}
	}

	out := make(map[string]*string, len(rules))
	for _, rule := range rules {
		msg, ok := raw[rule.name]
		if !ok {
			if rule.required {
				return nil, &FieldError{Field: rule.name, Message: "Required"}
			}
			continue
		}

		// A supplied null is a wrong type, not an omission.
		var s string
		if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			return nil, &FieldError{Field: rule.name, Message: "Expected string"}
		}
		if err := json.Unmarshal(msg, &s); err != nil {
			return nil, &FieldError{Field: rule.name, Message: "Expected string"}
		}
		if ferr := check(rule.name, s, rule.rules); ferr != nil {
			return nil, ferr
		}

		s = strings.TrimSpace(s)
		out[rule.name] = &s
	}
	return out, nil
}

func check(field, value, rules string) *FieldError {
	err := validate.Var(value, rules)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{Field: field, Message: message(verrs[0])}
	}
	return &FieldError{Field: field, Message: err.Error()}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "Must not be empty"
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}
