package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/coursesvc/internal/pkg/apperrors"
)

// Validation rule settings
var (
	// NameMinLength is the default minimum length of a course name
	NameMinLength = 3

	// nameField is the only key a course payload may carry
	nameField = "name"
)

// Rule names reported in an Issue
const (
	RuleRequired = "required"
	RuleEmpty    = "empty"
	RuleMin      = "min"
	RuleString   = "string"
	RuleUnknown  = "unknown"
	RuleObject   = "object"
)

// Issue is a single field level validation failure
type Issue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result is the typed outcome of validating a payload
type Result struct {
	Issues []Issue `json:"issues,omitempty"`
}

// Valid reports whether the payload passed every rule
func (r Result) Valid() bool {
	return len(r.Issues) == 0
}

// Err returns nil for a valid result, otherwise a validation error carrying the first
// issue's message.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return apperrors.NewValidationError(r.Issues[0].Message)
}

func (r *Result) add(field, rule, message string) {
	r.Issues = append(r.Issues, Issue{Field: field, Rule: rule, Message: message})
}

// Document is a decoded JSON request body awaiting validation
type Document struct {
	fields   map[string]json.RawMessage
	isObject bool
}

// ParseDocument decodes a request body. An empty body is treated as an empty object and
// bodies that are not valid JSON fail with apperrors.ErrBadRequest.
func ParseDocument(body []byte) (Document, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Document{fields: map[string]json.RawMessage{}, isObject: true}, nil
	}

	if !json.Valid(body) {
		var probe interface{}
		err := json.Unmarshal(body, &probe)
		return Document{}, apperrors.NewBadRequestError(fmt.Sprintf("invalid JSON body: %v", err))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		// null, arrays and scalars are well-formed but not objects
		return Document{}, nil
	}
	return Document{fields: fields, isObject: true}, nil
}

// NewDocument builds a Document from already decoded values, mostly useful in tests
func NewDocument(fields map[string]interface{}) Document {
	doc := Document{fields: make(map[string]json.RawMessage, len(fields)), isObject: true}
	for key, value := range fields {
		raw, _ := json.Marshal(value)
		doc.fields[key] = raw
	}
	return doc
}

// CourseInput is a validated course payload
type CourseInput struct {
	Name string
}

// CourseSchema holds the rules a course payload must satisfy
type CourseSchema struct {
	minLength int
	nameTag   string
	validate  *validator.Validate
}

// NewCourseSchema creates a schema requiring a string name of at least minLength characters.
// A non-positive minLength falls back to NameMinLength.
func NewCourseSchema(minLength int) *CourseSchema {
	if minLength <= 0 {
		minLength = NameMinLength
	}
	return &CourseSchema{
		minLength: minLength,
		nameTag:   fmt.Sprintf("required,min=%d", minLength),
		validate:  validator.New(),
	}
}

// MinLength returns the configured minimum name length
func (s *CourseSchema) MinLength() int {
	return s.minLength
}

// Validate checks doc against the schema. Issues are ordered with the name rule first and
// unknown keys after it, so the first issue matches what a client expects to fix first.
func (s *CourseSchema) Validate(doc Document) (CourseInput, Result) {
	var result Result

	if !doc.isObject {
		result.add("value", RuleObject, `"value" must be an object`)
		return CourseInput{}, result
	}

	var input CourseInput
	raw, present := doc.fields[nameField]
	switch {
	case !present:
		result.add(nameField, RuleRequired, quote(nameField)+" is required")
	case json.Unmarshal(raw, &input.Name) != nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")):
		result.add(nameField, RuleString, quote(nameField)+" must be a string")
	default:
		if err := s.validate.Var(input.Name, s.nameTag); err != nil {
			var fieldErrors validator.ValidationErrors
			if errors.As(err, &fieldErrors) {
				for _, fieldError := range fieldErrors {
					rule, message := formatValidationError(nameField, fieldError)
					result.add(nameField, rule, message)
				}
			} else {
				result.add(nameField, RuleString, err.Error())
			}
		}
	}

	unknown := make([]string, 0)
	for key := range doc.fields {
		if key != nameField {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		result.add(key, RuleUnknown, quote(key)+" is not allowed")
	}

	if !result.Valid() {
		return CourseInput{}, result
	}
	return input, result
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(field string, e validator.FieldError) (string, string) {
	switch e.Tag() {
	case "required":
		return RuleEmpty, quote(field) + " is not allowed to be empty"
	case "min":
		return RuleMin, quote(field) + " length must be at least " + e.Param() + " characters long"
	default:
		return e.Tag(), quote(field) + " validation failed: " + e.Tag()
	}
}

func quote(field string) string {
	return `"` + field + `"`
}
