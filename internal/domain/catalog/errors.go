package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies one failure class of the catalog rule engine. The set is
// closed; callers switch on it to map failures to transport responses.
type Code string

const (
	CodeAdminNotFound             Code = "admin_not_found"
	CodeAdminHasNoStore           Code = "admin_has_no_store"
	CodeUnknownShape              Code = "unknown_shape"
	CodeFieldNotAllowed           Code = "field_not_allowed"
	CodeForbiddenFieldsForShape   Code = "forbidden_fields_for_shape"
	CodeInvalidPackaging          Code = "invalid_packaging"
	CodeMissingMandatoryPackaging Code = "missing_mandatory_packaging"
	CodeParentProductNotFound     Code = "parent_product_not_found"
	CodeFlowerNotFound            Code = "flower_not_found"
	CodeInvalidParentShape        Code = "invalid_parent_shape"
	CodeInvalidQuantity           Code = "invalid_quantity"
	CodePersistence               Code = "persistence_error"
)

// RuleError is the explicit result value for every rule-engine failure.
// Fields names each offending attribute when the rule concerns attributes,
// so a single error can enumerate everything wrong with a payload.
type RuleError struct {
	Code    Code
	Fields  []string
	Message string
	Err     error
}

func (e *RuleError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = string(e.Code)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", msg, strings.Join(e.Fields, ", "))
	}
	return msg
}

func (e *RuleError) Unwrap() error { return e.Err }

func NewRuleError(code Code, msg string, fields ...string) *RuleError {
	return &RuleError{Code: code, Message: msg, Fields: fields}
}

// WrapPersistence tags an opaque storage failure without rewriting it.
func WrapPersistence(err error) *RuleError {
	return &RuleError{Code: CodePersistence, Message: "persistence failure", Err: err}
}

// IsCode reports whether err is a RuleError carrying the given code.
func IsCode(err error, code Code) bool {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}

// AsRuleError unwraps err to a RuleError if one is in the chain.
func AsRuleError(err error) *RuleError {
	var re *RuleError
	if errors.As(err, &re) {
		return re
	}
	return nil
}
