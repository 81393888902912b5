package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"employee-management-api/models"
)

// Messages returned verbatim to clients on validation failure.
const (
	MsgFieldsRequired = "Name, Email, Mobile No, and Image Upload are required."
	MsgInvalidEmail   = "Invalid email format."
	MsgInvalidMobile  = "Mobile No must be a 10-digit number."
)

// emailRegex is the address grammar enforced on the email field. Stricter in
// places than RFC 5322 (no comments, no folding) and looser in others
// (quoted local parts and bracketed IPv4 hosts are accepted).
var emailRegex = regexp.MustCompile(`(?i)^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

var mobileRegex = regexp.MustCompile(`^[0-9]{10}$`)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("emailformat", validateEmailFormat)
	Validate.RegisterValidation("mobileno", validateMobileNo)
}

func validateEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func validateMobileNo(fl validator.FieldLevel) bool {
	return mobileRegex.MatchString(fl.Field().String())
}

// ValidateEmployee checks an employee payload before it is handed to the
// store and returns the message for the first failing check, or "" when the
// payload passes. A missing required field short-circuits the format checks,
// and the combined message is the same no matter how many fields are missing.
func ValidateEmployee(payload models.EmployeePayload) string {
	err := Validate.Struct(payload)
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return MsgFieldsRequired
	}

	for _, fieldError := range validationErrors {
		if fieldError.Tag() == "required" {
			return MsgFieldsRequired
		}
	}
	for _, fieldError := range validationErrors {
		if fieldError.Tag() == "emailformat" {
			return MsgInvalidEmail
		}
	}
	for _, fieldError := range validationErrors {
		if fieldError.Tag() == "mobileno" {
			return MsgInvalidMobile
		}
	}
	return ""
}
