package repository

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrDuplicateEmail  = errors.New("duplicate email")
	ErrDuplicateMobile = errors.New("duplicate mobile number")
	ErrDuplicateField  = errors.New("duplicate field value")
)

// classifyWriteError maps a failed Mongo write onto the repository's sentinel
// errors so handlers never inspect driver types. Duplicate-key errors name
// the violated index in their message (email_1, mobileNo_1), which is how the
// offending field is recovered.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}

	message := err.Error()
	switch {
	case strings.Contains(message, "email_1"):
		return ErrDuplicateEmail
	case strings.Contains(message, "mobileNo_1"):
		return ErrDuplicateMobile
	}
	return ErrDuplicateField
}
