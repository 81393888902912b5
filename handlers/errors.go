package handlers

import (
	"errors"

	"employee-management-api/repository"
)

// storeErrorMessage turns a failed write into the client-facing message.
// Duplicate-key violations name the offending field; everything else gets
// the generic message, with the original error left to the caller to log.
func storeErrorMessage(err error) string {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return "Duplicate email entered."
	case errors.Is(err, repository.ErrDuplicateMobile):
		return "Duplicate mobile number entered."
	case errors.Is(err, repository.ErrDuplicateField):
		return "Duplicate field value entered."
	}
	return "Failed to process request."
}
