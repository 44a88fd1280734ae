package cli

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/carmarket/internal/client/models"
	"github.com/dmitrijs2005/carmarket/internal/common"
)

// userError attaches the message to show for err when nothing more specific
// applies.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg + ": " + e.err.Error() }
func (e *userError) Unwrap() error { return e.err }

func withMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &userError{msg: msg, err: err}
}

// userMessage converts any command error into the text shown to the user.
func userMessage(err error) string {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return "Email already registered. Please login."
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, common.ErrNotFound):
		return "Car not found."
	}

	var ue *userError
	if errors.As(err, &ue) {
		return ue.msg
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "The operation timed out. Please try again."
	case errors.Is(err, io.EOF):
		return "Input closed."
	case errors.Is(err, common.ErrStorage):
		return "Storage is unavailable. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
