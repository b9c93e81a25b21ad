package services

import "errors"

var (
	// ErrBusy is returned when a dialog cannot open or act because another
	// dialog is open or its own operation is still running.
	ErrBusy = errors.New("another operation is in progress")

	ErrNoDialog = errors.New("dialog is not open")
)

// Fallback display messages, one per operation.
const (
	MsgLoadFailed   = "Failed to load"
	MsgCreateFailed = "Failed to add user"
	MsgUpdateFailed = "Failed to update user"
	MsgDeleteFailed = "Failed to delete user"
)

// DisplayError converts an operation failure into the text shown to the
// user, using fallback when the error carries no message.
func DisplayError(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
