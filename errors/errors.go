package errors

import (
	"errors"
	"fmt"
)

// Is forwards to the standard errors.Is so callers only import this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrActionPanic    = fmt.Errorf("action panic")
	ErrScriptPanic    = fmt.Errorf("script panic")
	ErrInvalidPayload = fmt.Errorf("invalid payload")
	ErrEmptyWords     = fmt.Errorf("no words have been found")
)

// ErrParse marks a line that carries no chat payload. It is never surfaced.
var ErrParse = fmt.Errorf("no chat payload in line")

var (
	ErrDuplicateName   = fmt.Errorf("name already registered")
	ErrNotFound        = fmt.Errorf("name not found")
	ErrInvalidUsername = fmt.Errorf("invalid username")
	ErrInvalidCommand  = fmt.Errorf("invalid command")
	ErrUnknownAction   = fmt.Errorf("unknown action")
)

var (
	ErrNotConnected       = fmt.Errorf("chat transport not connected")
	ErrAlreadyConnected   = fmt.Errorf("chat transport already connected")
	ErrMissingCredentials = fmt.Errorf("twitch token, user and channel are required")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password must be at least 8 characters")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrInvalidShowTime    = fmt.Errorf("show time must be between 1s and 10s")
	ErrNoPlayer           = fmt.Errorf("no audio player configured")
	ErrNoSpeechEngine     = fmt.Errorf("no text-to-speech engine configured")
)
