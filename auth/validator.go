package auth

import (
	"chat-notifier/domain"
	"chat-notifier/errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Twitch login names are 1 to 25 characters, letters, digits and underscores.
type usernameRequest struct {
	Username string `validate:"required,min=1,max=25"`
}

func ValidateUsername(user string) error {
	if err := validate.Struct(usernameRequest{Username: user}); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidUsername, err)
	}
	for _, r := range user {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("%w: unexpected character %q", errors.ErrInvalidUsername, r)
		}
	}
	return nil
}

// ValidateCommand checks a registration record before it enters the table.
// The call string is typed right after the prefix, so it can neither hold
// whitespace nor repeat the prefix.
func ValidateCommand(cmd domain.Command) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	return ValidateCallString(cmd.CallString)
}

func ValidateCallString(callString string) error {
	if strings.HasPrefix(callString, string(domain.CommandPrefix)) {
		return fmt.Errorf("%w: call string must not start with %q", errors.ErrInvalidCommand, domain.CommandPrefix)
	}
	if strings.IndexFunc(callString, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: call string must not contain whitespace", errors.ErrInvalidCommand)
	}
	return nil
}
