package auth

import (
	"chat-notifier/domain"
	"chat-notifier/errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "Op3rator-Passw0rd!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("wrong", hash)
	req.NoError(err)
	req.False(match)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	req := require.New(t)
	_, err := ComparePassword("whatever", "$bcrypt$nope")
	req.ErrorIs(err, errors.ErrInvalidCredentials)
}

func TestTokens(t *testing.T) {
	t.Run("round trip keeps the operator", func(t *testing.T) {
		req := require.New(t)
		tokens := NewTokens("secret-for-tests", time.Hour)

		token, err := tokens.Generate("streamer")
		req.NoError(err)

		claims, err := tokens.Validate(token)
		req.NoError(err)
		req.Equal("streamer", claims.Operator)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		req := require.New(t)
		token, err := NewTokens("one", time.Hour).Generate("streamer")
		req.NoError(err)

		_, err = NewTokens("two", time.Hour).Validate(token)
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		req := require.New(t)
		tokens := NewTokens("secret-for-tests", -time.Minute)
		token, err := tokens.Generate("streamer")
		req.NoError(err)

		_, err = tokens.Validate(token)
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		wantErr bool
	}{
		{"Simple login", "ann", false},
		{"Digits and underscore", "bob_42", false},
		{"Empty", "", true},
		{"Too long", strings.Repeat("a", 26), true},
		{"Space inside", "ann bob", true},
		{"Punctuation", "ann!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := ValidateUsername(tt.user)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidUsername)
				return
			}
			req.NoError(err)
		})
	}
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		cmd     domain.Command
		wantErr bool
	}{
		{"Regular command", domain.Command{Name: "notify", CallString: "cc", Action: domain.ActionNotify}, false},
		{"Empty call string is allowed", domain.Command{Name: "idle", Action: domain.ActionNotify}, false},
		{"Missing name", domain.Command{CallString: "cc", Action: domain.ActionNotify}, true},
		{"Missing action", domain.Command{Name: "notify", CallString: "cc"}, true},
		{"Prefix repeated", domain.Command{Name: "notify", CallString: "!cc", Action: domain.ActionNotify}, true},
		{"Whitespace in call string", domain.Command{Name: "notify", CallString: "c c", Action: domain.ActionNotify}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := ValidateCommand(tt.cmd)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidCommand)
				return
			}
			req.NoError(err)
		})
	}
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
