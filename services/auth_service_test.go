package services

import (
	"chat-notifier/auth"
	"chat-notifier/domain"
	"chat-notifier/errors"
	"chat-notifier/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIOperatorRepository(ctrl)
	svc := NewAuthService(mockRepo, auth.NewTokens("secret", time.Hour))

	t.Run("should register when input is valid", func(t *testing.T) {
		req := require.New(t)
		// Expect a hash, never the plain password
		mockRepo.EXPECT().
			CreateOperator("admin", gomock.Not("hunter22")).
			Return(nil).
			Times(1)

		req.NoError(svc.Register("admin", "hunter22"))
	})

	t.Run("should fail when password is too short", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateOperator(gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(svc.Register("admin", "short"), errors.ErrInvalidPassword)
	})

	t.Run("should fail when name is invalid", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateOperator(gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(svc.Register("not valid", "hunter22"), errors.ErrInvalidUsername)
	})

	t.Run("should fail when operator already exists", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().
			CreateOperator("admin", gomock.Any()).
			Return(errors.ErrDuplicateName).
			Times(1)

		req.ErrorIs(svc.Register("admin", "hunter22"), errors.ErrDuplicateName)
	})
}

func TestAuthService_EnsureOperator(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIOperatorRepository(ctrl)
	svc := NewAuthService(mockRepo, auth.NewTokens("secret", time.Hour))

	t.Run("should keep an existing operator", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetOperator("admin").Return(domain.Operator{Name: "admin"}, nil)
		mockRepo.EXPECT().CreateOperator(gomock.Any(), gomock.Any()).Times(0)

		req.NoError(svc.EnsureOperator("admin", "hunter22"))
	})

	t.Run("should create a missing operator", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetOperator("admin").Return(domain.Operator{}, errors.ErrNotFound)
		mockRepo.EXPECT().CreateOperator("admin", gomock.Any()).Return(nil)

		req.NoError(svc.EnsureOperator("admin", "hunter22"))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIOperatorRepository(ctrl)
	tokens := auth.NewTokens("secret", time.Hour)
	svc := NewAuthService(mockRepo, tokens)

	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	t.Run("should login with correct credentials", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetOperator("admin").Return(domain.Operator{Name: "admin", PasswordHash: hash}, nil)

		token, err := svc.Login("admin", "hunter22")

		req.NoError(err)
		claims, err := tokens.Validate(string(token))
		req.NoError(err)
		req.Equal("admin", claims.Operator)
	})

	t.Run("should fail with wrong password", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetOperator("admin").Return(domain.Operator{Name: "admin", PasswordHash: hash}, nil)

		token, err := svc.Login("admin", "wrong-password")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
		req.Empty(token)
	})

	t.Run("should fail for unknown operator", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetOperator("ghost").Return(domain.Operator{}, errors.ErrNotFound)

		_, err := svc.Login("ghost", "hunter22")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}
