package services

import (
	"chat-notifier/auth"
	"chat-notifier/contract"
	"chat-notifier/errors"
	"fmt"
)

const minPasswordLength = 8

type IAuthService interface {
	Login(name, password string) (Token, error)
	Register(name, password string) error
	EnsureOperator(name, password string) error
}

type AuthService struct {
	operatorRepository contract.IOperatorRepository
	tokens             *auth.Tokens
}

type Token string

func NewAuthService(repo contract.IOperatorRepository, tokens *auth.Tokens) IAuthService {
	return &AuthService{operatorRepository: repo, tokens: tokens}
}

func (s *AuthService) Register(name, password string) error {
	// 1. Validate before any expensive cryptographic operation
	if err := auth.ValidateUsername(name); err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		return errors.ErrInvalidPassword
	}

	// 2. Hash the password using Argon2id
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Persist, ErrDuplicateName if the name is taken
	return s.operatorRepository.CreateOperator(name, hashedPassword)
}

// EnsureOperator registers the operator unless it already exists.
// The stored password is kept when the operator exists.
func (s *AuthService) EnsureOperator(name, password string) error {
	_, err := s.operatorRepository.GetOperator(name)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errors.ErrNotFound):
		return s.Register(name, password)
	default:
		return err
	}
}

func (s *AuthService) Login(name, password string) (Token, error) {
	// 1. Retrieve operator from storage
	operator, err := s.operatorRepository.GetOperator(name)
	if err != nil {
		// Same error for unknown names and wrong passwords
		return "", errors.ErrInvalidCredentials
	}

	// 2. Compare the provided password with the stored hash
	match, err := auth.ComparePassword(password, operator.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	// 3. Issue the JWT token
	token, err := s.tokens.Generate(operator.Name)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}
