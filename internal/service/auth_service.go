package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"campuspark/internal/auth"
	"campuspark/internal/db"
	apperrors "campuspark/internal/errors"
	"campuspark/internal/repository"
)

type AuthService interface {
	Login(email, password string) (db.User, string, error)
	Signup(email, password, name, phone string, role db.Role) (db.User, string, error)
}

type authService struct {
	users  repository.UserRepository
	secret string
}

func NewAuthService(users repository.UserRepository, secret string) AuthService {
	return &authService{users: users, secret: secret}
}

// Login returns the matched user and a signed session token. Unknown
// emails and wrong passwords produce the same error.
func (s *authService) Login(email, password string) (db.User, string, error) {
	user, ok := s.users.GetByEmail(email)
	if !ok {
		return db.User{}, "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return db.User{}, "", apperrors.ErrInvalidCredentials
	}
	token, err := auth.NewToken(s.secret, user)
	if err != nil {
		return db.User{}, "", fmt.Errorf("signing session token: %w", err)
	}
	return user, token, nil
}

// Signup registers a student or staff account and logs it in. Admin
// accounts only exist via seed data.
func (s *authService) Signup(email, password, name, phone string, role db.Role) (db.User, string, error) {
	if email == "" || password == "" || name == "" {
		return db.User{}, "", fmt.Errorf("%w: email, password and name are required", apperrors.ErrInvalidInput)
	}
	if role != db.RoleStudent && role != db.RoleStaff {
		return db.User{}, "", fmt.Errorf("%w: role must be student or staff", apperrors.ErrInvalidInput)
	}
	if _, exists := s.users.GetByEmail(email); exists {
		return db.User{}, "", apperrors.ErrDuplicateUser
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return db.User{}, "", fmt.Errorf("hashing password: %w", err)
	}
	user := s.users.Insert(db.User{
		Email:        email,
		Name:         name,
		Role:         role,
		Phone:        phone,
		PasswordHash: string(hash),
	})
	token, err := auth.NewToken(s.secret, user)
	if err != nil {
		return db.User{}, "", fmt.Errorf("signing session token: %w", err)
	}
	return user, token, nil
}
