package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuspark/internal/auth"
	"campuspark/internal/db"
	apperrors "campuspark/internal/errors"
	"campuspark/internal/store"
)

func TestLoginSeededUsers(t *testing.T) {
	repos := seededRepos(t)
	svc := NewAuthService(repos.users, testSecret)

	for _, email := range []string{"admin@college.edu", "student@college.edu", "staff@college.edu"} {
		user, token, err := svc.Login(email, store.SeedPassword)
		require.NoError(t, err, email)
		assert.Equal(t, email, user.Email)
		assert.NotEmpty(t, token)

		seeded, ok := repos.users.GetByEmail(email)
		require.True(t, ok)
		assert.Equal(t, seeded, user, "login must return the exact stored record")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repos := seededRepos(t)
	svc := NewAuthService(repos.users, testSecret)

	_, _, err := svc.Login("student@college.edu", "password1234")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repos := seededRepos(t)
	svc := NewAuthService(repos.users, testSecret)

	_, _, err := svc.Login("nobody@college.edu", store.SeedPassword)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repos := seededRepos(t)
	svc := NewAuthService(repos.users, testSecret)

	_, _, err := svc.Signup("student@college.edu", "hunter22", "Other John", "", db.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUser)
	assert.Len(t, repos.users.List(), 3)
}

func TestSignupNewUserBecomesSessionUser(t *testing.T) {
	repos := seededRepos(t)
	svc := NewAuthService(repos.users, testSecret)

	user, token, err := svc.Signup("new@college.edu", "hunter22", "New Student", "+15550001111", db.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "4", user.ID)
	assert.Equal(t, db.RoleStudent, user.Role)

	// The issued token resolves to the freshly created user.
	subject, err := auth.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)

	// And the new account can log in with its own password.
	again, _, err := svc.Login("new@college.edu", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestSignupRejectsAdminRole(t *testing.T) {
	repos := seededRepos(t)
	svc := NewAuthService(repos.users, testSecret)

	_, _, err := svc.Signup("boss@college.edu", "hunter22", "Boss", "", db.RoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestSignupRequiredFields(t *testing.T) {
	repos := seededRepos(t)
	svc := NewAuthService(repos.users, testSecret)

	_, _, err := svc.Signup("", "hunter22", "No Email", "", db.RoleStaff)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
