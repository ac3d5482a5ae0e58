package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"nutrimix/internal/models"
	"nutrimix/internal/repositories"
	"nutrimix/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func notFound(what string) error {
	return fmt.Errorf("user with email %s: %w", what, repositories.ErrNotFound)
}

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 7*24*time.Hour)

	user := &models.User{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "password123",
		Phone:    "9999999999",
		Address:  "12 Market Road",
	}

	mockRepo.On("GetByEmail", ctx, user.Email).Return(nil, notFound(user.Email)).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = "user-123"
		}).
		Return(nil).Once()

	token, err := authService.RegisterUser(ctx, user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)

	// The stored password is a cost-10 bcrypt hash of the submitted one.
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	cost, err := bcrypt.Cost([]byte(user.Password))
	require.NoError(t, err)
	assert.Equal(t, services.PasswordCost, cost)

	claims := parseClaims(t, token)
	assert.Equal(t, "user-123", claims["id"])
	exp := int64(claims["exp"].(float64))
	assert.InDelta(t, time.Now().Add(7*24*time.Hour).Unix(), exp, 5)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	mockRepo.On("GetByEmail", ctx, "taken@example.com").Return(&models.User{ID: "1"}, nil).Once()

	_, err := authService.RegisterUser(ctx, &models.User{Email: "taken@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateOnInsert(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	mockRepo.On("GetByEmail", ctx, "race@example.com").Return(nil, notFound("race@example.com")).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("failed to create user: %w", repositories.ErrDuplicateKey)).Once()

	_, err := authService.RegisterUser(ctx, &models.User{Email: "race@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_LookupFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	mockRepo.On("GetByEmail", ctx, "down@example.com").Return(nil, fmt.Errorf("connection refused")).Once()

	_, err := authService.RegisterUser(ctx, &models.User{Email: "down@example.com", Password: "secret1"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrEmailTaken)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAuthService_LoginUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{
		ID:       "user-123",
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: string(hashedPassword),
	}

	// Test successful login
	mockRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
	token, got, err := authService.LoginUser(ctx, user.Email, "password123")
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, "user-123", parseClaims(t, token)["id"])

	// Test invalid credentials (wrong password)
	mockRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
	_, _, err = authService.LoginUser(ctx, user.Email, "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Test invalid credentials (user not found)
	mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, notFound("nobody@example.com")).Once()
	_, _, err = authService.LoginUser(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	sign := func(claims jwt.MapClaims, secret string) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}

	// Test valid token
	claims, err := authService.ValidateToken(sign(jwt.MapClaims{
		"id":  "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testJWTSecret))
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims["id"])

	// Test malformed token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Test token signed with another secret
	_, err = authService.ValidateToken(sign(jwt.MapClaims{
		"id":  "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "another_secret"))
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Test expired token
	_, err = authService.ValidateToken(sign(jwt.MapClaims{
		"id":  "user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testJWTSecret))
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Test token without a user id
	_, err = authService.ValidateToken(sign(jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testJWTSecret))
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestAuthService_Authenticate(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer " + token, want: "user-123"},
		{name: "scheme is case insensitive", header: "bearer " + token, want: "user-123"},
		{name: "missing header", header: "", wantErr: services.ErrMissingAuthHeader},
		{name: "token without scheme", header: token, wantErr: services.ErrMalformedAuthHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: services.ErrMalformedAuthHeader},
		{name: "scheme without token", header: "Bearer ", wantErr: services.ErrMalformedAuthHeader},
		{name: "invalid token", header: "Bearer invalid.token.string", wantErr: services.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := authService.Authenticate(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, userID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, userID)
		})
	}
}
