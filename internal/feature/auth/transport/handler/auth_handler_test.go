package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"dreamjournal/internal/feature/auth/domain/entity"
	"dreamjournal/internal/feature/auth/usecase"
	jwtmw "dreamjournal/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc      func(ctx context.Context, email, password string) error
	LoginFunc       func(ctx context.Context, email, password string) (string, error)
	CurrentUserFunc func(ctx context.Context, userID uint) (*entity.User, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, email, password string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, password)
	}
	return nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", errors.New("login failed")
}

func (m *mockAuthUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, userID)
	}
	return nil, usecase.ErrUserNotFound
}

// mockLinkUsecase is a mock implementation of the LinkUsecase interface.
type mockLinkUsecase struct {
	LinkAccountsFunc  func(ctx context.Context, userID uint) (*usecase.LinkResult, error)
	CheckLinkableFunc func(ctx context.Context, userID uint) (*usecase.LinkableAccounts, error)
}

func (m *mockLinkUsecase) LinkAccounts(ctx context.Context, userID uint) (*usecase.LinkResult, error) {
	if m.LinkAccountsFunc != nil {
		return m.LinkAccountsFunc(ctx, userID)
	}
	return &usecase.LinkResult{}, nil
}

func (m *mockLinkUsecase) CheckLinkable(ctx context.Context, userID uint) (*usecase.LinkableAccounts, error) {
	if m.CheckLinkableFunc != nil {
		return m.CheckLinkableFunc(ctx, userID)
	}
	return &usecase.LinkableAccounts{}, nil
}

// withCaller injects the authenticated caller the way the JWT middleware
// does.
func withCaller(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Next()
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, email, password string) error
		expectedStatus int
	}{
		{
			name:           "success: user registration",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, email, password string) error { return nil },
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "password123"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate account",
			requestBody: gin.H{"email": "existing@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, email, password string) error {
				return usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{SignupFunc: tt.mockSignupFunc}
			h := NewAuthHandler(mockUC, &mockLinkUsecase{})

			router := gin.New()
			router.POST("/signup", h.Signup)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/signup", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success: token issued",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "signed-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"token": "signed-token"},
		},
		{
			name:        "failure: bad credentials",
			requestBody: gin.H{"email": "test@example.com", "password": "wrongpass1"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "invalid email or password"},
		},
		{
			name:           "failure: malformed body",
			requestBody:    gin.H{"email": "not-an-email", "password": "password123"},
			mockLoginFunc:  nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			h := NewAuthHandler(mockUC, &mockLinkUsecase{})

			router := gin.New()
			router.POST("/login", h.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var got gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			for k, v := range tt.expectedBody {
				assert.Equal(t, v, got[k])
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockAuthUsecase{
		CurrentUserFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
			return &entity.User{ID: userID, Email: "test@example.com", Provider: entity.ProviderPassword}, nil
		},
	}
	h := NewAuthHandler(mockUC, &mockLinkUsecase{})

	router := gin.New()
	router.GET("/me", withCaller(7), h.Me)

	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got gin.H
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, float64(7), got["id"])
	assert.Equal(t, "test@example.com", got["email"])
	// An account with an email but no verification stamp reads unverified.
	assert.Equal(t, false, got["verified"])
}

func TestAuthHandler_LinkAccounts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockLinkFunc   func(ctx context.Context, userID uint) (*usecase.LinkResult, error)
		expectedStatus int
	}{
		{
			name: "success: accounts linked",
			mockLinkFunc: func(ctx context.Context, userID uint) (*usecase.LinkResult, error) {
				return &usecase.LinkResult{Linked: true, Message: "Successfully linked 1 account(s)", TransferredEntries: 2}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "failure: unverified caller",
			mockLinkFunc: func(ctx context.Context, userID uint) (*usecase.LinkResult, error) {
				return nil, usecase.ErrEmailNotVerified
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "failure: no email on account",
			mockLinkFunc: func(ctx context.Context, userID uint) (*usecase.LinkResult, error) {
				return nil, usecase.ErrNoEmail
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{}, &mockLinkUsecase{LinkAccountsFunc: tt.mockLinkFunc})

			router := gin.New()
			router.POST("/account/link", withCaller(7), h.LinkAccounts)

			req, _ := http.NewRequest(http.MethodPost, "/account/link", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_LinkableAccounts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(&mockAuthUsecase{}, &mockLinkUsecase{
		CheckLinkableFunc: func(ctx context.Context, userID uint) (*usecase.LinkableAccounts, error) {
			return &usecase.LinkableAccounts{CurrentUserVerified: true, LinkableAccounts: 2, CanLink: true}, nil
		},
	})

	router := gin.New()
	router.GET("/account/linkable", withCaller(7), h.LinkableAccounts)

	req, _ := http.NewRequest(http.MethodGet, "/account/linkable", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got gin.H
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, true, got["canLink"])
	assert.Equal(t, float64(2), got["linkableAccounts"])
}
