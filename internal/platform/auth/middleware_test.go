package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var devKey = []byte("test-signing-key")

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(devKey)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return s
}

func doRequest(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, UserIDFromContext(c.Request().Context()))
	})
	return rec, handler(c)
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	mw := JWTMiddleware(JWTConfig{SigningKey: devKey})
	tokenStr := signToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Roles: []string{"billing"},
	})

	rec, err := doRequest(mw, "Bearer "+tokenStr)
	if err != nil {
		t.Fatalf("request rejected: %v", err)
	}
	if rec.Body.String() != "user-1" {
		t.Errorf("subject = %q", rec.Body.String())
	}
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	mw := JWTMiddleware(JWTConfig{SigningKey: devKey})
	_, err := doRequest(mw, "")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("got %v, want 401", err)
	}
}

func TestJWTMiddlewareExpiredToken(t *testing.T) {
	mw := JWTMiddleware(JWTConfig{SigningKey: devKey})
	tokenStr := signToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := doRequest(mw, "Bearer "+tokenStr)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("got %v, want 401", err)
	}
}

func TestJWTMiddlewareBadScheme(t *testing.T) {
	mw := JWTMiddleware(JWTConfig{SigningKey: devKey})
	_, err := doRequest(mw, "Basic dXNlcjpwYXNz")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("got %v, want 401", err)
	}
}

func TestDevAuthMiddlewareDefaults(t *testing.T) {
	rec, err := doRequest(DevAuthMiddleware(), "")
	if err != nil {
		t.Fatalf("request rejected: %v", err)
	}
	if rec.Body.String() != "dev-user" {
		t.Errorf("subject = %q", rec.Body.String())
	}
}
