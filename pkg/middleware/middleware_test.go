package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/book-store/pkg/auth"
	md "github.com/Astemirdum/book-store/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()
	secret := []byte("secret")
	valid, err := auth.NewToken(secret, auth.User{ID: 3, Username: "owner"}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		protected    bool
		expectedCode int
		expectedBody string
	}{
		{
			name:         "anonymous public",
			expectedCode: http.StatusOK,
			expectedBody: "anonymous",
		},
		{
			name:         "anonymous protected",
			protected:    true,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"Authentication credentials were not provided."}`,
		},
		{
			name:         "valid token",
			header:       "Bearer " + valid,
			protected:    true,
			expectedCode: http.StatusOK,
			expectedBody: "owner",
		},
		{
			name:         "bad scheme",
			header:       "Token " + valid,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"Invalid Authorization header."}`,
		},
		{
			name:         "bad token",
			header:       "Bearer nope",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"Invalid token."}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			handler := func(c echo.Context) error {
				if u := auth.GetUser(c.Request().Context()); u != nil {
					return c.String(http.StatusOK, u.Username)
				}
				return c.String(http.StatusOK, "anonymous")
			}
			if tt.protected {
				e.GET("/", handler, md.JwtAuthentication(secret), md.RequireAuth)
			} else {
				e.GET("/", handler, md.JwtAuthentication(secret))
			}

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				r.Header.Set(md.AuthorizationHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
