package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRequired(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)

	encode := func(claims map[string]interface{}) string {
		_, tokenString, err := ja.Encode(claims)
		require.NoError(t, err)
		return tokenString
	}

	handler := jwtauth.Verifier(ja)(AuthRequired()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{
			name:   "access token passes",
			token:  encode(map[string]interface{}{"type": "access", "user_id": "u1"}),
			status: http.StatusOK,
		},
		{
			name:   "refresh token rejected",
			token:  encode(map[string]interface{}{"type": "refresh", "user_id": "u1"}),
			status: http.StatusUnauthorized,
		},
		{
			name:   "token without subject rejected",
			token:  encode(map[string]interface{}{"type": "access"}),
			status: http.StatusUnauthorized,
		},
		{
			name:   "missing token rejected",
			token:  "",
			status: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/fichajes/status", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
