package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func okHandler(t *testing.T, sawUserID *int) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sawUserID != nil {
			id, ok := UserID(r)
			if !ok {
				t.Error("UserID() not set inside protected handler")
			}
			*sawUserID = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestUserAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	valid := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	expired := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + wrongKey, http.StatusUnauthorized},
		{"garbage", "Bearer not.a.jwt", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sawID int
			req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			UserAuthMiddleware(okHandler(t, &sawID)).ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && sawID != 42 {
				t.Errorf("user id = %d, want 42", sawID)
			}
		})
	}
}

func TestGateAuthMiddleware(t *testing.T) {
	t.Run("open when unconfigured", func(t *testing.T) {
		t.Setenv("GATE_TOKEN", "")
		req := httptest.NewRequest(http.MethodPost, "/api/gate/check-plate", nil)
		rec := httptest.NewRecorder()
		GateAuthMiddleware(okHandler(t, nil)).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("enforced when configured", func(t *testing.T) {
		t.Setenv("GATE_TOKEN", "camera-secret")

		tests := []struct {
			name       string
			header     string
			wantStatus int
		}{
			{"correct token", "Bearer camera-secret", http.StatusOK},
			{"wrong token", "Bearer nope", http.StatusUnauthorized},
			{"no header", "", http.StatusUnauthorized},
		}
		for _, tt := range tests {
			req := httptest.NewRequest(http.MethodPost, "/api/gate/check-plate", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			GateAuthMiddleware(okHandler(t, nil)).ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("%s: status = %d, want %d", tt.name, rec.Code, tt.wantStatus)
			}
		}
	})
}
