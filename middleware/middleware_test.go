package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"instituteapi/model"
	"instituteapi/services"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.ConfigureLogger(utils.LoggerConfig{Level: "disabled", Output: io.Discard})
	os.Exit(m.Run())
}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type failingStore struct{}

func (failingStore) Hit(context.Context, string, time.Duration) (services.WindowHit, error) {
	return services.WindowHit{}, errors.New("redis down")
}

type failingRevoker struct{}

func (failingRevoker) Revoke(context.Context, string, time.Time) error { return nil }
func (failingRevoker) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func TestRateLimitFixedWindow(t *testing.T) {
	store := services.NewMemoryRateLimitStore()
	defer store.Close()

	r := gin.New()
	r.GET("/", RateLimit(store, RateLimitTier{Name: "test", Limit: 2, Window: time.Minute}), ok)

	for i, want := range []int{200, 200, 429, 429} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.7:5000"
		if w := serve(r, req); w.Code != want {
			t.Fatalf("request %d: status = %d, want %d", i+1, w.Code, want)
		}
	}

	// a different client has its own window
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.8:5000"
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Fatalf("second client limited: %d", w.Code)
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(failingStore{}, RateLimitTier{Name: "test", Limit: 1, Window: time.Minute}), ok)

	for i := 0; i < 3; i++ {
		if w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil)); w.Code != http.StatusOK {
			t.Fatalf("store failure should allow request, got %d", w.Code)
		}
	}
}

func TestAuthenticate(t *testing.T) {
	tokens := services.NewTokenService("secret", "instituteapi", time.Hour)
	user := &model.User{Base: model.Base{ID: primitive.NewObjectID()}, Email: "a@b.org", Role: model.RoleEditor}
	valid, _, err := tokens.Issue(user)
	if err != nil {
		t.Fatal(err)
	}

	expiredSvc := services.NewTokenService("secret", "instituteapi", time.Minute)
	expiredSvc.Now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, _, _ := expiredSvc.Issue(user)

	otherIssuer, _, _ := services.NewTokenService("secret", "someone-else", time.Hour).Issue(user)

	revoked := services.NewMemoryTokenBlacklist()
	revokedToken, exp, _ := tokens.Issue(&model.User{Base: model.Base{ID: primitive.NewObjectID()}, Role: model.RoleAdmin})
	revoked.Revoke(context.Background(), revokedToken, exp)

	tests := []struct {
		name    string
		header  string
		revoker services.TokenRevoker
		want    int
	}{
		{"missing header", "", revoked, http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, revoked, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, revoked, http.StatusOK},
		{"lowercase scheme", "bearer " + valid, revoked, http.StatusOK},
		{"expired", "Bearer " + expired, revoked, http.StatusUnauthorized},
		{"wrong issuer", "Bearer " + otherIssuer, revoked, http.StatusUnauthorized},
		{"revoked", "Bearer " + revokedToken, revoked, http.StatusUnauthorized},
		{"blacklist down", "Bearer " + valid, failingRevoker{}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", Authenticate(tokens, tt.revoker), func(c *gin.Context) {
				if CurrentUserID(c) != user.ID.Hex() || CurrentRole(c) != model.RoleEditor {
					t.Errorf("claims not propagated: %q %q", CurrentUserID(c), CurrentRole(c))
				}
				if tok, exp := CurrentToken(c); tok == "" || exp.IsZero() {
					t.Error("token not stored on context")
				}
				c.Status(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if w := serve(r, req); w.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	for role, want := range map[model.Role]int{
		model.RoleAdmin:  http.StatusOK,
		model.RoleEditor: http.StatusForbidden,
		"":               http.StatusForbidden,
	} {
		r := gin.New()
		r.GET("/", func(c *gin.Context) {
			if role != "" {
				c.Set(ContextRole, role)
			}
		}, RequireRoles(model.RoleAdmin), ok)
		if w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil)); w.Code != want {
			t.Errorf("role %q: status = %d, want %d", role, w.Code, want)
		}
	}
}

func TestRecoveryReturnsEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/", func(*gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), `"success":false`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", ok)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	minted := w.Header().Get("X-Request-ID")
	if minted == "" {
		t.Fatal("no request id minted")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "6f1c1d2e-3b4a-4c5d-8e9f-0a1b2c3d4e5f")
	if got := serve(r, req).Header().Get("X-Request-ID"); got != "6f1c1d2e-3b4a-4c5d-8e9f-0a1b2c3d4e5f" {
		t.Fatalf("incoming id not kept: %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "<script>")
	if got := serve(r, req).Header().Get("X-Request-ID"); got == "<script>" {
		t.Fatal("malformed id echoed back")
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://institute.org"}))
	r.OPTIONS("/api/events", ok)

	req := httptest.NewRequest(http.MethodOptions, "/api/events", nil)
	req.Header.Set("Origin", "https://institute.org")
	w := serve(r, req)
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "https://institute.org" {
		t.Fatalf("allowed preflight: %d %v", w.Code, w.Header())
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/events", nil)
	req.Header.Set("Origin", "https://evil.example")
	if w := serve(r, req); w.Code != http.StatusForbidden {
		t.Fatalf("foreign preflight: %d", w.Code)
	}
}

func TestRequireJSON(t *testing.T) {
	r := gin.New()
	r.POST("/", RequireJSON(), ok)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("title=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if w := serve(r, req); w.Code != http.StatusBadRequest {
		t.Fatalf("form body accepted: %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Fatalf("json body rejected: %d", w.Code)
	}
}

func TestRequestSizeLimiter(t *testing.T) {
	r := gin.New()
	r.POST("/", RequestSizeLimiter(8), ok)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
	if w := serve(r, req); w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("oversized body: %d", w.Code)
	}
}
