package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func TestValidatePassword(t *testing.T) {
	tests := map[string]bool{
		"abc1!":      false,
		"abcdef":     false,
		"abcdef1":    false,
		"abcdef!":    false,
		"abcde1!":    true,
		"p@ssw0rd42": true,
	}
	for pw, want := range tests {
		if got := ValidatePassword(pw); got != want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", pw, got, want)
		}
	}
}

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Site     string `json:"site" validate:"omitempty,httpurl"`
	Owner    string `json:"ownerId" validate:"omitempty,objectid"`
}

func TestValidationErrorsUseJSONNames(t *testing.T) {
	v := validator.New()
	RegisterCustomValidators(v)

	err := v.Struct(signup{Email: "nope", Password: "short", Site: "example", Owner: "42"})
	got := ValidationErrors(err)

	for _, field := range []string{"email", "password", "site", "ownerId"} {
		if got[field] == "" {
			t.Errorf("missing message for %q in %v", field, got)
		}
	}
	if got["site"] != "site must be a valid http(s) URL" {
		t.Errorf("site message = %q", got["site"])
	}

	if other := ValidationErrors(errors.New("unexpected EOF")); other["body"] == "" {
		t.Errorf("non-validator error not reported under body: %v", other)
	}
}

func TestResponseEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		write   func(*gin.Context)
		status  int
		success bool
	}{
		{"ok", func(c *gin.Context) { Success(c, gin.H{"a": 1}) }, 200, true},
		{"created", func(c *gin.Context) { Created(c, "", nil) }, 201, true},
		{"paginated", func(c *gin.Context) { Paginated(c, []int{1}, Meta{Page: 1, Limit: 20, Total: 1}) }, 200, true},
		{"not found", func(c *gin.Context) { NotFound(c, "Event not found") }, 404, false},
		{"validation", func(c *gin.Context) { ValidationFailed(c, map[string]string{"title": "title is required"}) }, 400, false},
		{"rate limited", func(c *gin.Context) { TooManyRequests(c, "slow down") }, 429, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			tt.write(c)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body["success"] != tt.success {
				t.Fatalf("success = %v, want %v", body["success"], tt.success)
			}
			if tt.name == "paginated" && body["meta"] == nil {
				t.Fatal("meta missing")
			}
			if tt.name == "created" && body["message"] != "Resource created successfully" {
				t.Fatalf("default message = %v", body["message"])
			}
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", " 42 ")
	t.Setenv("TEST_BAD_INT", "x")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_EMPTY", "  ")
	t.Setenv("TEST_LIST", "https://a.org, ,https://b.org")

	if GetEnvAsInt("TEST_INT", 0) != 42 || GetEnvAsInt("TEST_BAD_INT", 7) != 7 {
		t.Error("GetEnvAsInt")
	}
	if GetEnvAsDuration("TEST_DURATION", 0) != 90*time.Second {
		t.Error("GetEnvAsDuration")
	}
	if !GetEnvAsBool("TEST_BOOL", false) {
		t.Error("GetEnvAsBool")
	}
	if GetEnvAsString("TEST_EMPTY", "fallback") != "fallback" {
		t.Error("blank string should fall back")
	}
	if got := GetEnvAsSlice("TEST_LIST", nil); len(got) != 2 || got[1] != "https://b.org" {
		t.Errorf("GetEnvAsSlice = %v", got)
	}
}

func TestParseUserAgent(t *testing.T) {
	browser, os, device := ParseUserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	if browser != "Chrome" || os != "Windows" || device != "Desktop" {
		t.Fatalf("got %q %q %q", browser, os, device)
	}
	if got := DescribeUserAgent(""); got != "Unknown Browser on Unknown OS (Desktop)" {
		t.Fatalf("DescribeUserAgent = %q", got)
	}
}
