package util

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestValidationErrorKeepsFirstMessage(t *testing.T) {
	verr := NewValidationError()
	if verr.HasErrors() {
		t.Fatalf("new error should be empty")
	}
	verr.Add("b", "second field")
	verr.Add("a", "first message")
	verr.Add("a", "overwritten")

	if verr.Fields["a"] != "first message" {
		t.Fatalf("fields=%v", verr.Fields)
	}
	if got := verr.Error(); got != "validation failed: a: first message; b: second field" {
		t.Fatalf("Error()=%q", got)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"
	token, err := GenerateJWT("user-42", "Ada", secret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "user-42" || claims.Name != "Ada" {
		t.Fatalf("claims=%+v", claims)
	}

	if _, err := ParseJWT(token, "another-secret-another-secret-xx"); err == nil {
		t.Fatalf("wrong secret should fail")
	}

	expired, _ := GenerateJWT("user-42", "Ada", secret, -time.Minute)
	if _, err := ParseJWT(expired, secret); err == nil {
		t.Fatalf("expired token should fail")
	}

	noSubject, _ := GenerateJWT("", "Ada", secret, time.Hour)
	if _, err := ParseJWT(noSubject, secret); err == nil {
		t.Fatalf("token without subject should fail")
	}
}

func TestOwnerFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if OwnerFromContext(c) != "" {
		t.Fatalf("anonymous owner should be empty")
	}

	c.Set("user", &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-7"}})
	if got := OwnerFromContext(c); got != "user-7" {
		t.Fatalf("owner=%q", got)
	}
}
