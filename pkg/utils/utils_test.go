package utils

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword("s3cret-password", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("wrong-password", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("42", true, false, "test-secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "42" {
		t.Fatalf("expected user id 42, got %q", claims.UserID)
	}
	if !claims.IsContributor || claims.IsAdmin {
		t.Fatalf("role claims mismatch: contributor=%v admin=%v", claims.IsContributor, claims.IsAdmin)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("42", false, false, "right-secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken(token, "wrong-secret"); err == nil {
		t.Fatal("token validated with the wrong secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token", "secret"); err == nil {
		t.Fatal("garbage token validated")
	}
}

func TestValidateTokenRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken("42", false, true, "secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := ValidateToken(tampered, "secret"); err == nil {
		t.Fatal("tampered signature validated")
	}
}
