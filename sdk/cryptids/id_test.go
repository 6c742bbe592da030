package cryptids

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	if err != nil {
		t.Fatalf("generate id: %v", err)
	}
	if len(id) != IDLength {
		t.Errorf("len = %d, want %d", len(id), IDLength)
	}
	for _, r := range id {
		if !strings.ContainsRune(IDAlphabet, r) {
			t.Errorf("character %q not in alphabet", r)
		}
	}
}

func TestGenerateTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		token, err := GenerateToken()
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}
		if len(token) != TokenLength {
			t.Fatalf("len = %d, want %d", len(token), TokenLength)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}

func TestGenerateCustomIDValidation(t *testing.T) {
	if _, err := GenerateCustomID("a", 10); err == nil {
		t.Error("expected error for single-character alphabet")
	}
	if _, err := GenerateCustomID("ab", 0); err == nil {
		t.Error("expected error for zero size")
	}
}
