package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCredentials_RoundTrip(t *testing.T) {
	creds := NewCredentials(bcrypt.MinCost)

	hash, err := creds.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if !creds.Verify("correct horse battery staple", hash) {
		t.Fatalf("verification of the original plaintext failed")
	}
	if creds.Verify("correct horse battery stapl", hash) {
		t.Fatalf("verification of a different plaintext succeeded")
	}
}

func TestCredentials_UniqueSalts(t *testing.T) {
	creds := NewCredentials(bcrypt.MinCost)

	a, _ := creds.Hash("samepassword")
	b, _ := creds.Hash("samepassword")
	if a == b {
		t.Fatalf("two hashes of the same password must differ (salt)")
	}
}

func TestNewCredentials_CostOutOfRange(t *testing.T) {
	creds := NewCredentials(99)
	hash, err := creds.Hash("pw")
	if err != nil {
		t.Fatalf("Hash with clamped cost failed: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil || cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d (%v)", cost, err)
	}
}
