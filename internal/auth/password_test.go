package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3nh@-forte", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if err := ComparePassword(hash, "s3nh@-forte"); err != nil {
		t.Errorf("ComparePassword() with correct plaintext error = %v", err)
	}
	if err := ComparePassword(hash, "outra-senha"); err == nil {
		t.Error("ComparePassword() accepted wrong plaintext")
	}
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	hash, err := HashPassword("s3nh@-forte", 99)
	if err != nil {
		t.Fatalf("HashPassword() with out-of-range cost error = %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost() error = %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", cost, bcrypt.DefaultCost)
	}
}
