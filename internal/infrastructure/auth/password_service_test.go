package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordServiceWithCost(bcrypt.MinCost)

	hash, err := svc.Hash("swasthya#108")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "swasthya#108" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !svc.Verify(hash, "swasthya#108") {
		t.Error("expected matching password to verify")
	}
	if svc.Verify(hash, "swasthya#109") {
		t.Error("expected wrong password to fail verification")
	}
}

func TestPasswordService_MalformedHashFailsVerify(t *testing.T) {
	svc := NewPasswordServiceWithCost(bcrypt.MinCost)
	if svc.Verify("not-a-bcrypt-hash", "anything") {
		t.Error("expected malformed hash to fail verification")
	}
}

func TestPasswordService_OutOfRangeCostFallsBack(t *testing.T) {
	svc := NewPasswordServiceWithCost(bcrypt.MaxCost + 1)

	hash, err := svc.Hash("pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("unexpected error reading cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}
