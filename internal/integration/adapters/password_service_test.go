// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"strings"
	"testing"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("Passw0rd")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "Passw0rd" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash = %q, want a bcrypt hash", hash)
	}

	if err := service.VerifyPassword(hash, "Passw0rd"); err != nil {
		t.Errorf("VerifyPassword rejected the correct password: %v", err)
	}
	if err := service.VerifyPassword(hash, "wrongpass"); err == nil {
		t.Error("VerifyPassword accepted a wrong password")
	}
}

func TestPasswordService_HashesAreSalted(t *testing.T) {
	service := NewPasswordService()

	first, err := service.HashPassword("Passw0rd")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	second, err := service.HashPassword("Passw0rd")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ")
	}
}
