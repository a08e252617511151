package crypto

import (
	"testing"
)

func TestGenerateSalt_LengthAndUniqueness(t *testing.T) {
	t.Parallel()

	s, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	if s == "" {
		t.Fatalf("empty salt")
	}

	seen := make(map[string]bool, 128)
	for i := 0; i < 128; i++ {
		s, err := GenerateSalt()
		if err != nil {
			t.Fatalf("GenerateSalt(%d): %v", i, err)
		}
		if seen[s] {
			t.Fatalf("salt collision after %d samples", i)
		}
		seen[s] = true
	}
}

func TestHashPassword_DeterministicOnSameInput(t *testing.T) {
	t.Parallel()

	const pw = "p@ssw0rd"
	const salt = "NaCl-16-bytes?"

	h1 := HashPassword(pw, salt)
	h2 := HashPassword(pw, salt)

	if h1 == "" || h2 == "" {
		t.Fatalf("empty hash")
	}
	if h1 != h2 {
		t.Fatalf("hash not deterministic for same input")
	}

	if h3 := HashPassword(pw, "another-salt----"); h3 == h1 {
		t.Fatalf("hash should differ when salt differs")
	}
	if h4 := HashPassword("p@ssw0rd!", salt); h4 == h1 {
		t.Fatalf("hash should differ when password differs")
	}
}

func TestHashPassword_FreshSaltsNeverCollide(t *testing.T) {
	t.Parallel()

	const pw = "same password every time"
	seen := make(map[string]bool, 100)
	for i := 0; i < 100; i++ {
		salt, err := GenerateSalt()
		if err != nil {
			t.Fatalf("GenerateSalt: %v", err)
		}
		h := HashPassword(pw, salt)
		if seen[h] {
			t.Fatalf("hash collision across distinct salts after %d samples", i)
		}
		seen[h] = true
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	const pw = "correct horse battery staple"
	const salt = "salty-salt-123456"

	hash := HashPassword(pw, salt)

	if !VerifyPassword(pw, hash, salt) {
		t.Fatalf("VerifyPassword: expected true for correct password")
	}
	if VerifyPassword("wrong", hash, salt) {
		t.Fatalf("VerifyPassword: expected false for wrong password")
	}
	if VerifyPassword(pw, hash, "wrong-salt") {
		t.Fatalf("VerifyPassword: expected false for wrong salt")
	}
	if VerifyPassword("", hash, salt) {
		t.Fatalf("VerifyPassword: expected false for empty password")
	}

	// Malformed inputs never panic or error, they just fail verification.
	if VerifyPassword(pw, "", salt) {
		t.Fatalf("VerifyPassword: expected false for empty hash")
	}
	if VerifyPassword(pw, hash, "") {
		t.Fatalf("VerifyPassword: expected false for empty salt")
	}
	if VerifyPassword(pw, "not base64 at all \x00", salt) {
		t.Fatalf("VerifyPassword: expected false for garbage hash")
	}
}
