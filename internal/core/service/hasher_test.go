package service

import "testing"

func TestHashSecret_Deterministic(t *testing.T) {
	a := HashSecret("secret1", "guest-salt")
	b := HashSecret("secret1", "guest-salt")
	if a != b {
		t.Fatalf("same inputs produced different digests: %s vs %s", a, b)
	}
	if a == "secret1" {
		t.Fatalf("digest equals the plaintext secret")
	}
}

func TestHashSecret_PortalSaltsDiffer(t *testing.T) {
	guest := HashSecret("secret1", "guest-salt")
	staff := HashSecret("secret1", "staff-salt")
	if guest == staff {
		t.Fatalf("digests across portal salts must differ")
	}
	if VerifySecret("secret1", "staff-salt", guest) {
		t.Fatalf("a guest digest must not verify under the staff salt")
	}
}

func TestVerifySecret(t *testing.T) {
	digest := HashSecret("secret1", "salt")

	if !VerifySecret("secret1", "salt", digest) {
		t.Fatalf("correct secret did not verify")
	}
	if VerifySecret("secret2", "salt", digest) {
		t.Fatalf("one-character difference verified")
	}
	if VerifySecret("", "salt", digest) {
		t.Fatalf("empty secret verified")
	}
}
