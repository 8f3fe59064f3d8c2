package pin

import "testing"

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if IsLegacyPlaintext(hashed) {
		t.Fatalf("hash is %d characters, must not look like a legacy PIN", len(hashed))
	}

	if !Verify("1234", hashed) {
		t.Error("expected correct PIN to verify")
	}
	if Verify("4321", hashed) {
		t.Error("expected wrong PIN to fail verification")
	}
}

func TestMatchesLegacyPlaintext(t *testing.T) {
	if !Matches("1234", "1234") {
		t.Error("expected legacy plaintext credential to match by equality")
	}
	if Matches("4321", "1234") {
		t.Error("expected wrong PIN to fail against legacy credential")
	}
}

func TestMatchesHashed(t *testing.T) {
	hashed, err := Hash("0007")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !Matches("0007", hashed) {
		t.Error("expected correct PIN to match hashed credential")
	}
	if Matches("7000", hashed) {
		t.Error("expected wrong PIN to fail against hashed credential")
	}
}

func TestMatchesWrongLengthPin(t *testing.T) {
	hashed, err := Hash("1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, wrong := range []string{"", "12", "12345", "123456789"} {
		if Matches(wrong, hashed) {
			t.Errorf("PIN %q must not match", wrong)
		}
		if Matches(wrong, "1234") {
			t.Errorf("PIN %q must not match legacy credential", wrong)
		}
	}
}
