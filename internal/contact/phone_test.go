package contact

import "testing"

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{"International format", "+254 (712) 000-111", "254712000111"},
		{"Plain digits", "254712000111", "254712000111"},
		{"Dashes and spaces", "0712-345 678", "0712345678"},
		{"Letters mixed in", "call254712000111now", "254712000111"},
		{"Empty string", "", ""},
		{"No digits at all", "+-() abc", ""},
		{"Unicode noise", "２54７12000111", "5412000111"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePhone(tc.raw)
			if got != tc.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	testCases := []struct {
		name    string
		digits  string
		wantErr bool
	}{
		{"Exactly 10 digits", "0712345678", false},
		{"Exactly 15 digits", "123456789012345", false},
		{"12 digits", "254712000111", false},
		{"9 digits too short", "071234567", true},
		{"16 digits too long", "1234567890123456", true},
		{"Empty", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePhone(tc.digits)
			if tc.wantErr && err == nil {
				t.Errorf("ValidatePhone(%q) expected error, got nil", tc.digits)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("ValidatePhone(%q) unexpected error: %v", tc.digits, err)
			}
		})
	}
}

func TestNormalizeAndValidatePhone(t *testing.T) {
	// 正規化後長度不足的輸入必須被拒絕
	if _, err := NormalizeAndValidatePhone("+1 (23) 45"); err != ErrInvalidPhone {
		t.Errorf("expected ErrInvalidPhone, got %v", err)
	}

	digits, err := NormalizeAndValidatePhone("+254 (712) 000-111")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digits != "254712000111" {
		t.Errorf("got %q, want %q", digits, "254712000111")
	}
}

func TestIsDenied(t *testing.T) {
	denyList := []string{"254712345678", "254787654321"}

	if !IsDenied("254712345678", denyList) {
		t.Error("blocked number should be denied")
	}
	if IsDenied("254712000111", denyList) {
		t.Error("unlisted number should not be denied")
	}
	if IsDenied("254712345678", nil) {
		t.Error("empty deny list should deny nothing")
	}
}
