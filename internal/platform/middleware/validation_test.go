package middleware

import (
	"strings"
	"testing"
)

func TestSanitizeInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain name", "John Smith", "John Smith"},
		{"NULL characters removed", "John\x00Smith", "JohnSmith"},
		{"Control characters removed", "\x01\x02", ""},
		{"Control characters inside text", "Jo\x07hn", "John"},
		{"Keeps newline and tab", "a\n\tb", "a\n\tb"},
		{"Keeps surrounding spaces", "  spaced  ", "  spaced  "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeInput(tc.input)
			if got != tc.want {
				t.Errorf("SanitizeInput(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidateContactName(t *testing.T) {
	testCases := []struct {
		name        string
		contactName string
		wantErr     bool
	}{
		{"Valid name", "John Smith", false},
		{"Exactly max length", strings.Repeat("a", MaxContactNameLength), false},
		{"Empty", "", true},
		{"Whitespace only", "   ", true},
		{"Over max length", strings.Repeat("a", MaxContactNameLength+1), true},
		{"NULL character", "John\x00", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateContactName(tc.contactName)
			if tc.wantErr && err == nil {
				t.Errorf("ValidateContactName(%q) expected error, got nil", tc.contactName)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("ValidateContactName(%q) unexpected error: %v", tc.contactName, err)
			}
		})
	}
}

// 處理器採用先消毒後驗證的順序；只含控制字符的名稱消毒後為空，必須被拒絕.
func TestControlCharacterNameRejected(t *testing.T) {
	sanitized := SanitizeInput("\x01\x02")
	if sanitized != "" {
		t.Fatalf("SanitizeInput(%q) = %q, want empty", "\x01\x02", sanitized)
	}
	if err := ValidateContactName(sanitized); err == nil {
		t.Error("name that sanitizes to empty should be rejected")
	}
}
