package broadcast

import (
	"errors"
	"testing"
)

func TestValidatePostRequest(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		wantErr bool
	}{
		{"Valid message", "New numbers drop tonight!", false},
		{"Empty message", "", true},
		{"Whitespace only", "   \n\t", true},
		{"Single character", "a", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePostRequest(&PostRequest{Message: tc.message})
			if tc.wantErr && !errors.Is(err, ErrMissingMessage) {
				t.Errorf("expected ErrMissingMessage, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
