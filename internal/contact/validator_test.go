package contact

import (
	"errors"
	"testing"
)

var testDenyList = []string{"254712345678", "254787654321"}

func TestValidateRegisterRequest(t *testing.T) {
	testCases := []struct {
		name      string
		req       RegisterRequest
		wantPhone string
		wantErr   error
	}{
		{
			name:      "Valid request",
			req:       RegisterRequest{Name: "Amy", PhoneNumber: "+254 (712) 000-111"},
			wantPhone: "254712000111",
		},
		{
			name:    "Missing name",
			req:     RegisterRequest{PhoneNumber: "254712000111"},
			wantErr: ErrMissingField,
		},
		{
			name:    "Missing phone",
			req:     RegisterRequest{Name: "Amy"},
			wantErr: ErrMissingField,
		},
		{
			name:    "Whitespace-only name",
			req:     RegisterRequest{Name: "   ", PhoneNumber: "254712000111"},
			wantErr: ErrMissingField,
		},
		{
			name:    "Phone too short",
			req:     RegisterRequest{Name: "Amy", PhoneNumber: "12345"},
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "Deny-listed phone",
			req:     RegisterRequest{Name: "Amy", PhoneNumber: "+254 712-345-678"},
			wantErr: ErrForbidden,
		},
		{
			name:    "Deny-listed regardless of name",
			req:     RegisterRequest{Name: "Somebody Else", PhoneNumber: "254787654321"},
			wantErr: ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			phone, err := ValidateRegisterRequest(&tc.req, testDenyList)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if phone != tc.wantPhone {
				t.Errorf("phone = %q, want %q", phone, tc.wantPhone)
			}
		})
	}
}

func TestValidateSelfUpdateRequest(t *testing.T) {
	t.Run("Missing old phone", func(t *testing.T) {
		_, _, err := ValidateSelfUpdateRequest(&SelfUpdateRequest{NewName: "Amy"})
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("Neither field provided", func(t *testing.T) {
		_, _, err := ValidateSelfUpdateRequest(&SelfUpdateRequest{OldPhoneNumber: "254712000111"})
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("Name only leaves phone empty", func(t *testing.T) {
		old, newPhone, err := ValidateSelfUpdateRequest(&SelfUpdateRequest{
			OldPhoneNumber: "+254 712 000 111",
			NewName:        "Amy B",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if old != "254712000111" {
			t.Errorf("old = %q", old)
		}
		if newPhone != "" {
			t.Errorf("newPhone should be empty, got %q", newPhone)
		}
	})

	t.Run("New phone validated before any write", func(t *testing.T) {
		_, _, err := ValidateSelfUpdateRequest(&SelfUpdateRequest{
			OldPhoneNumber: "254712000111",
			NewPhoneNumber: "123",
		})
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
	})

	t.Run("New phone normalized", func(t *testing.T) {
		_, newPhone, err := ValidateSelfUpdateRequest(&SelfUpdateRequest{
			OldPhoneNumber: "254712000111",
			NewPhoneNumber: "+254 (722) 111-222",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if newPhone != "254722111222" {
			t.Errorf("newPhone = %q", newPhone)
		}
	})
}

func TestValidateAdminUpdateRequest(t *testing.T) {
	t.Run("Nothing to update", func(t *testing.T) {
		_, err := ValidateAdminUpdateRequest(&AdminUpdateRequest{})
		if !errors.Is(err, ErrNothingToUpdate) {
			t.Fatalf("expected ErrNothingToUpdate, got %v", err)
		}
	})

	t.Run("Invalid new phone", func(t *testing.T) {
		_, err := ValidateAdminUpdateRequest(&AdminUpdateRequest{PhoneNumber: "99"})
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
	})

	t.Run("Name only", func(t *testing.T) {
		newPhone, err := ValidateAdminUpdateRequest(&AdminUpdateRequest{Name: "Amy"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if newPhone != "" {
			t.Errorf("newPhone should be empty, got %q", newPhone)
		}
	})
}
