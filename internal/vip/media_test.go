package vip

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateMediaType(t *testing.T) {
	testCases := []struct {
		name         string
		declaredType string
		mime         string
		wantErr      bool
	}{
		{"Photo jpeg", TypePhoto, "image/jpeg", false},
		{"Photo png", TypePhoto, "image/png", false},
		{"Photo webp", TypePhoto, "image/webp", false},
		{"Photo rejects gif", TypePhoto, "image/gif", true},
		{"Video mp4", TypeVideo, "video/mp4", false},
		{"Video webm", TypeVideo, "video/webm", false},
		{"Video rejects avi", TypeVideo, "video/x-msvideo", true},
		{"Audio mpeg", TypeAudio, "audio/mpeg", false},
		{"Audio mp3", TypeAudio, "audio/mp3", false},
		{"Audio ogg", TypeAudio, "audio/ogg", false},
		{"Audio rejects wav", TypeAudio, "audio/wav", true},
		{"Unknown declared type", "document", "application/pdf", true},
		{"Cross type mismatch", TypePhoto, "video/mp4", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateMediaType(tc.declaredType, tc.mime)
			if tc.wantErr && !errors.Is(err, ErrInvalidMediaType) {
				t.Errorf("expected ErrInvalidMediaType, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolveMIME(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	t.Run("Declared type wins", func(t *testing.T) {
		if got := ResolveMIME("image/jpeg", pngHeader); got != "image/jpeg" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Sniffs when declared missing", func(t *testing.T) {
		if got := ResolveMIME("", pngHeader); got != "image/png" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Sniffs past octet-stream", func(t *testing.T) {
		if got := ResolveMIME("application/octet-stream", pngHeader); got != "image/png" {
			t.Errorf("got %q", got)
		}
	})
}

func TestDataURI(t *testing.T) {
	uri := DataURI("image/png", []byte("hello"))

	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("bad prefix: %q", uri)
	}
	if !strings.HasSuffix(uri, "aGVsbG8=") {
		t.Errorf("bad payload: %q", uri)
	}
}

func TestDataURIEmptyFile(t *testing.T) {
	if got := DataURI("audio/ogg", nil); got != "data:audio/ogg;base64," {
		t.Errorf("got %q", got)
	}
}
