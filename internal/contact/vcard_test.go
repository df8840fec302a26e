package contact

import (
	"errors"
	"strings"
	"testing"
)

func TestExportVCardEmpty(t *testing.T) {
	_, err := ExportVCard(nil, " 🔥")
	if !errors.Is(err, ErrNoContacts) {
		t.Fatalf("expected ErrNoContacts, got %v", err)
	}

	_, err = ExportVCard([]VCardEntry{}, " 🔥")
	if !errors.Is(err, ErrNoContacts) {
		t.Fatalf("expected ErrNoContacts, got %v", err)
	}
}

func TestExportVCardSingleBlock(t *testing.T) {
	blob, err := ExportVCard([]VCardEntry{
		{Name: "Amy", PhoneNumber: "254712000111"},
	}, " 🔥")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"FN:Amy 🔥\n" +
		"N:Amy 🔥;;;;\n" +
		"TEL;TYPE=CELL:254712000111\n" +
		"END:VCARD\n" +
		"\n"

	if blob != want {
		t.Errorf("vCard mismatch.\nWant:\n%q\nGot:\n%q", want, blob)
	}
}

func TestExportVCardPreservesOrder(t *testing.T) {
	entries := []VCardEntry{
		{Name: "First", PhoneNumber: "1111111111"},
		{Name: "Second", PhoneNumber: "2222222222"},
		{Name: "Third", PhoneNumber: "3333333333"},
	}

	blob, err := ExportVCard(entries, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 每筆聯絡人恰好一個完整區塊，且依傳入（建立時間）順序輸出
	if got := strings.Count(blob, "BEGIN:VCARD\n"); got != len(entries) {
		t.Errorf("expected %d blocks, got %d", len(entries), got)
	}
	if got := strings.Count(blob, "END:VCARD\n\n"); got != len(entries) {
		t.Errorf("every block should end with a blank line, got %d", got)
	}

	first := strings.Index(blob, "TEL;TYPE=CELL:1111111111")
	second := strings.Index(blob, "TEL;TYPE=CELL:2222222222")
	third := strings.Index(blob, "TEL;TYPE=CELL:3333333333")
	if !(first < second && second < third) {
		t.Errorf("blocks out of order: %d, %d, %d", first, second, third)
	}
}

func TestExportVCardNoEscaping(t *testing.T) {
	// 名稱中的分號與逗號必須原樣輸出（與既有部署逐位元相容）
	blob, err := ExportVCard([]VCardEntry{
		{Name: "Smith; John, Jr.", PhoneNumber: "254712000111"},
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(blob, "FN:Smith; John, Jr.\n") {
		t.Errorf("special characters must not be escaped, got:\n%s", blob)
	}
}
