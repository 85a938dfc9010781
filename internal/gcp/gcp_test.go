package gcp

import "testing"

func TestGetEnvInt(t *testing.T) {
	t.Setenv("MAX_DOCUMENT_PAGES", "12")
	if got := GetEnvInt("MAX_DOCUMENT_PAGES", 5); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	t.Setenv("MAX_DOCUMENT_PAGES", "many")
	if got := GetEnvInt("MAX_DOCUMENT_PAGES", 5); got != 5 {
		t.Fatalf("expected fallback 5, got %d", got)
	}
	if got := GetEnvInt("UNSET_FOR_TEST_XYZ", 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}```":       `{"a":1}`,
		"  {\"a\":1}  ":           `{"a":1}`,
	}
	for in, want := range tests {
		if got := StripCodeFence(in); got != want {
			t.Fatalf("StripCodeFence(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGCSURI(t *testing.T) {
	if got := GCSURI("uploads", "receipts/a.jpg"); got != "gs://uploads/receipts/a.jpg" {
		t.Fatalf("unexpected uri %q", got)
	}
}
