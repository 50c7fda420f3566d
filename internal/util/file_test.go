package util

import (
	"strings"
	"testing"
)

func TestBuildStorageKeyHidesOriginalName(t *testing.T) {
	key := BuildStorageKey("documents", "تقرير الفصل الأول.pdf")

	if !strings.HasPrefix(key, "documents/") {
		t.Fatalf("key missing directory prefix: %s", key)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Fatalf("key lost the extension: %s", key)
	}
	if strings.Contains(key, "تقرير") || strings.Contains(key, " ") {
		t.Fatalf("original filename leaked into key: %s", key)
	}
}

func TestBuildStorageKeyUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		key := BuildStorageKey("images", "a.png")
		if seen[key] {
			t.Fatalf("duplicate key generated: %s", key)
		}
		seen[key] = true
	}
}

func TestHasAllowedExtension(t *testing.T) {
	if !HasAllowedExtension("Lesson-Plan.PDF", AllowedDocumentExtensions) {
		t.Fatalf("extension check should be case-insensitive")
	}
	if HasAllowedExtension("script.exe", AllowedDocumentExtensions) {
		t.Fatalf("exe accepted as document")
	}
	if HasAllowedExtension("archive", AllowedDocumentExtensions) {
		t.Fatalf("extensionless file accepted")
	}
}
