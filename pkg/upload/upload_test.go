package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAllowed(t *testing.T) {
	s := &DiskStore{}

	tests := []struct {
		filename string
		want     bool
	}{
		{"rav4.jpg", true},
		{"rav4.JPEG", true},
		{"logo.png", true},
		{"anim.gif", true},
		{"report.pdf", false},
		{"script.sh", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := s.Allowed(tt.filename); got != tt.want {
			t.Errorf("Allowed(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStore(dir, "/static/cars")
	if err != nil {
		t.Fatalf("NewDiskStore() error = %v", err)
	}

	url, err := s.Save(strings.NewReader("fake image bytes"), "rav4.jpg")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasPrefix(url, "/static/cars/") || !strings.HasSuffix(url, ".jpg") {
		t.Errorf("Save() url = %q, want /static/cars/<uuid>.jpg", url)
	}

	name := filepath.Base(url)
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	s, err := NewDiskStore(t.TempDir(), "/static/cars")
	if err != nil {
		t.Fatalf("NewDiskStore() error = %v", err)
	}

	if _, err := s.Save(strings.NewReader("x"), "payload.exe"); err == nil {
		t.Error("Save() with .exe extension succeeded, want error")
	}
}
