package admin_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/admin"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces become hyphens", "My Video 1.mp4", "My-Video-1.mp4"},
		{"specials are stripped", "My Video (1).mp4", "My-Video-1.mp4"},
		{"tabs and runs collapse", "a \t b.png", "a-b.png"},
		{"accents are stripped", "entretien télé.mov", "entretien-tl.mov"},
		{"already clean", "clip_01-final.webm", "clip_01-final.webm"},
		{"surrounding whitespace", "  photo.jpg  ", "photo.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := admin.SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestObjectKey(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	got := admin.ObjectKey("videos", "mp_01h000000000000000000000ab", at, "My Video (1).mp4")
	want := fmt.Sprintf("videos/mp_01h000000000000000000000ab/%d-My-Video-1.mp4", at.UnixMilli())
	if got != want {
		t.Errorf("ObjectKey() = %q, want %q", got, want)
	}
}
