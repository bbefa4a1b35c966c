package recordid_test

import (
	"strings"
	"testing"

	"github.com/Tomyshh/frank-melloul-website/utils/recordid"
)

func TestNew(t *testing.T) {
	id := recordid.New()
	if !strings.HasPrefix(id, "mp_") {
		t.Fatalf("New() = %q, want mp_ prefix", id)
	}
	if len(id) != 3+26 {
		t.Errorf("New() length = %d, want %d", len(id), 3+26)
	}
	if id != strings.ToLower(id) {
		t.Errorf("New() = %q, want lowercase", id)
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := recordid.New()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"generated id", recordid.New(), true},
		{"missing prefix", "01h000000000000000000000ab", false},
		{"wrong prefix", "vx_01h000000000000000000000ab", false},
		{"garbage", "mp_not-a-ulid", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recordid.IsValid(tt.value); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
