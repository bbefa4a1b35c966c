package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Tomyshh/frank-melloul-website/internal/config"
)

func TestPublicBase(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			"path style with endpoint",
			config.Config{S3Endpoint: "http://minio:9000", S3Bucket: "media", S3UsePathStyle: true},
			"http://minio:9000/media",
		},
		{
			"public endpoint wins",
			config.Config{S3Endpoint: "http://minio:9000", S3PublicEndpoint: "https://cdn.melloul.test", S3Bucket: "media", S3UsePathStyle: true},
			"https://cdn.melloul.test/media",
		},
		{
			"virtual host style",
			config.Config{S3PublicEndpoint: "https://media.melloul.test/", S3Bucket: "media"},
			"https://media.melloul.test",
		},
		{
			"bare aws",
			config.Config{S3Bucket: "media", S3Region: "eu-west-3"},
			"https://media.s3.eu-west-3.amazonaws.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := publicBase(&tt.cfg); got != tt.want {
				t.Errorf("publicBase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestS3Storage_DisabledWithoutConfiguration(t *testing.T) {
	cfg := &config.Config{}
	store, err := NewS3Storage(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewS3Storage() error = %v", err)
	}

	if got := store.PublicURL("videos/a.mp4"); got != "" {
		t.Errorf("PublicURL() on disabled storage = %q, want empty", got)
	}
	if err := store.Upload(context.Background(), "k", strings.NewReader("x"), 1, "text/plain"); err == nil {
		t.Error("Upload() on disabled storage should fail with a diagnosed error")
	}
	if err := store.Health(context.Background()); err != nil {
		t.Errorf("Health() on disabled storage = %v, want nil", err)
	}
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		LocalStoragePath:    dir,
		LocalStorageBaseURL: "http://localhost:8290/media/",
	}
	store, err := NewLocalStorage(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	key := "videos/mp_x/1-clip.mp4"
	if err := store.Upload(context.Background(), key, strings.NewReader("payload"), 7, "video/mp4"); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("stored content = %q", data)
	}

	if got, want := store.PublicURL(key), "http://localhost:8290/media/videos/mp_x/1-clip.mp4"; got != want {
		t.Errorf("PublicURL() = %q, want %q", got, want)
	}

	if err := store.Remove(context.Background(), []string{key, "videos/never-existed.mp4"}); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(key))); !os.IsNotExist(err) {
		t.Error("Remove() left the file behind")
	}
}

func TestLocalStorage_DisabledWithoutPath(t *testing.T) {
	store, err := NewLocalStorage(&config.Config{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}
	if err := store.Upload(context.Background(), "k", strings.NewReader("x"), 1, "text/plain"); err == nil {
		t.Error("Upload() on disabled storage should fail with a diagnosed error")
	}
	if got := store.PublicURL("k"); got != "" {
		t.Errorf("PublicURL() = %q, want empty", got)
	}
}
