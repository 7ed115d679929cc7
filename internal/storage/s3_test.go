package storage

import (
	"strings"
	"testing"
)

func TestNew_Disabled(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"empty", Options{}},
		{"no bucket", Options{Endpoint: "https://s3.local", AccessKey: "a", SecretKey: "s"}},
		{"no credentials", Options{Endpoint: "https://s3.local", Bucket: "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts)
			if err != nil || c != nil {
				t.Errorf("New() = %v, %v; want nil, nil", c, err)
			}
		})
	}
}

func TestNew_RequiresScheme(t *testing.T) {
	_, err := New(Options{Endpoint: "s3.local", AccessKey: "a", SecretKey: "s", Bucket: "b"})
	if err == nil {
		t.Fatal("expected error for endpoint without scheme")
	}
}

func TestFileURL(t *testing.T) {
	base := Options{Endpoint: "https://s3.local/", Region: "us-east-1", AccessKey: "a", SecretKey: "s", Bucket: "media"}

	c, err := New(base)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.FileURL("categories/x.jpg"); got != "https://s3.local/media/categories/x.jpg" {
		t.Errorf("path-style URL = %q", got)
	}

	base.PublicURL = "https://cdn.shop.local/"
	c, err = New(base)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.FileURL("categories/x.jpg"); got != "https://cdn.shop.local/categories/x.jpg" {
		t.Errorf("public URL = %q", got)
	}
}

func TestCategoryImageKey(t *testing.T) {
	key := CategoryImageKey("Mobile Phones", "Front View.PNG")

	if !strings.HasPrefix(key, "categories/mobile-phones/") {
		t.Errorf("key %q should live under categories/mobile-phones/", key)
	}
	if !strings.HasSuffix(key, "-front-view.png") {
		t.Errorf("key %q should end with the slugged file name", key)
	}
	if other := CategoryImageKey("Mobile Phones", "Front View.PNG"); other == key {
		t.Error("keys for identical uploads should differ")
	}

	if got := CategoryImageKey("", "a.jpg"); !strings.HasPrefix(got, "categories/uncategorized/") {
		t.Errorf("empty category name: got %q", got)
	}
}
