// Copyright (c) 2026 Our Philly. All rights reserved.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ourphilly/ourphilly/internal/platform/storage"
)

func TestResolver_PublicURL(t *testing.T) {
	resolver := storage.NewResolver("https://storage.ourphilly.org/", "big-board")

	tests := []struct {
		name string
		key  string
		want string
	}{
		{"plain_key", "abc.jpg", "https://storage.ourphilly.org/storage/v1/object/public/big-board/abc.jpg"},
		{"nested_key", "2025/07/flyer.png", "https://storage.ourphilly.org/storage/v1/object/public/big-board/2025/07/flyer.png"},
		{"leading_slash", "/abc.jpg", "https://storage.ourphilly.org/storage/v1/object/public/big-board/abc.jpg"},
		{"empty_key", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.PublicURL(tt.key))
		})
	}
}

func TestResolver_PublicURLIn(t *testing.T) {
	resolver := storage.NewResolver("https://storage.ourphilly.org", "big-board")

	url := resolver.PublicURLIn("group-avatars", "phl-runners.jpg")
	assert.Equal(t, "https://storage.ourphilly.org/storage/v1/object/public/group-avatars/phl-runners.jpg", url)
}
