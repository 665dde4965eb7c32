// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package storage resolves object-storage keys into public URLs.

Big-board posts persist only the storage key of their uploaded flyer image,
never a full URL. The key is resolved to a public bucket URL at read time,
mirroring how the upload pipeline writes objects.

Architecture:

  - Resolver: Pure URL construction, no network calls.
  - Buckets: Each content family (big-board flyers, group avatars) has its
    own bucket under the same base URL.
*/
package storage

import "strings"

// Resolver builds public URLs for objects in Supabase-compatible buckets.
type Resolver struct {
	baseURL       string
	defaultBucket string
}

// NewResolver constructs a Resolver.
//
// baseURL is the storage host root (e.g. "https://storage.ourphilly.org"),
// defaultBucket the bucket used when a call site does not name one.
func NewResolver(baseURL, defaultBucket string) *Resolver {
	return &Resolver{
		baseURL:       strings.TrimRight(baseURL, "/"),
		defaultBucket: defaultBucket,
	}
}

// PublicURL resolves a storage key in the default bucket.
//
// An empty key resolves to an empty string so callers can treat "no image"
// uniformly without probing.
func (r *Resolver) PublicURL(key string) string {
	return r.PublicURLIn(r.defaultBucket, key)
}

// PublicURLIn resolves a storage key in a named bucket.
func (r *Resolver) PublicURLIn(bucket, key string) string {
	if key == "" {
		return ""
	}

	// Keys are stored without a leading slash; tolerate one anyway.
	key = strings.TrimLeft(key, "/")

	return r.baseURL + "/storage/v1/object/public/" + bucket + "/" + key
}
