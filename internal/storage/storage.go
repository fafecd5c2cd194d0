package storage

import (
	"context"
	"time"
)

// ObjectInfo describes a stored thumbnail object.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified *time.Time
}

// Service resolves catalog image references against remote object
// storage. The catalog only carries object keys; URLs are minted on
// demand and expire.
type Service interface {
	ObjectURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error)
	ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)
}

// MissingKeys returns the keys that have no matching object, preserving
// input order. Used at startup to flag catalog image references that
// were never uploaded.
func MissingKeys(objects []ObjectInfo, keys []string) []string {
	present := make(map[string]struct{}, len(objects))
	for _, obj := range objects {
		present[obj.Key] = struct{}{}
	}

	var missing []string
	for _, key := range keys {
		if _, ok := present[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
