package object

import (
	"context"
	"net/url"
	"strings"
)

// Storage defines the object storage operations the pipeline relies on.
// Implementations: MinIO (default), GCS.
type Storage interface {
	// GetFile downloads an object in a single attempt.
	GetFile(ctx context.Context, bucket string, filePath string) ([]byte, error)
	// GetBucket returns the default bucket of the storage backend.
	GetBucket() string
}

// ResolveStoragePath turns the source location recorded on a document into
// an object path inside bucket. The location is either a bare object path or
// a URL that embeds the bucket as a path segment, e.g.
// https://storage.example.com/object/public/<bucket>/<path>?token=...
func ResolveStoragePath(location string, bucket string) string {
	location = strings.TrimSpace(location)

	p := stripQuery(location)
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
		if decoded, err := url.PathUnescape(u.EscapedPath()); err == nil {
			p = decoded
		}
		// gs://<bucket>/<path>, s3://<bucket>/<path>
		if u.Host == bucket {
			return strings.TrimPrefix(p, "/")
		}
	}

	p = "/" + strings.TrimPrefix(p, "/")
	if bucket != "" {
		segment := "/" + bucket + "/"
		if i := strings.Index(p, segment); i >= 0 {
			return p[i+len(segment):]
		}
	}

	return strings.TrimPrefix(p, "/")
}

func stripQuery(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		return p[:i]
	}
	return p
}
