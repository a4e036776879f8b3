package object

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestResolveStoragePath(t *testing.T) {
	c := qt.New(t)

	testCases := []struct {
		name     string
		location string
		want     string
	}{
		{
			name:     "bare path",
			location: "tenant-1/handbook.txt",
			want:     "tenant-1/handbook.txt",
		},
		{
			name:     "bare path with leading bucket",
			location: "/knowledge-base/tenant-1/handbook.txt",
			want:     "tenant-1/handbook.txt",
		},
		{
			name:     "public URL",
			location: "https://storage.example.com/storage/v1/object/public/knowledge-base/tenant-1/handbook.txt",
			want:     "tenant-1/handbook.txt",
		},
		{
			name:     "signed URL with query",
			location: "https://storage.example.com/object/sign/knowledge-base/tenant-1/hand%20book.md?token=abc",
			want:     "tenant-1/hand book.md",
		},
		{
			name:     "bucket as host",
			location: "gs://knowledge-base/tenant-1/handbook.txt",
			want:     "tenant-1/handbook.txt",
		},
		{
			name:     "URL without bucket segment",
			location: "https://cdn.example.com/files/handbook.txt",
			want:     "files/handbook.txt",
		},
		{
			name:     "surrounding whitespace",
			location: "  tenant-1/handbook.txt\n",
			want:     "tenant-1/handbook.txt",
		},
	}

	for _, tc := range testCases {
		c.Run(tc.name, func(c *qt.C) {
			c.Check(ResolveStoragePath(tc.location, "knowledge-base"), qt.Equals, tc.want)
		})
	}
}
