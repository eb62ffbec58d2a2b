package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// Mirror keeps the last successfully fetched copy of each upstream dump in a
// bucket so a reload can survive a temporary upstream outage.
type Mirror struct {
	client Client
	bucket string
}

// NewMirror creates a Mirror writing to the given bucket.
func NewMirror(client Client, bucket string) *Mirror {
	return &Mirror{client: client, bucket: bucket}
}

func (m *Mirror) objectName(name string) string {
	return "mirror/" + name
}

// Put stores the raw bytes of a dump under mirror/<name>, creating the bucket
// on first use.
func (m *Mirror) Put(ctx context.Context, name string, data []byte) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check mirror bucket: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create mirror bucket: %w", err)
		}
	}

	_, err = m.client.PutObject(ctx, m.bucket, m.objectName(name),
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return fmt.Errorf("failed to mirror %s: %w", name, err)
	}
	return nil
}

// Get retrieves the last mirrored copy of a dump.
func (m *Mirror) Get(ctx context.Context, name string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, m.objectName(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read mirrored %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read mirrored %s: %w", name, err)
	}
	return data, nil
}
