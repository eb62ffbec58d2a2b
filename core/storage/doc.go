// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the source mirror needs: bucket checks, uploads and downloads.
// The abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Mirror
//
// Mirror stores the last successfully fetched copy of each upstream dump
// (proto text, game-master JSON, locale JSON) under mirror/<name> in the
// configured bucket. core/remote falls back to the mirrored copy when the
// upstream fetch fails, so a catalog reload degrades gracefully during
// upstream outages.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	mirror := storage.NewMirror(client, config.Bucket)
//	err = mirror.Put(ctx, "gamemaster.json", raw)
package storage
