// Package storage wraps the MinIO client behind a small interface.
//
// The bucket holds kitchen datasets: YAML or JSON documents with the catalog,
// recipes and inventories that the seed and shopping-list commands read. The
// Client interface keeps the MinIO dependency mockable (core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	ok, err := storage.ObjectExists(ctx, client, cfg.Storage.Bucket, cfg.Storage.DatasetObject)
package storage
