package checks

import (
	"context"

	"drone-config/core/storage"
)

// Storage statuses.
const (
	StorageDisabled = "disabled"
	StorageOK       = "ok"
	StorageMissing  = "missing"
	StorageError    = "error"
)

// StorageReport describes the reachability of the frontend bucket.
type StorageReport struct {
	Status string `json:"status"`
	Bucket string `json:"bucket,omitempty"`
	Error  string `json:"error,omitempty"`
}

// CheckStorage reports whether bucket exists. A nil client means storage is disabled.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) StorageReport {
	if client == nil {
		return StorageReport{Status: StorageDisabled}
	}

	exists, err := client.BucketExists(ctx, bucket)
	switch {
	case err != nil:
		return StorageReport{Status: StorageError, Bucket: bucket, Error: err.Error()}
	case !exists:
		return StorageReport{Status: StorageMissing, Bucket: bucket}
	default:
		return StorageReport{Status: StorageOK, Bucket: bucket}
	}
}
