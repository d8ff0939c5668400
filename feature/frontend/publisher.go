package frontend

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"drone-config/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher uploads a local frontend build into the bucket.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewPublisher creates a new publisher.
func NewPublisher(client storage.Client, bucket, prefix string, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Publish creates the bucket if needed and uploads every regular file under dir.
// It returns the number of uploaded objects.
func (p *Publisher) Publish(ctx context.Context, dir string) (int, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return 0, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		p.logger.Info("Creating bucket", zap.String("bucket", p.bucket))
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return 0, fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
	}

	uploaded := 0
	err = filepath.WalkDir(dir, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return err
		}
		objectName := storage.ObjectName(p.prefix, filepath.ToSlash(rel))
		if err := p.upload(ctx, file, objectName); err != nil {
			return err
		}
		uploaded++
		p.logger.Debug("Uploaded asset", zap.String("object", objectName))
		return nil
	})
	if err != nil {
		return uploaded, fmt.Errorf("failed to publish %s: %w", dir, err)
	}
	return uploaded, nil
}

func (p *Publisher) upload(ctx context.Context, file, objectName string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	contentType := mime.TypeByExtension(filepath.Ext(file))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = p.client.PutObject(ctx, p.bucket, objectName, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return nil
}
