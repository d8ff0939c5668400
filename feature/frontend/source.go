package frontend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"time"

	"drone-config/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source is a frontend asset tree. Names are slash-separated and rooted at "/".
type Source interface {
	http.FileSystem
	// Describe names the location for placeholder pages and logs.
	Describe() string
}

// cleanName strips leading slashes and any attempt to climb out of the root.
func cleanName(name string) string {
	return path.Clean("/" + name)[1:]
}

// DirSource serves assets from a local directory.
type DirSource struct {
	http.Dir
}

// NewDirSource creates a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: http.Dir(dir)}
}

func (s *DirSource) Describe() string {
	return string(s.Dir)
}

// BucketSource serves assets from an object storage bucket. Objects are
// streamed from the bucket, never buffered.
type BucketSource struct {
	client  storage.Client
	bucket  string
	prefix  string
	timeout time.Duration
}

// NewBucketSource creates a source reading bucket objects under prefix.
func NewBucketSource(client storage.Client, bucket, prefix string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket, prefix: prefix, timeout: 30 * time.Second}
}

// Open implements http.FileSystem. A missing object yields an error matching fs.ErrNotExist.
func (s *BucketSource) Open(name string) (http.File, error) {
	name = cleanName(name)
	if name == "" {
		return nil, &fs.PathError{Op: "open", Path: "/", Err: fs.ErrNotExist}
	}
	objectName := storage.ObjectName(s.prefix, name)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	// GetObject is lazy; stat first so a missing key surfaces on Open.
	info, err := s.client.StatObject(ctx, s.bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", objectName, err)
	}

	obj, err := s.client.GetObject(context.Background(), s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", objectName, err)
	}
	return &objectFile{ReadCloser: obj, info: objectInfo{name: path.Base(name), info: info}}, nil
}

func (s *BucketSource) Describe() string {
	return "s3://" + path.Join(s.bucket, s.prefix)
}

// objectFile adapts a bucket object to http.File.
type objectFile struct {
	io.ReadCloser
	info objectInfo
}

func (f *objectFile) Seek(offset int64, whence int) (int64, error) {
	if s, ok := f.ReadCloser.(io.Seeker); ok {
		return s.Seek(offset, whence)
	}
	return 0, errors.New("object is not seekable")
}

func (f *objectFile) Readdir(int) ([]fs.FileInfo, error) {
	return nil, errors.New("object is not a directory")
}

func (f *objectFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

type objectInfo struct {
	name string
	info minio.ObjectInfo
}

func (i objectInfo) Name() string       { return i.name }
func (i objectInfo) Size() int64        { return i.info.Size }
func (i objectInfo) Mode() fs.FileMode  { return 0o444 }
func (i objectInfo) ModTime() time.Time { return i.info.LastModified }
func (i objectInfo) IsDir() bool        { return false }
func (i objectInfo) Sys() any           { return nil }
