package gcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// SaveToGCSAtomically writes content to a GCS object only if it doesn't already exist.
// An existing object is not an error: re-delivered events must be idempotent.
func SaveToGCSAtomically(ctx context.Context, bucket *storage.BucketHandle, objectName, contentType string, content []byte) error {
	writer := bucket.Object(objectName).If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := io.Copy(writer, bytes.NewReader(content)); err != nil {
		_ = writer.Close()
		if isPreconditionFailed(err) {
			slog.Info("Object already exists, skipping write.", "gcsObject", objectName)
			return nil
		}
		return fmt.Errorf("failed to write to GCS: %w", err)
	}

	if err := writer.Close(); err != nil {
		if isPreconditionFailed(err) {
			slog.Info("Object already exists, skipping write.", "gcsObject", objectName)
			return nil
		}
		return fmt.Errorf("failed to finalize GCS write: %w", err)
	}
	return nil
}

func isPreconditionFailed(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusPreconditionFailed
}

// GCSURI formats a gs:// URI.
func GCSURI(bucket, object string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, object)
}

// StorageDownloader streams objects to local files.
type StorageDownloader struct {
	client *storage.Client
}

func NewStorageDownloader(client *storage.Client) *StorageDownloader {
	return &StorageDownloader{client: client}
}

// Download copies gs://bucket/object to destPath.
func (d *StorageDownloader) Download(ctx context.Context, bucket, object, destPath string) error {
	reader, err := d.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return fmt.Errorf("failed to get GCS object reader for %s: %w", GCSURI(bucket, object), err)
	}
	defer reader.Close()
	localFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file at %s: %w", destPath, err)
	}
	defer localFile.Close()
	if _, err := io.Copy(localFile, reader); err != nil {
		return fmt.Errorf("failed to copy GCS object to local file: %w", err)
	}
	return nil
}

// BucketArchive stores write-once objects in a single bucket.
type BucketArchive struct {
	bucket *storage.BucketHandle
	name   string
}

func NewBucketArchive(client *storage.Client, bucket string) *BucketArchive {
	return &BucketArchive{bucket: client.Bucket(bucket), name: bucket}
}

// Archive saves content as JSON under objectName and returns its URI.
func (a *BucketArchive) Archive(ctx context.Context, objectName string, content []byte) (string, error) {
	if err := SaveToGCSAtomically(ctx, a.bucket, objectName, "application/json", content); err != nil {
		return "", err
	}
	return GCSURI(a.name, objectName), nil
}
