// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package file

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
)

type IO struct {
	storage *storage.Client
	bucket  string
}

func NewIO(storage *storage.Client, bucket string) *IO {
	return &IO{
		storage: storage,
		bucket:  bucket,
	}
}

// WriteFile writes data to path in the public bucket and returns its URL.
func (io *IO) WriteFile(ctx context.Context, path string, contentType string, data []byte) (string, error) {
	wc := io.storage.Bucket(io.bucket).Object(path).NewWriter(ctx)
	defer func() {
		_ = wc.Close()
	}()
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		return "", fmt.Errorf("file: writing file: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("file: closing writer: %w", err)
	}
	return io.URL(path), nil
}

// DeleteURL deletes the object at a URL returned by WriteFile. URLs outside the
// bucket and objects that no longer exist are ignored.
func (io *IO) DeleteURL(ctx context.Context, url string) error {
	path, ok := strings.CutPrefix(url, io.URL(""))
	if !ok || path == "" {
		return nil
	}
	if err := io.storage.Bucket(io.bucket).Object(path).Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("file: deleting file: %w", err)
	}
	return nil
}

// URL returns the public URL of path.
func (io *IO) URL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", io.bucket, path)
}
