// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/curioswitch/peakplates/internal/file"
)

// ErrUndecodable is returned when image bytes cannot be decoded in any way.
var ErrUndecodable = errors.New("image: undecodable image")

// Options configures a Writer.
type Options struct {
	// MaxWidth is the maximum width of stored images. Wider images are scaled down.
	MaxWidth int

	// MaxEmbeddedBytes is the largest encoded image kept inside a document.
	// Larger images are written to the public bucket.
	MaxEmbeddedBytes int
}

type Writer struct {
	io   *file.IO
	opts Options
}

func NewWriter(io *file.IO, opts Options) *Writer {
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = 1280
	}
	if opts.MaxEmbeddedBytes <= 0 {
		opts.MaxEmbeddedBytes = 512 * 1024
	}
	return &Writer{
		io:   io,
		opts: opts,
	}
}

// Stored is an image ready to be referenced by a document. Exactly one of Data
// and URL is set, or neither if the image was omitted.
type Stored struct {
	Data []byte
	URL  string
}

// Store normalizes an uploaded image to JPEG and either returns it for
// embedding or writes it to the public bucket under dir. Images that cannot be
// decoded are omitted.
func (w *Writer) Store(ctx context.Context, dir string, data []byte) (Stored, error) {
	jpg, err := Normalize(data, w.opts.MaxWidth)
	if err != nil {
		if errors.Is(err, ErrUndecodable) {
			slog.WarnContext(ctx, "image: omitting undecodable image", "dir", dir, "size", len(data))
			return Stored{}, nil
		}
		return Stored{}, err
	}
	if len(jpg) <= w.opts.MaxEmbeddedBytes {
		return Stored{Data: jpg}, nil
	}

	url, err := w.io.WriteFile(ctx, fmt.Sprintf("%s/%s.jpg", dir, uuid.NewString()), "image/jpeg", jpg)
	if err != nil {
		return Stored{}, fmt.Errorf("image: writing image to file io: %w", err)
	}
	return Stored{URL: url}, nil
}

// Normalize decodes an image, scales it down to maxWidth and encodes it as
// JPEG. Decoding is first attempted in memory and then through a temporary
// file, which lets imaging apply EXIF orientation from the file.
func Normalize(data []byte, maxWidth int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		img, err = decodeViaFile(data)
		if err != nil {
			return nil, ErrUndecodable
		}
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("image: encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeViaFile(data []byte) (image.Image, error) {
	f, err := os.CreateTemp("", "peakplates-image-*")
	if err != nil {
		return nil, fmt.Errorf("image: creating temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("image: writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("image: closing temp file: %w", err)
	}
	img, err := imaging.Open(f.Name(), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image: opening temp file: %w", err)
	}
	return img, nil
}
