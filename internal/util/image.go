package util

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ImageBytesToURL converts image bytes to a data URL (JPEG base64).
func ImageBytesToURL(b []byte) string {
	if len(b) > 0 {
		return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(b)
	}
	return ""
}

// ParseImageDataURL decodes a base64 image data URL, returning its content type
// and bytes.
func ParseImageDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("util: invalid data URL %q", truncate(dataURL))
	}
	ct, contents, ok := strings.Cut(rest, ";")
	if !ok {
		return "", nil, fmt.Errorf("util: invalid data URL %q", truncate(dataURL))
	}
	if !strings.HasPrefix(ct, "image/") {
		return "", nil, fmt.Errorf("util: only image data URLs supported, got %q", ct)
	}
	b64, ok := strings.CutPrefix(contents, "base64,")
	if !ok {
		return "", nil, fmt.Errorf("util: only base64 data URL supported, got %q", truncate(dataURL))
	}
	b, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", nil, fmt.Errorf("util: decoding base64 data URL: %w", err)
	}
	return ct, b, nil
}

func truncate(s string) string {
	if len(s) > 32 {
		return s[:32] + "..."
	}
	return s
}
