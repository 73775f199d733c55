// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// ErrFileRead is returned when a locally selected file cannot be read.
// No partial content is ever returned together with it.
var ErrFileRead = errors.New("failed to read file")

// EncodeFile reads the whole file at path and returns its content as a
// base64 payload suitable for embedding in a JSON request body.
//
// Files that already contain a data URL (data:<mime>;base64,<payload>) are
// not re-encoded: only the payload after the first comma is returned.
func EncodeFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileRead, path)
	}

	if payload, ok := dataURLPayload(raw); ok {
		return payload, nil
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// StripDataURL returns the part of s after the first comma, or s unchanged
// when no comma is present. For a data URL this is exactly the base64
// payload without the data:<mime>;base64, prefix.
func StripDataURL(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		return s[i+1:]
	}
	return s
}

func dataURLPayload(raw []byte) (string, bool) {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "data:") || !strings.Contains(s, ",") {
		return "", false
	}
	return StripDataURL(s), true
}

// DetectContentType resolves the MIME type of path from its extension.
// Unknown extensions fall back to application/octet-stream.
func DetectContentType(path string) string {
	if mediaType := mime.TypeByExtension(filepath.Ext(path)); mediaType != "" {
		return mediaType
	}
	return "application/octet-stream"
}
