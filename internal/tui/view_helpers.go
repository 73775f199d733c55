package tui

import (
	"path/filepath"

	"github.com/MKhiriev/go-journal-keeper/internal/utils"
)

const uiDivider = "──────────────────────────────────────────────────────"

func filenameFromPath(path string) string {
	return filepath.Base(path)
}

func filetypeFromPath(path string) string {
	return utils.DetectContentType(path)
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// firstLine returns v up to the first newline, so multi-line entries render
// as a single list row.
func firstLine(v string) string {
	for i, r := range v {
		if r == '\n' {
			return v[:i]
		}
	}
	return v
}
