// Package uploads stores visitor-facing image files and hands back the
// URL the site serves them from.
package uploads

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store saves an uploaded file and returns its public URL.
type Store interface {
	Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
}

// objectKey builds a collision-free key from the original filename,
// keeping the extension so content type survives.
func objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = sanitize(base)
	if base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%s-%s%s", uuid.NewString(), base, ext)
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
