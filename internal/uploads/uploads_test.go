package uploads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectKeySanitizesName(t *testing.T) {
	key := objectKey("../../etc/passwd weird name!.JPG")
	require.True(t, strings.HasSuffix(key, ".jpg"))
	require.NotContains(t, key, "/")
	require.NotContains(t, key, " ")
	require.NotContains(t, key, "!")
}

func TestObjectKeyIsUnique(t *testing.T) {
	a := objectKey("photo.png")
	b := objectKey("photo.png")
	require.NotEqual(t, a, b)
}

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, "")
	require.NoError(t, err)

	body := strings.NewReader("fake image bytes")
	url, err := s.Save(context.Background(), "beach.jpg", "image/jpeg", body.Size(), body)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"))

	name := strings.TrimPrefix(url, "/uploads/")
	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	require.Equal(t, "fake image bytes", string(raw))
}
