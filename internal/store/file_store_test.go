package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/avc-dev/url-registry/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_NewFileStore(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "test_urls.json")

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)
	require.NotNil(t, fs)

	// the file is not created until something is written
	_, err = os.Stat(filePath)
	assert.True(t, os.IsNotExist(err), "File should not exist when FileStore is created without data")
}

func TestFileStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "test_urls.json")
	ctx := context.Background()

	fs1, err := NewFileStore(filePath)
	require.NoError(t, err)

	testData := []model.URLMapping{
		{Code: "code1", OriginalURL: "https://example.com/1"},
		{Code: "code2", OriginalURL: "https://example.com/2", Owner: "alice"},
		{Code: "code3", OriginalURL: "https://example.com/3"},
	}
	for _, m := range testData {
		require.NoError(t, fs1.InsertURL(ctx, m))
	}
	require.NoError(t, fs1.InsertUser(ctx, model.User{Username: "alice", HashedPassword: "hash", URLLimit: 20, Admin: true}))
	require.NoError(t, fs1.DeleteURL(ctx, "code3"))
	require.NoError(t, fs1.UpdateUserField(ctx, "alice", model.FieldURLLimit, 7))

	// a second store over the same file sees the same state
	fs2, err := NewFileStore(filePath)
	require.NoError(t, err)

	for _, m := range testData[:2] {
		got, err := fs2.GetURL(ctx, m.Code)
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err = fs2.GetURL(ctx, "code3")
	assert.ErrorIs(t, err, ErrNotFound)

	user, err := fs2.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.HashedPassword, "hash must survive a reload")
	assert.Equal(t, 7, user.URLLimit)
	assert.True(t, user.Admin)
}

func TestFileStore_InsertExistingKey(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "test_urls.json")
	ctx := context.Background()

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)

	require.NoError(t, fs.InsertURL(ctx, model.URLMapping{Code: "abc123", OriginalURL: "https://example.com/1"}))

	err = fs.InsertURL(ctx, model.URLMapping{Code: "abc123", OriginalURL: "https://example.com/2"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	got, err := fs.GetURL(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com/1"), got.OriginalURL)
}

func TestFileStore_LoadFromExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "test_urls.json")

	jsonData := `{
  "urls": [
    {"short_code": "abc123", "original_url": "https://example.com"},
    {"short_code": "def456", "original_url": "https://google.com", "owner": "bob"}
  ],
  "users": [
    {"username": "bob", "hashed_password": "$2a$04$x", "url_limit": 3, "admin": false}
  ]
}`
	require.NoError(t, os.WriteFile(filePath, []byte(jsonData), 0644))

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)

	ctx := context.Background()
	url1, err := fs.GetURL(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com"), url1.OriginalURL)

	url2, err := fs.GetURL(ctx, "def456")
	require.NoError(t, err)
	assert.Equal(t, "bob", url2.Owner)

	count, err := fs.CountURLsByOwner(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	user, err := fs.GetUser(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 3, user.URLLimit)
}

func TestFileStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "test_urls.json")
	require.NoError(t, os.WriteFile(filePath, []byte(""), 0644))

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)
	require.NotNil(t, fs)

	_, err = fs.GetURL(context.Background(), "any")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_CorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "test_urls.json")
	require.NoError(t, os.WriteFile(filePath, []byte("{not json"), 0644))

	_, err := NewFileStore(filePath)

	assert.Error(t, err)
}

// TestFileStore_WriteFailureRollsBack checks that an unwritable file is
// reported as ErrUnavailable and leaves memory unchanged
func TestFileStore_WriteFailureRollsBack(t *testing.T) {
	tmpDir := t.TempDir()
	dataDir := filepath.Join(tmpDir, "data")
	require.NoError(t, os.Mkdir(dataDir, 0755))
	ctx := context.Background()

	fs, err := NewFileStore(filepath.Join(dataDir, "urls.json"))
	require.NoError(t, err)
	require.NoError(t, fs.InsertURL(ctx, model.URLMapping{Code: "kept", OriginalURL: "https://example.com"}))

	// removing the directory makes every later save fail
	require.NoError(t, os.RemoveAll(dataDir))

	err = fs.InsertURL(ctx, model.URLMapping{Code: "lost", OriginalURL: "https://example.com"})
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = fs.GetURL(ctx, "lost")
	assert.ErrorIs(t, err, ErrNotFound, "failed insert must be rolled back")

	err = fs.DeleteURL(ctx, "kept")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = fs.GetURL(ctx, "kept")
	assert.NoError(t, err, "failed delete must be rolled back")
}
