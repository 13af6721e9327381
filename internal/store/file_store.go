package store

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"github.com/avc-dev/url-registry/internal/model"
)

// FileStore is a Store persisted to a JSON file.
// Mutations are serialized so the file always reflects a state the
// memory store actually passed through; if the file cannot be written the
// change is rolled back and ErrUnavailable is returned.
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	mu          sync.Mutex
}

// NewFileStore loads filePath if it exists
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	urls, users, err := fs.fileStorage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}
	fs.store.InitializeWith(urls, users)

	return fs, nil
}

func (fs *FileStore) persist() error {
	urls, users := fs.store.snapshot()
	if err := fs.fileStorage.Save(urls, users); err != nil {
		return unavailable(err)
	}
	return nil
}

func (fs *FileStore) InsertURL(ctx context.Context, mapping model.URLMapping) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.store.InsertURL(ctx, mapping); err != nil {
		return err
	}

	if err := fs.persist(); err != nil {
		// nothing else can touch the key while mu is held
		_ = fs.store.DeleteURL(ctx, mapping.Code)
		return err
	}

	return nil
}

func (fs *FileStore) GetURL(ctx context.Context, code model.Code) (model.URLMapping, error) {
	return fs.store.GetURL(ctx, code)
}

func (fs *FileStore) ScanURLs(ctx context.Context) iter.Seq2[model.URLMapping, error] {
	return fs.store.ScanURLs(ctx)
}

func (fs *FileStore) DeleteURL(ctx context.Context, code model.Code) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	previous, err := fs.store.GetURL(ctx, code)
	if err != nil {
		return err
	}

	if err := fs.store.DeleteURL(ctx, code); err != nil {
		return err
	}

	if err := fs.persist(); err != nil {
		fs.store.restoreURL(previous)
		return err
	}

	return nil
}

func (fs *FileStore) CountURLsByOwner(ctx context.Context, owner string) (int, error) {
	return fs.store.CountURLsByOwner(ctx, owner)
}

func (fs *FileStore) InsertUser(ctx context.Context, user model.User) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.store.InsertUser(ctx, user); err != nil {
		return err
	}

	if err := fs.persist(); err != nil {
		_ = fs.store.DeleteUser(ctx, user.Username)
		return err
	}

	return nil
}

func (fs *FileStore) GetUser(ctx context.Context, username string) (model.User, error) {
	return fs.store.GetUser(ctx, username)
}

func (fs *FileStore) ScanUsers(ctx context.Context) iter.Seq2[model.User, error] {
	return fs.store.ScanUsers(ctx)
}

func (fs *FileStore) DeleteUser(ctx context.Context, username string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	previous, err := fs.store.GetUser(ctx, username)
	if err != nil {
		return err
	}

	if err := fs.store.DeleteUser(ctx, username); err != nil {
		return err
	}

	if err := fs.persist(); err != nil {
		fs.store.restoreUser(previous)
		return err
	}

	return nil
}

func (fs *FileStore) UpdateUserField(ctx context.Context, username string, field model.UserField, value any) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	previous, err := fs.store.GetUser(ctx, username)
	if err != nil {
		return err
	}

	if err := fs.store.UpdateUserField(ctx, username, field, value); err != nil {
		return err
	}

	if err := fs.persist(); err != nil {
		fs.store.restoreUser(previous)
		return err
	}

	return nil
}

func (fs *FileStore) Ping(ctx context.Context) error {
	return fs.store.Ping(ctx)
}
