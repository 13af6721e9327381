package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avc-dev/url-registry/internal/model"
)

// userRecord is the on-disk form of a user; unlike model.User it keeps the hash
type userRecord struct {
	Username       string `json:"username"`
	HashedPassword string `json:"hashed_password"`
	URLLimit       int    `json:"url_limit"`
	Admin          bool   `json:"admin"`
}

// fileSnapshot is the full content of the storage file
type fileSnapshot struct {
	URLs  []model.URLMapping `json:"urls"`
	Users []userRecord       `json:"users"`
}

// FileStorage reads and writes the JSON snapshot of both tables
type FileStorage struct {
	filePath string
}

func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load returns the stored snapshot. A missing or empty file is an empty snapshot.
func (fs *FileStorage) Load() (URLMap, UserMap, error) {
	urls := make(URLMap)
	users := make(UserMap)

	data, err := os.ReadFile(fs.filePath)
	if os.IsNotExist(err) {
		return urls, users, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return urls, users, nil
	}

	var snapshot fileSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	for _, m := range snapshot.URLs {
		urls[m.Code] = m
	}
	for _, r := range snapshot.Users {
		users[r.Username] = model.User{
			Username:       r.Username,
			HashedPassword: r.HashedPassword,
			URLLimit:       r.URLLimit,
			Admin:          r.Admin,
		}
	}

	return urls, users, nil
}

// Save replaces the file with the given tables. The write goes to a
// temporary file first so a crash never leaves a truncated snapshot.
func (fs *FileStorage) Save(urls []model.URLMapping, users []model.User) error {
	snapshot := fileSnapshot{
		URLs:  urls,
		Users: make([]userRecord, 0, len(users)),
	}
	if snapshot.URLs == nil {
		snapshot.URLs = []model.URLMapping{}
	}
	for _, u := range users {
		snapshot.Users = append(snapshot.Users, userRecord{
			Username:       u.Username,
			HashedPassword: u.HashedPassword,
			URLLimit:       u.URLLimit,
			Admin:          u.Admin,
		})
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fs.filePath), filepath.Base(fs.filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpPath, fs.filePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace file: %w", err)
	}

	return nil
}
