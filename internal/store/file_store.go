package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"ourstory/pkg/domain"
)

// FileStore persists MemoryStore state as one JSON file per table under
// a data directory. It is the offline fallback when no database is
// configured.
type FileStore struct {
	*MemoryStore
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &FileStore{MemoryStore: NewMemoryStore(), dir: dir}
	if err := s.load(); err != nil {
		return nil, err
	}
	s.persist = s.save
	return s, nil
}

// adminRecord carries the password hash, which the domain type never
// serializes.
type adminRecord struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"passwordHash"`
	Name         string     `json:"name"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (s *FileStore) load() error {
	if err := loadTable(s.dir, "memories.json", &s.memories.items); err != nil {
		return err
	}
	if err := loadTable(s.dir, "gallery.json", &s.gallery.items); err != nil {
		return err
	}
	if err := loadTable(s.dir, "quotes.json", &s.quotes.items); err != nil {
		return err
	}
	if err := loadTable(s.dir, "favorite_foods.json", &s.foods.items); err != nil {
		return err
	}
	if err := loadTable(s.dir, "favorite_songs.json", &s.songs.items); err != nil {
		return err
	}
	if err := loadTable(s.dir, "favorite_movies.json", &s.movies.items); err != nil {
		return err
	}
	if err := loadTable(s.dir, "memory_books.json", &s.books.items); err != nil {
		return err
	}
	if err := loadTable(s.dir, "navigation.json", &s.navigation.items); err != nil {
		return err
	}
	if err := loadTable(s.dir, "page_content.json", &s.pages.items); err != nil {
		return err
	}
	if err := loadTable(s.dir, "ai_captions.json", &s.captions.items); err != nil {
		return err
	}
	if err := loadTable(s.dir, "visitors.json", &s.visitors.items); err != nil {
		return err
	}
	var admins []adminRecord
	if err := loadTable(s.dir, "admin_users.json", &admins); err != nil {
		return err
	}
	for _, a := range admins {
		s.admins.items = append(s.admins.items, domain.Admin{
			ID: a.ID, Email: a.Email, PasswordHash: a.PasswordHash, Name: a.Name,
			LastLogin: a.LastLogin, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt,
		})
	}
	return nil
}

// save runs with the MemoryStore lock held.
func (s *FileStore) save() error {
	if err := saveTable(s.dir, "memories.json", s.memories.items); err != nil {
		return err
	}
	if err := saveTable(s.dir, "gallery.json", s.gallery.items); err != nil {
		return err
	}
	if err := saveTable(s.dir, "quotes.json", s.quotes.items); err != nil {
		return err
	}
	if err := saveTable(s.dir, "favorite_foods.json", s.foods.items); err != nil {
		return err
	}
	if err := saveTable(s.dir, "favorite_songs.json", s.songs.items); err != nil {
		return err
	}
	if err := saveTable(s.dir, "favorite_movies.json", s.movies.items); err != nil {
		return err
	}
	if err := saveTable(s.dir, "memory_books.json", s.books.items); err != nil {
		return err
	}
	if err := saveTable(s.dir, "navigation.json", s.navigation.items); err != nil {
		return err
	}
	if err := saveTable(s.dir, "page_content.json", s.pages.items); err != nil {
		return err
	}
	if err := saveTable(s.dir, "ai_captions.json", s.captions.items); err != nil {
		return err
	}
	if err := saveTable(s.dir, "visitors.json", s.visitors.items); err != nil {
		return err
	}
	admins := make([]adminRecord, 0, len(s.admins.items))
	for _, a := range s.admins.items {
		admins = append(admins, adminRecord{
			ID: a.ID, Email: a.Email, PasswordHash: a.PasswordHash, Name: a.Name,
			LastLogin: a.LastLogin, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt,
		})
	}
	return saveTable(s.dir, "admin_users.json", admins)
}

func loadTable[T any](dir, name string, dst *[]T) error {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// saveTable writes via a temp file and rename so a crash mid-write
// cannot truncate existing data.
func saveTable[T any](dir, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	tmp := filepath.Join(dir, name+".tmp")
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
