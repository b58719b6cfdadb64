package app

import (
	"fmt"
	"strings"

	"ourstory/pkg/domain"
)

// Validation runs before any store call so bad input never mutates
// anything.

func validateMemory(m domain.Memory) error {
	if strings.TrimSpace(m.Title) == "" {
		return required("title")
	}
	if strings.TrimSpace(m.Content) == "" {
		return required("content")
	}
	if m.Date.IsZero() {
		return required("date")
	}
	return nil
}

func (a *App) ListMemories() ([]domain.Memory, error) {
	return a.store.ListMemories()
}

func (a *App) GetMemory(id int64) (domain.Memory, error) {
	m, ok, err := a.store.GetMemory(id)
	if err != nil {
		return domain.Memory{}, fmt.Errorf("get memory: %w", err)
	}
	if !ok {
		return domain.Memory{}, ErrNotFound
	}
	return m, nil
}

func (a *App) CreateMemory(m domain.Memory) (domain.Memory, error) {
	if err := validateMemory(m); err != nil {
		return domain.Memory{}, err
	}
	created, err := a.store.CreateMemory(m)
	if err != nil {
		return domain.Memory{}, fmt.Errorf("create memory: %w", err)
	}
	return created, nil
}

func (a *App) UpdateMemory(m domain.Memory) (domain.Memory, error) {
	if err := validateMemory(m); err != nil {
		return domain.Memory{}, err
	}
	updated, ok, err := a.store.UpdateMemory(m)
	if err != nil {
		return domain.Memory{}, fmt.Errorf("update memory: %w", err)
	}
	if !ok {
		return domain.Memory{}, ErrNotFound
	}
	return updated, nil
}

func (a *App) DeleteMemory(id int64) error {
	ok, err := a.store.DeleteMemory(id)
	if err != nil {
		return fmt.Errorf("delete memory: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func validateGalleryItem(g domain.GalleryItem) error {
	if strings.TrimSpace(g.ImageURL) == "" {
		return required("imageUrl")
	}
	return nil
}

func (a *App) ListGallery() ([]domain.GalleryItem, error) {
	return a.store.ListGallery()
}

func (a *App) GetGalleryItem(id int64) (domain.GalleryItem, error) {
	g, ok, err := a.store.GetGalleryItem(id)
	if err != nil {
		return domain.GalleryItem{}, fmt.Errorf("get gallery item: %w", err)
	}
	if !ok {
		return domain.GalleryItem{}, ErrNotFound
	}
	return g, nil
}

func (a *App) CreateGalleryItem(g domain.GalleryItem) (domain.GalleryItem, error) {
	if err := validateGalleryItem(g); err != nil {
		return domain.GalleryItem{}, err
	}
	created, err := a.store.CreateGalleryItem(g)
	if err != nil {
		return domain.GalleryItem{}, fmt.Errorf("create gallery item: %w", err)
	}
	return created, nil
}

func (a *App) UpdateGalleryItem(g domain.GalleryItem) (domain.GalleryItem, error) {
	if err := validateGalleryItem(g); err != nil {
		return domain.GalleryItem{}, err
	}
	updated, ok, err := a.store.UpdateGalleryItem(g)
	if err != nil {
		return domain.GalleryItem{}, fmt.Errorf("update gallery item: %w", err)
	}
	if !ok {
		return domain.GalleryItem{}, ErrNotFound
	}
	return updated, nil
}

func (a *App) DeleteGalleryItem(id int64) error {
	ok, err := a.store.DeleteGalleryItem(id)
	if err != nil {
		return fmt.Errorf("delete gallery item: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func validateQuote(q domain.Quote) error {
	if strings.TrimSpace(q.Text) == "" {
		return required("text")
	}
	return nil
}

func (a *App) ListQuotes() ([]domain.Quote, error) {
	return a.store.ListQuotes()
}

func (a *App) GetQuote(id int64) (domain.Quote, error) {
	q, ok, err := a.store.GetQuote(id)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("get quote: %w", err)
	}
	if !ok {
		return domain.Quote{}, ErrNotFound
	}
	return q, nil
}

func (a *App) CreateQuote(q domain.Quote) (domain.Quote, error) {
	if err := validateQuote(q); err != nil {
		return domain.Quote{}, err
	}
	created, err := a.store.CreateQuote(q)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("create quote: %w", err)
	}
	return created, nil
}

func (a *App) UpdateQuote(q domain.Quote) (domain.Quote, error) {
	if err := validateQuote(q); err != nil {
		return domain.Quote{}, err
	}
	updated, ok, err := a.store.UpdateQuote(q)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("update quote: %w", err)
	}
	if !ok {
		return domain.Quote{}, ErrNotFound
	}
	return updated, nil
}

func (a *App) DeleteQuote(id int64) error {
	ok, err := a.store.DeleteQuote(id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func validateFood(f domain.Food) error {
	if strings.TrimSpace(f.Name) == "" {
		return required("name")
	}
	return nil
}

func (a *App) ListFoods() ([]domain.Food, error) {
	return a.store.ListFoods()
}

func (a *App) GetFood(id int64) (domain.Food, error) {
	f, ok, err := a.store.GetFood(id)
	if err != nil {
		return domain.Food{}, fmt.Errorf("get food: %w", err)
	}
	if !ok {
		return domain.Food{}, ErrNotFound
	}
	return f, nil
}

func (a *App) CreateFood(f domain.Food) (domain.Food, error) {
	if err := validateFood(f); err != nil {
		return domain.Food{}, err
	}
	created, err := a.store.CreateFood(f)
	if err != nil {
		return domain.Food{}, fmt.Errorf("create food: %w", err)
	}
	return created, nil
}

func (a *App) UpdateFood(f domain.Food) (domain.Food, error) {
	if err := validateFood(f); err != nil {
		return domain.Food{}, err
	}
	updated, ok, err := a.store.UpdateFood(f)
	if err != nil {
		return domain.Food{}, fmt.Errorf("update food: %w", err)
	}
	if !ok {
		return domain.Food{}, ErrNotFound
	}
	return updated, nil
}

func (a *App) DeleteFood(id int64) error {
	ok, err := a.store.DeleteFood(id)
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func validateSong(s domain.Song) error {
	if strings.TrimSpace(s.Title) == "" {
		return required("title")
	}
	return nil
}

func (a *App) ListSongs() ([]domain.Song, error) {
	return a.store.ListSongs()
}

func (a *App) GetSong(id int64) (domain.Song, error) {
	s, ok, err := a.store.GetSong(id)
	if err != nil {
		return domain.Song{}, fmt.Errorf("get song: %w", err)
	}
	if !ok {
		return domain.Song{}, ErrNotFound
	}
	return s, nil
}

func (a *App) CreateSong(s domain.Song) (domain.Song, error) {
	if err := validateSong(s); err != nil {
		return domain.Song{}, err
	}
	created, err := a.store.CreateSong(s)
	if err != nil {
		return domain.Song{}, fmt.Errorf("create song: %w", err)
	}
	return created, nil
}

func (a *App) UpdateSong(s domain.Song) (domain.Song, error) {
	if err := validateSong(s); err != nil {
		return domain.Song{}, err
	}
	updated, ok, err := a.store.UpdateSong(s)
	if err != nil {
		return domain.Song{}, fmt.Errorf("update song: %w", err)
	}
	if !ok {
		return domain.Song{}, ErrNotFound
	}
	return updated, nil
}

func (a *App) DeleteSong(id int64) error {
	ok, err := a.store.DeleteSong(id)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func validateMovie(m domain.Movie) error {
	if strings.TrimSpace(m.Title) == "" {
		return required("title")
	}
	return nil
}

func (a *App) ListMovies() ([]domain.Movie, error) {
	return a.store.ListMovies()
}

func (a *App) GetMovie(id int64) (domain.Movie, error) {
	m, ok, err := a.store.GetMovie(id)
	if err != nil {
		return domain.Movie{}, fmt.Errorf("get movie: %w", err)
	}
	if !ok {
		return domain.Movie{}, ErrNotFound
	}
	return m, nil
}

func (a *App) CreateMovie(m domain.Movie) (domain.Movie, error) {
	if err := validateMovie(m); err != nil {
		return domain.Movie{}, err
	}
	created, err := a.store.CreateMovie(m)
	if err != nil {
		return domain.Movie{}, fmt.Errorf("create movie: %w", err)
	}
	return created, nil
}

func (a *App) UpdateMovie(m domain.Movie) (domain.Movie, error) {
	if err := validateMovie(m); err != nil {
		return domain.Movie{}, err
	}
	updated, ok, err := a.store.UpdateMovie(m)
	if err != nil {
		return domain.Movie{}, fmt.Errorf("update movie: %w", err)
	}
	if !ok {
		return domain.Movie{}, ErrNotFound
	}
	return updated, nil
}

func (a *App) DeleteMovie(id int64) error {
	ok, err := a.store.DeleteMovie(id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func validateMemoryBook(b domain.MemoryBook) error {
	if strings.TrimSpace(b.Title) == "" {
		return required("title")
	}
	if strings.TrimSpace(b.Content) == "" {
		return required("content")
	}
	return nil
}

func (a *App) ListMemoryBooks() ([]domain.MemoryBook, error) {
	return a.store.ListMemoryBooks()
}

func (a *App) GetMemoryBook(id int64) (domain.MemoryBook, error) {
	b, ok, err := a.store.GetMemoryBook(id)
	if err != nil {
		return domain.MemoryBook{}, fmt.Errorf("get memory book: %w", err)
	}
	if !ok {
		return domain.MemoryBook{}, ErrNotFound
	}
	return b, nil
}

func (a *App) CreateMemoryBook(b domain.MemoryBook) (domain.MemoryBook, error) {
	if err := validateMemoryBook(b); err != nil {
		return domain.MemoryBook{}, err
	}
	created, err := a.store.CreateMemoryBook(b)
	if err != nil {
		return domain.MemoryBook{}, fmt.Errorf("create memory book: %w", err)
	}
	return created, nil
}

func (a *App) UpdateMemoryBook(b domain.MemoryBook) (domain.MemoryBook, error) {
	if err := validateMemoryBook(b); err != nil {
		return domain.MemoryBook{}, err
	}
	updated, ok, err := a.store.UpdateMemoryBook(b)
	if err != nil {
		return domain.MemoryBook{}, fmt.Errorf("update memory book: %w", err)
	}
	if !ok {
		return domain.MemoryBook{}, ErrNotFound
	}
	return updated, nil
}

func (a *App) DeleteMemoryBook(id int64) error {
	ok, err := a.store.DeleteMemoryBook(id)
	if err != nil {
		return fmt.Errorf("delete memory book: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func validateNavigationItem(n domain.NavigationItem) error {
	if strings.TrimSpace(n.Title) == "" {
		return required("title")
	}
	if strings.TrimSpace(n.Path) == "" {
		return required("path")
	}
	return nil
}

func (a *App) ListNavigation() ([]domain.NavigationItem, error) {
	return a.store.ListNavigation()
}

func (a *App) GetNavigationItem(id int64) (domain.NavigationItem, error) {
	n, ok, err := a.store.GetNavigationItem(id)
	if err != nil {
		return domain.NavigationItem{}, fmt.Errorf("get navigation item: %w", err)
	}
	if !ok {
		return domain.NavigationItem{}, ErrNotFound
	}
	return n, nil
}

func (a *App) CreateNavigationItem(n domain.NavigationItem) (domain.NavigationItem, error) {
	if err := validateNavigationItem(n); err != nil {
		return domain.NavigationItem{}, err
	}
	created, err := a.store.CreateNavigationItem(n)
	if err != nil {
		return domain.NavigationItem{}, fmt.Errorf("create navigation item: %w", err)
	}
	return created, nil
}

func (a *App) UpdateNavigationItem(n domain.NavigationItem) (domain.NavigationItem, error) {
	if err := validateNavigationItem(n); err != nil {
		return domain.NavigationItem{}, err
	}
	updated, ok, err := a.store.UpdateNavigationItem(n)
	if err != nil {
		return domain.NavigationItem{}, fmt.Errorf("update navigation item: %w", err)
	}
	if !ok {
		return domain.NavigationItem{}, ErrNotFound
	}
	return updated, nil
}

func (a *App) DeleteNavigationItem(id int64) error {
	ok, err := a.store.DeleteNavigationItem(id)
	if err != nil {
		return fmt.Errorf("delete navigation item: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// ListPageContent returns all pages, or just the named page when
// pageName is non-empty.
func (a *App) ListPageContent(pageName string) ([]domain.PageContent, error) {
	if pageName != "" {
		return a.store.PageContentByName(pageName)
	}
	return a.store.ListPageContent()
}

func (a *App) UpsertPageContent(pc domain.PageContent) (domain.PageContent, error) {
	if strings.TrimSpace(pc.PageName) == "" {
		return domain.PageContent{}, required("pageName")
	}
	saved, err := a.store.UpsertPageContent(pc)
	if err != nil {
		return domain.PageContent{}, fmt.Errorf("upsert page content: %w", err)
	}
	return saved, nil
}

func (a *App) ListVisitors() ([]domain.Visitor, error) {
	return a.store.ListVisitors()
}

// RecordVisitor appends an audit row; it is also used directly by the
// admin dashboard.
func (a *App) RecordVisitor(v domain.Visitor) (domain.Visitor, error) {
	recorded, err := a.store.CreateVisitor(v)
	if err != nil {
		return domain.Visitor{}, fmt.Errorf("record visitor: %w", err)
	}
	return recorded, nil
}
