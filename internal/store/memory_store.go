package store

import (
	"strings"
	"sync"
	"time"

	"ourstory/pkg/domain"
)

// MemoryStore keeps everything in process memory. It backs tests and is
// the base of FileStore, which sets the persist hook to write the state
// to disk after each mutation.
type MemoryStore struct {
	mu sync.RWMutex

	memories   *collection[domain.Memory]
	gallery    *collection[domain.GalleryItem]
	quotes     *collection[domain.Quote]
	foods      *collection[domain.Food]
	songs      *collection[domain.Song]
	movies     *collection[domain.Movie]
	books      *collection[domain.MemoryBook]
	navigation *collection[domain.NavigationItem]
	pages      *collection[domain.PageContent]
	captions   *collection[domain.Caption]
	admins     *collection[domain.Admin]
	visitors   *collection[domain.Visitor]

	// persist runs with mu held after every successful mutation.
	persist func() error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		memories:   newCollection(func(m domain.Memory) int64 { return m.ID }, func(m *domain.Memory, id int64) { m.ID = id }),
		gallery:    newCollection(func(g domain.GalleryItem) int64 { return g.ID }, func(g *domain.GalleryItem, id int64) { g.ID = id }),
		quotes:     newCollection(func(q domain.Quote) int64 { return q.ID }, func(q *domain.Quote, id int64) { q.ID = id }),
		foods:      newCollection(func(f domain.Food) int64 { return f.ID }, func(f *domain.Food, id int64) { f.ID = id }),
		songs:      newCollection(func(s domain.Song) int64 { return s.ID }, func(s *domain.Song, id int64) { s.ID = id }),
		movies:     newCollection(func(m domain.Movie) int64 { return m.ID }, func(m *domain.Movie, id int64) { m.ID = id }),
		books:      newCollection(func(b domain.MemoryBook) int64 { return b.ID }, func(b *domain.MemoryBook, id int64) { b.ID = id }),
		navigation: newCollection(func(n domain.NavigationItem) int64 { return n.ID }, func(n *domain.NavigationItem, id int64) { n.ID = id }),
		pages:      newCollection(func(pc domain.PageContent) int64 { return pc.ID }, func(pc *domain.PageContent, id int64) { pc.ID = id }),
		captions:   newCollection(func(c domain.Caption) int64 { return c.ID }, func(c *domain.Caption, id int64) { c.ID = id }),
		admins:     newCollection(func(a domain.Admin) int64 { return a.ID }, func(a *domain.Admin, id int64) { a.ID = id }),
		visitors:   newCollection(func(v domain.Visitor) int64 { return v.ID }, func(v *domain.Visitor, id int64) { v.ID = id }),
	}
}

func (s *MemoryStore) flush() error {
	if s.persist == nil {
		return nil
	}
	return s.persist()
}

func latestFirst(aCreated time.Time, aID int64, bCreated time.Time, bID int64) bool {
	if !aCreated.Equal(bCreated) {
		return aCreated.After(bCreated)
	}
	return aID > bID
}

// memories

func (s *MemoryStore) ListMemories() ([]domain.Memory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.memories.list(), func(a, b domain.Memory) bool {
		return latestFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	}), nil
}

func (s *MemoryStore) RecentMemories(limit int) ([]domain.Memory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := sorted(s.memories.list(), func(a, b domain.Memory) bool {
		return latestFirst(a.Date, a.ID, b.Date, b.ID)
	})
	return limited(items, limit), nil
}

func (s *MemoryStore) GetMemory(id int64) (domain.Memory, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.memories.get(id)
	return m, ok, nil
}

func (s *MemoryStore) CreateMemory(m domain.Memory) (domain.Memory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt
	m = s.memories.insert(m)
	return m, s.flush()
}

func (s *MemoryStore) UpdateMemory(m domain.Memory) (domain.Memory, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.memories.get(m.ID)
	if !ok {
		return domain.Memory{}, false, nil
	}
	cur.Title = m.Title
	cur.Content = m.Content
	cur.Date = m.Date
	cur.ImageURL = m.ImageURL
	cur.UpdatedAt = time.Now().UTC()
	s.memories.put(cur)
	return cur, true, s.flush()
}

func (s *MemoryStore) DeleteMemory(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.memories.remove(id) {
		return false, nil
	}
	s.captions.removeWhere(func(c domain.Caption) bool {
		return c.MemoryID != nil && *c.MemoryID == id
	})
	return true, s.flush()
}

// gallery

func (s *MemoryStore) ListGallery() ([]domain.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.gallery.list(), func(a, b domain.GalleryItem) bool {
		return latestFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	}), nil
}

func (s *MemoryStore) FeaturedGallery(limit int) ([]domain.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := sorted(s.gallery.filter(func(g domain.GalleryItem) bool { return g.IsFeatured }),
		func(a, b domain.GalleryItem) bool {
			return latestFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
		})
	return limited(items, limit), nil
}

func (s *MemoryStore) GetGalleryItem(id int64) (domain.GalleryItem, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.gallery.get(id)
	return g, ok, nil
}

func (s *MemoryStore) CreateGalleryItem(g domain.GalleryItem) (domain.GalleryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.CreatedAt = time.Now().UTC()
	g.UpdatedAt = g.CreatedAt
	g = s.gallery.insert(g)
	return g, s.flush()
}

func (s *MemoryStore) UpdateGalleryItem(g domain.GalleryItem) (domain.GalleryItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.gallery.get(g.ID)
	if !ok {
		return domain.GalleryItem{}, false, nil
	}
	cur.ImageURL = g.ImageURL
	cur.Caption = g.Caption
	cur.IsFeatured = g.IsFeatured
	cur.UpdatedAt = time.Now().UTC()
	s.gallery.put(cur)
	return cur, true, s.flush()
}

func (s *MemoryStore) DeleteGalleryItem(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gallery.remove(id) {
		return false, nil
	}
	s.captions.removeWhere(func(c domain.Caption) bool {
		return c.ImageID != nil && *c.ImageID == id
	})
	return true, s.flush()
}

// quotes

func (s *MemoryStore) ListQuotes() ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.quotes.list(), func(a, b domain.Quote) bool {
		return latestFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	}), nil
}

func (s *MemoryStore) FeaturedQuotes(limit int) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := sorted(s.quotes.filter(func(q domain.Quote) bool { return q.IsFeatured }),
		func(a, b domain.Quote) bool {
			return latestFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
		})
	return limited(items, limit), nil
}

func (s *MemoryStore) GetQuote(id int64) (domain.Quote, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes.get(id)
	return q, ok, nil
}

func (s *MemoryStore) CreateQuote(q domain.Quote) (domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.CreatedAt = time.Now().UTC()
	q.UpdatedAt = q.CreatedAt
	q = s.quotes.insert(q)
	return q, s.flush()
}

func (s *MemoryStore) UpdateQuote(q domain.Quote) (domain.Quote, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.quotes.get(q.ID)
	if !ok {
		return domain.Quote{}, false, nil
	}
	cur.Text = q.Text
	cur.Author = q.Author
	cur.IsFeatured = q.IsFeatured
	cur.UpdatedAt = time.Now().UTC()
	s.quotes.put(cur)
	return cur, true, s.flush()
}

func (s *MemoryStore) DeleteQuote(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.quotes.remove(id) {
		return false, nil
	}
	return true, s.flush()
}

// favorite foods

func (s *MemoryStore) ListFoods() ([]domain.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.foods.list(), func(a, b domain.Food) bool {
		return latestFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	}), nil
}

func (s *MemoryStore) GetFood(id int64) (domain.Food, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.foods.get(id)
	return f, ok, nil
}

func (s *MemoryStore) CreateFood(f domain.Food) (domain.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.CreatedAt = time.Now().UTC()
	f.UpdatedAt = f.CreatedAt
	f = s.foods.insert(f)
	return f, s.flush()
}

func (s *MemoryStore) UpdateFood(f domain.Food) (domain.Food, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.foods.get(f.ID)
	if !ok {
		return domain.Food{}, false, nil
	}
	cur.Name = f.Name
	cur.Description = f.Description
	cur.ImageURL = f.ImageURL
	cur.IsFeatured = f.IsFeatured
	cur.UpdatedAt = time.Now().UTC()
	s.foods.put(cur)
	return cur, true, s.flush()
}

func (s *MemoryStore) DeleteFood(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.foods.remove(id) {
		return false, nil
	}
	return true, s.flush()
}

// favorite songs

func (s *MemoryStore) ListSongs() ([]domain.Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.songs.list(), func(a, b domain.Song) bool {
		return latestFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	}), nil
}

func (s *MemoryStore) GetSong(id int64) (domain.Song, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sg, ok := s.songs.get(id)
	return sg, ok, nil
}

func (s *MemoryStore) CreateSong(sg domain.Song) (domain.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sg.CreatedAt = time.Now().UTC()
	sg.UpdatedAt = sg.CreatedAt
	sg = s.songs.insert(sg)
	return sg, s.flush()
}

func (s *MemoryStore) UpdateSong(sg domain.Song) (domain.Song, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.songs.get(sg.ID)
	if !ok {
		return domain.Song{}, false, nil
	}
	cur.Title = sg.Title
	cur.Artist = sg.Artist
	cur.YoutubeURL = sg.YoutubeURL
	cur.Description = sg.Description
	cur.IsFeatured = sg.IsFeatured
	cur.UpdatedAt = time.Now().UTC()
	s.songs.put(cur)
	return cur, true, s.flush()
}

func (s *MemoryStore) DeleteSong(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.songs.remove(id) {
		return false, nil
	}
	return true, s.flush()
}

// favorite movies

func (s *MemoryStore) ListMovies() ([]domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.movies.list(), func(a, b domain.Movie) bool {
		return latestFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	}), nil
}

func (s *MemoryStore) GetMovie(id int64) (domain.Movie, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mv, ok := s.movies.get(id)
	return mv, ok, nil
}

func (s *MemoryStore) CreateMovie(mv domain.Movie) (domain.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mv.CreatedAt = time.Now().UTC()
	mv.UpdatedAt = mv.CreatedAt
	mv = s.movies.insert(mv)
	return mv, s.flush()
}

func (s *MemoryStore) UpdateMovie(mv domain.Movie) (domain.Movie, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.movies.get(mv.ID)
	if !ok {
		return domain.Movie{}, false, nil
	}
	cur.Title = mv.Title
	cur.Director = mv.Director
	cur.Description = mv.Description
	cur.ImageURL = mv.ImageURL
	cur.IsFeatured = mv.IsFeatured
	cur.UpdatedAt = time.Now().UTC()
	s.movies.put(cur)
	return cur, true, s.flush()
}

func (s *MemoryStore) DeleteMovie(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.movies.remove(id) {
		return false, nil
	}
	return true, s.flush()
}

// memory books

func (s *MemoryStore) ListMemoryBooks() ([]domain.MemoryBook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.books.list(), func(a, b domain.MemoryBook) bool {
		return latestFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	}), nil
}

func (s *MemoryStore) GetMemoryBook(id int64) (domain.MemoryBook, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books.get(id)
	return b, ok, nil
}

func (s *MemoryStore) CreateMemoryBook(b domain.MemoryBook) (domain.MemoryBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	b = s.books.insert(b)
	return b, s.flush()
}

func (s *MemoryStore) UpdateMemoryBook(b domain.MemoryBook) (domain.MemoryBook, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.books.get(b.ID)
	if !ok {
		return domain.MemoryBook{}, false, nil
	}
	cur.Title = b.Title
	cur.Content = b.Content
	cur.Date = b.Date
	cur.ImageURL = b.ImageURL
	cur.UpdatedAt = time.Now().UTC()
	s.books.put(cur)
	return cur, true, s.flush()
}

func (s *MemoryStore) DeleteMemoryBook(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.books.remove(id) {
		return false, nil
	}
	return true, s.flush()
}

// navigation

func (s *MemoryStore) ListNavigation() ([]domain.NavigationItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.navigation.list(), func(a, b domain.NavigationItem) bool {
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.ID < b.ID
	}), nil
}

func (s *MemoryStore) GetNavigationItem(id int64) (domain.NavigationItem, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.navigation.get(id)
	return n, ok, nil
}

func (s *MemoryStore) CreateNavigationItem(n domain.NavigationItem) (domain.NavigationItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.CreatedAt = time.Now().UTC()
	n.UpdatedAt = n.CreatedAt
	n = s.navigation.insert(n)
	return n, s.flush()
}

func (s *MemoryStore) UpdateNavigationItem(n domain.NavigationItem) (domain.NavigationItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.navigation.get(n.ID)
	if !ok {
		return domain.NavigationItem{}, false, nil
	}
	cur.Title = n.Title
	cur.Path = n.Path
	cur.Icon = n.Icon
	cur.Order = n.Order
	cur.IsVisible = n.IsVisible
	cur.UpdatedAt = time.Now().UTC()
	s.navigation.put(cur)
	return cur, true, s.flush()
}

func (s *MemoryStore) DeleteNavigationItem(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.navigation.remove(id) {
		return false, nil
	}
	return true, s.flush()
}

// page content

func (s *MemoryStore) ListPageContent() ([]domain.PageContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.pages.list(), func(a, b domain.PageContent) bool {
		return latestFirst(a.UpdatedAt, a.ID, b.UpdatedAt, b.ID)
	}), nil
}

func (s *MemoryStore) PageContentByName(pageName string) ([]domain.PageContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pages.filter(func(pc domain.PageContent) bool {
		return pc.PageName == pageName
	}), nil
}

func (s *MemoryStore) UpsertPageContent(pc domain.PageContent) (domain.PageContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.pages.find(func(p domain.PageContent) bool {
		return p.PageName == pc.PageName
	})
	if !ok {
		pc.CreatedAt = time.Now().UTC()
		pc.UpdatedAt = pc.CreatedAt
		pc = s.pages.insert(pc)
		return pc, s.flush()
	}
	cur.Title = pc.Title
	cur.Subtitle = pc.Subtitle
	cur.Content = pc.Content
	cur.ImageURL = pc.ImageURL
	cur.HeroImageURL = pc.HeroImageURL
	cur.MetaDescription = pc.MetaDescription
	cur.IsPublished = pc.IsPublished
	cur.UpdatedAt = time.Now().UTC()
	s.pages.put(cur)
	return cur, s.flush()
}

// captions

func (s *MemoryStore) CaptionsForImage(imageID int64) ([]domain.Caption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.captions.filter(func(c domain.Caption) bool {
		return c.ImageID != nil && *c.ImageID == imageID
	})
	return sorted(items, func(a, b domain.Caption) bool {
		return latestFirst(a.GeneratedAt, a.ID, b.GeneratedAt, b.ID)
	}), nil
}

func (s *MemoryStore) CreateCaption(c domain.Caption) (domain.Caption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.GeneratedAt.IsZero() {
		c.GeneratedAt = time.Now().UTC()
	}
	c = s.captions.insert(c)
	return c, s.flush()
}

// admin account

func (s *MemoryStore) CountAdmins() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.admins.list()), nil
}

func (s *MemoryStore) GetAdminByEmail(email string) (domain.Admin, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.admins.find(func(a domain.Admin) bool {
		return strings.EqualFold(a.Email, email)
	})
	return a, ok, nil
}

func (s *MemoryStore) CreateAdmin(a domain.Admin) (domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	a = s.admins.insert(a)
	return a, s.flush()
}

func (s *MemoryStore) TouchAdminLastLogin(id int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.admins.get(id)
	if !ok {
		return nil
	}
	cur.LastLogin = &at
	cur.UpdatedAt = at
	s.admins.put(cur)
	return s.flush()
}

// visitors

func (s *MemoryStore) ListVisitors() ([]domain.Visitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.visitors.list(), func(a, b domain.Visitor) bool {
		return latestFirst(a.VisitedAt, a.ID, b.VisitedAt, b.ID)
	}), nil
}

func (s *MemoryStore) CreateVisitor(v domain.Visitor) (domain.Visitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.VisitedAt.IsZero() {
		v.VisitedAt = time.Now().UTC()
	}
	v = s.visitors.insert(v)
	return v, s.flush()
}
