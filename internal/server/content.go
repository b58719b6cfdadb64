package server

import (
	"net/http"
	"strconv"
	"strings"

	"ourstory/pkg/auth"
	"ourstory/pkg/domain"
)

// resource describes one admin CRUD entity group. Decoding and
// validation live in the closures so the two shared handlers stay
// generic.
type resource struct {
	name   string
	list   func() (any, error)
	get    func(id int64) (any, error)
	create func(r *http.Request) (any, error)
	update func(r *http.Request, id int64) (any, error)
	remove func(id int64) error
}

func (s *Server) handleCollection(res resource) authHandler {
	return func(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
		switch r.Method {
		case http.MethodGet:
			out, err := res.list()
			if err != nil {
				s.writeAppError(w, r, "list "+res.name, err)
				return
			}
			writeJSON(w, http.StatusOK, out)
		case http.MethodPost:
			out, err := res.create(r)
			if err != nil {
				s.writeAppError(w, r, "create "+res.name, err)
				return
			}
			writeJSON(w, http.StatusCreated, out)
		default:
			methodNotAllowed(w)
		}
	}
}

func (s *Server) handleItem(prefix string, res resource) authHandler {
	return func(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, prefix), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}
		switch r.Method {
		case http.MethodGet:
			out, err := res.get(id)
			if err != nil {
				s.writeAppError(w, r, "get "+res.name, err)
				return
			}
			writeJSON(w, http.StatusOK, out)
		case http.MethodPut:
			out, err := res.update(r, id)
			if err != nil {
				s.writeAppError(w, r, "update "+res.name, err)
				return
			}
			writeJSON(w, http.StatusOK, out)
		case http.MethodDelete:
			if err := res.remove(id); err != nil {
				s.writeAppError(w, r, "delete "+res.name, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"message": res.name + " deleted"})
		default:
			methodNotAllowed(w)
		}
	}
}

func (s *Server) memoriesResource() resource {
	return resource{
		name: "memory",
		list: func() (any, error) { return s.app.ListMemories() },
		get:  func(id int64) (any, error) { return s.app.GetMemory(id) },
		create: func(r *http.Request) (any, error) {
			m, err := decodeJSON[domain.Memory](r)
			if err != nil {
				return nil, err
			}
			return s.app.CreateMemory(m)
		},
		update: func(r *http.Request, id int64) (any, error) {
			m, err := decodeJSON[domain.Memory](r)
			if err != nil {
				return nil, err
			}
			m.ID = id
			return s.app.UpdateMemory(m)
		},
		remove: func(id int64) error { return s.app.DeleteMemory(id) },
	}
}

func (s *Server) galleryResource() resource {
	return resource{
		name: "gallery item",
		list: func() (any, error) { return s.app.ListGallery() },
		get:  func(id int64) (any, error) { return s.app.GetGalleryItem(id) },
		create: func(r *http.Request) (any, error) {
			g, err := decodeJSON[domain.GalleryItem](r)
			if err != nil {
				return nil, err
			}
			return s.app.CreateGalleryItem(g)
		},
		update: func(r *http.Request, id int64) (any, error) {
			g, err := decodeJSON[domain.GalleryItem](r)
			if err != nil {
				return nil, err
			}
			g.ID = id
			return s.app.UpdateGalleryItem(g)
		},
		remove: func(id int64) error { return s.app.DeleteGalleryItem(id) },
	}
}

func (s *Server) quotesResource() resource {
	return resource{
		name: "quote",
		list: func() (any, error) { return s.app.ListQuotes() },
		get:  func(id int64) (any, error) { return s.app.GetQuote(id) },
		create: func(r *http.Request) (any, error) {
			q, err := decodeJSON[domain.Quote](r)
			if err != nil {
				return nil, err
			}
			return s.app.CreateQuote(q)
		},
		update: func(r *http.Request, id int64) (any, error) {
			q, err := decodeJSON[domain.Quote](r)
			if err != nil {
				return nil, err
			}
			q.ID = id
			return s.app.UpdateQuote(q)
		},
		remove: func(id int64) error { return s.app.DeleteQuote(id) },
	}
}

func (s *Server) foodsResource() resource {
	return resource{
		name: "food",
		list: func() (any, error) { return s.app.ListFoods() },
		get:  func(id int64) (any, error) { return s.app.GetFood(id) },
		create: func(r *http.Request) (any, error) {
			f, err := decodeJSON[domain.Food](r)
			if err != nil {
				return nil, err
			}
			return s.app.CreateFood(f)
		},
		update: func(r *http.Request, id int64) (any, error) {
			f, err := decodeJSON[domain.Food](r)
			if err != nil {
				return nil, err
			}
			f.ID = id
			return s.app.UpdateFood(f)
		},
		remove: func(id int64) error { return s.app.DeleteFood(id) },
	}
}

func (s *Server) songsResource() resource {
	return resource{
		name: "song",
		list: func() (any, error) { return s.app.ListSongs() },
		get:  func(id int64) (any, error) { return s.app.GetSong(id) },
		create: func(r *http.Request) (any, error) {
			sg, err := decodeJSON[domain.Song](r)
			if err != nil {
				return nil, err
			}
			return s.app.CreateSong(sg)
		},
		update: func(r *http.Request, id int64) (any, error) {
			sg, err := decodeJSON[domain.Song](r)
			if err != nil {
				return nil, err
			}
			sg.ID = id
			return s.app.UpdateSong(sg)
		},
		remove: func(id int64) error { return s.app.DeleteSong(id) },
	}
}

func (s *Server) moviesResource() resource {
	return resource{
		name: "movie",
		list: func() (any, error) { return s.app.ListMovies() },
		get:  func(id int64) (any, error) { return s.app.GetMovie(id) },
		create: func(r *http.Request) (any, error) {
			m, err := decodeJSON[domain.Movie](r)
			if err != nil {
				return nil, err
			}
			return s.app.CreateMovie(m)
		},
		update: func(r *http.Request, id int64) (any, error) {
			m, err := decodeJSON[domain.Movie](r)
			if err != nil {
				return nil, err
			}
			m.ID = id
			return s.app.UpdateMovie(m)
		},
		remove: func(id int64) error { return s.app.DeleteMovie(id) },
	}
}

func (s *Server) memoryBooksResource() resource {
	return resource{
		name: "memory book",
		list: func() (any, error) { return s.app.ListMemoryBooks() },
		get:  func(id int64) (any, error) { return s.app.GetMemoryBook(id) },
		create: func(r *http.Request) (any, error) {
			b, err := decodeJSON[domain.MemoryBook](r)
			if err != nil {
				return nil, err
			}
			return s.app.CreateMemoryBook(b)
		},
		update: func(r *http.Request, id int64) (any, error) {
			b, err := decodeJSON[domain.MemoryBook](r)
			if err != nil {
				return nil, err
			}
			b.ID = id
			return s.app.UpdateMemoryBook(b)
		},
		remove: func(id int64) error { return s.app.DeleteMemoryBook(id) },
	}
}

func (s *Server) navigationResource() resource {
	return resource{
		name: "navigation item",
		list: func() (any, error) { return s.app.ListNavigation() },
		get:  func(id int64) (any, error) { return s.app.GetNavigationItem(id) },
		create: func(r *http.Request) (any, error) {
			n, err := decodeJSON[navigationRequest](r)
			if err != nil {
				return nil, err
			}
			return s.app.CreateNavigationItem(n.toDomain())
		},
		update: func(r *http.Request, id int64) (any, error) {
			n, err := decodeJSON[navigationRequest](r)
			if err != nil {
				return nil, err
			}
			item := n.toDomain()
			item.ID = id
			return s.app.UpdateNavigationItem(item)
		},
		remove: func(id int64) error { return s.app.DeleteNavigationItem(id) },
	}
}

// navigationRequest defaults isVisible to true when the field is
// omitted, matching create defaults.
type navigationRequest struct {
	Title     string `json:"title"`
	Path      string `json:"path"`
	Icon      string `json:"icon"`
	Order     int    `json:"order"`
	IsVisible *bool  `json:"isVisible"`
}

func (n navigationRequest) toDomain() domain.NavigationItem {
	visible := true
	if n.IsVisible != nil {
		visible = *n.IsVisible
	}
	return domain.NavigationItem{
		Title:     n.Title,
		Path:      n.Path,
		Icon:      n.Icon,
		Order:     n.Order,
		IsVisible: visible,
	}
}

func (s *Server) handlePageContent(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	switch r.Method {
	case http.MethodGet:
		pages, err := s.app.ListPageContent(r.URL.Query().Get("pageName"))
		if err != nil {
			s.writeAppError(w, r, "list page content", err)
			return
		}
		writeJSON(w, http.StatusOK, pages)
	case http.MethodPost:
		req, err := decodeJSON[pageContentRequest](r)
		if err != nil {
			s.writeAppError(w, r, "upsert page content", err)
			return
		}
		saved, err := s.app.UpsertPageContent(req.toDomain())
		if err != nil {
			s.writeAppError(w, r, "upsert page content", err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	default:
		methodNotAllowed(w)
	}
}

// pageContentRequest defaults isPublished to true when omitted.
type pageContentRequest struct {
	PageName        string `json:"pageName"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Content         string `json:"content"`
	ImageURL        string `json:"imageUrl"`
	HeroImageURL    string `json:"heroImageUrl"`
	MetaDescription string `json:"metaDescription"`
	IsPublished     *bool  `json:"isPublished"`
}

func (p pageContentRequest) toDomain() domain.PageContent {
	published := true
	if p.IsPublished != nil {
		published = *p.IsPublished
	}
	return domain.PageContent{
		PageName:        p.PageName,
		Title:           p.Title,
		Subtitle:        p.Subtitle,
		Content:         p.Content,
		ImageURL:        p.ImageURL,
		HeroImageURL:    p.HeroImageURL,
		MetaDescription: p.MetaDescription,
		IsPublished:     published,
	}
}

func (s *Server) handleVisitors(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	switch r.Method {
	case http.MethodGet:
		visitors, err := s.app.ListVisitors()
		if err != nil {
			s.writeAppError(w, r, "list visitors", err)
			return
		}
		writeJSON(w, http.StatusOK, visitors)
	case http.MethodPost:
		v, err := decodeJSON[domain.Visitor](r)
		if err != nil {
			s.writeAppError(w, r, "record visitor", err)
			return
		}
		recorded, err := s.app.RecordVisitor(v)
		if err != nil {
			s.writeAppError(w, r, "record visitor", err)
			return
		}
		writeJSON(w, http.StatusCreated, recorded)
	default:
		methodNotAllowed(w)
	}
}
