package server

import "net/http"

func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	fc, err := s.app.Featured(r.Context())
	if err != nil {
		s.writeAppError(w, r, "featured content", err)
		return
	}
	writeJSON(w, http.StatusOK, fc)
}

func (s *Server) handlePublicGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	items, err := s.app.ListGallery()
	if err != nil {
		s.writeAppError(w, r, "public gallery", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handlePublicMemories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	items, err := s.app.ListMemories()
	if err != nil {
		s.writeAppError(w, r, "public memories", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handlePublicQuotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	items, err := s.app.ListQuotes()
	if err != nil {
		s.writeAppError(w, r, "public quotes", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
