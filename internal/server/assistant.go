package server

import (
	"net/http"
	"strconv"
	"strings"

	"ourstory/pkg/auth"
)

type relationshipRequest struct {
	Question string `json:"question"`
}

type relationshipResponse struct {
	Answer string `json:"answer"`
}

type generateCaptionRequest struct {
	ImageID  *int64 `json:"imageId"`
	MemoryID *int64 `json:"memoryId"`
	ImageURL string `json:"imageUrl"`
}

func (s *Server) handleRelationship(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if !s.allowRate(w, r, s.aiLimiter, "too many questions, try again later") {
		return
	}
	req, err := decodeJSON[relationshipRequest](r)
	if err != nil {
		s.writeAppError(w, r, "relationship answer", err)
		return
	}
	answer, err := s.app.Answer(r.Context(), req.Question)
	if err != nil {
		s.writeAppError(w, r, "relationship answer", err)
		return
	}
	writeJSON(w, http.StatusOK, relationshipResponse{Answer: answer})
}

func (s *Server) handleCaptions(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/admin/ai/captions/"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	captions, err := s.app.CaptionsForImage(id)
	if err != nil {
		s.writeAppError(w, r, "list captions", err)
		return
	}
	writeJSON(w, http.StatusOK, captions)
}

func (s *Server) handleGenerateCaption(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	req, err := decodeJSON[generateCaptionRequest](r)
	if err != nil {
		s.writeAppError(w, r, "generate caption", err)
		return
	}
	caption, err := s.app.GenerateCaption(r.Context(), req.ImageID, req.MemoryID, req.ImageURL)
	if err != nil {
		s.writeAppError(w, r, "generate caption", err)
		return
	}
	writeJSON(w, http.StatusOK, caption)
}
