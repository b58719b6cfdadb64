package server

import (
	"net/http"
	"strings"

	"ourstory/pkg/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  domain.Admin `json:"user"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type verifyRequest struct {
	Answer string `json:"answer"`
}

type verifyResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if !s.allowRate(w, r, s.loginLimiter, "too many login attempts, try again later") {
		return
	}
	req, err := decodeJSON[loginRequest](r)
	if err != nil {
		s.writeAppError(w, r, "login", err)
		return
	}
	token, admin, err := s.app.Login(req.Email, req.Password)
	if err != nil {
		s.audit(r, "admin_login", "failure", "email", req.Email)
		s.writeAppError(w, r, "login", err)
		return
	}
	s.audit(r, "admin_login", "success", "email", admin.Email)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: admin})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	req, err := decodeJSON[registerRequest](r)
	if err != nil {
		s.writeAppError(w, r, "register", err)
		return
	}
	admin, err := s.app.Register(req.Email, req.Password, req.Name)
	if err != nil {
		s.audit(r, "admin_register", "failure")
		s.writeAppError(w, r, "register", err)
		return
	}
	s.audit(r, "admin_register", "success", "email", admin.Email)
	writeJSON(w, http.StatusCreated, admin)
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if !s.allowRate(w, r, s.verifyLimiter, "too many attempts, try again later") {
		return
	}
	req, err := decodeJSON[verifyRequest](r)
	if err != nil {
		s.writeAppError(w, r, "verify", err)
		return
	}
	token, err := s.app.VerifyVisitor(req.Answer, s.clientIP(r), r.UserAgent(), visitorMeta(r))
	if err != nil {
		s.audit(r, "visitor_verify", "failure")
		s.writeAppError(w, r, "verify", err)
		return
	}
	s.audit(r, "visitor_verify", "success")
	writeJSON(w, http.StatusOK, verifyResponse{Token: token})
}

// visitorMeta snapshots a few request headers for the audit row.
func visitorMeta(r *http.Request) map[string]string {
	meta := map[string]string{}
	for _, h := range []string{"Accept-Language", "Referer", "Sec-Ch-Ua-Platform"} {
		if v := strings.TrimSpace(r.Header.Get(h)); v != "" {
			meta[h] = v
		}
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}
