package app

import (
	"fmt"
	"strings"
	"time"

	"ourstory/pkg/auth"
	"ourstory/pkg/domain"
)

// Login checks the admin credentials and returns a fresh token plus the
// account. All mismatches collapse into ErrInvalidCredentials.
func (a *App) Login(email, password string) (string, domain.Admin, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", domain.Admin{}, ValidationError{Msg: "email and password are required"}
	}
	admin, ok, err := a.store.GetAdminByEmail(email)
	if err != nil {
		return "", domain.Admin{}, fmt.Errorf("lookup admin: %w", err)
	}
	if !ok || !auth.CheckPassword(password, admin.PasswordHash) {
		return "", domain.Admin{}, ErrInvalidCredentials
	}
	now := time.Now().UTC()
	if err := a.store.TouchAdminLastLogin(admin.ID, now); err != nil {
		return "", domain.Admin{}, fmt.Errorf("record last login: %w", err)
	}
	admin.LastLogin = &now
	token, err := a.tokens.MintAdmin(admin)
	if err != nil {
		return "", domain.Admin{}, fmt.Errorf("mint token: %w", err)
	}
	return token, admin, nil
}

// Register creates the single admin account. A second registration is
// rejected with ErrAdminExists, so the table never holds more than one
// row.
func (a *App) Register(email, password, name string) (domain.Admin, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return domain.Admin{}, required("email")
	}
	if password == "" {
		return domain.Admin{}, required("password")
	}
	if strings.TrimSpace(name) == "" {
		return domain.Admin{}, required("name")
	}
	count, err := a.store.CountAdmins()
	if err != nil {
		return domain.Admin{}, fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return domain.Admin{}, ErrAdminExists
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("hash password: %w", err)
	}
	admin, err := a.store.CreateAdmin(domain.Admin{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
	})
	if err != nil {
		return domain.Admin{}, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// VerifyVisitor checks the answer to the verification question. A
// correct answer (case-insensitive, trimmed) records a verified visitor
// row and returns a visitor token; a wrong answer still records the
// attempt and returns ErrWrongAnswer.
func (a *App) VerifyVisitor(answer, ip, userAgent string, meta map[string]string) (string, error) {
	if strings.TrimSpace(answer) == "" {
		return "", required("answer")
	}
	matched := strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(a.verifyAnswer))
	visitor, err := a.store.CreateVisitor(domain.Visitor{
		IP:        ip,
		UserAgent: userAgent,
		Meta:      meta,
		Verified:  matched,
	})
	if err != nil {
		return "", fmt.Errorf("record visitor: %w", err)
	}
	if !matched {
		return "", ErrWrongAnswer
	}
	token, err := a.tokens.MintVisitor(visitor.ID)
	if err != nil {
		return "", fmt.Errorf("mint token: %w", err)
	}
	return token, nil
}

// VerificationQuestion is the prompt shown to unverified visitors.
func (a *App) VerificationQuestion() string { return a.verifyQuestion }
