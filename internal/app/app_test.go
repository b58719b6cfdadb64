package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ourstory/internal/store"
	"ourstory/pkg/auth"
	"ourstory/pkg/domain"
)

type stubUploads struct{}

func (stubUploads) Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	return "/uploads/" + filename, nil
}

type fakeGenerator struct {
	reply string
	err   error
}

func (f fakeGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f.reply, f.err
}

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.Tokens == nil {
		tokens, err := auth.NewTokens("test-secret", auth.Options{})
		require.NoError(t, err)
		cfg.Tokens = tokens
	}
	if cfg.Uploads == nil {
		cfg.Uploads = stubUploads{}
	}
	if cfg.VerifyQuestion == "" {
		cfg.VerifyQuestion = "where did we first meet"
		cfg.VerifyAnswer = "The Library"
	}
	a, err := New(cfg)
	require.NoError(t, err)
	return a
}

func TestRegisterOnceThenLogin(t *testing.T) {
	a := newTestApp(t, Config{})

	admin, err := a.Register("Us@Example.com", "s3cret-pw", "Us")
	require.NoError(t, err)
	require.Equal(t, "us@example.com", admin.Email)

	_, err = a.Register("other@example.com", "pw", "Other")
	require.ErrorIs(t, err, ErrAdminExists)

	token, logged, err := a.Login("us@example.com", "s3cret-pw")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, logged.LastLogin)

	claims, err := a.Tokens().Verify(token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, claims.Role)
	require.Equal(t, "us@example.com", claims.Email)

	_, _, err = a.Login("us@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = a.Login("nobody@example.com", "s3cret-pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	a := newTestApp(t, Config{})

	var verr ValidationError
	_, err := a.Register("", "pw", "n")
	require.ErrorAs(t, err, &verr)
	_, err = a.Register("a@b.c", "", "n")
	require.ErrorAs(t, err, &verr)
	_, err = a.Register("a@b.c", "pw", " ")
	require.ErrorAs(t, err, &verr)
}

func TestVerifyVisitor(t *testing.T) {
	a := newTestApp(t, Config{})

	token, err := a.VerifyVisitor("  the library ", "203.0.113.7", "test-agent", map[string]string{"lang": "en"})
	require.NoError(t, err)
	claims, err := a.Tokens().Verify(token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleVisitor, claims.Role)

	_, err = a.VerifyVisitor("the archives", "203.0.113.8", "test-agent", nil)
	require.ErrorIs(t, err, ErrWrongAnswer)

	// both attempts were recorded, only the first verified
	visitors, err := a.ListVisitors()
	require.NoError(t, err)
	require.Len(t, visitors, 2)
	verified := 0
	for _, v := range visitors {
		if v.Verified {
			verified++
		}
	}
	require.Equal(t, 1, verified)
}

func TestCreateMemoryValidatesBeforeStore(t *testing.T) {
	a := newTestApp(t, Config{})

	_, err := a.CreateMemory(domain.Memory{Content: "c", Date: time.Now()})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "title is required", verr.Msg)

	_, err = a.CreateMemory(domain.Memory{Title: "t", Content: "c"})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "date is required", verr.Msg)

	// nothing was written
	items, err := a.ListMemories()
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestUpdateAndDeleteMissingRow(t *testing.T) {
	a := newTestApp(t, Config{})

	_, err := a.UpdateQuote(domain.Quote{ID: 42, Text: "x"})
	require.ErrorIs(t, err, ErrNotFound)

	err = a.DeleteQuote(42)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = a.GetQuote(42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFeaturedAggregation(t *testing.T) {
	a := newTestApp(t, Config{})

	for i := 0; i < 3; i++ {
		_, err := a.CreateQuote(domain.Quote{Text: "featured", IsFeatured: true})
		require.NoError(t, err)
	}
	for i := 0; i < 4; i++ {
		_, err := a.CreateGalleryItem(domain.GalleryItem{ImageURL: "/uploads/x.jpg", IsFeatured: true})
		require.NoError(t, err)
	}
	_, err := a.CreateGalleryItem(domain.GalleryItem{ImageURL: "/uploads/plain.jpg"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := a.CreateMemory(domain.Memory{
			Title: "m", Content: "c",
			Date: time.Date(2023, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	fc, err := a.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, fc.Quotes, 2)
	require.Len(t, fc.Gallery, 3)
	require.Len(t, fc.Memories, 2)
	// most recent memory first
	require.Equal(t, time.March, fc.Memories[0].Date.Month())
}

func TestFeaturedEmptyStoreReturnsEmptySlices(t *testing.T) {
	a := newTestApp(t, Config{})

	fc, err := a.Featured(context.Background())
	require.NoError(t, err)
	require.NotNil(t, fc.Quotes)
	require.NotNil(t, fc.Gallery)
	require.NotNil(t, fc.Memories)
}

func TestAnswerFallsBackOnProviderFailure(t *testing.T) {
	a := newTestApp(t, Config{
		Generator:     fakeGenerator{err: errors.New("provider down")},
		GeneratorName: "gemini-pro",
	})

	answer, err := a.Answer(context.Background(), "when is our anniversary?")
	require.NoError(t, err)
	require.Equal(t, fallbackAnswer, answer)

	_, err = a.Answer(context.Background(), "  ")
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestAnswerUsesProvider(t *testing.T) {
	a := newTestApp(t, Config{
		Generator:     fakeGenerator{reply: "  June 29th, sweetheart!  "},
		GeneratorName: "gemini-pro",
		CoupleNames:   "A and N",
	})

	answer, err := a.Answer(context.Background(), "when is our anniversary?")
	require.NoError(t, err)
	require.Equal(t, "June 29th, sweetheart!", answer)
}

func TestGenerateCaptionCannedFallback(t *testing.T) {
	a := newTestApp(t, Config{})

	img, err := a.CreateGalleryItem(domain.GalleryItem{ImageURL: "/uploads/beach.jpg"})
	require.NoError(t, err)

	caption, err := a.GenerateCaption(context.Background(), &img.ID, nil, img.ImageURL)
	require.NoError(t, err)
	require.NotEmpty(t, caption.Caption)
	require.Equal(t, cannedModelName, caption.ModelUsed)
	require.Contains(t, cannedCaptions, caption.Caption)

	stored, err := a.CaptionsForImage(img.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	_, err = a.GenerateCaption(context.Background(), nil, nil, "")
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestGenerateCaptionWithProvider(t *testing.T) {
	a := newTestApp(t, Config{
		Generator:     fakeGenerator{reply: "Golden hour, golden us."},
		GeneratorName: "gemini-pro",
	})

	caption, err := a.GenerateCaption(context.Background(), nil, nil, "/uploads/sunset.jpg")
	require.NoError(t, err)
	require.Equal(t, "Golden hour, golden us.", caption.Caption)
	require.Equal(t, "gemini-pro", caption.ModelUsed)
}

func TestUpsertPageContentRequiresPageName(t *testing.T) {
	a := newTestApp(t, Config{})

	_, err := a.UpsertPageContent(domain.PageContent{Title: "no name"})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)

	saved, err := a.UpsertPageContent(domain.PageContent{PageName: "home", Title: "Welcome", IsPublished: true})
	require.NoError(t, err)

	pages, err := a.ListPageContent("home")
	require.NoError(t, err)
	require.Len(t, pages, 1)
	require.Equal(t, saved.ID, pages[0].ID)

	none, err := a.ListPageContent("missing")
	require.NoError(t, err)
	require.Empty(t, none)
}
