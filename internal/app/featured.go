package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ourstory/pkg/domain"
)

const (
	featuredQuoteCount   = 2
	featuredGalleryCount = 3
	recentMemoryCount    = 2
)

// FeaturedContent is the homepage payload: at most 2 featured quotes,
// 3 featured gallery items and the 2 most recent memories by date.
type FeaturedContent struct {
	Quotes   []domain.Quote       `json:"quotes"`
	Gallery  []domain.GalleryItem `json:"gallery"`
	Memories []domain.Memory      `json:"memories"`
}

// Featured fetches the three branches concurrently. Any store failure
// fails the whole call; there are no partial results.
func (a *App) Featured(ctx context.Context) (FeaturedContent, error) {
	var fc FeaturedContent
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fc.Quotes, err = a.store.FeaturedQuotes(featuredQuoteCount)
		return err
	})
	g.Go(func() error {
		var err error
		fc.Gallery, err = a.store.FeaturedGallery(featuredGalleryCount)
		return err
	})
	g.Go(func() error {
		var err error
		fc.Memories, err = a.store.RecentMemories(recentMemoryCount)
		return err
	})
	if err := g.Wait(); err != nil {
		return FeaturedContent{}, fmt.Errorf("featured content: %w", err)
	}
	if fc.Quotes == nil {
		fc.Quotes = []domain.Quote{}
	}
	if fc.Gallery == nil {
		fc.Gallery = []domain.GalleryItem{}
	}
	if fc.Memories == nil {
		fc.Memories = []domain.Memory{}
	}
	return fc, nil
}
