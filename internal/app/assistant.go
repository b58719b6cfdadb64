package app

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"ourstory/pkg/domain"
)

// fallbackAnswer is shown whenever the text provider is missing or
// fails. Provider trouble is never surfaced as a server error.
const fallbackAnswer = "Oops, I got a little tongue-tied! Ask me again in a moment, sweetheart~"

// cannedCaptions back the caption generator when no provider is
// configured.
var cannedCaptions = []string{
	"A beautiful moment we will never forget",
	"Your smile lights up every one of my days",
	"Every second with you is pure happiness",
	"Love that grows with every glance",
	"A memory I will keep in my heart forever",
	"A beautiful love story starts right here",
	"You make my ordinary days perfect",
	"Togetherness full of love and warmth",
}

const cannedModelName = "canned-v1"

func (a *App) personaPrompt() string {
	var b strings.Builder
	b.WriteString("You are a playful, affectionate relationship assistant")
	if a.coupleNames != "" {
		fmt.Fprintf(&b, " for the couple %s", a.coupleNames)
	}
	b.WriteString(". Answer in a sweet, funny, romantic tone with lots of warmth.")
	if a.coupleStory != "" {
		b.WriteString(" What you know about them: ")
		b.WriteString(a.coupleStory)
	}
	return b.String()
}

// Answer proxies the question to the text provider with the couple
// persona. Provider failure degrades to the fixed fallback answer.
func (a *App) Answer(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", required("question")
	}
	if a.generator == nil {
		return fallbackAnswer, nil
	}
	answer, err := a.generator.GenerateText(ctx, a.personaPrompt(), question)
	if err != nil || strings.TrimSpace(answer) == "" {
		return fallbackAnswer, nil
	}
	return strings.TrimSpace(answer), nil
}

// GenerateCaption produces a caption for an image and persists it. With
// no provider configured it picks from the canned list, matching the
// old mock behavior.
func (a *App) GenerateCaption(ctx context.Context, imageID, memoryID *int64, imageURL string) (domain.Caption, error) {
	if strings.TrimSpace(imageURL) == "" {
		return domain.Caption{}, required("imageUrl")
	}
	caption := ""
	model := cannedModelName
	if a.generator != nil {
		prompt := fmt.Sprintf("Write one short romantic photo caption, a single sentence, for the photo at %s. Reply with the caption only.", imageURL)
		text, err := a.generator.GenerateText(ctx, a.personaPrompt(), prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			caption = strings.TrimSpace(text)
			model = a.generatorName
		}
	}
	if caption == "" {
		caption = cannedCaptions[rand.Intn(len(cannedCaptions))]
		model = cannedModelName
	}
	saved, err := a.store.CreateCaption(domain.Caption{
		ImageID:   imageID,
		MemoryID:  memoryID,
		Caption:   caption,
		ModelUsed: model,
	})
	if err != nil {
		return domain.Caption{}, fmt.Errorf("save caption: %w", err)
	}
	return saved, nil
}

// CaptionsForImage lists stored captions for one gallery image.
func (a *App) CaptionsForImage(imageID int64) ([]domain.Caption, error) {
	return a.store.CaptionsForImage(imageID)
}
