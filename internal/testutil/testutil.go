package testutil

import (
	"fmt"
	"strings"
	"time"

	"wotdbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test word entry
func NewTestEntry(word string) *domain.WordEntry {
	return &domain.WordEntry{
		Word:          word,
		PartOfSpeech:  "noun",
		Pronunciation: "[ " + strings.ToLower(word) + " ]",
		Definition:    "definition of " + word,
	}
}

// NewTestAnnouncement creates a test archived announcement
func NewTestAnnouncement(id int, word string, announcedAt time.Time) domain.Announcement {
	return domain.Announcement{
		ID:            id,
		Word:          word,
		PartOfSpeech:  "noun",
		Pronunciation: "[ " + strings.ToLower(word) + " ]",
		Definition:    "definition of " + word,
		AnnouncedAt:   announcedAt,
	}
}

// WordPage renders a minimal word of the day page
func WordPage(word string, examples ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<html><body><div class="otd-item-headword__word">%s</div>`, word)
	b.WriteString(`<span class="otd-item-headword__pronunciation__text">[ test ]</span>`)
	b.WriteString(`<div class="otd-item-headword__pos-blocks">`)
	b.WriteString(`<div class="otd-item-headword__pos"><p><span class="italic">noun</span></p></div>`)
	fmt.Fprintf(&b, `<p>definition of %s</p></div>`, word)
	fmt.Fprintf(&b, `<div class="wotd-item-origin__content"><p>More about %s</p><p>Origin of %s.</p>`, word, word)
	if len(examples) > 0 {
		fmt.Fprintf(&b, `<p>EXAMPLES OF %s</p>`, strings.ToUpper(word))
		for _, example := range examples {
			fmt.Fprintf(&b, `<p>%s</p>`, example)
		}
	}
	b.WriteString(`</div></body></html>`)
	return b.String()
}
