package domain

import (
	"fmt"
	"strings"
	"time"
)

// Defaults used when a mandatory field is missing on the page
const (
	PartOfSpeechNotFound  = "Part of speech not found"
	PronunciationNotFound = "Pronunciation not found"
	DefinitionNotFound    = "Definition not found"
)

// WordEntry represents one day's word as parsed from the source page.
// Word is never empty. PhoneticRespelling and MoreAbout are empty when
// the page does not carry them.
type WordEntry struct {
	Word               string
	PartOfSpeech       string
	Pronunciation      string
	PhoneticRespelling string
	Definition         string
	MoreAbout          string
	Examples           []string
}

// Message renders the announcement posted to the chat
func (e WordEntry) Message() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Word of the Day: %s\n\n", e.Word)
	fmt.Fprintf(&b, "Part of Speech: %s\n", e.PartOfSpeech)
	fmt.Fprintf(&b, "Pronunciation: %s\n", e.Pronunciation)
	if e.PhoneticRespelling != "" {
		fmt.Fprintf(&b, "Phonetic Respelling: %s\n", e.PhoneticRespelling)
	}
	fmt.Fprintf(&b, "Definition: %s\n\n", e.Definition)

	if e.MoreAbout != "" {
		fmt.Fprintf(&b, "More About This Word:\n%s\n\n", e.MoreAbout)
	}

	if len(e.Examples) > 0 {
		b.WriteString("Examples:\n")
		for i, example := range e.Examples {
			fmt.Fprintf(&b, "%d. %s\n", i+1, example)
		}
	}

	return b.String()
}

// Announcement is an archived word that was posted to the channel
type Announcement struct {
	ID            int
	Word          string
	PartOfSpeech  string
	Pronunciation string
	Definition    string
	AnnouncedAt   time.Time
}
