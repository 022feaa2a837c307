// Package extractor turns the dictionary.com word of the day page into a
// domain.WordEntry.
//
// The selectors and the positional rules below mirror the page layout as it
// is published. When the page is redesigned this package is where it breaks,
// so the rules are kept literal rather than guessed at.
package extractor

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"wotdbot/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	headwordSelector      = "div.otd-item-headword__word"
	posSelector           = "div.otd-item-headword__pos"
	posStyleSelector      = "span.italic"
	pronunciationSelector = "span.otd-item-headword__pronunciation__text"
	ipaSelector           = "span.otd-item-headword__ipa"
	definitionSelector    = "div.otd-item-headword__pos-blocks"
	originSelector        = "div.wotd-item-origin__content"
)

var (
	ErrHeadwordMissing = errors.New("headword not found on page")
	ErrEmptyHeadword   = errors.New("headword is empty")
	ErrMalformedPage   = errors.New("malformed page")
)

// Extract parses the page markup. It returns an error only when the headword
// cannot be found; every other field falls back to a default or is left empty.
func Extract(markup string) (*domain.WordEntry, error) {
	return extract(strings.NewReader(markup))
}

func extract(r io.Reader) (entry *domain.WordEntry, err error) {
	defer func() {
		if r := recover(); r != nil {
			entry = nil
			err = fmt.Errorf("%w: %v", ErrMalformedPage, r)
		}
	}()

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPage, err)
	}

	headword := doc.Find(headwordSelector).First()
	if headword.Length() == 0 {
		return nil, ErrHeadwordMissing
	}

	word := strings.TrimSpace(headword.Text())
	if word == "" {
		return nil, ErrEmptyHeadword
	}

	e := &domain.WordEntry{
		Word:               word,
		PartOfSpeech:       partOfSpeech(doc),
		Pronunciation:      textOr(doc.Find(pronunciationSelector).First(), domain.PronunciationNotFound),
		PhoneticRespelling: textOr(doc.Find(ipaSelector).First(), ""),
		Definition:         definition(doc),
	}
	e.MoreAbout, e.Examples = origin(doc, word)

	return e, nil
}

func partOfSpeech(doc *goquery.Document) string {
	pos := doc.Find(posSelector).First()
	if pos.Length() == 0 {
		return domain.PartOfSpeechNotFound
	}
	return textOr(pos.Find(posStyleSelector).First(), domain.PartOfSpeechNotFound)
}

// definition takes the second paragraph of the definition block; the first
// one is the grammatical header.
func definition(doc *goquery.Document) string {
	block := doc.Find(definitionSelector).First()
	if block.Length() == 0 {
		return domain.DefinitionNotFound
	}
	return textOr(block.Find("p").Eq(1), domain.DefinitionNotFound)
}

// origin splits the "more about this word" container into commentary and
// example sentences.
func origin(doc *goquery.Document, word string) (string, []string) {
	container := doc.Find(originSelector).First()
	if container.Length() == 0 {
		return "", nil
	}

	raw := strings.Join(strippedStrings(container), "\n")

	if heading := "More about " + word; strings.Contains(raw, heading) {
		raw = strings.TrimSpace(strings.ReplaceAll(raw, heading, ""))
	}

	marker := "EXAMPLES OF " + strings.ToUpper(word)
	before, after, found := strings.Cut(raw, marker)
	if !found {
		return collapseSpaces(raw), nil
	}

	var examples []string
	for _, line := range strings.Split(after, "\n") {
		if line = collapseSpaces(line); line != "" {
			examples = append(examples, line)
		}
	}

	return collapseSpaces(before), examples
}

// strippedStrings returns every non-blank text node under sel in document
// order, trimmed.
func strippedStrings(sel *goquery.Selection) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				out = append(out, s)
			}
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return out
}

func textOr(sel *goquery.Selection, fallback string) string {
	if sel.Length() == 0 {
		return fallback
	}
	return strings.TrimSpace(sel.Text())
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
