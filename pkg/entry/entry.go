package entry

import (
	"crypto/rand"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

// SnippetLength is the number of characters shown for an entry in lists.
const SnippetLength = 140

// New builds a finalized entry for text written at now.
func New(text string, now time.Time) *Entry {
	return &Entry{
		ID:        NewID(now),
		Date:      Timestamp{Time: now},
		Text:      text,
		WordCount: CountWords(text),
	}
}

// Entry is a finalized journal record. Entries are created on save and never
// mutated afterwards.
type Entry struct {
	ID        string    `json:"id"`
	Date      Timestamp `json:"date"`
	Text      string    `json:"text"`
	WordCount int       `json:"wordCount"`
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a ULID for the given time. IDs created within the same
// millisecond still sort in creation order.
func NewID(now time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}

// CountWords splits text on whitespace and newlines and counts the non-empty
// segments.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Snippet shortens the entry text for list views.
func (e *Entry) Snippet() string {
	return Snippet(e.Text, SnippetLength)
}

// Snippet returns at most n characters of text, followed by an ellipsis when
// the text was cut.
func Snippet(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "…"
}

// Matches reports whether the entry text contains query, ignoring case. A
// blank query matches everything.
func (e *Entry) Matches(query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Text), strings.ToLower(q))
}

// Row is used by table printers.
func (e *Entry) Row() (string, string, string) {
	return e.Date.Local().Format(layoutShort), WordsLabel(e.WordCount), e.Snippet()
}

const layoutShort = "Jan 2, 2006 3:04 PM"

// WordsLabel renders a word count as "1 word" or "N words".
func WordsLabel(n int) string {
	if n == 1 {
		return "1 word"
	}
	return strconv.Itoa(n) + " words"
}
