package content

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Cluster is one user-perceived character and the terminal cells it occupies
type Cluster struct {
	Runes []rune
	Width int // 0 for zero-width clusters, 2 for wide East Asian/emoji
}

// Unit is one opaque content block; its only layout property is its width.
// Units are immutable once built; a content change produces a new Unit.
type Unit struct {
	text     string
	clusters []Cluster
	width    int
	source   string
}

// NewUnit normalises text into a single-line unit.
// Newlines, tabs and other control characters fold to single spaces so the
// band stays one row tall.
func NewUnit(text string) *Unit {
	return newUnit(text, "")
}

func newUnit(text, source string) *Unit {
	clean := foldControls(norm.NFC.String(text))

	u := &Unit{
		text:   clean,
		source: source,
	}

	gr := uniseg.NewGraphemes(clean)
	for gr.Next() {
		w := runewidth.StringWidth(gr.Str())
		u.clusters = append(u.clusters, Cluster{
			Runes: gr.Runes(),
			Width: w,
		})
		u.width += w
	}
	return u
}

// foldControls replaces runs of control characters with one space
func foldControls(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if unicode.IsControl(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	if pendingSpace {
		b.WriteByte(' ')
	}
	return b.String()
}

// Text returns the normalised text
func (u *Unit) Text() string {
	if u == nil {
		return ""
	}
	return u.text
}

// Width returns the rendered width in terminal cells
func (u *Unit) Width() int {
	if u == nil {
		return 0
	}
	return u.width
}

// Clusters returns the grapheme clusters in display order
func (u *Unit) Clusters() []Cluster {
	if u == nil {
		return nil
	}
	return u.clusters
}

// Source returns the file the unit was loaded from, empty for inline text
func (u *Unit) Source() string {
	if u == nil {
		return ""
	}
	return u.source
}

// Empty reports whether the unit renders no cells
func (u *Unit) Empty() bool {
	return u.Width() == 0
}
