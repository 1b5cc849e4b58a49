/*
Package linker turns dictionary cross-references into HTML links.

Definitions refer to other words in braces, e.g. "See also {mupli}.".
Braces replaces each reference with a link to the word, titled with its
definition. Words missing from the dictionary link to the jbovlaste form for
adding them:

	<a href="http://jbovlaste.lojban.org/dict/addvalsi.html?valsi=missing"
	   title="This word is missing, please add it!" class="missing">missing</a>

Compound links every rafsi of a compound word to the word it stands for.
*/
package linker

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/npillmayer/lujvo"
)

// DefaultBaseURL is the jbovlaste site missing words link to.
const DefaultBaseURL = "http://jbovlaste.lojban.org"

// Dictionary is what the linker needs to know about words.
type Dictionary interface {
	Definition(word string) (string, bool)
	WordForRafsi(rafsi string) (string, bool)
}

// Linker renders links against a dictionary.
type Linker struct {
	dict    Dictionary
	baseURL string
}

// New creates a linker. An empty baseURL selects DefaultBaseURL.
func New(dict Dictionary, baseURL string) *Linker {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Linker{
		dict:    dict,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

var bracePattern = regexp.MustCompile(`\{(.+?)\}`)

// Braces turns {quoted words} into links.
//
//	"See also {mupli}." => `See also <a href="mupli" title="...">mupli</a>.`
func (l *Linker) Braces(text string) string {
	return bracePattern.ReplaceAllStringFunc(text, func(m string) string {
		word := m[1 : len(m)-1]
		return l.Link(word, word)
	})
}

// Link renders a link with link text label to word. Word, label and the
// definition used as title are escaped.
func (l *Linker) Link(word, label string) string {
	if def, ok := l.dict.Definition(word); ok {
		return `<a href="` + html.EscapeString(word) + `" title="` + html.EscapeString(def) + `">` +
			html.EscapeString(label) + `</a>`
	}
	return l.Missing(word, label)
}

// Missing renders a link inviting to add word to the dictionary.
func (l *Linker) Missing(word, label string) string {
	return `<a href="` + html.EscapeString(l.baseURL+"/dict/addvalsi.html?valsi="+url.QueryEscape(word)) + `"` +
		` title="This word is missing, please add it!"` +
		` class="missing">` + html.EscapeString(label) + `</a>`
}

// Compound links each rafsi of compound to the word owning it. Hyphen
// letters stay plain text. A compound which does not decompose is returned
// unchanged.
//
//	"jbovlaste" => `<a href="lojbo" ...>jbo</a><a href="valsi" ...>vla</a><a href="liste" ...>ste</a>`
func (l *Linker) Compound(compound string) string {
	segments := lujvo.Analyze(compound)
	if len(segments) == 0 {
		return compound
	}
	var sb strings.Builder
	for _, seg := range segments {
		if !seg.IsUnit() {
			sb.WriteString(seg.Text)
			continue
		}
		if word, ok := l.dict.WordForRafsi(seg.Text); ok {
			sb.WriteString(l.Link(word, seg.Text))
			continue
		}
		sb.WriteString(l.Missing(seg.Text, seg.Text))
	}
	return sb.String()
}
