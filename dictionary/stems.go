package dictionary

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// stemIndex maps English (porter2) stems to the words whose definitions or
// gloss words contain them.
type stemIndex map[string][]string

var texMath = regexp.MustCompile(`\$[^$]*\$`)

func stem(token string) string {
	return english.Stem(strings.ToLower(token), true)
}

// add registers word under the stem of token, once.
func (idx stemIndex) add(token string, word string) {
	s := stem(token)
	if s == "" {
		return
	}
	if slices.Contains(idx[s], word) {
		return
	}
	idx[s] = append(idx[s], word)
}

// addText registers word under every English token of text. Place
// structure variables like $x_1$ are skipped.
func (idx stemIndex) addText(text string, word string) {
	text = texMath.ReplaceAllString(text, " ")
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, tok := range tokens {
		if len(tok) < 2 {
			continue
		}
		idx.add(tok, word)
	}
}
