package dictionary

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"sort"
	"strings"

	"github.com/derekparker/trie"

	"github.com/npillmayer/lujvo"
	"github.com/npillmayer/lujvo/dat"
)

// ErrDuplicate is returned when a word occurs twice in a dictionary source.
var ErrDuplicate = errors.New("duplicate dictionary word")

// Dictionary is a loaded, read-only dictionary.
type Dictionary struct {
	entries    []Entry
	words      *trie.Trie // word => index into entries
	rafsi      *dat.DAT   // rafsi => index into entries
	stems      stemIndex
	etag       string
	Identifier string // Identifies the dictionary
}

// Load builds a dictionary from a streaming source.
//
// Words must be unique. A rafsi claimed by more than one word stays with the
// first one; rafsi outside the compound alphabet are skipped.
func Load(name string, reader EntryReader) (*Dictionary, error) {
	dict := &Dictionary{
		words:      trie.New(),
		stems:      make(stemIndex),
		Identifier: fmt.Sprintf("dictionary: %s", name),
	}
	rafsi := dat.NewBuilder()
	h := fnv.New64a()
	for {
		e, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			tracer().Errorf("loading %s: %v", name, err)
			return nil, err
		}
		e.Word = strings.TrimSpace(e.Word)
		if e.Word == "" {
			continue // simply skip entries without a word
		}
		if _, found := dict.words.Find(e.Word); found {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, e.Word)
		}
		idx := len(dict.entries)
		dict.entries = append(dict.entries, e)
		dict.words.Add(e.Word, idx)
		for _, r := range e.Rafsi {
			if _, taken := rafsi.Find(r); taken {
				tracer().Infof("rafsi %q of %q already taken, ignoring", r, e.Word)
				continue
			}
			if _, err := rafsi.Insert(r, int32(idx)); err != nil {
				tracer().Infof("ignoring rafsi of %q: %v", e.Word, err)
			}
		}
		dict.stems.addText(e.Definition, e.Word)
		for _, g := range e.Glosses {
			dict.stems.addText(g, e.Word)
		}
		hashEntry(h, e)
	}
	dict.rafsi = rafsi.Freeze()
	dict.etag = fmt.Sprintf("%016x", h.Sum64())
	stats := dict.rafsi.Stats()
	tracer().Infof("%s: %d words, %d rafsi, %d stems, rafsi trie used=%d total=%d fill=%.2f",
		dict.Identifier, len(dict.entries), rafsi.Len(), len(dict.stems),
		stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return dict, nil
}

// Len is the number of words.
func (dict *Dictionary) Len() int {
	if dict == nil {
		return 0
	}
	return len(dict.entries)
}

// ETag is a content hash of the dictionary, suitable as an HTTP entity tag.
func (dict *Dictionary) ETag() string {
	return dict.etag
}

// RafsiTrieStats reports density metrics for the rafsi index.
func (dict *Dictionary) RafsiTrieStats() dat.Stats {
	return dict.rafsi.Stats()
}

// Lookup returns the entry for word.
func (dict *Dictionary) Lookup(word string) (Entry, bool) {
	if dict == nil || dict.words == nil {
		return Entry{}, false
	}
	node, found := dict.words.Find(word)
	if !found {
		return Entry{}, false
	}
	return dict.entries[node.Meta().(int)], true
}

// Definition returns the raw definition of word.
func (dict *Dictionary) Definition(word string) (string, bool) {
	e, ok := dict.Lookup(word)
	return e.Definition, ok
}

// WordForRafsi returns the word a rafsi belongs to.
//
// Besides the registered rafsi, a word is its own rafsi (the final unit of
// a compound may be a full gismu), and a 4-letter unit stands for the
// gismu it shortens, e.g. "bang" for "bangu".
func (dict *Dictionary) WordForRafsi(rafsi string) (string, bool) {
	if dict == nil || dict.rafsi == nil {
		return "", false
	}
	if idx, ok := dict.rafsi.Lookup(rafsi); ok {
		return dict.entries[idx].Word, true
	}
	if _, ok := dict.Lookup(rafsi); ok {
		return rafsi, true
	}
	if lujvo.Long.Match(rafsi) {
		for _, w := range dict.Prefix(rafsi) {
			if lujvo.LongVowelFinal.Match(w) {
				return w, true
			}
		}
	}
	return "", false
}

// Prefix returns all words starting with prefix, sorted.
func (dict *Dictionary) Prefix(prefix string) []string {
	if dict == nil || dict.words == nil || prefix == "" {
		return nil
	}
	words := dict.words.PrefixSearch(prefix)
	sort.Strings(words)
	return words
}

// Suggestion is a candidate word for a misspelled one.
type Suggestion struct {
	Word     string
	Distance int
}

// Suggest returns words within maxDist edits of word, by ascending distance,
// then alphabetically. An exact match is not a suggestion.
func (dict *Dictionary) Suggest(word string, maxDist int) []Suggestion {
	if dict == nil || word == "" || maxDist <= 0 {
		return nil
	}
	var suggestions []Suggestion
	wr := []rune(word)
	for _, e := range dict.entries {
		er := []rune(e.Word)
		if abs(len(er)-len(wr)) > maxDist {
			continue
		}
		d := Distance(wr, er)
		if d == 0 || d > maxDist {
			continue
		}
		suggestions = append(suggestions, Suggestion{Word: e.Word, Distance: d})
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Word < suggestions[j].Word
	})
	return suggestions
}

// SearchEnglish returns the words whose definitions or gloss words share
// the English stem of token, in dictionary order.
func (dict *Dictionary) SearchEnglish(token string) []string {
	if dict == nil {
		return nil
	}
	found := dict.stems[stem(strings.TrimSpace(token))]
	words := make([]string, len(found))
	copy(words, found)
	return words
}

// hashEntry feeds every field of e into h, each one NUL-terminated.
func hashEntry(h io.Writer, e Entry) {
	fmt.Fprintf(h, "%s\x00%s\x00%s\x00%s\x00%s\x00%s\x00",
		e.Word, e.Type, strings.Join(e.Rafsi, " "), strings.Join(e.Glosses, "\x01"),
		e.Definition, e.Notes)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
