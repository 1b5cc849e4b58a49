/*
Package dictionary holds the word list of a Lojban dictionary.

Entries are loaded from a streaming EntryReader (see NewYAMLReader). Loading
builds three indexes:

  - a trie of all words, for exact and prefix lookup
  - a frozen double-array trie mapping rafsi to the word that owns them
  - an index of English stems found in definitions and gloss words

Suggest offers "did you mean" candidates by Damerau-Levenshtein distance.

A loaded Dictionary is read-only and safe for concurrent use.
*/
package dictionary

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lujvo.dictionary'
func tracer() tracing.Trace {
	return tracing.Select("lujvo.dictionary")
}
