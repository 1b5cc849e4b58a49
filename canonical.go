package lujvo

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Canonical prepares user input for Decompose.
//
// It applies NFC normalization, lowercases, trims surrounding white space and
// full stops, and replaces 'h' by the apostrophe it stands for in plain
// Latin transcription. The second return value is false if the result
// contains anything outside the compound alphabet (consonants, vowels, 'y'
// and the apostrophe).
//
//	"  Fa'i. " => "fa'i", true
//	"fahi"     => "fa'i", true
//	"fa2i"     => "fa2i", false
func Canonical(s string) (string, bool) {
	s = norm.NFC.String(s)
	s = cases.Lower(language.Und).String(s)
	s = strings.Trim(s, " \t\r\n.")
	s = strings.Map(func(r rune) rune {
		switch r {
		case 'h', '’', '‘':
			return '\''
		}
		return r
	}, s)
	if s == "" {
		return s, false
	}
	for i := 0; i < len(s); i++ {
		if !inAlphabet(s[i]) {
			return s, false
		}
	}
	return s, true
}

func inAlphabet(b byte) bool {
	switch {
	case b == '\'' || b == 'y':
		return true
	case b >= 'a' && b <= 'z':
		return b != 'h' && b != 'q' && b != 'w'
	}
	return false
}
