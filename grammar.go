package lujvo

import (
	"strings"
)

// Class is a closed set of letter strings of equal width, e.g. all
// consonants or all permissible initial consonant pairs.
//
// Members are kept in declaration order. As all members share one width,
// a class matches at a given position in at most one way.
type Class struct {
	Name    string
	width   int
	members []string
	set     map[string]struct{}
}

func newClass(name string, members ...string) Class {
	assert(len(members) > 0, "letter class must not be empty")
	c := Class{
		Name:    name,
		width:   len(members[0]),
		members: members,
		set:     make(map[string]struct{}, len(members)),
	}
	for _, m := range members {
		assert(len(m) == c.width, "members of a letter class must have equal width")
		c.set[m] = struct{}{}
	}
	return c
}

// letters splits s into one-letter members.
func letters(s string) []string {
	return strings.Split(s, "")
}

// Width is the number of bytes every member of c spans.
func (c Class) Width() int {
	return c.width
}

// Members returns the members of c in declaration order.
func (c Class) Members() []string {
	mm := make([]string, len(c.members))
	copy(mm, c.members)
	return mm
}

// Contains reports whether m is a member of c.
func (c Class) Contains(m string) bool {
	_, ok := c.set[m]
	return ok
}

// MatchAt reports whether a member of c starts at byte offset pos of s.
func (c Class) MatchAt(s string, pos int) bool {
	if pos < 0 || pos+c.width > len(s) {
		return false
	}
	return c.Contains(s[pos : pos+c.width])
}

func (c Class) String() string {
	return c.Name
}

// Sequence is a fixed run of letter classes, e.g. C V C.
type Sequence []Class

// Width is the number of bytes a match of q spans.
func (q Sequence) Width() int {
	w := 0
	for _, c := range q {
		w += c.width
	}
	return w
}

// MatchAt reports whether q matches s starting at byte offset pos.
func (q Sequence) MatchAt(s string, pos int) bool {
	for _, c := range q {
		if !c.MatchAt(s, pos) {
			return false
		}
		pos += c.width
	}
	return true
}

func (q Sequence) String() string {
	names := make([]string, len(q))
	for i, c := range q {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// Shape is an ordered list of alternative sequences. Order matters: the
// search tries alternatives first to last.
type Shape struct {
	Name         string
	Alternatives []Sequence
}

// seq is an unnamed shape with a single alternative.
func seq(classes ...Class) Shape {
	return Shape{Alternatives: []Sequence{classes}}
}

// either concatenates the alternatives of shapes, keeping their order.
func either(name string, shapes ...Shape) Shape {
	sh := Shape{Name: name}
	for _, s := range shapes {
		sh.Alternatives = append(sh.Alternatives, s.Alternatives...)
	}
	return sh
}

// then is the ordered product of shapes: every alternative of the first
// shape, in order, followed by every alternative of the rest.
func then(name string, shapes ...Shape) Shape {
	product := []Sequence{{}}
	for _, s := range shapes {
		next := make([]Sequence, 0, len(product)*len(s.Alternatives))
		for _, head := range product {
			for _, tail := range s.Alternatives {
				q := make(Sequence, 0, len(head)+len(tail))
				q = append(q, head...)
				q = append(q, tail...)
				next = append(next, q)
			}
		}
		product = next
	}
	return Shape{Name: name, Alternatives: product}
}

// Match reports whether s as a whole is of shape sh.
func (sh Shape) Match(s string) bool {
	for _, q := range sh.Alternatives {
		if q.Width() == len(s) && q.MatchAt(s, 0) {
			return true
		}
	}
	return false
}

func (sh Shape) String() string {
	alts := make([]string, len(sh.Alternatives))
	for i, q := range sh.Alternatives {
		alts[i] = q.String()
	}
	return sh.Name + "(" + strings.Join(alts, " | ") + ")"
}

// --- Alphabet --------------------------------------------------------------

// Letter classes.
var (
	Consonant  = newClass("C", letters("bcdfgjklmnprstvxz")...)
	Vowel      = newClass("V", letters("aeiou")...)
	Apostrophe = newClass("'", "'")
	Diphthong  = newClass("VV", "ai", "ei", "oi", "au")
	Cluster    = newClass("CC",
		"bl", "br",
		"cf", "ck", "cl", "cm", "cn", "cp", "cr", "ct",
		"dj", "dr", "dz", "fl", "fr", "gl", "gr",
		"jb", "jd", "jg", "jm", "jv", "kl", "kr",
		"ml", "mr", "pl", "pr",
		"sf", "sk", "sl", "sm", "sn", "sp", "sr", "st",
		"tc", "tr", "ts", "vl", "vr", "xl", "xr",
		"zb", "zd", "zg", "zm", "zv")
)

// Hyphen letters.
var (
	ShortHyphen = newClass("n|r|y", "n", "r", "y") // may follow a short unit
	LongHyphen  = newClass("y", "y")               // must follow a long unit
)

// --- Unit shapes -----------------------------------------------------------

// Unit shapes, in the order the search tries their alternatives. Cluster
// alternatives precede single-consonant ones.
var (
	ShortVowelFinal = either("rafsi3v",
		seq(Cluster, Vowel),
		seq(Consonant, Diphthong),
		seq(Consonant, Vowel, Apostrophe, Vowel))
	Short = either("rafsi3",
		ShortVowelFinal,
		seq(Consonant, Vowel, Consonant))
	Long = either("rafsi4",
		seq(Consonant, Vowel, Consonant, Consonant),
		seq(Cluster, Vowel, Consonant))
	LongVowelFinal = then("rafsi5", Long, seq(Vowel))
	Terminal       = either("terminal", ShortVowelFinal, LongVowelFinal)
)

// InteriorForm is a unit shape that may appear before the last unit of a
// compound, together with the hyphen letter that may follow it.
type InteriorForm struct {
	Unit      Shape
	Hyphen    Class
	Mandatory bool // hyphen must be present
}

// Interior lists the interior forms in search order. For an optional hyphen,
// the variant without hyphen is tried first.
var Interior = []InteriorForm{
	{Unit: Short, Hyphen: ShortHyphen},
	{Unit: Long, Hyphen: LongHyphen, Mandatory: true},
}
