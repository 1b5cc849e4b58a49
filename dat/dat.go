/*
Package dat implements a frozen double-array trie (DAT) for short ASCII keys.

Keys are strings over the lowercase Latin letters and the apostrophe, which
covers rafsi and gismu. Every key carries an int32 value. A trie is built
with a Builder and is read-only once frozen.

	b := dat.NewBuilder()
	b.Insert("cme", 7)
	d := b.Freeze()
	v, ok := d.Lookup("cme") // 7, true
*/
package dat

import "errors"

var (
	// ErrFrozen is returned when inserting into a frozen builder.
	ErrFrozen = errors.New("dat: builder is frozen")

	// ErrInvalidKey is returned for empty keys or keys outside the alphabet.
	ErrInvalidKey = errors.New("dat: invalid key")
)

// DAT is a frozen double-array trie.
//   - States are indices into Base/Check (0 is unused; Root is 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Values:
//   - If Terminal[s] is set, state s ends a key and Value[s] holds its value.
type DAT struct {
	// Root state index.
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	Value    []int32 // len == N
	Terminal []bool  // len == N

	alphabet Alphabet
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Lookup returns the value stored for key.
func (d *DAT) Lookup(key string) (int32, bool) {
	if d == nil || len(d.Base) == 0 || key == "" {
		return 0, false
	}
	state := d.Root
	for i := 0; i < len(key); i++ {
		next, ok := d.Transition(state, d.alphabet.Dense(key[i]))
		if !ok {
			return 0, false
		}
		state = next
	}
	if !d.Terminal[state] {
		return 0, false
	}
	return d.Value[state], true
}

// HasPrefix reports whether any key starts with prefix.
func (d *DAT) HasPrefix(prefix string) bool {
	if d == nil || len(d.Base) == 0 {
		return false
	}
	state := d.Root
	for i := 0; i < len(prefix); i++ {
		next, ok := d.Transition(state, d.alphabet.Dense(prefix[i]))
		if !ok {
			return false
		}
		state = next
	}
	return true
}

// Stats reports density metrics for a frozen trie.
type Stats struct {
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

// FillRatio is the share of used slots.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats counts used slots of d.
func (d *DAT) Stats() Stats {
	stats := Stats{
		TotalSlots: d.NStates(),
		MaxStateID: int(d.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			stats.UsedSlots++
			stats.MaxStateID = max(stats.MaxStateID, i)
		}
	}
	return stats
}
