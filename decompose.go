package lujvo

// SegmentKind classifies the segments of a decomposition.
type SegmentKind int8

const (
	ShortUnit    SegmentKind = iota + 1 // interior rafsi of shape rafsi3
	LongUnit                            // interior rafsi of shape rafsi4
	HyphenLetter                        // n, r or y between units
	TerminalUnit                        // final rafsi of shape rafsi3v or rafsi5
)

func (k SegmentKind) String() string {
	switch k {
	case ShortUnit:
		return "short"
	case LongUnit:
		return "long"
	case HyphenLetter:
		return "hyphen"
	case TerminalUnit:
		return "terminal"
	}
	return "unknown"
}

// Segment is one piece of a decomposed compound.
type Segment struct {
	Text   string
	Offset int // byte offset into the compound
	Kind   SegmentKind
}

// IsUnit is true for rafsi, false for hyphen letters.
func (seg Segment) IsUnit() bool {
	return seg.Kind != HyphenLetter
}

// step is one interior alternative: a unit sequence, optionally followed by
// a hyphen letter.
type step struct {
	unit   Sequence
	kind   SegmentKind
	hyphen *Class
}

var interiorSteps = expandInterior(Interior)

// expandInterior flattens the interior forms into the order the search tries
// them: per unit alternative, hyphen-less variant first if it is permitted.
func expandInterior(forms []InteriorForm) []step {
	var steps []step
	for i := range forms {
		form := &forms[i]
		kind := ShortUnit
		if form.Mandatory {
			kind = LongUnit
		}
		for _, q := range form.Unit.Alternatives {
			if !form.Mandatory {
				steps = append(steps, step{unit: q, kind: kind})
			}
			steps = append(steps, step{unit: q, kind: kind, hyphen: &form.Hyphen})
		}
	}
	return steps
}

// minUnitWidth is the narrowest any unit can be.
const minUnitWidth = 3

// Decompose splits a compound into its rafsi and hyphen letters.
//
// Example:
//
//	"sampyfa'i" => [ "samp", "y", "fa'i" ]
//
// If compound cannot be segmented, Decompose returns nil. Input is expected to
// contain only lowercase consonants, vowels, 'y' and the apostrophe; use
// Canonical to prepare user input.
func Decompose(compound string) []string {
	segments := Analyze(compound)
	if len(segments) == 0 {
		return nil
	}
	texts := make([]string, len(segments))
	for i, seg := range segments {
		texts[i] = seg.Text
	}
	return texts
}

// Analyze is like Decompose, but reports each segment with its kind and
// position.
//
// Interior unit counts are tried from 1 up to len(compound)/3. The first
// count for which a segmentation exists wins; for that count, alternatives
// are tried in grammar order and the first complete match is returned.
func Analyze(compound string) []Segment {
	for i := 1; i <= len(compound)/3; i++ {
		m := matcher{
			input: compound,
			dead:  make(map[matchState]struct{}),
		}
		if m.interior(0, i) {
			tracer().Debugf("decomposed %q with %d interior units into %d segments",
				compound, i, len(m.segments))
			return m.segments
		}
	}
	return nil
}

type matchState struct {
	pos, remaining int
}

// matcher runs one depth-first search for a fixed count of interior units.
type matcher struct {
	input    string
	segments []Segment
	dead     map[matchState]struct{} // states known to fail
}

// interior consumes remaining interior units starting at pos, then the
// terminal unit.
func (m *matcher) interior(pos, remaining int) bool {
	if remaining == 0 {
		return m.terminal(pos)
	}
	if len(m.input)-pos < (remaining+1)*minUnitWidth {
		return false
	}
	state := matchState{pos: pos, remaining: remaining}
	if _, found := m.dead[state]; found {
		return false
	}
	mark := len(m.segments)
	for _, st := range interiorSteps {
		if !st.unit.MatchAt(m.input, pos) {
			continue
		}
		next := pos + st.unit.Width()
		if st.hyphen != nil && !st.hyphen.MatchAt(m.input, next) {
			continue
		}
		m.segments = append(m.segments, Segment{
			Text:   m.input[pos:next],
			Offset: pos,
			Kind:   st.kind,
		})
		if st.hyphen != nil {
			h := next + st.hyphen.Width()
			m.segments = append(m.segments, Segment{
				Text:   m.input[next:h],
				Offset: next,
				Kind:   HyphenLetter,
			})
			next = h
		}
		if m.interior(next, remaining-1) {
			return true
		}
		m.segments = m.segments[:mark]
	}
	m.dead[state] = struct{}{}
	return false
}

// terminal consumes the final unit, which must end the input.
func (m *matcher) terminal(pos int) bool {
	for _, q := range Terminal.Alternatives {
		if pos+q.Width() != len(m.input) || !q.MatchAt(m.input, pos) {
			continue
		}
		m.segments = append(m.segments, Segment{
			Text:   m.input[pos:],
			Offset: pos,
			Kind:   TerminalUnit,
		})
		return true
	}
	return false
}
