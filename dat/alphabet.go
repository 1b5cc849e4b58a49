package dat

// Alphabet maps key bytes to dense alphabet IDs. Only the lowercase Latin
// letters and the apostrophe are mapped; all other bytes map to 0.
type Alphabet struct {
	dense [128]uint16
	sigma uint16
}

// Letters is the key alphabet: apostrophe first, then a to z.
const Letters = "'abcdefghijklmnopqrstuvwxyz"

// DefaultAlphabet maps Letters to 1..len(Letters).
func DefaultAlphabet() Alphabet {
	var a Alphabet
	for i := 0; i < len(Letters); i++ {
		a.sigma++
		a.dense[Letters[i]] = a.sigma
	}
	return a
}

// Dense returns the dense alphabet ID for b, or 0 if b is not in the alphabet.
func (a *Alphabet) Dense(b byte) uint16 {
	if b >= 128 {
		return 0
	}
	return a.dense[b]
}

// Sigma is the number of symbols in the alphabet.
func (a *Alphabet) Sigma() uint16 { return a.sigma }
