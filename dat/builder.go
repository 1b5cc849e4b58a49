package dat

import (
	"fmt"
	"sort"
)

type buildNode struct {
	state    uint32
	terminal bool
	value    int32
	children map[uint16]*buildNode
}

func newBuildNode() *buildNode {
	return &buildNode{children: make(map[uint16]*buildNode)}
}

// Builder collects keys in a pointer-based trie and compiles them into a
// DAT on Freeze.
type Builder struct {
	frozen   bool
	root     *buildNode
	keys     int
	alphabet Alphabet
	compiled *DAT
}

// NewBuilder creates an empty builder for the default alphabet.
func NewBuilder() *Builder {
	return &Builder{
		root:     newBuildNode(),
		alphabet: DefaultAlphabet(),
	}
}

// Len is the number of distinct keys inserted.
func (b *Builder) Len() int { return b.keys }

// Insert stores value for key, replacing a previous value. It reports
// whether key was new.
func (b *Builder) Insert(key string, value int32) (bool, error) {
	if b.frozen {
		return false, ErrFrozen
	}
	if key == "" {
		return false, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	n := b.root
	for i := 0; i < len(key); i++ {
		c := b.alphabet.Dense(key[i])
		if c == 0 {
			return false, fmt.Errorf("%w: %q contains %q", ErrInvalidKey, key, key[i])
		}
		child := n.children[c]
		if child == nil {
			child = newBuildNode()
			n.children[c] = child
		}
		n = child
	}
	isNew := !n.terminal
	n.terminal = true
	n.value = value
	if isNew {
		b.keys++
	}
	return isNew, nil
}

// Find looks up key before or after freezing.
func (b *Builder) Find(key string) (int32, bool) {
	if b.frozen {
		return b.compiled.Lookup(key)
	}
	n := b.root
	for i := 0; i < len(key); i++ {
		if n = n.children[b.alphabet.Dense(key[i])]; n == nil {
			return 0, false
		}
	}
	return n.value, n.terminal && key != ""
}

// Freeze compiles the collected keys into a DAT. Subsequent calls return the
// same DAT.
func (b *Builder) Freeze() *DAT {
	if b.frozen {
		return b.compiled
	}
	d := &DAT{
		Root:     1,
		Sigma:    b.alphabet.Sigma(),
		alphabet: b.alphabet,
	}
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	d.Value = make([]int32, int(d.Root)+1)
	d.Terminal = make([]bool, int(d.Root)+1)
	b.root.state = d.Root
	queue := []*buildNode{b.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if n.terminal {
			d.Terminal[n.state] = true
			d.Value[n.state] = n.value
		}
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findBase(d.Check, labels, int(d.Root))
		ensureIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	b.root = nil
	b.frozen = true
	b.compiled = d
	return d
}

func sortedLabels(children map[uint16]*buildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findBase finds the smallest base for which every child slot is free.
// Slot root is never free.
func findBase(check []int32, labels []uint16, root int) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t == root || (t < len(check) && check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureIndex(d *DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
	d.Value = append(d.Value, make([]int32, grow)...)
	d.Terminal = append(d.Terminal, make([]bool, grow)...)
}
