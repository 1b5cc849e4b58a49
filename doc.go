/*
Package lujvo splits Lojban compound words (lujvo) into the rafsi they were
built from.

A lujvo is a concatenation of short morphological units, each of a fixed
consonant/vowel shape, optionally joined by hyphen letters. Given a compound,
Decompose recovers the sequence of units (and any hyphens) so that each unit
can be linked to its dictionary entry:

	lujvo.Decompose("cmebangu")   => [ "cme", "bangu" ]
	lujvo.Decompose("sampyfa'i")  => [ "samp", "y", "fa'i" ]
	lujvo.Decompose("gerku")      => nil

The grammar is held as data (see Consonant, Cluster, Short, Long, ...).
Decomposition is a bounded depth-first search over that grammar: candidate
interior unit counts are tried smallest first, alternatives in grammar order,
and the first complete segmentation wins.

Inputs shorter than six letters never decompose, even when they form a single
valid terminal unit. This mirrors the search bound of the jbovlaste site and
is kept for compatibility.

Further Reading

	https://lojban.org/publications/cll/cll_v1.1_xhtml-section-chunks/chapter-morphology.html
	http://jbovlaste.lojban.org/

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package lujvo

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lujvo'
func tracer() tracing.Trace {
	return tracing.Select("lujvo")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
