package text

import (
	"cmp"
	"slices"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// CharacterRange is an inclusive interval of codepoints. GlyphStart is the
// index of the first codepoint's glyph in the owning GlyphMap's flat glyph
// slice.
type CharacterRange struct {
	Start      rune
	End        rune
	GlyphStart int
}

// NewRange returns the range [start, end].
func NewRange(start, end rune) CharacterRange {
	return CharacterRange{Start: start, End: end}
}

// Len returns the number of codepoints in the range.
func (r CharacterRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return int(r.End-r.Start) + 1
}

// Contains reports whether cp lies in the range.
func (r CharacterRange) Contains(cp rune) bool {
	return cp >= r.Start && cp <= r.End
}

// Predefined Unicode blocks.
var (
	RangeBasicLatin       = NewRange(0x20, 0x7E)
	RangeLatin1Supplement = NewRange(0xA0, 0xFF)
	RangeLatinExtendedA   = NewRange(0x100, 0x17F)
	RangeGreek            = NewRange(0x370, 0x3FF)
	RangeCyrillic         = NewRange(0x400, 0x4FF)
)

// MergeRanges returns a sorted, maximally coalesced copy of ranges.
// Overlapping and adjacent ranges are joined, reversed ranges are dropped and
// GlyphStart is reassigned cumulatively. Merging an already coalesced set
// returns an identical set.
func MergeRanges(ranges ...CharacterRange) []CharacterRange {
	sorted := make([]CharacterRange, 0, len(ranges))
	for _, r := range ranges {
		if r.End >= r.Start {
			sorted = append(sorted, r)
		}
	}
	slices.SortFunc(sorted, func(a, b CharacterRange) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})

	out := sorted[:0]
	for _, r := range sorted {
		if n := len(out); n > 0 && int64(r.Start) <= int64(out[n-1].End)+1 {
			out[n-1].End = max(out[n-1].End, r.End)
			continue
		}
		out = append(out, r)
	}

	next := 0
	for i := range out {
		out[i].GlyphStart = next
		next += out[i].Len()
	}
	return out
}

// RangesFromTable converts a Unicode range table into coalesced ranges.
func RangesFromTable(table *unicode.RangeTable) []CharacterRange {
	var ranges []CharacterRange
	rangetable.Visit(table, func(r rune) {
		if n := len(ranges); n > 0 && ranges[n-1].End+1 == r {
			ranges[n-1].End = r
			return
		}
		ranges = append(ranges, NewRange(r, r))
	})
	return MergeRanges(ranges...)
}

// RangesFromString returns the coalesced ranges covering every rune of s.
func RangesFromString(s string) []CharacterRange {
	return RangesFromTable(rangetable.New([]rune(s)...))
}

// countGlyphs returns the total number of codepoints in ranges.
func countGlyphs(ranges []CharacterRange) int {
	n := 0
	for _, r := range ranges {
		n += r.Len()
	}
	return n
}
