package timeline

import (
	"fmt"
	"sort"

	"github.com/yskmt/cantus/model"
)

// ToneSet is a set of pitch classes 0..11.
type ToneSet = map[uint8]bool

var majorScale = [7]uint8{0, 2, 4, 5, 7, 9, 11}

// Timeline is the ordered, non-overlapping, gap-free chord plan covering
// [0, SongEnd). All secondary dominant splices must happen before any
// track generates so every consumer sees the same harmony regardless of
// its position in the generation order.
type Timeline struct {
	key   uint8
	spans []model.ChordSpan
}

func New(key uint8) *Timeline {
	return &Timeline{key: key % 12}
}

func (tl *Timeline) Key() uint8 {
	return tl.key
}

// AddSpan appends the next chord of the plan. Spans must be contiguous;
// a gap or overlap is an invariant violation in the planner, not a data
// condition.
func (tl *Timeline) AddSpan(start model.Tick, end model.Tick, degree int8) {
	if end <= start {
		panic(fmt.Sprintf("Could not add chord span because end %v <= start %v", end, start))
	}
	if degree < 0 || degree > 6 {
		panic(fmt.Sprintf("Could not add chord span because degree %v is out of range", degree))
	}
	if len(tl.spans) > 0 && tl.spans[len(tl.spans)-1].End != start {
		panic(fmt.Sprintf("Could not add chord span because start %v leaves a gap or overlap", start))
	}
	tl.spans = append(tl.spans, model.ChordSpan{Start: start, End: end, Degree: degree})
}

// InsertSecondaryDominant splices a short V7-of-degree override over
// [start, end), splitting whatever spans it covers. Part of the planning
// pass; never called once generation has begun.
func (tl *Timeline) InsertSecondaryDominant(start model.Tick, end model.Tick, degree int8) {
	if end <= start {
		panic(fmt.Sprintf("Could not insert secondary dominant because end %v <= start %v", end, start))
	}
	if len(tl.spans) == 0 || start < tl.spans[0].Start || end > tl.SongEnd() {
		panic("Could not insert secondary dominant because it falls outside the plan")
	}

	override := model.ChordSpan{Start: start, End: end, Degree: degree, IsSecondaryDominant: true}
	var next []model.ChordSpan
	for _, s := range tl.spans {
		if s.End <= start || s.Start >= end {
			next = append(next, s)
			continue
		}
		// keep whatever sticks out on either side of the override
		if s.Start < start {
			next = append(next, model.ChordSpan{Start: s.Start, End: start, Degree: s.Degree, IsSecondaryDominant: s.IsSecondaryDominant})
		}
		if s.End > end {
			next = append(next, model.ChordSpan{Start: end, End: s.End, Degree: s.Degree, IsSecondaryDominant: s.IsSecondaryDominant})
		}
	}
	next = append(next, override)
	sort.Slice(next, func(i, j int) bool {
		return next[i].Start < next[j].Start
	})
	tl.spans = next
}

func (tl *Timeline) SongEnd() model.Tick {
	if len(tl.spans) == 0 {
		return 0
	}
	return tl.spans[len(tl.spans)-1].End
}

// SpanAt finds the span sounding at t. ok is false outside the plan.
func (tl *Timeline) SpanAt(t model.Tick) (model.ChordSpan, bool) {
	i := sort.Search(len(tl.spans), func(i int) bool {
		return tl.spans[i].End > t
	})
	if i == len(tl.spans) || tl.spans[i].Start > t {
		return model.ChordSpan{}, false
	}
	return tl.spans[i], true
}

// DegreeAt returns the chord degree at t, or DegreeUnknown outside the
// plan. Callers must treat DegreeUnknown as "no harmonic constraint",
// never as degree 0.
func (tl *Timeline) DegreeAt(t model.Tick) int8 {
	span, ok := tl.SpanAt(t)
	if !ok {
		return model.DegreeUnknown
	}
	return span.Degree
}

// TonesAt returns the pitch classes of the chord sounding at t. Empty
// outside the plan.
func (tl *Timeline) TonesAt(t model.Tick) ToneSet {
	tones := make(ToneSet)
	span, ok := tl.SpanAt(t)
	if !ok {
		return tones
	}
	for _, pc := range tl.chordTones(span) {
		tones[pc] = true
	}
	return tones
}

// RootAt returns the pitch class of the chord root at t. ok is false
// outside the plan.
func (tl *Timeline) RootAt(t model.Tick) (uint8, bool) {
	span, ok := tl.SpanAt(t)
	if !ok {
		return 0, false
	}
	return tl.chordTones(span)[0], true
}

// FifthAt returns the pitch class of the chord fifth at t.
func (tl *Timeline) FifthAt(t model.Tick) (uint8, bool) {
	span, ok := tl.SpanAt(t)
	if !ok {
		return 0, false
	}
	return tl.chordTones(span)[2], true
}

// NextChordChangeTick returns the first span boundary strictly after
// the given tick, or SongEnd when no change remains.
func (tl *Timeline) NextChordChangeTick(after model.Tick) model.Tick {
	for _, s := range tl.spans {
		if s.Start > after {
			return s.Start
		}
	}
	return tl.SongEnd()
}

// IsScaleTone reports whether the pitch belongs to the major scale of
// the key. Harmony-independent, so it works at any tick.
func (tl *Timeline) IsScaleTone(pitch uint8) bool {
	pc := (12 + pitch%12 - tl.key) % 12
	for _, s := range majorScale {
		if pc == s {
			return true
		}
	}
	return false
}

// Spans returns a copy of the plan in tick order.
func (tl *Timeline) Spans() []model.ChordSpan {
	res := make([]model.ChordSpan, len(tl.spans))
	copy(res, tl.spans)
	return res
}

// chordTones computes {root, third, fifth} of a diatonic triad, or the
// dominant seventh built a fifth above the target degree for secondary
// dominant spans. Index 0 is always the root, index 2 the fifth.
func (tl *Timeline) chordTones(span model.ChordSpan) []uint8 {
	d := int(span.Degree)
	if span.IsSecondaryDominant {
		root := (uint8(majorScale[d]) + tl.key + 7) % 12
		return []uint8{root, (root + 4) % 12, (root + 7) % 12, (root + 10) % 12}
	}
	root := (majorScale[d] + tl.key) % 12
	third := (majorScale[(d+2)%7] + tl.key) % 12
	fifth := (majorScale[(d+4)%7] + tl.key) % 12
	return []uint8{root, third, fifth}
}
