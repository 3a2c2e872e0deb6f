package candidate

import (
	"math"

	"github.com/yskmt/cantus/collide"
	"github.com/yskmt/cantus/constants"
	"github.com/yskmt/cantus/model"
	"github.com/yskmt/cantus/timeline"
	"github.com/yskmt/cantus/util"
)

// Hints carries the melodic context a generator knows about the note it
// is trying to place. Zero values mean "no hint".
type Hints struct {
	PrevPitch       uint8
	HasPrev         bool
	PrevPrevPitch   uint8
	HasPrevPrev     bool
	NoteDuration    model.Tick
	TessituraCenter uint8
}

// Selector proposes and ranks alternative pitches when a desired pitch
// is unsafe. Stateless apart from its timeline/detector handles, so the
// same inputs always rank the same way.
type Selector struct {
	tl  *timeline.Timeline
	det *collide.Detector
}

func New(tl *timeline.Timeline, det *collide.Detector) *Selector {
	return &Selector{tl: tl, det: det}
}

// SafePitchCandidates walks outward from desired by semitone within
// [low, high] and collects consonant pitches, tagged with their
// harmonic standing at start. The walk stops once enough candidates
// are found; the list is empty when the range is exhausted.
func (s *Selector) SafePitchCandidates(desired uint8, start model.Tick, end model.Tick, excluding model.RoleSet, low uint8, high uint8, weakBeat bool) []model.PitchCandidate {
	var res []model.PitchCandidate
	maxOffset := int(high) - int(low)
	for offset := 1; offset <= maxOffset; offset++ {
		for _, signed := range []int{offset, -offset} {
			p := int(desired) + signed
			if p < int(low) || p > int(high) || p > 127 {
				continue
			}
			pitch := uint8(p)
			if !s.det.IsConsonant(pitch, start, end, excluding, weakBeat) {
				continue
			}
			res = append(res, s.tag(pitch, start, signed))
			if len(res) >= constants.MaxPitchCandidates {
				return res
			}
		}
	}
	return res
}

func (s *Selector) tag(pitch uint8, start model.Tick, signed int) model.PitchCandidate {
	strategy := model.AvoidSemitoneWalk
	if signed%12 == 0 {
		strategy = model.AvoidOctaveShift
	}
	tones := s.tl.TonesAt(start)
	root, hasChord := s.tl.RootAt(start)
	fifth, _ := s.tl.FifthAt(start)
	pc := pitch % 12
	return model.PitchCandidate{
		Pitch:               pitch,
		IsChordTone:         tones[pc],
		IsRootOrFifth:       hasChord && (pc == root || pc == fifth),
		IsScaleTone:         s.tl.IsScaleTone(pitch),
		IntervalFromDesired: int8(signed),
		Strategy:            strategy,
	}
}

// SelectBest scores the candidates on five additive dimensions (lower
// wins) and returns the winner. ok is false when the list is empty, in
// which case the caller falls back to desired and accepts the clash.
func (s *Selector) SelectBest(cands []model.PitchCandidate, desired uint8, hints Hints) (uint8, bool) {
	if len(cands) == 0 {
		return 0, false
	}
	best := cands[0]
	bestScore := score(cands[0], hints)
	for _, c := range cands[1:] {
		sc := score(c, hints)
		switch {
		case sc < bestScore:
			best, bestScore = c, sc
		case sc == bestScore && absInterval(c) < absInterval(best):
			best = c
		case sc == bestScore && absInterval(c) == absInterval(best) && c.Pitch < best.Pitch:
			best = c
		}
	}
	return best.Pitch, true
}

func absInterval(c model.PitchCandidate) uint8 {
	return uint8(math.Abs(float64(c.IntervalFromDesired)))
}

func score(c model.PitchCandidate, hints Hints) float64 {
	var total float64

	// melodic continuity: big steps hurt more on short notes
	if hints.HasPrev {
		step := float64(util.AbsDiff(c.Pitch, hints.PrevPitch))
		dur := hints.NoteDuration
		if dur < constants.TicksPerSixteenth {
			dur = constants.TicksPerSixteenth
		}
		total += constants.WeightContinuity * step * float64(constants.TicksPerQuarter) / float64(dur)
	}

	// harmonic stability
	switch {
	case c.IsChordTone:
	case c.IsRootOrFifth:
		total += constants.WeightHarmonic
	case c.IsScaleTone:
		total += constants.WeightHarmonic * 2
	default:
		total += constants.WeightHarmonic * 3
	}

	// contour preservation: reversing the prevailing direction costs
	if hints.HasPrev && hints.HasPrevPrev {
		prevDir := sign(int(hints.PrevPitch) - int(hints.PrevPrevPitch))
		candDir := sign(int(c.Pitch) - int(hints.PrevPitch))
		if prevDir != 0 && candDir != 0 && candDir != prevDir {
			total += constants.WeightContour
		}
	}

	// tessitura gravity
	if hints.TessituraCenter != 0 {
		total += constants.WeightTessitura * float64(util.AbsDiff(c.Pitch, hints.TessituraCenter))
	}

	// intent proximity: avoidance should be a minimal perturbation
	total += constants.WeightIntent * float64(absInterval(c))

	return total
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
