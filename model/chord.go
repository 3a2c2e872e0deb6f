package model

// ChordSpan is one entry of the chord timeline. Degree is the scale
// position of the chord relative to the key (0=I .. 6=vii), or
// DegreeUnknown outside the planned range. End is exclusive.
type ChordSpan struct {
	Start               Tick
	End                 Tick
	Degree              int8
	IsSecondaryDominant bool
}

// DegreeUnknown means "no harmonic constraint", never degree 0.
const DegreeUnknown int8 = -1

// CollisionInfo is the result of one consonance query. Not stored.
type CollisionInfo struct {
	HasCollision      bool
	CollidingPitch    uint8
	CollidingRole     TrackRole
	IntervalSemitones uint8
}

type CollisionAvoidStrategy uint8

const (
	AvoidNone CollisionAvoidStrategy = iota
	AvoidSemitoneWalk
	AvoidOctaveShift
)

// PitchCandidate is ephemeral: produced and consumed within one
// CreateNote call, never persisted.
type PitchCandidate struct {
	Pitch               uint8
	IsChordTone         bool
	IsRootOrFifth       bool
	IsScaleTone         bool
	IntervalFromDesired int8
	Strategy            CollisionAvoidStrategy
}
