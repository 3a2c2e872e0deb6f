package collide

import (
	"github.com/yskmt/cantus/constants"
	"github.com/yskmt/cantus/model"
	"github.com/yskmt/cantus/registry"
	"github.com/yskmt/cantus/util"
)

// Detector layers the interval consonance rules on the note registry.
// All methods are pure queries: no state, no errors, an empty or false
// result is always safe to treat as "try another pitch".
type Detector struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) *Detector {
	return &Detector{reg: reg}
}

func intervalClass(pitch uint8, other uint8) uint8 {
	return util.AbsDiff(pitch, other) % 12
}

// IsConsonant reports whether the pitch can sound over [start, end)
// without clashing against any committed note from a non-excluded,
// pitched role.
func (d *Detector) IsConsonant(pitch uint8, start model.Tick, end model.Tick, excluding model.RoleSet, weakBeat bool) bool {
	return !d.GetCollisionInfo(pitch, start, end, excluding, weakBeat).HasCollision
}

// GetCollisionInfo returns the first clash found, for diagnostics.
func (d *Detector) GetCollisionInfo(pitch uint8, start model.Tick, end model.Tick, excluding model.RoleSet, weakBeat bool) model.CollisionInfo {
	for _, n := range d.reg.NotesOverlapping(start, end, excluding) {
		if !n.Role.IsPitched() {
			continue
		}
		interval := intervalClass(pitch, n.Pitch)
		clash := interval == 1 || interval == 11
		if interval == 2 && !weakBeat {
			clash = true
		}
		if clash {
			return model.CollisionInfo{
				HasCollision:      true,
				CollidingPitch:    n.Pitch,
				CollidingRole:     n.Role,
				IntervalSemitones: interval,
			}
		}
	}
	return model.CollisionInfo{}
}

// HasBassCollision applies the stricter low-register rule: below middle
// C, any raw semitone distance to a sounding bass note under the
// threshold is a clash regardless of the interval-class rules, because
// close low intervals sound muddy. Pass 0 to use the default threshold.
func (d *Detector) HasBassCollision(pitch uint8, start model.Tick, end model.Tick, threshold uint8) bool {
	if pitch >= constants.LowRegisterThreshold {
		return false
	}
	if threshold == 0 {
		threshold = constants.DefaultBassInterval
	}
	for _, n := range d.reg.NotesOverlapping(start, end, nil) {
		if n.Role != model.RoleBass {
			continue
		}
		if util.AbsDiff(pitch, n.Pitch) < threshold {
			return true
		}
	}
	return false
}

// MaxSafeEnd scans forward from start and returns the latest tick <=
// desiredEnd up to which a note at this pitch can extend without newly
// overlapping a clashing note. Notes already sounding at start do not
// shorten the result; they were the caller's problem when the note was
// first placed.
func (d *Detector) MaxSafeEnd(start model.Tick, pitch uint8, excluding model.RoleSet, desiredEnd model.Tick) model.Tick {
	safeEnd := desiredEnd
	for _, n := range d.reg.NotesOverlapping(start, desiredEnd, excluding) {
		if !n.Role.IsPitched() || n.Start <= start {
			continue
		}
		interval := intervalClass(pitch, n.Pitch)
		if interval == 1 || interval == 2 || interval == 11 {
			safeEnd = util.Min(safeEnd, n.Start)
		}
	}
	return safeEnd
}
