package model

// Tick is the musical time unit. 480 per quarter note, 1920 per bar.
type Tick = uint32

type TrackRole uint8

const (
	RoleVocal TrackRole = iota
	RoleChord
	RoleBass
	RoleDrums
	RoleSE
	RoleMotif
	RoleArpeggio
	RoleAux
	NumTrackRoles
)

var roleNames = [...]string{"vocal", "chord", "bass", "drums", "se", "motif", "arpeggio", "aux"}

func (r TrackRole) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// IsPitched reports whether the role participates in pitch collision
// at all. Drums and SE are pitch-independent.
func (r TrackRole) IsPitched() bool {
	return r != RoleDrums && r != RoleSE
}

// RoleSet marks roles to skip during registry/collision queries.
type RoleSet = map[TrackRole]bool

// TrackPriority orders generation. Lower value = generated earlier =
// higher authority. PriorityNone means never checked for pitch collision.
type TrackPriority uint8

const (
	PriorityHighest TrackPriority = iota
	PriorityHigh
	PriorityMedium
	PriorityLow
	PriorityLower
	PriorityLowest
	PriorityNone
)
