package registry

import (
	"fmt"
	"sort"

	"github.com/yskmt/cantus/model"
)

// NoteRecord is a committed note. Records are created by Register alone
// and handed out by value, so a registered note can never be mutated in
// place; corrections go through ClearTrack and re-registration.
type NoteRecord struct {
	Start   model.Tick
	End     model.Tick
	Pitch   uint8
	Role    model.TrackRole
	Phantom bool
}

func (n NoteRecord) Overlaps(start model.Tick, end model.Tick) bool {
	return n.Start < end && n.End > start
}

// Registry stores every note committed so far, per role in tick order.
// One registry is exclusively owned by one song build.
type Registry struct {
	notes map[model.TrackRole][]NoteRecord
}

func New() *Registry {
	return &Registry{notes: make(map[model.TrackRole][]NoteRecord)}
}

// Register commits a note. A phantom note influences collision checks
// but is filtered out of output-facing enumeration.
func (rg *Registry) Register(start model.Tick, end model.Tick, pitch uint8, role model.TrackRole, phantom bool) {
	if end <= start {
		panic(fmt.Sprintf("Could not register note because end %v <= start %v", end, start))
	}
	if role >= model.NumTrackRoles {
		panic(fmt.Sprintf("Could not register note because role %v is unknown", role))
	}
	rec := NoteRecord{Start: start, End: end, Pitch: pitch, Role: role, Phantom: phantom}
	existing := rg.notes[role]
	i := sort.Search(len(existing), func(i int) bool {
		return existing[i].Start > start
	})
	existing = append(existing, NoteRecord{})
	copy(existing[i+1:], existing[i:])
	existing[i] = rec
	rg.notes[role] = existing
}

// NotesOverlapping returns every record intersecting [start, end) whose
// role is not excluded, phantoms included. Records come back in role
// then tick order; excluding may be nil.
func (rg *Registry) NotesOverlapping(start model.Tick, end model.Tick, excluding model.RoleSet) []NoteRecord {
	var res []NoteRecord
	for role := model.TrackRole(0); role < model.NumTrackRoles; role++ {
		if excluding[role] {
			continue
		}
		for _, n := range rg.notes[role] {
			if n.Start >= end {
				break
			}
			if n.Overlaps(start, end) {
				res = append(res, n)
			}
		}
	}
	return res
}

// PitchClassesSounding aggregates the pitch classes of all overlapping
// notes from non-excluded roles.
func (rg *Registry) PitchClassesSounding(start model.Tick, end model.Tick, excluding model.RoleSet) map[uint8]bool {
	res := make(map[uint8]bool)
	for _, n := range rg.NotesOverlapping(start, end, excluding) {
		res[n.Pitch%12] = true
	}
	return res
}

func (rg *Registry) HighestPitchInRange(start model.Tick, end model.Tick, role model.TrackRole) (uint8, bool) {
	var best uint8
	found := false
	for _, n := range rg.notes[role] {
		if n.Start >= end {
			break
		}
		if n.Overlaps(start, end) && (!found || n.Pitch > best) {
			best = n.Pitch
			found = true
		}
	}
	return best, found
}

func (rg *Registry) LowestPitchInRange(start model.Tick, end model.Tick, role model.TrackRole) (uint8, bool) {
	var best uint8
	found := false
	for _, n := range rg.notes[role] {
		if n.Start >= end {
			break
		}
		if n.Overlaps(start, end) && (!found || n.Pitch < best) {
			best = n.Pitch
			found = true
		}
	}
	return best, found
}

// NotesForTrack enumerates the committed notes of one role in tick
// order with phantoms filtered out. This is the exporter's view.
func (rg *Registry) NotesForTrack(role model.TrackRole) []NoteRecord {
	var res []NoteRecord
	for _, n := range rg.notes[role] {
		if !n.Phantom {
			res = append(res, n)
		}
	}
	return res
}

// ClearTrack drops every note of one role. Must run before the role
// re-registers during regeneration.
func (rg *Registry) ClearTrack(role model.TrackRole) {
	delete(rg.notes, role)
}

func (rg *Registry) ClearAll() {
	rg.notes = make(map[model.TrackRole][]NoteRecord)
}

// NumNotes counts committed non-phantom notes across all roles.
func (rg *Registry) NumNotes() int {
	var total int
	for role := model.TrackRole(0); role < model.NumTrackRoles; role++ {
		total += len(rg.NotesForTrack(role))
	}
	return total
}
