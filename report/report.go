package report

import (
	"fmt"

	"github.com/yskmt/cantus/constants"
	"github.com/yskmt/cantus/model"
	"github.com/yskmt/cantus/song"
	"github.com/yskmt/cantus/util"
)

// Report summarizes the dissonances left in a finished song. Built from
// the same detector queries the generators used, applied post-hoc.
type Report struct {
	NumNotes      int
	NumChecked    int
	NumClashes    int
	ClashesByPair map[string]int
	NumWarnings   int
}

// Analyze re-runs consonance queries over every committed non-phantom
// note. Each note is checked against the roles enumerated after its
// own, so an unordered role pair is counted exactly once.
func Analyze(s *song.Song) Report {
	rep := Report{
		ClashesByPair: make(map[string]int),
		NumWarnings:   len(s.Warnings),
		NumNotes:      s.Registry.NumNotes(),
	}

	for role := model.TrackRole(0); role < model.NumTrackRoles; role++ {
		if !role.IsPitched() {
			continue
		}
		excluding := make(model.RoleSet)
		for other := model.TrackRole(0); other <= role; other++ {
			excluding[other] = true
		}
		for _, n := range s.Registry.NotesForTrack(role) {
			rep.NumChecked++
			weak := n.Start%constants.TicksPerQuarter != 0
			info := s.Detector.GetCollisionInfo(n.Pitch, n.Start, n.End, excluding, weak)
			if info.HasCollision {
				rep.NumClashes++
				pair := fmt.Sprintf("%v/%v", role, info.CollidingRole)
				rep.ClashesByPair[pair]++
			}
		}
	}
	return rep
}

func (r Report) Print() {
	fmt.Printf("notes committed: %v\n", r.NumNotes)
	fmt.Printf("notes checked: %v\n", r.NumChecked)
	fmt.Printf("clashes found: %v\n", r.NumClashes)
	fmt.Printf("warnings during generation: %v\n", r.NumWarnings)
	for _, pair := range util.GetKeysSorted(r.ClashesByPair) {
		fmt.Printf("  %v: %v\n", pair, r.ClashesByPair[pair])
	}
}
