package song

import (
	"fmt"
	"math/rand"

	"github.com/yskmt/cantus/candidate"
	"github.com/yskmt/cantus/collide"
	"github.com/yskmt/cantus/constants"
	"github.com/yskmt/cantus/model"
	"github.com/yskmt/cantus/registry"
	"github.com/yskmt/cantus/scheduler"
	"github.com/yskmt/cantus/timeline"
)

type Params struct {
	Seed     int64
	Paradigm scheduler.Paradigm
	Bars     uint32
	Key      uint8
	Tempo    float64
}

// Song is the coordination context of one build. It exclusively owns
// the timeline, registry, detector, selector and scheduler; nothing is
// shared across builds and everything downstream of the seed is
// deterministic.
type Song struct {
	Params    Params
	Timeline  *timeline.Timeline
	Registry  *registry.Registry
	Detector  *collide.Detector
	Selector  *candidate.Selector
	Scheduler *scheduler.Scheduler
	Rng       *rand.Rand
	Warnings  []string
}

// New builds the context and runs the harmony planning pass: the full
// chord plan, secondary dominants included, exists before any track
// generates. Tracks that generate out of chronological order therefore
// always observe the same harmony as everyone else.
func New(params Params) *Song {
	if params.Bars == 0 {
		panic("Could not create song because bars is zero")
	}
	if params.Tempo == 0 {
		params.Tempo = 120
	}
	s := &Song{
		Params:    params,
		Timeline:  timeline.New(params.Key),
		Registry:  registry.New(),
		Scheduler: scheduler.New(params.Paradigm),
		Rng:       rand.New(rand.NewSource(params.Seed)),
	}
	s.Detector = collide.New(s.Registry)
	s.Selector = candidate.New(s.Timeline, s.Detector)
	s.planChords()
	return s
}

var progressionPool = [][]int8{
	{0, 5, 3, 4},
	{0, 3, 4, 0},
	{5, 3, 0, 4},
	{0, 4, 5, 3},
	{3, 4, 2, 5},
}

// planChords lays one chord per bar from a pool progression, then
// splices secondary dominants on the half bar leading into non-tonic
// targets. Runs once, inside New.
func (s *Song) planChords() {
	prog := progressionPool[s.Rng.Intn(len(progressionPool))]
	degrees := make([]int8, s.Params.Bars)
	for i := range degrees {
		degrees[i] = prog[i%len(prog)]
	}
	for i, d := range degrees {
		start := model.Tick(i) * constants.TicksPerBar
		s.Timeline.AddSpan(start, start+constants.TicksPerBar, d)
	}
	for i := 1; i < len(degrees); i++ {
		if degrees[i] == 0 || degrees[i] == degrees[i-1] {
			continue
		}
		if s.Rng.Intn(4) != 0 {
			continue
		}
		barStart := model.Tick(i) * constants.TicksPerBar
		s.Timeline.InsertSecondaryDominant(barStart-constants.TicksPerBar/2, barStart, degrees[i])
	}
}

func (s *Song) SongEnd() model.Tick {
	return s.Timeline.SongEnd()
}

// CreateNote is the collision-avoidance flow: propose desired, check it
// against every role the scheduler says must be avoided, fall back to
// the best scored candidate when unsafe, and as a last resort keep
// desired with a recorded warning. Never fatal; generation always
// terminates with some output. Returns the pitch actually committed.
func (s *Song) CreateNote(desired uint8, start model.Tick, end model.Tick, role model.TrackRole, low uint8, high uint8, hints candidate.Hints, weakBeat bool) uint8 {
	excluding := s.Scheduler.ExcludedRoles(role)
	pitch := desired
	if role.IsPitched() && !s.Detector.IsConsonant(desired, start, end, excluding, weakBeat) {
		cands := s.Selector.SafePitchCandidates(desired, start, end, excluding, low, high, weakBeat)
		if best, ok := s.Selector.SelectBest(cands, desired, hints); ok {
			pitch = best
		} else {
			info := s.Detector.GetCollisionInfo(desired, start, end, excluding, weakBeat)
			s.Warnings = append(s.Warnings, fmt.Sprintf(
				"%v kept pitch %v at tick %v: interval %v against %v (pitch %v), no safe candidate in [%v, %v]",
				role, desired, start, info.IntervalSemitones, info.CollidingRole, info.CollidingPitch, low, high))
		}
	}
	s.Registry.Register(start, end, pitch, role, false)
	return pitch
}

// RegisterPhantom commits an implied pitch that repels lower-priority
// tracks without ever reaching the output.
func (s *Song) RegisterPhantom(pitch uint8, start model.Tick, end model.Tick, role model.TrackRole) {
	s.Registry.Register(start, end, pitch, role, true)
}
