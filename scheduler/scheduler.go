package scheduler

import (
	"fmt"

	"github.com/yskmt/cantus/model"
	"github.com/yskmt/cantus/registry"
)

// Paradigm selects which role is the coordinate axis of a composition:
// every other track is generated around it.
type Paradigm uint8

const (
	ParadigmVocalLead Paradigm = iota
	ParadigmMotifLead
)

var paradigmNames = [...]string{"vocal-lead", "motif-lead"}

func (p Paradigm) String() string {
	if int(p) < len(paradigmNames) {
		return paradigmNames[p]
	}
	return "unknown"
}

func ParseParadigm(s string) (Paradigm, error) {
	for i, name := range paradigmNames {
		if s == name {
			return Paradigm(i), nil
		}
	}
	return 0, fmt.Errorf("unknown paradigm: %v", s)
}

// Static per-paradigm tables. Priorities and order are resolved once at
// construction, never mutated afterwards. Drums and SE generate (they
// produce output notes) but carry PriorityNone: no pitch collision
// checks in either direction.
var generationOrders = map[Paradigm][]model.TrackRole{
	ParadigmVocalLead: {
		model.RoleVocal, model.RoleChord, model.RoleBass,
		model.RoleMotif, model.RoleArpeggio, model.RoleAux,
		model.RoleDrums, model.RoleSE,
	},
	ParadigmMotifLead: {
		model.RoleMotif, model.RoleVocal, model.RoleChord,
		model.RoleBass, model.RoleArpeggio, model.RoleAux,
		model.RoleDrums, model.RoleSE,
	},
}

var priorityTables = map[Paradigm]map[model.TrackRole]model.TrackPriority{
	ParadigmVocalLead: {
		model.RoleVocal:    model.PriorityHighest,
		model.RoleChord:    model.PriorityHigh,
		model.RoleBass:     model.PriorityMedium,
		model.RoleMotif:    model.PriorityLow,
		model.RoleArpeggio: model.PriorityLower,
		model.RoleAux:      model.PriorityLowest,
		model.RoleDrums:    model.PriorityNone,
		model.RoleSE:       model.PriorityNone,
	},
	ParadigmMotifLead: {
		model.RoleMotif:    model.PriorityHighest,
		model.RoleVocal:    model.PriorityHigh,
		model.RoleChord:    model.PriorityMedium,
		model.RoleBass:     model.PriorityLow,
		model.RoleArpeggio: model.PriorityLower,
		model.RoleAux:      model.PriorityLowest,
		model.RoleDrums:    model.PriorityNone,
		model.RoleSE:       model.PriorityNone,
	},
}

// Generator regenerates one role's notes from scratch. Registered by
// the orchestrator so RegenerateTrack can re-invoke it.
type Generator func()

// Scheduler owns the generation order of one song build and answers
// "must this role avoid that role" for collision queries.
type Scheduler struct {
	paradigm   Paradigm
	priorities map[model.TrackRole]model.TrackPriority
	order      []model.TrackRole
	generated  map[model.TrackRole]bool
	generators map[model.TrackRole]Generator
}

func New(paradigm Paradigm) *Scheduler {
	priorities, ok := priorityTables[paradigm]
	if !ok {
		panic(fmt.Sprintf("Could not create scheduler because paradigm %v has no priority table", paradigm))
	}
	return &Scheduler{
		paradigm:   paradigm,
		priorities: priorities,
		order:      generationOrders[paradigm],
		generated:  make(map[model.TrackRole]bool),
		generators: make(map[model.TrackRole]Generator),
	}
}

func (s *Scheduler) Paradigm() Paradigm {
	return s.paradigm
}

// GenerationOrder returns the fixed role sequence for the paradigm.
func (s *Scheduler) GenerationOrder() []model.TrackRole {
	res := make([]model.TrackRole, len(s.order))
	copy(res, s.order)
	return res
}

func (s *Scheduler) Priority(role model.TrackRole) model.TrackPriority {
	p, ok := s.priorities[role]
	if !ok {
		panic(fmt.Sprintf("Could not look up priority because role %v has no entry", role))
	}
	return p
}

// RegisterGenerator binds a role to the function that (re)generates its
// notes. Must happen before Run or RegenerateTrack touches the role.
func (s *Scheduler) RegisterGenerator(role model.TrackRole, gen Generator) {
	s.generators[role] = gen
}

// MarkGenerated appends the role to the already-generated set.
// Idempotent.
func (s *Scheduler) MarkGenerated(role model.TrackRole) {
	if _, ok := s.priorities[role]; !ok {
		panic(fmt.Sprintf("Could not mark role %v generated because it has no priority entry", role))
	}
	s.generated[role] = true
}

func (s *Scheduler) IsGenerated(role model.TrackRole) bool {
	return s.generated[role]
}

// MustAvoid reports whether generator must dodge target's committed
// notes. Strictly backward-looking: a role never avoids one that has
// not generated yet, because nothing is committed to clash with.
func (s *Scheduler) MustAvoid(generator model.TrackRole, target model.TrackRole) bool {
	genPrio := s.Priority(generator)
	targetPrio := s.Priority(target)
	if genPrio == model.PriorityNone || targetPrio == model.PriorityNone {
		return false
	}
	return targetPrio < genPrio && s.generated[target]
}

// ExcludedRoles builds the skip set for registry/detector queries: every
// role the generator does not have to avoid, itself included.
func (s *Scheduler) ExcludedRoles(generator model.TrackRole) model.RoleSet {
	res := make(model.RoleSet)
	for role := model.TrackRole(0); role < model.NumTrackRoles; role++ {
		if _, ok := s.priorities[role]; !ok {
			continue
		}
		if !s.MustAvoid(generator, role) {
			res[role] = true
		}
	}
	return res
}

// Run drives a full build: every role in paradigm order, in sequence.
func (s *Scheduler) Run() {
	for _, role := range s.order {
		gen, ok := s.generators[role]
		if !ok {
			panic(fmt.Sprintf("Could not run build because role %v has no generator", role))
		}
		gen()
		s.MarkGenerated(role)
	}
}

// RegenerateTrack clears one role's notes, removes it from the
// generated set, re-invokes its generator and re-marks it. Downstream
// roles that already generated are untouched; the caller decides
// whether they need regeneration too.
func (s *Scheduler) RegenerateTrack(role model.TrackRole, reg *registry.Registry) {
	gen, ok := s.generators[role]
	if !ok {
		panic(fmt.Sprintf("Could not regenerate role %v because no generator was registered", role))
	}
	reg.ClearTrack(role)
	delete(s.generated, role)
	gen()
	s.MarkGenerated(role)
}
