package generator

import (
	"github.com/yskmt/cantus/model"
	"github.com/yskmt/cantus/song"
)

// BuildSong wires every role generator into the scheduler and runs the
// paradigm's fixed order. This is the whole orchestration: harmony is
// already planned by song.New before the first generator fires.
func BuildSong(params song.Params) *song.Song {
	s := song.New(params)
	RegisterGenerators(s)
	s.Scheduler.Run()
	return s
}

// RegisterGenerators binds all eight roles. Split out so callers can
// regenerate individual tracks after the initial build.
func RegisterGenerators(s *song.Song) {
	s.Scheduler.RegisterGenerator(model.RoleVocal, func() { genVocal(s) })
	s.Scheduler.RegisterGenerator(model.RoleChord, func() { genChord(s) })
	s.Scheduler.RegisterGenerator(model.RoleBass, func() { genBass(s) })
	s.Scheduler.RegisterGenerator(model.RoleDrums, func() { genDrums(s) })
	s.Scheduler.RegisterGenerator(model.RoleSE, func() { genSE(s) })
	s.Scheduler.RegisterGenerator(model.RoleMotif, func() { genMotif(s) })
	s.Scheduler.RegisterGenerator(model.RoleArpeggio, func() { genArpeggio(s) })
	s.Scheduler.RegisterGenerator(model.RoleAux, func() { genAux(s) })
}

// pitchNear places a pitch class at or above base, within one octave.
func pitchNear(pc uint8, base uint8) uint8 {
	return base + (pc+12-base%12)%12
}

// lowestTone picks the chord tone nearest above base, preferring the
// root when the timeline has no answer.
func lowestTone(s *song.Song, t model.Tick, base uint8) uint8 {
	root, ok := s.Timeline.RootAt(t)
	if !ok {
		return base
	}
	return pitchNear(root, base)
}
