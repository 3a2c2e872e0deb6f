package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yskmt/cantus/generator"
	"github.com/yskmt/cantus/model"
	"github.com/yskmt/cantus/scheduler"
	"github.com/yskmt/cantus/song"
)

func TestAnalyzeCountsEveryPitchedNoteOnce(t *testing.T) {
	s := generator.BuildSong(song.Params{Seed: 1, Paradigm: scheduler.ParadigmVocalLead, Bars: 4})

	rep := Analyze(s)

	assert := assert.New(t)
	var pitched int
	for role := model.TrackRole(0); role < model.NumTrackRoles; role++ {
		if role.IsPitched() {
			pitched += len(s.Registry.NotesForTrack(role))
		}
	}
	assert.Equal(pitched, rep.NumChecked)
	assert.Equal(s.Registry.NumNotes(), rep.NumNotes)
	assert.Equal(len(s.Warnings), rep.NumWarnings)
}

func TestCleanSongReportsNoClashes(t *testing.T) {
	s := song.New(song.Params{Seed: 1, Paradigm: scheduler.ParadigmVocalLead, Bars: 1})
	s.Registry.Register(0, 960, 60, model.RoleVocal, false)
	s.Registry.Register(0, 960, 64, model.RoleChord, false)
	s.Registry.Register(0, 960, 43, model.RoleBass, false)

	rep := Analyze(s)

	assert := assert.New(t)
	assert.Zero(rep.NumClashes)
	assert.Empty(rep.ClashesByPair)
}

func TestKnownClashIsAttributedToThePair(t *testing.T) {
	s := song.New(song.Params{Seed: 1, Paradigm: scheduler.ParadigmVocalLead, Bars: 1})
	s.Registry.Register(0, 960, 64, model.RoleVocal, false)
	s.Registry.Register(0, 960, 65, model.RoleChord, false)

	rep := Analyze(s)

	assert := assert.New(t)
	assert.Equal(1, rep.NumClashes)
	assert.Equal(1, rep.ClashesByPair["vocal/chord"])
}
