package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yskmt/cantus/model"
)

func TestOverlapQueryRespectsExclusion(t *testing.T) {
	rg := New()
	rg.Register(0, 960, 64, model.RoleVocal, false)
	rg.Register(0, 1920, 48, model.RoleChord, false)
	rg.Register(960, 1920, 36, model.RoleBass, false)

	assert := assert.New(t)
	all := rg.NotesOverlapping(0, 480, nil)
	assert.Len(all, 2)

	excluded := rg.NotesOverlapping(0, 480, model.RoleSet{model.RoleVocal: true})
	assert.Len(excluded, 1)
	assert.Equal(model.RoleChord, excluded[0].Role)

	// bass note starts after the query window ends
	assert.Empty(rg.NotesOverlapping(0, 960, model.RoleSet{model.RoleVocal: true, model.RoleChord: true}))
}

func TestHalfOpenIntervals(t *testing.T) {
	rg := New()
	rg.Register(480, 960, 60, model.RoleVocal, false)

	assert := assert.New(t)
	assert.Empty(rg.NotesOverlapping(0, 480, nil))
	assert.Empty(rg.NotesOverlapping(960, 1440, nil))
	assert.Len(rg.NotesOverlapping(479, 481, nil), 1)
}

func TestPhantomsRepelButNeverReachOutput(t *testing.T) {
	rg := New()
	rg.Register(0, 960, 64, model.RoleChord, true)
	rg.Register(0, 960, 52, model.RoleChord, false)

	assert := assert.New(t)
	// collision-facing view sees both
	assert.Len(rg.NotesOverlapping(0, 960, nil), 2)
	// output-facing view filters the phantom
	output := rg.NotesForTrack(model.RoleChord)
	assert.Len(output, 1)
	assert.Equal(uint8(52), output[0].Pitch)
	assert.Equal(1, rg.NumNotes())
}

func TestRangeAggregates(t *testing.T) {
	rg := New()
	rg.Register(0, 480, 60, model.RoleVocal, false)
	rg.Register(480, 960, 67, model.RoleVocal, false)
	rg.Register(960, 1440, 64, model.RoleVocal, false)

	assert := assert.New(t)
	high, ok := rg.HighestPitchInRange(0, 1440, model.RoleVocal)
	assert.True(ok)
	assert.Equal(uint8(67), high)
	low, ok := rg.LowestPitchInRange(0, 1440, model.RoleVocal)
	assert.True(ok)
	assert.Equal(uint8(60), low)

	_, ok = rg.HighestPitchInRange(1440, 1920, model.RoleVocal)
	assert.False(ok)

	classes := rg.PitchClassesSounding(0, 1440, nil)
	assert.Equal(map[uint8]bool{0: true, 7: true, 4: true}, classes)
}

func TestNotesComeBackInTickOrder(t *testing.T) {
	rg := New()
	rg.Register(960, 1440, 62, model.RoleVocal, false)
	rg.Register(0, 480, 60, model.RoleVocal, false)
	rg.Register(480, 960, 64, model.RoleVocal, false)

	notes := rg.NotesForTrack(model.RoleVocal)
	assert := assert.New(t)
	assert.Len(notes, 3)
	assert.Equal(model.Tick(0), notes[0].Start)
	assert.Equal(model.Tick(480), notes[1].Start)
	assert.Equal(model.Tick(960), notes[2].Start)
}

func TestClearTrackOnlyTouchesOneRole(t *testing.T) {
	rg := New()
	rg.Register(0, 960, 64, model.RoleVocal, false)
	rg.Register(0, 960, 48, model.RoleChord, false)
	rg.ClearTrack(model.RoleVocal)

	assert := assert.New(t)
	assert.Empty(rg.NotesForTrack(model.RoleVocal))
	assert.Len(rg.NotesForTrack(model.RoleChord), 1)

	rg.ClearAll()
	assert.Zero(rg.NumNotes())
}

func TestReRegisteringSameNotesIsIdempotent(t *testing.T) {
	rg := New()
	rg.Register(0, 960, 64, model.RoleVocal, false)
	rg.Register(960, 1920, 67, model.RoleVocal, false)

	before := rg.NotesOverlapping(0, 1920, nil)
	rg.ClearTrack(model.RoleVocal)
	rg.Register(0, 960, 64, model.RoleVocal, false)
	rg.Register(960, 1920, 67, model.RoleVocal, false)
	after := rg.NotesOverlapping(0, 1920, nil)

	assert.Equal(t, before, after)
}

func TestMisuseRegistrationPanics(t *testing.T) {
	rg := New()

	assert := assert.New(t)
	assert.Panics(func() {
		rg.Register(960, 960, 60, model.RoleVocal, false)
	})
	assert.Panics(func() {
		rg.Register(0, 960, 60, model.NumTrackRoles, false)
	})
}
