package collide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yskmt/cantus/model"
	"github.com/yskmt/cantus/registry"
)

func TestMinorSecondAndMajorSeventhClash(t *testing.T) {
	rg := registry.New()
	rg.Register(0, 960, 64, model.RoleVocal, false)
	det := New(rg)

	assert := assert.New(t)
	assert.False(det.IsConsonant(65, 0, 480, nil, false))
	assert.False(det.IsConsonant(63, 0, 480, nil, false))
	assert.False(det.IsConsonant(75, 0, 480, nil, false))
	assert.True(det.IsConsonant(67, 0, 480, nil, false))
	assert.True(det.IsConsonant(64, 0, 480, nil, false))
}

func TestConsonanceIsSymmetric(t *testing.T) {
	rg := registry.New()
	rg.Register(0, 960, 64, model.RoleVocal, false)
	rg.Register(0, 960, 65, model.RoleChord, false)
	det := New(rg)

	assert := assert.New(t)
	// checked from either side, excluding the other role, the pair clashes
	assert.False(det.IsConsonant(65, 0, 960, model.RoleSet{model.RoleChord: true}, false))
	assert.False(det.IsConsonant(64, 0, 960, model.RoleSet{model.RoleVocal: true}, false))
}

func TestWeakBeatToleratesMajorSecond(t *testing.T) {
	rg := registry.New()
	rg.Register(0, 960, 64, model.RoleVocal, false)
	det := New(rg)

	assert := assert.New(t)
	assert.False(det.IsConsonant(66, 0, 480, nil, false))
	assert.True(det.IsConsonant(66, 0, 480, nil, true))
	// the hard clashes stay hard on weak beats
	assert.False(det.IsConsonant(65, 0, 480, nil, true))
	assert.False(det.IsConsonant(75, 0, 480, nil, true))
}

func TestOctaveEquivalence(t *testing.T) {
	rg := registry.New()
	rg.Register(0, 960, 64, model.RoleVocal, false)
	det := New(rg)

	// minor 2nd plus an octave is still a clash
	assert.False(t, det.IsConsonant(77, 0, 480, nil, false))
}

func TestDrumsNeverCollide(t *testing.T) {
	rg := registry.New()
	rg.Register(0, 960, 42, model.RoleDrums, false)
	rg.Register(0, 960, 49, model.RoleSE, false)
	det := New(rg)

	assert := assert.New(t)
	assert.True(det.IsConsonant(43, 0, 480, nil, false))
	assert.True(det.IsConsonant(48, 0, 480, nil, false))
}

func TestPhantomNotesRepel(t *testing.T) {
	rg := registry.New()
	rg.Register(0, 960, 64, model.RoleChord, true)
	det := New(rg)

	assert.False(t, det.IsConsonant(65, 0, 480, nil, false))
}

func TestCollisionInfoReportsFirstClash(t *testing.T) {
	rg := registry.New()
	rg.Register(0, 960, 64, model.RoleVocal, false)
	det := New(rg)

	assert := assert.New(t)
	info := det.GetCollisionInfo(65, 0, 480, nil, false)
	assert.True(info.HasCollision)
	assert.Equal(uint8(64), info.CollidingPitch)
	assert.Equal(model.RoleVocal, info.CollidingRole)
	assert.Equal(uint8(1), info.IntervalSemitones)

	none := det.GetCollisionInfo(67, 0, 480, nil, false)
	assert.False(none.HasCollision)
}

func TestBassLowRegisterRule(t *testing.T) {
	rg := registry.New()
	rg.Register(0, 960, 40, model.RoleBass, false)
	det := New(rg)

	assert := assert.New(t)
	// within default 3 semitones of the bass, below middle C
	assert.True(det.HasBassCollision(42, 0, 480, 0))
	assert.True(det.HasBassCollision(38, 0, 480, 0))
	// a clean fourth away is fine
	assert.False(det.HasBassCollision(45, 0, 480, 0))
	// rule only applies below the low-register threshold
	assert.False(det.HasBassCollision(62, 0, 480, 0))
	// wider caller threshold widens the muddy zone
	assert.True(det.HasBassCollision(45, 0, 480, 7))
	// octave apart measures raw distance, not interval class
	assert.False(det.HasBassCollision(52, 0, 480, 0))
}

func TestMaxSafeEnd(t *testing.T) {
	rg := registry.New()
	rg.Register(960, 1440, 61, model.RoleChord, false)
	det := New(rg)

	assert := assert.New(t)
	// extending pitch 60 from 0 would newly overlap the clash at 960
	assert.Equal(model.Tick(960), det.MaxSafeEnd(0, 60, nil, 1920))
	// consonant pitches extend all the way
	assert.Equal(model.Tick(1920), det.MaxSafeEnd(0, 64, nil, 1920))
	// a clash already sounding at the start does not shorten the note
	assert.Equal(model.Tick(1920), det.MaxSafeEnd(1000, 60, nil, 1920))
}

func TestClearAndReRegisterKeepsQueriesStable(t *testing.T) {
	rg := registry.New()
	rg.Register(0, 960, 64, model.RoleVocal, false)
	rg.Register(0, 960, 48, model.RoleChord, false)
	det := New(rg)

	before := det.GetCollisionInfo(65, 0, 480, nil, false)
	rg.ClearTrack(model.RoleVocal)
	rg.Register(0, 960, 64, model.RoleVocal, false)
	after := det.GetCollisionInfo(65, 0, 480, nil, false)

	assert.Equal(t, before, after)
}
