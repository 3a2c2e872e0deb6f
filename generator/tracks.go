package generator

import (
	"github.com/yskmt/cantus/candidate"
	"github.com/yskmt/cantus/constants"
	"github.com/yskmt/cantus/model"
	"github.com/yskmt/cantus/song"
	"github.com/yskmt/cantus/util"
)

const (
	vocalLow, vocalHigh, vocalCenter = 55, 79, 67
	motifLow, motifHigh, motifCenter = 72, 84, 78
	arpLow, arpHigh                  = 60, 72
	chordBase                        = 48
	bassBase                         = 36
	auxBase                          = 64
)

var vocalDurations = []model.Tick{
	constants.TicksPerQuarter,
	constants.TicksPerQuarter,
	constants.TicksPerEighth,
	constants.TicksPerEighth,
	constants.TicksPerQuarter * 2,
}

// genVocal walks the scale around the vocal tessitura. Off-beat starts
// count as weak beats, so passing major 2nds are tolerated there.
func genVocal(s *song.Song) {
	end := s.SongEnd()
	var prev, prevPrev uint8
	var hasPrev, hasPrevPrev bool

	t := model.Tick(0)
	for t < end {
		dur := vocalDurations[s.Rng.Intn(len(vocalDurations))]
		if t+dur > end {
			dur = end - t
		}

		var desired uint8
		if !hasPrev {
			desired = lowestTone(s, t, vocalCenter-6)
		} else {
			step := int(s.Rng.Intn(9)) - 4
			desired = clampPitch(int(prev)+step, vocalLow, vocalHigh)
			desired = snapToScale(s, desired)
		}

		hints := candidate.Hints{
			PrevPitch: prev, HasPrev: hasPrev,
			PrevPrevPitch: prevPrev, HasPrevPrev: hasPrevPrev,
			NoteDuration:    dur,
			TessituraCenter: vocalCenter,
		}
		weak := t%constants.TicksPerQuarter != 0
		pitch := s.CreateNote(desired, t, t+dur, model.RoleVocal, vocalLow, vocalHigh, hints, weak)

		prevPrev, hasPrevPrev = prev, hasPrev
		prev, hasPrev = pitch, true
		t += dur
	}
}

// genChord lays block triads per chord span and registers phantom guide
// tones an octave up, at the sung register, so later tracks steer clear
// of implied pitches nobody actually plays.
func genChord(s *song.Song) {
	for _, span := range s.Timeline.Spans() {
		tones := util.GetKeysSorted(s.Timeline.TonesAt(span.Start))
		for _, pc := range tones {
			desired := pitchNear(pc, chordBase)
			hints := candidate.Hints{NoteDuration: span.End - span.Start, TessituraCenter: chordBase + 6}
			pitch := s.CreateNote(desired, span.Start, span.End, model.RoleChord, chordBase, chordBase+16, hints, false)
			s.RegisterPhantom(pitch+12, span.Start, span.End, model.RoleChord)
		}
	}
}

// genBass plays roots on each chord span, octave-jumping away from the
// muddy zone when the dedicated low-register check trips.
func genBass(s *song.Song) {
	for _, span := range s.Timeline.Spans() {
		root, ok := s.Timeline.RootAt(span.Start)
		if !ok {
			continue
		}
		pitch := pitchNear(root, bassBase)
		if s.Detector.HasBassCollision(pitch, span.Start, span.End, 0) {
			pitch += 12
		}
		half := (span.End - span.Start) / 2
		hints := candidate.Hints{NoteDuration: half, TessituraCenter: bassBase + 6}
		s.CreateNote(pitch, span.Start, span.Start+half, model.RoleBass, bassBase, bassBase+23, hints, false)
		s.CreateNote(pitch, span.Start+half, span.End, model.RoleBass, bassBase, bassBase+23, hints, false)
	}
}

// General MIDI drum map pitches. Drums are pitch-exempt, so they
// register directly instead of going through CreateNote.
const (
	drumKick  = 36
	drumSnare = 38
	drumHihat = 42
	drumCrash = 49
)

func genDrums(s *song.Song) {
	end := s.SongEnd()
	for bar := model.Tick(0); bar < end; bar += constants.TicksPerBar {
		for beat := model.Tick(0); beat < 4; beat++ {
			t := bar + beat*constants.TicksPerQuarter
			if beat%2 == 0 {
				s.Registry.Register(t, t+constants.TicksPerEighth, drumKick, model.RoleDrums, false)
			} else {
				s.Registry.Register(t, t+constants.TicksPerEighth, drumSnare, model.RoleDrums, false)
			}
			s.Registry.Register(t, t+constants.TicksPerEighth, drumHihat, model.RoleDrums, false)
			s.Registry.Register(t+constants.TicksPerEighth, t+constants.TicksPerQuarter, drumHihat, model.RoleDrums, false)
		}
	}
}

// genSE drops a crash at every 8-bar section boundary.
func genSE(s *song.Song) {
	end := s.SongEnd()
	for t := model.Tick(0); t < end; t += 8 * constants.TicksPerBar {
		s.Registry.Register(t, t+constants.TicksPerQuarter, drumCrash, model.RoleSE, false)
	}
}

// genMotif repeats a four-note chord-tone figure every other bar in the
// high register.
func genMotif(s *song.Song) {
	end := s.SongEnd()
	var prev, prevPrev uint8
	var hasPrev, hasPrevPrev bool

	for bar := model.Tick(0); bar < end; bar += 2 * constants.TicksPerBar {
		// voice the figure above whatever the vocal reaches in this stretch
		base := uint8(motifLow)
		if top, ok := s.Registry.HighestPitchInRange(bar, bar+2*constants.TicksPerBar, model.RoleVocal); ok && top >= base {
			base = util.Min(top+1, motifHigh-11)
		}
		for i := model.Tick(0); i < 4; i++ {
			t := bar + i*constants.TicksPerEighth
			if t >= end {
				break
			}
			tones := util.GetKeysSorted(s.Timeline.TonesAt(t))
			if len(tones) == 0 {
				continue
			}
			desired := pitchNear(tones[int(i)%len(tones)], base)
			hints := candidate.Hints{
				PrevPitch: prev, HasPrev: hasPrev,
				PrevPrevPitch: prevPrev, HasPrevPrev: hasPrevPrev,
				NoteDuration:    constants.TicksPerEighth,
				TessituraCenter: motifCenter,
			}
			weak := i%2 == 1
			pitch := s.CreateNote(desired, t, t+constants.TicksPerEighth, model.RoleMotif, motifLow, motifHigh, hints, weak)
			prevPrev, hasPrevPrev = prev, hasPrev
			prev, hasPrev = pitch, true
		}
	}
}

// genArpeggio runs sixteenths up the active chord.
func genArpeggio(s *song.Song) {
	end := s.SongEnd()
	var i int
	for t := model.Tick(0); t < end; t += constants.TicksPerSixteenth {
		tones := util.GetKeysSorted(s.Timeline.TonesAt(t))
		if len(tones) == 0 {
			continue
		}
		desired := pitchNear(tones[i%len(tones)], arpLow)
		i++
		hints := candidate.Hints{NoteDuration: constants.TicksPerSixteenth, TessituraCenter: arpLow + 6}
		weak := t%constants.TicksPerEighth != 0
		s.CreateNote(desired, t, t+constants.TicksPerSixteenth, model.RoleArpeggio, arpLow, arpHigh, hints, weak)
	}
}

// genAux sustains a pad tone per span, shortened to the latest safe end
// so a lengthened note never grows into a clash committed later in the
// bar by a higher-priority role.
func genAux(s *song.Song) {
	for _, span := range s.Timeline.Spans() {
		tones := util.GetKeysSorted(s.Timeline.TonesAt(span.Start))
		if len(tones) < 2 {
			continue
		}
		desired := pitchNear(tones[1], auxBase)
		excluding := s.Scheduler.ExcludedRoles(model.RoleAux)
		// pick another chord tone when this one already sounds elsewhere
		if sounding := s.Registry.PitchClassesSounding(span.Start, span.End, excluding); sounding[desired%12] && len(tones) > 2 {
			desired = pitchNear(tones[2], auxBase)
		}
		safeEnd := s.Detector.MaxSafeEnd(span.Start, desired, excluding, span.End)
		if safeEnd <= span.Start {
			continue
		}
		hints := candidate.Hints{NoteDuration: safeEnd - span.Start, TessituraCenter: auxBase}
		s.CreateNote(desired, span.Start, safeEnd, model.RoleAux, auxBase-7, auxBase+12, hints, false)
	}
}

func clampPitch(v int, low uint8, high uint8) uint8 {
	if v < int(low) {
		return low
	}
	if v > int(high) {
		return high
	}
	return uint8(v)
}

// snapToScale lowers the pitch to the nearest scale member.
func snapToScale(s *song.Song, pitch uint8) uint8 {
	for !s.Timeline.IsScaleTone(pitch) && pitch > 0 {
		pitch--
	}
	return pitch
}
