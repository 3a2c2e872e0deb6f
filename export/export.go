package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/yskmt/cantus/constants"
	"github.com/yskmt/cantus/model"
	"github.com/yskmt/cantus/registry"
	"github.com/yskmt/cantus/song"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Channel assignment per role. Drums and SE share the GM percussion
// channel.
var roleChannels = map[model.TrackRole]uint8{
	model.RoleVocal:    0,
	model.RoleChord:    1,
	model.RoleBass:     2,
	model.RoleMotif:    3,
	model.RoleArpeggio: 4,
	model.RoleAux:      5,
	model.RoleDrums:    9,
	model.RoleSE:       9,
}

const defaultVelocity = 90

type noteEvent struct {
	tick  model.Tick
	off   bool
	pitch uint8
}

// WriteFile renders every committed non-phantom note to a standard MIDI
// file, one track per role, in tick order at 480 ticks per quarter.
func WriteFile(s *song.Song, path string) error {
	sm, err := build(s)
	if err != nil {
		return err
	}
	return sm.WriteFile(path)
}

// Write renders the same SMF to a stream, for the HTTP surface.
func Write(s *song.Song, w io.Writer) error {
	sm, err := build(s)
	if err != nil {
		return err
	}
	_, err = sm.WriteTo(w)
	return err
}

func build(s *song.Song) (*smf.SMF, error) {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var meta smf.Track
	meta.Add(0, smf.MetaTrackSequenceName("cantus"))
	meta.Add(0, smf.MetaTempo(s.Params.Tempo))
	meta.Close(0)
	if err := sm.Add(meta); err != nil {
		return nil, fmt.Errorf("could not add meta track: %w", err)
	}

	for role := model.TrackRole(0); role < model.NumTrackRoles; role++ {
		notes := s.Registry.NotesForTrack(role)
		if len(notes) == 0 {
			continue
		}
		if err := sm.Add(buildTrack(role, notes)); err != nil {
			return nil, fmt.Errorf("could not add %v track: %w", role, err)
		}
	}

	return sm, nil
}

func buildTrack(role model.TrackRole, notes []registry.NoteRecord) smf.Track {
	ch := roleChannels[role]

	var events []noteEvent
	for _, n := range notes {
		events = append(events, noteEvent{tick: n.Start, pitch: n.Pitch})
		events = append(events, noteEvent{tick: n.End, off: true, pitch: n.Pitch})
	}
	// note-offs first on equal ticks so retriggered pitches stay paired
	sort.Slice(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].off && !events[j].off
	})

	var track smf.Track
	track.Add(0, smf.MetaInstrument(role.String()))
	var last model.Tick
	for _, e := range events {
		delta := uint32(e.tick - last)
		last = e.tick
		if e.off {
			track.Add(delta, midi.NoteOff(ch, e.pitch))
		} else {
			track.Add(delta, midi.NoteOn(ch, e.pitch, defaultVelocity))
		}
	}
	track.Close(0)
	return track
}
