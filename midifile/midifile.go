package midifile

import (
	"math"
	"sort"

	"github.com/jsphweid/lickgen/constants"
	"github.com/jsphweid/lickgen/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type timedMessage struct {
	tick      uint32
	isNoteOff bool
	msg       smf.Message
}

// FromSequence renders a sequence as a single-track SMF with a tempo header.
func FromSequence(seq model.Sequence) *smf.SMF {
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(constants.TicksPerBeat)

	var events []timedMessage
	for _, n := range seq.Notes {
		vel := uint8(math.Round(n.Velocity * 127))
		events = append(events, timedMessage{
			tick: secondsToTicks(n.Start, seq.Tempo),
			msg:  smf.Message(midi.NoteOn(0, n.Midi, vel)),
		})
		events = append(events, timedMessage{
			tick:      secondsToTicks(n.Start+n.Duration, seq.Tempo),
			isNoteOff: true,
			msg:       smf.Message(midi.NoteOff(0, n.Midi)),
		})
	}

	// note-offs before note-ons at equal ticks so a re-struck pitch isn't
	// cut short by the previous instance's release
	sort.Slice(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(seq.Tempo))
	var prev uint32
	for _, ev := range events {
		tr.Add(ev.tick-prev, ev.msg)
		prev = ev.tick
	}
	tr.Close(0)
	res.Add(tr)

	return res
}

// Write saves the sequence as a .mid file.
func Write(seq model.Sequence, path string) error {
	return FromSequence(seq).WriteFile(path)
}

func secondsToTicks(seconds float64, tempo float64) uint32 {
	beats := seconds * tempo / 60.0
	return uint32(math.Round(beats * constants.TicksPerBeat))
}
