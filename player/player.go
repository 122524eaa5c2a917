package player

import (
	"sort"
	"time"

	"github.com/jsphweid/lickgen/model"
	"gitlab.com/gomidi/midi/v2"
)

type timedMessage struct {
	at        time.Duration
	isNoteOff bool
	msg       midi.Message
}

// Play schedules the sequence against the wall clock on the given MIDI out
// port, blocking until the last note is released. The caller owns the driver
// lifecycle (midi.CloseDriver).
func Play(seq model.Sequence, portNum int) error {
	out, err := midi.OutPort(portNum)
	if err != nil {
		return err
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return err
	}

	var events []timedMessage
	for _, n := range seq.Notes {
		vel := uint8(n.Velocity * 127)
		events = append(events, timedMessage{
			at:  seconds(n.Start),
			msg: midi.NoteOn(0, n.Midi, vel),
		})
		events = append(events, timedMessage{
			at:        seconds(n.Start + n.Duration),
			isNoteOff: true,
			msg:       midi.NoteOff(0, n.Midi),
		})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].at != events[j].at {
			return events[i].at < events[j].at
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	start := time.Now()
	for _, ev := range events {
		// a negative sleep returns immediately
		time.Sleep(ev.at - time.Since(start))
		if err := send(ev.msg); err != nil {
			return err
		}
	}
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
