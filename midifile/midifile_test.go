package midifile

import (
	"testing"

	"github.com/jsphweid/lickgen/model"
	"github.com/stretchr/testify/assert"
)

func twoNoteSequence() model.Sequence {
	return model.Sequence{
		Tempo: 120,
		Notes: []model.Note{
			{Midi: 60, Start: 0, Duration: 0.5, Velocity: 0.8},
			{Midi: 64, Start: 0.5, Duration: 0.5, Velocity: 0.5},
		},
	}
}

func TestFromSequenceEventCounts(t *testing.T) {
	mf := FromSequence(twoNoteSequence())

	assert := assert.New(t)
	assert.Len(mf.Tracks, 1)

	var ons, offs int
	for _, evt := range mf.Tracks[0] {
		var channel, key, velocity uint8
		switch {
		case evt.Message.GetNoteOn(&channel, &key, &velocity):
			ons++
		case evt.Message.GetNoteOff(&channel, &key, &velocity):
			offs++
		}
	}
	assert.Equal(2, ons)
	assert.Equal(2, offs)
}

func TestFromSequenceTiming(t *testing.T) {
	// 0.5s at 120bpm is one beat, i.e. 480 ticks
	mf := FromSequence(twoNoteSequence())

	type noteEvent struct {
		absTicks uint32
		key      uint8
		isOff    bool
	}
	var events []noteEvent
	var absTicks uint32
	for _, evt := range mf.Tracks[0] {
		absTicks += evt.Delta
		var channel, key, velocity uint8
		switch {
		case evt.Message.GetNoteOn(&channel, &key, &velocity):
			events = append(events, noteEvent{absTicks, key, false})
		case evt.Message.GetNoteOff(&channel, &key, &velocity):
			events = append(events, noteEvent{absTicks, key, true})
		}
	}

	assert := assert.New(t)
	assert.Len(events, 4)
	assert.Equal(noteEvent{0, 60, false}, events[0])
	// the release of the first note precedes the attack of the second
	assert.Equal(noteEvent{480, 60, true}, events[1])
	assert.Equal(noteEvent{480, 64, false}, events[2])
	assert.Equal(noteEvent{960, 64, true}, events[3])
}

func TestFromSequenceVelocityScaling(t *testing.T) {
	mf := FromSequence(model.Sequence{
		Tempo: 120,
		Notes: []model.Note{{Midi: 60, Start: 0, Duration: 1, Velocity: 1.0}},
	})

	var found bool
	for _, evt := range mf.Tracks[0] {
		var channel, key, velocity uint8
		if evt.Message.GetNoteOn(&channel, &key, &velocity) {
			assert.Equal(t, uint8(127), velocity)
			found = true
		}
	}
	assert.True(t, found)
}
