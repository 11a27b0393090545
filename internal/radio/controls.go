// Package radio wires the decoded layers together: per-sub-channel
// channels with enable controls, the audio-decoder contract, and the
// transmission-frame dispatcher with its worker barrier.
package radio

import "sync/atomic"

// Control flags, packed into one atomically-updated byte.
const (
	FlagDecodeAudio uint32 = 1 << 0
	FlagDecodeData  uint32 = 1 << 1
	FlagPlayAudio   uint32 = 1 << 2

	flagsAll = FlagDecodeAudio | FlagDecodeData | FlagPlayAudio
)

// Controls holds a channel's enable flags. Playing implies decoding:
// setting PLAY_AUDIO sets DECODE_AUDIO, clearing DECODE_AUDIO clears
// PLAY_AUDIO. Safe for concurrent use.
type Controls struct {
	flags atomic.Uint32
}

func (c *Controls) update(set, clear uint32) {
	for {
		old := c.flags.Load()
		next := old&^clear | set
		if c.flags.CompareAndSwap(old, next) {
			return
		}
	}
}

func (c *Controls) SetDecodeAudio(on bool) {
	if on {
		c.update(FlagDecodeAudio, 0)
	} else {
		c.update(0, FlagDecodeAudio|FlagPlayAudio)
	}
}

func (c *Controls) SetDecodeData(on bool) {
	if on {
		c.update(FlagDecodeData, 0)
	} else {
		c.update(0, FlagDecodeData)
	}
}

func (c *Controls) SetPlayAudio(on bool) {
	if on {
		c.update(FlagPlayAudio|FlagDecodeAudio, 0)
	} else {
		c.update(0, FlagPlayAudio)
	}
}

// RunAll enables every flag; StopAll disables every flag.
func (c *Controls) RunAll()  { c.update(flagsAll, 0) }
func (c *Controls) StopAll() { c.update(0, flagsAll) }

func (c *Controls) DecodeAudio() bool { return c.flags.Load()&FlagDecodeAudio != 0 }
func (c *Controls) DecodeData() bool  { return c.flags.Load()&FlagDecodeData != 0 }
func (c *Controls) PlayAudio() bool   { return c.flags.Load()&FlagPlayAudio != 0 }

// AnyEnabled reports whether the channel has any work to do; a fully
// disabled channel is skipped per frame.
func (c *Controls) AnyEnabled() bool { return c.flags.Load() != 0 }

// AllEnabled reports whether every flag is set.
func (c *Controls) AllEnabled() bool { return c.flags.Load() == flagsAll }
