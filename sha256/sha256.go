// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4 over bit sequences of any length.
//
// Every step is a pure function of its inputs: the chaining state is
// threaded through Compress rather than held by the Engine, so a single
// Engine may hash any number of messages concurrently.
package sha256

import "massnet.org/macsum/bitseq"

// Phase identifies a step of one digest computation.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePadding
	PhaseProcessing
	PhaseFinalized
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePadding:
		return "padding"
	case PhaseProcessing:
		return "processing"
	case PhaseFinalized:
		return "finalized"
	default:
		return "invalid"
	}
}

// Observer is called as a computation moves through its phases. For
// PhaseProcessing, block is the index of the block about to be compressed;
// for PhaseFinalized it is the total number of blocks.
type Observer func(phase Phase, block int)

// Engine computes SHA-256 digests.
type Engine struct {
	observer Observer
}

// New returns an Engine.
func New() *Engine {
	return &Engine{}
}

// WithObserver returns a copy of e that reports phases to o.
func (e *Engine) WithObserver(o Observer) *Engine {
	return &Engine{observer: o}
}

func (e *Engine) notify(phase Phase, block int) {
	if e.observer != nil {
		e.observer(phase, block)
	}
}

// Hash returns the digest of msg. Each call starts from IV.
func (e *Engine) Hash(msg bitseq.Seq) Digest {
	e.notify(PhasePadding, 0)
	blocks, err := Blocks(Pad(msg))
	if err != nil {
		// Pad always yields whole blocks.
		panic(err)
	}

	state := IV
	for i := range blocks {
		e.notify(PhaseProcessing, i)
		state = Compress(state, ScheduleBlock(blocks[i]))
	}
	e.notify(PhaseFinalized, len(blocks))
	return state.Digest()
}

var std = New()

// Sum returns the SHA-256 digest of msg.
func Sum(msg bitseq.Seq) Digest {
	return std.Hash(msg)
}

// SumBytes returns the SHA-256 digest of data.
func SumBytes(data []byte) Digest {
	return std.Hash(bitseq.FromBytes(data))
}
