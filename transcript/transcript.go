// Package transcript implements the Fiat-Shamir transcript Triptych proofs
// are bound to: a labelled, length-prefixed absorb-only duplex built on
// SHAKE256, with challenge extraction that leaves the running state usable
// for further absorption.
package transcript

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Transcript is a labelled absorb-only sponge. Zero value is not usable;
// construct with New.
type Transcript struct {
	state sha3.ShakeHash
}

// New starts a transcript under a fixed domain-separation label.
func New(domainLabel string) *Transcript {
	t := &Transcript{state: sha3.NewShake256()}
	t.absorb([]byte("dom-sep"), []byte(domainLabel))
	return t
}

// absorb writes a length-prefixed label followed by a length-prefixed
// payload into the running sponge state.
func (t *Transcript) absorb(label, data []byte) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(label)))
	_, _ = t.state.Write(lenBuf[:])
	_, _ = t.state.Write(label)
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(data)))
	_, _ = t.state.Write(lenBuf[:])
	_, _ = t.state.Write(data)
}

// Append absorbs an arbitrary byte string under the given label.
func (t *Transcript) Append(label string, data []byte) {
	t.absorb([]byte(label), data)
}

// AppendUint64 absorbs a fixed-width little-endian u64 under the given
// label, matching the transcript-bound "version" field.
func (t *Transcript) AppendUint64(label string, n uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	t.absorb([]byte(label), buf[:])
}

// ChallengeBytes absorbs the label, then forks the sponge state and
// squeezes len(out) pseudorandom bytes into out that depend on every prior
// absorbed value. The transcript itself remains open for further Append
// calls afterward.
func (t *Transcript) ChallengeBytes(label string, out []byte) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(label)))
	_, _ = t.state.Write(lenBuf[:])
	_, _ = t.state.Write([]byte(label))

	squeeze := t.state.Clone()
	_, _ = squeeze.Read(out)
}
