package proof

import (
	"github.com/takakv/triptych/curvegroup"
	"github.com/takakv/triptych/transcript"
)

// protocolVersion is absorbed into every transcript as a fixed marker, so a
// future incompatible change to the proof format changes every derived
// challenge.
const protocolVersion = uint64(0)

// newTranscript starts a transcript and absorbs the fixed preamble shared
// by both the prover and the verifier: version, optional message, the
// Parameters hash, the input-set hash, and the linking tag J. Both sides
// must reconstruct this identically for a proof to verify.
func newTranscript(message []byte, paramsHash, inputSetHash [32]byte, j curvegroup.Point) *transcript.Transcript {
	tr := transcript.New("Triptych proof")
	tr.AppendUint64("version", protocolVersion)
	if message != nil {
		tr.Append("message", message)
	}
	tr.Append("params", paramsHash[:])
	tr.Append("M", inputSetHash[:])
	jb := j.Compress()
	tr.Append("J", jb[:])
	return tr
}

// appendCommitments absorbs A, B, C, D, then X[0..m), then Y[0..m), in that
// exact order, as required by the transcript binding contract.
func appendCommitments(tr *transcript.Transcript, a, b, c, d curvegroup.Point, x, y []curvegroup.Point) {
	ab := a.Compress()
	tr.Append("A", ab[:])
	bb := b.Compress()
	tr.Append("B", bb[:])
	cb := c.Compress()
	tr.Append("C", cb[:])
	db := d.Compress()
	tr.Append("D", db[:])
	for _, xi := range x {
		xb := xi.Compress()
		tr.Append("X", xb[:])
	}
	for _, yi := range y {
		yb := yi.Compress()
		tr.Append("Y", yb[:])
	}
}

// xiPowers draws the wide Fiat-Shamir challenge ξ under label "xi" and
// returns [ξ^0, ξ^1, ..., ξ^m]. It fails with ErrInvalidChallenge if any
// power is zero.
func xiPowers(tr *transcript.Transcript, m uint32) ([]curvegroup.Scalar, error) {
	var wide [64]byte
	tr.ChallengeBytes("xi", wide[:])
	xi := curvegroup.ScalarFromWideBytes(&wide)
	return powersFromXi(xi, m)
}

// powersFromXi computes [ξ^0, ξ^1, ..., ξ^m], failing closed with
// ErrInvalidChallenge the moment any power is zero, which can only happen
// if ξ itself is zero. Split out from xiPowers so the failure policy is
// directly testable without needing to find a transcript that happens to
// squeeze a zero challenge.
func powersFromXi(xi curvegroup.Scalar, m uint32) ([]curvegroup.Scalar, error) {
	powers := make([]curvegroup.Scalar, m+1)
	powers[0] = curvegroup.ScalarOne()
	for i := uint32(1); i <= m; i++ {
		powers[i] = curvegroup.MulScalars(powers[i-1], xi)
		if powers[i].IsZero() {
			return nil, ErrInvalidChallenge
		}
	}
	return powers, nil
}
