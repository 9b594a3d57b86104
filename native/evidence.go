package native

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// Evidence is a single proof submission.
//
// For a block proof, Proofs holds zkProofCount zero-knowledge proofs followed
// by 2 inclusion proofs (anchoring transaction, anchoring receipt). For an
// invalidity proof it holds zkProofCount zero-knowledge proofs followed by 1
// inclusion proof (invalidation receipt). Circuits holds one circuit id per
// zero-knowledge proof slot.
type Evidence struct {
	Meta     BlockMetadata
	Header   ClaimedHeader
	Prover   common.Address
	Proofs   [][]byte
	Circuits []uint16
}

// DecodeEvidence decodes an evidence bundle from its canonical RLP encoding.
func DecodeEvidence(raw []byte) (*Evidence, error) {
	e := new(Evidence)
	if err := rlp.DecodeBytes(raw, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Encode returns the canonical RLP encoding of the evidence.
func (e *Evidence) Encode() []byte {
	b, err := rlp.EncodeToBytes(e)
	if err != nil {
		panic("can't encode evidence: " + err.Error())
	}
	return b
}
