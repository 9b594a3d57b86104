package native

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// ClaimedHeader is a block header asserted by a prover to correspond to the
// block's execution result. It is constructed per submission and never
// persisted; the proving layer uses it only to cross-check the block metadata
// and to derive the candidate block hash.
type ClaimedHeader struct {
	ParentHash  common.Hash
	Beneficiary common.Address
	Difficulty  *big.Int `rlp:"nil"`
	GasLimit    uint64
	GasUsed     uint64
	Timestamp   Timestamp
	ExtraData   []byte
	MixHash     common.Hash
	TxRoot      common.Hash
	ReceiptRoot common.Hash
}

// Hash derives the candidate block hash of the claimed header.
// The derivation is canonical RLP, so it is bit-reproducible from the same
// fields on every node.
func (h *ClaimedHeader) Hash() common.Hash {
	b, err := rlp.EncodeToBytes(h)
	if err != nil {
		panic("can't hash claimed header: " + err.Error())
	}
	return crypto.Keccak256Hash(b)
}

// Copy returns a deep copy of the header.
func (h ClaimedHeader) Copy() ClaimedHeader {
	cp := h
	cp.ExtraData = make([]byte, len(h.ExtraData))
	copy(cp.ExtraData, h.ExtraData)
	if h.Difficulty != nil {
		cp.Difficulty = new(big.Int).Set(h.Difficulty)
	}
	return cp
}
