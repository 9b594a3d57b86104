package native

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/unicornultrafoundation/go-helios/native/idx"
)

// BlockMetadata is the identity and commitments of a proposed block.
// It is assigned at proposal time and is immutable afterwards; the proving
// layer only ever reads it and checks its fingerprint against the stored one.
type BlockMetadata struct {
	ID                idx.Block
	AnchorHeight      uint64
	AnchorHash        common.Hash
	TxListFingerprint common.Hash
	Timestamp         Timestamp
	GasLimit          uint64
	Beneficiary       common.Address
	ExtraData         []byte
	MixHash           common.Hash
}

// Fingerprint returns the tamper-detection hash of the metadata.
func (m *BlockMetadata) Fingerprint() common.Hash {
	b, err := rlp.EncodeToBytes(m)
	if err != nil {
		panic("can't fingerprint metadata: " + err.Error())
	}
	return crypto.Keccak256Hash(b)
}

// Copy returns a deep copy of the metadata.
func (m BlockMetadata) Copy() BlockMetadata {
	cp := m
	cp.ExtraData = make([]byte, len(m.ExtraData))
	copy(cp.ExtraData, m.ExtraData)
	return cp
}
