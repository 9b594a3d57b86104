package verifier

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/trie"
)

// VerifyMerkleInclusion checks that value sits under key in the Merkle-Patricia
// trie committed to by root. The proof blob is the RLP encoding of the ordered
// list of trie nodes on the path from the root to the leaf.
func (v *Verifier) VerifyMerkleInclusion(key, value, proof []byte, root common.Hash) bool {
	var nodes [][]byte
	if err := rlp.DecodeBytes(proof, &nodes); err != nil {
		v.Log.Debug("Malformed inclusion proof", "err", err)
		return false
	}

	proofDb := rawdb.NewMemoryDatabase()
	for _, n := range nodes {
		if err := proofDb.Put(crypto.Keccak256(n), n); err != nil {
			return false
		}
	}

	got, err := trie.VerifyProof(root, key, proofDb)
	if err != nil {
		v.Log.Debug("Inclusion proof rejected", "root", root, "err", err)
		return false
	}
	return bytes.Equal(got, value)
}

// FirstEntryKey is the trie key of the entry at index 0 in an index-keyed
// trie (transactions and receipts tries).
func FirstEntryKey() []byte {
	key, err := rlp.EncodeToBytes(uint64(0))
	if err != nil {
		panic(err)
	}
	return key
}
