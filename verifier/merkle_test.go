package verifier

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"

	"github.com/tessera-network/go-tessera/logger"
)

// A transactions/receipts trie with a single entry collapses to one leaf node:
// [hex-prefix(nibbles of rlp(0), terminator), value].
func singleLeafTrie(t *testing.T, value []byte) (root common.Hash, proof []byte) {
	leaf, err := rlp.EncodeToBytes([][]byte{{0x20, 0x80}, value})
	require.NoError(t, err)
	proof, err = rlp.EncodeToBytes([][]byte{leaf})
	require.NoError(t, err)
	return crypto.Keccak256Hash(leaf), proof
}

func TestVerifyMerkleInclusion(t *testing.T) {
	logger.SetTestMode(t)
	v := New()

	value := bytes.Repeat([]byte{0x2a}, 40)
	root, proof := singleLeafTrie(t, value)

	require.True(t, v.VerifyMerkleInclusion(FirstEntryKey(), value, proof, root))

	// value mismatch
	require.False(t, v.VerifyMerkleInclusion(FirstEntryKey(), []byte{0x01}, proof, root))

	// wrong root
	require.False(t, v.VerifyMerkleInclusion(FirstEntryKey(), value, proof, common.HexToHash("0xbad1")))

	// key absent from the trie
	key, err := rlp.EncodeToBytes(uint64(1))
	require.NoError(t, err)
	require.False(t, v.VerifyMerkleInclusion(key, value, proof, root))

	// malformed proof blob
	require.False(t, v.VerifyMerkleInclusion(FirstEntryKey(), value, []byte{0xde, 0xad}, root))
}

func TestFirstEntryKey(t *testing.T) {
	require.Equal(t, []byte{0x80}, FirstEntryKey())
}
