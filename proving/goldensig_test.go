package proving

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestSignAnchorIsDeterministic(t *testing.T) {
	h := common.HexToHash("0x010203")

	r1, s1 := SignAnchor(h)
	r2, s2 := SignAnchor(h)
	require.Zero(t, r1.Cmp(r2))
	require.Zero(t, s1.Cmp(s2))

	// ordinary hashes sign with k=1
	require.Zero(t, r1.Cmp(anchorSigR1))
	require.NotZero(t, s1.Sign())
	require.NoError(t, ValidateAnchorSignature(h, r1, s1))
}

func TestValidateAnchorSignature(t *testing.T) {
	h := common.HexToHash("0x010203")

	require.Error(t, ValidateAnchorSignature(h, big.NewInt(7), big.NewInt(8)))

	// the secondary r is only acceptable when k=1 degenerates for this hash,
	// which an ordinary hash does not
	require.Error(t, ValidateAnchorSignature(h, anchorSigR2, big.NewInt(8)))

	// s is protocol-determined but not part of the admission check
	require.NoError(t, ValidateAnchorSignature(h, anchorSigR1, big.NewInt(8)))
}

func TestDeriveAnchorS(t *testing.T) {
	h := common.HexToHash("0x010203")

	// s = h + r*d mod N for k=1
	want := new(big.Int).Mul(anchorSigR1, goldenTouchPriv)
	want.Add(want, new(big.Int).SetBytes(h.Bytes()))
	want.Mod(want, secp256k1Order)
	require.Zero(t, want.Cmp(deriveAnchorS(h, anchorSigR1, big.NewInt(1))))
}
