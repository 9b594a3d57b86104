package proving

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// The anchoring transaction is signed with the publicly known golden-touch
// key and a fixed nonce k, so its signature is fully deterministic: r is the
// x coordinate of k*G for k=1, or of k*G for k=2 when the k=1 derivation
// degenerates to s == 0 for the given sighash.
var (
	// GoldenTouchAddress is the sender of every anchoring transaction.
	GoldenTouchAddress = common.HexToAddress("0x0000777735367b36bC9B61C50022d9D0700dB4Ec")

	goldenTouchPriv, _ = new(big.Int).SetString("92954368afd3caa1f3ce3ead0069c1af414054aefe1ef9aeacc1bf426222ce38", 16)

	// x(1*G) and x(2*G) on secp256k1.
	anchorSigR1, _ = new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
	anchorSigR2, _ = new(big.Int).SetString("C6047F9441ED7D6D3045406E95C07CD85C778E4B8CEF3CA7ABAC09B95C709EE5", 16)

	secp256k1Order, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
)

// ValidateAnchorSignature checks that (r, s) is the protocol-fixed
// golden-touch signature over sighash. The k=2 signature is accepted only
// when k=1 cannot sign this hash at all.
func ValidateAnchorSignature(sighash common.Hash, r, s *big.Int) error {
	switch {
	case r.Cmp(anchorSigR1) == 0:
		return nil
	case r.Cmp(anchorSigR2) == 0:
		if deriveAnchorS(sighash, anchorSigR1, big.NewInt(1)).Sign() != 0 {
			return fmt.Errorf("%w: secondary signature while the primary one is valid", ErrInvalidAnchorTx)
		}
		return nil
	default:
		return fmt.Errorf("%w: not a golden-touch signature", ErrInvalidAnchorTx)
	}
}

// SignAnchor produces the deterministic golden-touch signature over sighash.
func SignAnchor(sighash common.Hash) (r, s *big.Int) {
	r = anchorSigR1
	s = deriveAnchorS(sighash, r, big.NewInt(1))
	if s.Sign() == 0 {
		r = anchorSigR2
		s = deriveAnchorS(sighash, r, big.NewInt(2))
	}
	return new(big.Int).Set(r), s
}

// deriveAnchorS computes s = k^-1 * (h + r*d) mod N for the golden-touch
// private key d.
func deriveAnchorS(sighash common.Hash, r, k *big.Int) *big.Int {
	s := new(big.Int).Mul(r, goldenTouchPriv)
	s.Add(s, new(big.Int).SetBytes(sighash.Bytes()))
	s.Mod(s, secp256k1Order)
	s.Mul(s, new(big.Int).ModInverse(k, secp256k1Order))
	s.Mod(s, secp256k1Order)
	return s
}
