package proving

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// RollupContractName is the address-book name of the counterpart chain's
// canonical rollup contract.
const RollupContractName = "rollup"

// ProofVerifier validates inclusion proofs and zero-knowledge proofs.
// Implementations must be synchronous; the engine calls them inline and
// treats a false return as a rejection of the whole submission.
type ProofVerifier interface {
	VerifyMerkleInclusion(key, value, proof []byte, root common.Hash) bool
	VerifyZkProof(verifierID string, proof []byte, blockHash common.Hash, prover common.Address, txListFingerprint common.Hash) bool
}

// Resolver finds protocol addresses by name.
type Resolver interface {
	Resolve(chainID uint64, name string, allowZero bool) (common.Address, error)
}

// ZkVerifierName derives the verifier id of a proof slot from the slot index
// and the declared circuit id.
func ZkVerifierName(slot int, circuit uint16) string {
	return fmt.Sprintf("zk_verifier_%d_%d", slot, circuit)
}
