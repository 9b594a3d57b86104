package verifier

import (
	"bytes"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// InstanceCircuit binds the public instance of a block proof: the keccak
// fingerprint of (block hash, prover, tx-list fingerprint), split into two
// 128-bit limbs so each fits the BN254 scalar field.
//
// The constraint system of the real proving circuit is fixed in the verifying
// key; this structure only shapes the public witness fed into verification.
type InstanceCircuit struct {
	InstanceHi frontend.Variable `gnark:",public"`
	InstanceLo frontend.Variable `gnark:",public"`
}

// Define declares identity constraints over the public inputs.
func (c *InstanceCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(c.InstanceHi, c.InstanceHi)
	api.AssertIsEqual(c.InstanceLo, c.InstanceLo)
	return nil
}

// ProofInstance returns the public instance of a proof over the given block
// hash, prover and tx-list fingerprint.
func ProofInstance(blockHash common.Hash, prover common.Address, txListFingerprint common.Hash) common.Hash {
	return crypto.Keccak256Hash(blockHash.Bytes(), prover.Bytes(), txListFingerprint.Bytes())
}

// InstanceAssignment returns the witness assignment of the public instance.
func InstanceAssignment(instance common.Hash) *InstanceCircuit {
	return &InstanceCircuit{
		InstanceHi: new(big.Int).SetBytes(instance[:16]),
		InstanceLo: new(big.Int).SetBytes(instance[16:]),
	}
}

// VerifyZkProof checks the zero-knowledge proof blob against the block hash,
// the prover identity and the tx-list fingerprint, using the verifying key
// registered under verifierID.
func (v *Verifier) VerifyZkProof(verifierID string, proof []byte, blockHash common.Hash, prover common.Address, txListFingerprint common.Hash) bool {
	vk, ok := v.verifyingKey(verifierID)
	if !ok {
		v.Log.Warn("Unknown verifier", "verifier", verifierID)
		return false
	}

	p := groth16.NewProof(ecc.BN254)
	if _, err := p.ReadFrom(bytes.NewReader(proof)); err != nil {
		v.Log.Debug("Malformed zk proof", "verifier", verifierID, "err", err)
		return false
	}

	assignment := InstanceAssignment(ProofInstance(blockHash, prover, txListFingerprint))
	witness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		v.Log.Debug("Failed to build public witness", "err", err)
		return false
	}

	if err := groth16.Verify(p, vk, witness); err != nil {
		v.Log.Debug("Zk proof rejected", "verifier", verifierID, "err", err)
		return false
	}
	return true
}
