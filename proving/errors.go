package proving

import (
	"errors"
)

var (
	ErrHalted                = errors.New("proving is permanently halted")
	ErrInvalidEvidence       = errors.New("malformed evidence bundle")
	ErrBlockIDMismatch       = errors.New("evidence block id mismatches the submission")
	ErrZeroProver            = errors.New("prover identity is zero")
	ErrBlockNotProvable      = errors.New("block id is outside the provable range")
	ErrMetadataMismatch      = errors.New("metadata fingerprint mismatches the proposed block")
	ErrHeaderMismatch        = errors.New("claimed header is inconsistent with the metadata")
	ErrInvalidAnchorTx       = errors.New("invalid anchoring transaction")
	ErrInvalidAnchorReceipt  = errors.New("invalid anchoring receipt")
	ErrInvalidInvalidationReceipt = errors.New("invalid invalidation receipt")
	ErrInvalidInclusionProof = errors.New("inclusion proof rejected")
	ErrInvalidZkProof        = errors.New("zero-knowledge proof rejected")
	ErrOracleMustBeFirst     = errors.New("fork choice is not established by the oracle prover yet")
	ErrOracleAlreadyProven   = errors.New("oracle prover already established this fork choice")
	ErrDuplicateProver       = errors.New("prover has already proven this fork choice")
	ErrTooManyProofs         = errors.New("fork choice has too many proofs already")
	ErrUncleProofExpired     = errors.New("submission is past the uncle-proof deadline")
	ErrConflictingProof      = errors.New("proof conflicts with the oracle-established fork choice")
	ErrTooManyBlocks         = errors.New("too many proposed blocks are awaiting verification")
)
