package proving

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tessera-network/go-tessera/native"
)

// applyProof transitions the fork choice keyed by (meta.ID, parentHash) with
// a verified proof of blockHash. The caller holds the engine lock and has
// fully validated the submission.
//
// A conflicting non-oracle proof does not fail the call: it permanently halts
// the engine and returns nil, so that an honest submitter is not told apart
// from the rest while the operator investigates.
func (e *Engine) applyProof(meta *native.BlockMetadata, parentHash, blockHash common.Hash, prover common.Address) error {
	cfg := e.rules.Proving
	now := e.now()

	fc := e.store.GetForkChoice(meta.ID, parentHash)
	if fc == nil {
		fc = &native.ForkChoice{BlockHash: blockHash}
		if !cfg.EnableOracleProver {
			fc.ProvenAt = now
		}
		fc.AddProver(prover)
	} else {
		if uint32(len(fc.Provers)) >= cfg.MaxProofsPerForkChoice {
			return ErrTooManyProofs
		}
		if fc.ProvenAt != 0 && now.Time().After(fc.ProvenAt.Time().Add(cfg.UncleProofDelay)) {
			return ErrUncleProofExpired
		}
		if fc.HasProver(prover) {
			return ErrDuplicateProver
		}
		if blockHash != fc.BlockHash {
			if cfg.EnableOracleProver {
				return ErrConflictingProof
			}
			e.halt(fmt.Sprintf("conflicting proofs for block %d: %s vs %s by %s",
				meta.ID, fc.BlockHash.TerminalString(), blockHash.TerminalString(), prover.String()))
			return nil
		}
		cp := fc.Copy()
		fc = &cp
		if fc.ProvenAt == 0 {
			fc.ProvenAt = now
		}
		fc.AddProver(prover)
	}
	e.store.SetForkChoice(meta.ID, parentHash, fc)

	proofsAcceptedCounter.Inc(1)
	e.feed.blockProven.Send(BlockProvenEvent{
		ID:            meta.ID,
		ParentHash:    parentHash,
		BlockHash:     blockHash,
		MetaTimestamp: meta.Timestamp,
		ProvenAt:      fc.ProvenAt,
		Prover:        prover,
	})
	e.Log.Info("Fork choice proven", "block", meta.ID,
		"parent", parentHash.TerminalString(), "hash", blockHash.TerminalString(),
		"prover", prover, "provers", len(fc.Provers))
	return nil
}

// halt flips the one-way halted flag, records the reason on disk and stops
// accepting any further submissions.
func (e *Engine) halt(reason string) {
	e.store.SetHalted(reason)
	haltedGauge.Update(1)
	e.onHalt(reason)
	e.Log.Error("Proving permanently halted", "reason", reason)
}
