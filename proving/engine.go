package proving

import (
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/unicornultrafoundation/go-helios/native/idx"

	"github.com/tessera-network/go-tessera/logger"
	"github.com/tessera-network/go-tessera/native"
	"github.com/tessera-network/go-tessera/provingstore"
	"github.com/tessera-network/go-tessera/tessera"
	"github.com/tessera-network/go-tessera/utils/errlock"
)

// Engine is the proving state machine: it admits block proofs and invalidity
// proofs, tracks fork choices, and advances the finality frontier.
// All public operations are serialized by a single mutex and reject with
// ErrHalted once the permanent halt flag is set.
type Engine struct {
	mu       sync.Mutex
	rules    tessera.Rules
	store    *provingstore.Store
	verifier ProofVerifier
	resolver Resolver
	feed     ServiceFeed

	now    func() native.Timestamp
	onHalt func(reason string)

	logger.Instance
}

// NewEngine creates a proving engine over the given store.
func NewEngine(rules tessera.Rules, store *provingstore.Store, verifier ProofVerifier, resolver Resolver) *Engine {
	e := &Engine{
		rules:    rules,
		store:    store,
		verifier: verifier,
		resolver: resolver,
		now: func() native.Timestamp {
			return native.FromTime(time.Now())
		},
		onHalt: func(reason string) {
			_, _ = errlock.Write(reason)
		},
		Instance: logger.New("proving"),
	}
	if halted, _ := store.IsHalted(); halted {
		haltedGauge.Update(1)
	}
	return e
}

// Rules returns a copy of the engine's network rules.
func (e *Engine) Rules() tessera.Rules {
	return e.rules.Copy()
}

// Feed exposes the engine's event feed for subscriptions.
func (e *Engine) Feed() *ServiceFeed {
	return &e.feed
}

// Close releases the engine's subscriptions. The store is owned by the caller.
func (e *Engine) Close() {
	e.feed.Close()
}

// ProposeBlock records the fingerprint of a new block's metadata, assigns it
// the next block id and returns that id. The metadata's ID field is ignored.
func (e *Engine) ProposeBlock(meta *native.BlockMetadata) (idx.Block, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkHalted(); err != nil {
		return 0, err
	}
	next := e.store.GetNextBlockID()
	if next == 0 {
		return 0, fmt.Errorf("genesis is not applied yet")
	}
	if uint64(len(meta.ExtraData)) > e.rules.Blocks.MaxExtraData {
		return 0, fmt.Errorf("%w: oversized extra data", ErrInvalidEvidence)
	}
	if uint64(next-e.store.GetLatestVerifiedID()) > e.rules.Blocks.MaxNumBlocks {
		return 0, ErrTooManyBlocks
	}

	assigned := meta.Copy()
	assigned.ID = next
	e.store.SetProposedBlock(e.rules.Blocks.MaxNumBlocks, next, assigned.Fingerprint())
	e.store.SetNextBlockID(next + 1)

	e.Log.Info("Block proposed", "block", next, "fingerprint", assigned.TxListFingerprint.TerminalString())
	return next, nil
}

// SubmitBlockProof admits a proof that block id was executed to the claimed
// header. inputs is [evidence, anchoring tx, anchoring receipt].
func (e *Engine) SubmitBlockProof(id idx.Block, inputs [][]byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkHalted(); err != nil {
		return err
	}
	ev, err := decodeSubmission(inputs)
	if err != nil {
		return e.reject(id, err)
	}
	if ev.Prover == (common.Address{}) {
		return e.reject(id, ErrZeroProver)
	}
	if ev.Meta.ID != id {
		return e.reject(id, ErrBlockIDMismatch)
	}
	if err := e.checkShape(ev, 2); err != nil {
		return e.reject(id, err)
	}
	if err := e.checkProvable(&ev.Meta); err != nil {
		return e.reject(id, err)
	}
	if err := e.checkHeaderMetadata(&ev.Header, &ev.Meta); err != nil {
		return e.reject(id, err)
	}
	if e.rules.Proving.EnableAnchorValidation {
		if err := e.checkAnchor(ev, inputs[1], inputs[2]); err != nil {
			return e.reject(id, err)
		}
	}
	blockHash := ev.Header.Hash()
	if err := e.verifyProofs(ev, blockHash); err != nil {
		return e.reject(id, err)
	}
	return e.applyProof(&ev.Meta, ev.Header.ParentHash, blockHash, ev.Prover)
}

// SubmitInvalidityProof admits a proof that block id's transaction list is
// undecodable, settling its fork choice on the dead-end hash. inputs is
// [evidence of the throwaway block, target block metadata, invalidation receipt].
func (e *Engine) SubmitInvalidityProof(id idx.Block, inputs [][]byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkHalted(); err != nil {
		return err
	}
	ev, err := decodeSubmission(inputs)
	if err != nil {
		return e.reject(id, err)
	}
	target := new(native.BlockMetadata)
	if err := rlp.DecodeBytes(inputs[1], target); err != nil {
		return e.reject(id, fmt.Errorf("%w: undecodable target metadata: %v", ErrInvalidEvidence, err))
	}
	if ev.Prover == (common.Address{}) {
		return e.reject(id, ErrZeroProver)
	}
	if ev.Meta.ID != id || target.ID != id {
		return e.reject(id, ErrBlockIDMismatch)
	}
	if err := e.checkShape(ev, 1); err != nil {
		return e.reject(id, err)
	}
	if err := e.checkProvable(target); err != nil {
		return e.reject(id, err)
	}
	if err := e.checkHeaderMetadata(&ev.Header, &ev.Meta); err != nil {
		return e.reject(id, err)
	}
	if err := e.checkInvalidateReceipt(ev, target, inputs[2]); err != nil {
		return e.reject(id, err)
	}
	if err := e.verifyProofs(ev, ev.Header.Hash()); err != nil {
		return e.reject(id, err)
	}
	return e.applyProof(target, ev.Header.ParentHash, tessera.DeadEndBlockHash, ev.Prover)
}

// verifyProofs checks the zk proof of every slot, or applies the oracle
// fast-path: the oracle prover establishes a fork choice without zk proofs,
// and nobody else may establish one before it.
func (e *Engine) verifyProofs(ev *native.Evidence, blockHash common.Hash) error {
	cfg := e.rules.Proving
	if cfg.EnableOracleProver {
		fc := e.store.GetForkChoice(ev.Meta.ID, ev.Header.ParentHash)
		if ev.Prover == cfg.OracleProver {
			if fc != nil {
				return ErrOracleAlreadyProven
			}
			return nil
		}
		if fc == nil {
			return ErrOracleMustBeFirst
		}
	}

	start := time.Now()
	defer zkVerifyTimer.UpdateSince(start)
	for i := 0; i < int(cfg.ZkProofsPerBlock); i++ {
		verifierID := ZkVerifierName(i, ev.Circuits[i])
		if _, err := e.resolver.Resolve(e.rules.NetworkID, verifierID, false); err != nil {
			return fmt.Errorf("%w: no verifier %q", ErrInvalidZkProof, verifierID)
		}
		if !e.verifier.VerifyZkProof(verifierID, ev.Proofs[i], blockHash, ev.Prover, ev.Meta.TxListFingerprint) {
			return fmt.Errorf("%w: slot %d", ErrInvalidZkProof, i)
		}
	}
	return nil
}

func (e *Engine) checkHalted() error {
	if halted, reason := e.store.IsHalted(); halted {
		return fmt.Errorf("%w: %s", ErrHalted, reason)
	}
	return nil
}

func (e *Engine) reject(id idx.Block, err error) error {
	proofsRejectedCounter.Inc(1)
	e.Log.Debug("Proof rejected", "block", id, "err", err)
	return err
}

// decodeSubmission unpacks the raw input segments of a submission and decodes
// the leading evidence bundle.
func decodeSubmission(inputs [][]byte) (*native.Evidence, error) {
	if len(inputs) != 3 {
		return nil, fmt.Errorf("%w: got %d input segments, want 3", ErrInvalidEvidence, len(inputs))
	}
	ev, err := native.DecodeEvidence(inputs[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvidence, err)
	}
	return ev, nil
}
