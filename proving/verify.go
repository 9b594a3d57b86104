package proving

import (
	"errors"
	"time"

	"github.com/unicornultrafoundation/go-helios/native/idx"

	"github.com/tessera-network/go-tessera/tessera"
)

// verifyBatchLimit caps how many blocks a single finality-advance pass may
// verify, so one pass can't hold the engine lock for too long.
const verifyBatchLimit = 16

// VerifyLoop periodically advances the finality frontier until stop is
// closed, or until the engine halts.
func (e *Engine) VerifyLoop(period time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, err := e.VerifyBlocks(verifyBatchLimit); err != nil {
				if errors.Is(err, ErrHalted) {
					e.Log.Warn("Finality advance stopped", "err", err)
					return
				}
			}
		case <-stop:
			return
		}
	}
}

// VerifyBlocks advances the finality frontier over consecutively proven
// blocks, following the fork choice keyed by the latest verified hash, and
// returns how many blocks became verified. It stops at the first block whose
// fork choice is missing or still oracle-pending.
//
// A dead-end fork choice verifies the block as invalid: the block is skipped
// and the frontier hash stays on its parent.
func (e *Engine) VerifyBlocks(maxBlocks idx.Block) (idx.Block, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkHalted(); err != nil {
		return 0, err
	}
	next := e.store.GetNextBlockID()
	parentHash := e.store.GetLatestVerifiedHash()

	var count idx.Block
	for id := e.store.GetLatestVerifiedID() + 1; id < next && count < maxBlocks; id++ {
		fc := e.store.GetForkChoice(id, parentHash)
		if fc == nil || fc.ProvenAt == 0 {
			break
		}
		if fc.BlockHash != tessera.DeadEndBlockHash {
			parentHash = fc.BlockHash
		}
		e.store.SetLatestVerified(id, parentHash)
		count++

		blocksVerifiedCounter.Inc(1)
		e.feed.blockVerified.Send(BlockVerifiedEvent{ID: id, BlockHash: fc.BlockHash})
		e.Log.Info("Block verified", "block", id, "hash", fc.BlockHash.TerminalString(),
			"invalid", fc.BlockHash == tessera.DeadEndBlockHash)
	}
	return count, nil
}
