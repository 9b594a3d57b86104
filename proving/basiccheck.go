package proving

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tessera-network/go-tessera/native"
)

// checkShape validates the structural integrity of a decoded evidence bundle.
// inclusionSegments is the number of trailing inclusion proofs expected after
// the zk proofs (2 for block proofs, 1 for invalidity proofs).
func (e *Engine) checkShape(ev *native.Evidence, inclusionSegments int) error {
	cfg := e.rules.Proving
	if len(ev.Circuits) != int(cfg.ZkProofsPerBlock) {
		return fmt.Errorf("%w: got %d circuit ids, want %d", ErrInvalidEvidence, len(ev.Circuits), cfg.ZkProofsPerBlock)
	}
	if want := int(cfg.ZkProofsPerBlock) + inclusionSegments; len(ev.Proofs) != want {
		return fmt.Errorf("%w: got %d proofs, want %d", ErrInvalidEvidence, len(ev.Proofs), want)
	}
	if uint64(len(ev.Meta.ExtraData)) > e.rules.Blocks.MaxExtraData {
		return fmt.Errorf("%w: oversized extra data", ErrInvalidEvidence)
	}
	return nil
}

// checkProvable ensures the target block is in the open proving window and
// that the claimed metadata matches what was recorded at proposal time.
func (e *Engine) checkProvable(target *native.BlockMetadata) error {
	latest := e.store.GetLatestVerifiedID()
	next := e.store.GetNextBlockID()
	if target.ID <= latest || target.ID >= next {
		return fmt.Errorf("%w: block %d not in (%d, %d)", ErrBlockNotProvable, target.ID, latest, next)
	}
	fingerprint, ok := e.store.GetProposedBlock(e.rules.Blocks.MaxNumBlocks, target.ID)
	if !ok || fingerprint != target.Fingerprint() {
		return ErrMetadataMismatch
	}
	return nil
}

// checkHeaderMetadata verifies that every metadata-determined field of the
// claimed header carries exactly the proposed value. The gas limit must leave
// room for the anchoring transaction on top of the proposed limit.
func (e *Engine) checkHeaderMetadata(header *native.ClaimedHeader, meta *native.BlockMetadata) error {
	if header.ParentHash == (common.Hash{}) {
		return fmt.Errorf("%w: zero parent hash", ErrHeaderMismatch)
	}
	if header.Beneficiary != meta.Beneficiary {
		return fmt.Errorf("%w: beneficiary", ErrHeaderMismatch)
	}
	if header.Difficulty != nil && header.Difficulty.Sign() != 0 {
		return fmt.Errorf("%w: non-zero difficulty", ErrHeaderMismatch)
	}
	if header.GasLimit != meta.GasLimit+e.rules.Proving.AnchorTxGasLimit {
		return fmt.Errorf("%w: gas limit", ErrHeaderMismatch)
	}
	if header.Timestamp != meta.Timestamp {
		return fmt.Errorf("%w: timestamp", ErrHeaderMismatch)
	}
	if !bytes.Equal(header.ExtraData, meta.ExtraData) {
		return fmt.Errorf("%w: extra data", ErrHeaderMismatch)
	}
	if header.MixHash != meta.MixHash {
		return fmt.Errorf("%w: mix hash", ErrHeaderMismatch)
	}
	return nil
}
