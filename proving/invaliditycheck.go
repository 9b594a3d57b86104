package proving

import (
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/tessera-network/go-tessera/native"
)

// BlockInvalidatedTopic is the event signature the rollup contract emits when
// a proposed transaction list is proven undecodable.
var BlockInvalidatedTopic = crypto.Keccak256Hash([]byte("BlockInvalidated(bytes32)"))

// checkInvalidateReceipt validates the receipt of the throwaway block that
// invalidates target: it must sit at index 0 of the claimed receipt trie and
// carry exactly one BlockInvalidated log naming the target's tx-list
// fingerprint.
func (e *Engine) checkInvalidateReceipt(ev *native.Evidence, target *native.BlockMetadata, receiptRaw []byte) error {
	zk := int(e.rules.Proving.ZkProofsPerBlock)
	if !e.verifier.VerifyMerkleInclusion(firstEntryKey, receiptRaw, ev.Proofs[zk], ev.Header.ReceiptRoot) {
		return fmt.Errorf("%w: invalidation receipt", ErrInvalidInclusionProof)
	}

	receipt := new(types.Receipt)
	if err := receipt.UnmarshalBinary(receiptRaw); err != nil {
		return fmt.Errorf("%w: undecodable: %v", ErrInvalidInvalidationReceipt, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: execution reverted", ErrInvalidInvalidationReceipt)
	}
	if len(receipt.Logs) != 1 {
		return fmt.Errorf("%w: got %d logs, want 1", ErrInvalidInvalidationReceipt, len(receipt.Logs))
	}
	rollup, err := e.resolver.Resolve(e.rules.NetworkID, RollupContractName, false)
	if err != nil {
		return err
	}
	entry := receipt.Logs[0]
	if entry.Address != rollup {
		return fmt.Errorf("%w: log from a foreign contract", ErrInvalidInvalidationReceipt)
	}
	if len(entry.Data) != 0 {
		return fmt.Errorf("%w: unexpected log data", ErrInvalidInvalidationReceipt)
	}
	if len(entry.Topics) != 2 || entry.Topics[0] != BlockInvalidatedTopic {
		return fmt.Errorf("%w: not a BlockInvalidated log", ErrInvalidInvalidationReceipt)
	}
	if entry.Topics[1] != target.TxListFingerprint {
		return fmt.Errorf("%w: fingerprint mismatch", ErrInvalidInvalidationReceipt)
	}
	return nil
}
