package proving

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/tessera-network/go-tessera/native"
)

var anchorSelector = crypto.Keccak256([]byte("anchor(uint256,bytes32)"))[:4]

// firstEntryKey is the trie key of index 0, under which both the anchoring
// transaction and its receipt must sit in their respective tries.
var firstEntryKey, _ = rlp.EncodeToBytes(uint64(0))

// AnchorCalldata returns the exact calldata the anchoring transaction must
// carry for the given anchor point.
func AnchorCalldata(anchorHeight uint64, anchorHash common.Hash) []byte {
	data := make([]byte, 0, 4+2*common.HashLength)
	data = append(data, anchorSelector...)
	data = append(data, common.BigToHash(new(big.Int).SetUint64(anchorHeight)).Bytes()...)
	data = append(data, anchorHash.Bytes()...)
	return data
}

// checkAnchor validates the anchoring transaction and its receipt against the
// claimed header: the transaction must be the protocol-shaped call at index 0
// of the transaction trie, and its receipt must be a successful one at index 0
// of the receipt trie.
func (e *Engine) checkAnchor(ev *native.Evidence, txRaw, receiptRaw []byte) error {
	cfg := e.rules.Proving

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(txRaw); err != nil {
		return fmt.Errorf("%w: undecodable: %v", ErrInvalidAnchorTx, err)
	}
	if tx.Type() != types.LegacyTxType {
		return fmt.Errorf("%w: not a legacy transaction", ErrInvalidAnchorTx)
	}
	rollup, err := e.resolver.Resolve(e.rules.NetworkID, RollupContractName, false)
	if err != nil {
		return err
	}
	if tx.To() == nil || *tx.To() != rollup {
		return fmt.Errorf("%w: wrong destination", ErrInvalidAnchorTx)
	}
	if tx.Gas() != cfg.AnchorTxGasLimit {
		return fmt.Errorf("%w: wrong gas limit %d", ErrInvalidAnchorTx, tx.Gas())
	}
	if !bytes.Equal(tx.Data(), AnchorCalldata(ev.Meta.AnchorHeight, ev.Meta.AnchorHash)) {
		return fmt.Errorf("%w: wrong calldata", ErrInvalidAnchorTx)
	}
	_, r, s := tx.RawSignatureValues()
	if err := ValidateAnchorSignature(types.HomesteadSigner{}.Hash(tx), r, s); err != nil {
		return err
	}

	zk := int(cfg.ZkProofsPerBlock)
	if !e.verifier.VerifyMerkleInclusion(firstEntryKey, txRaw, ev.Proofs[zk], ev.Header.TxRoot) {
		return fmt.Errorf("%w: anchoring transaction", ErrInvalidInclusionProof)
	}

	receipt := new(types.Receipt)
	if err := receipt.UnmarshalBinary(receiptRaw); err != nil {
		return fmt.Errorf("%w: undecodable: %v", ErrInvalidAnchorReceipt, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: execution reverted", ErrInvalidAnchorReceipt)
	}
	if !e.verifier.VerifyMerkleInclusion(firstEntryKey, receiptRaw, ev.Proofs[zk+1], ev.Header.ReceiptRoot) {
		return fmt.Errorf("%w: anchoring receipt", ErrInvalidInclusionProof)
	}
	return nil
}
