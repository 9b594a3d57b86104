package proving

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/tessera-network/go-tessera/tessera"
)

func anchorRules() tessera.Rules {
	rules := tessera.FakeNetRules()
	rules.Proving.EnableAnchorValidation = true
	return rules
}

func goldenAnchorTx(t *testing.T, to common.Address, gas uint64, data []byte) []byte {
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    0,
		To:       &to,
		Value:    new(big.Int),
		Gas:      gas,
		GasPrice: new(big.Int),
		Data:     data,
	})
	signer := types.HomesteadSigner{}
	r, s := SignAnchor(signer.Hash(tx))

	sig := make([]byte, 65)
	r.FillBytes(sig[:32])
	s.FillBytes(sig[32:64])
	signed, err := tx.WithSignature(signer, sig)
	require.NoError(t, err)

	raw, err := signed.MarshalBinary()
	require.NoError(t, err)
	return raw
}

func anchorReceipt(t *testing.T, status uint64) []byte {
	receipt := &types.Receipt{
		Status:            status,
		CumulativeGasUsed: 21000,
	}
	raw, err := receipt.MarshalBinary()
	require.NoError(t, err)
	return raw
}

func TestBlockProofWithAnchorValidation(t *testing.T) {
	env := newTestEnv(t, anchorRules())
	gas := env.engine.rules.Proving.AnchorTxGasLimit
	meta := env.propose(t)

	ev := env.evidence(meta, genesisHash, proverA, 2)
	txRaw := goldenAnchorTx(t, rollupAddr, gas, AnchorCalldata(meta.AnchorHeight, meta.AnchorHash))
	receiptRaw := anchorReceipt(t, types.ReceiptStatusSuccessful)

	require.NoError(t, env.engine.SubmitBlockProof(meta.ID, [][]byte{ev.Encode(), txRaw, receiptRaw}))
	require.NotNil(t, env.store.GetForkChoice(meta.ID, genesisHash))
	// tx and receipt inclusion
	require.Equal(t, 2, env.verifier.mipCalls)
}

func TestAnchorTxChecks(t *testing.T) {
	env := newTestEnv(t, anchorRules())
	gas := env.engine.rules.Proving.AnchorTxGasLimit
	meta := env.propose(t)
	ev := env.evidence(meta, genesisHash, proverA, 2)
	receiptRaw := anchorReceipt(t, types.ReceiptStatusSuccessful)

	calldata := AnchorCalldata(meta.AnchorHeight, meta.AnchorHash)
	for name, txRaw := range map[string][]byte{
		"undecodable": {0xde, 0xad},
		"destination": goldenAnchorTx(t, proverB, gas, calldata),
		"gas limit":   goldenAnchorTx(t, rollupAddr, gas+1, calldata),
		"calldata":    goldenAnchorTx(t, rollupAddr, gas, AnchorCalldata(meta.AnchorHeight+1, meta.AnchorHash)),
	} {
		err := env.engine.SubmitBlockProof(meta.ID, [][]byte{ev.Encode(), txRaw, receiptRaw})
		require.ErrorIs(t, err, ErrInvalidAnchorTx, name)
	}
	require.Zero(t, env.verifier.zkCalls)
}

func TestAnchorSignatureCheck(t *testing.T) {
	env := newTestEnv(t, anchorRules())
	gas := env.engine.rules.Proving.AnchorTxGasLimit
	meta := env.propose(t)
	ev := env.evidence(meta, genesisHash, proverA, 2)
	receiptRaw := anchorReceipt(t, types.ReceiptStatusSuccessful)

	// a structurally valid signature that is not the golden-touch one
	to := rollupAddr
	tx := types.NewTx(&types.LegacyTx{
		To:       &to,
		Value:    new(big.Int),
		Gas:      gas,
		GasPrice: new(big.Int),
		Data:     AnchorCalldata(meta.AnchorHeight, meta.AnchorHash),
	})
	sig := make([]byte, 65)
	big.NewInt(2).FillBytes(sig[:32])
	big.NewInt(3).FillBytes(sig[32:64])
	signed, err := tx.WithSignature(types.HomesteadSigner{}, sig)
	require.NoError(t, err)
	txRaw, err := signed.MarshalBinary()
	require.NoError(t, err)

	err = env.engine.SubmitBlockProof(meta.ID, [][]byte{ev.Encode(), txRaw, receiptRaw})
	require.ErrorIs(t, err, ErrInvalidAnchorTx)
}

func TestAnchorReceiptChecks(t *testing.T) {
	env := newTestEnv(t, anchorRules())
	gas := env.engine.rules.Proving.AnchorTxGasLimit
	meta := env.propose(t)
	ev := env.evidence(meta, genesisHash, proverA, 2)
	txRaw := goldenAnchorTx(t, rollupAddr, gas, AnchorCalldata(meta.AnchorHeight, meta.AnchorHash))

	err := env.engine.SubmitBlockProof(meta.ID, [][]byte{ev.Encode(), txRaw, anchorReceipt(t, types.ReceiptStatusFailed)})
	require.ErrorIs(t, err, ErrInvalidAnchorReceipt)

	env.verifier.mipOK = false
	err = env.engine.SubmitBlockProof(meta.ID, [][]byte{ev.Encode(), txRaw, anchorReceipt(t, types.ReceiptStatusSuccessful)})
	require.ErrorIs(t, err, ErrInvalidInclusionProof)
}
