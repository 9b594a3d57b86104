package proving

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/unicornultrafoundation/go-helios/native/idx"

	"github.com/tessera-network/go-tessera/native"
)

// PublicProvingAPI exposes the proving engine over RPC under the "proving"
// namespace.
type PublicProvingAPI struct {
	engine *Engine
}

func NewPublicProvingAPI(e *Engine) *PublicProvingAPI {
	return &PublicProvingAPI{engine: e}
}

// ProvingStatus is the RPC view of the engine's global counters.
type ProvingStatus struct {
	NextBlockID      hexutil.Uint64 `json:"nextBlockId"`
	LatestVerifiedID hexutil.Uint64 `json:"latestVerifiedId"`
	LatestVerified   common.Hash    `json:"latestVerifiedHash"`
	Halted           bool           `json:"halted"`
	HaltReason       string         `json:"haltReason,omitempty"`
}

// Status returns the engine's global counters and halt state.
func (api *PublicProvingAPI) Status() ProvingStatus {
	s := api.engine.store
	halted, reason := s.IsHalted()
	return ProvingStatus{
		NextBlockID:      hexutil.Uint64(s.GetNextBlockID()),
		LatestVerifiedID: hexutil.Uint64(s.GetLatestVerifiedID()),
		LatestVerified:   s.GetLatestVerifiedHash(),
		Halted:           halted,
		HaltReason:       reason,
	}
}

// GetForkChoice returns the fork choice of (blockID, parentHash), or nil if
// no proof has established one.
func (api *PublicProvingAPI) GetForkChoice(blockID hexutil.Uint64, parentHash common.Hash) *native.ForkChoice {
	return api.engine.store.GetForkChoice(idx.Block(blockID), parentHash)
}

// SubmitBlockProof submits a block proof for the given block id.
func (api *PublicProvingAPI) SubmitBlockProof(blockID hexutil.Uint64, inputs []hexutil.Bytes) error {
	return api.engine.SubmitBlockProof(idx.Block(blockID), rawInputs(inputs))
}

// SubmitInvalidityProof submits an invalidity proof for the given block id.
func (api *PublicProvingAPI) SubmitInvalidityProof(blockID hexutil.Uint64, inputs []hexutil.Bytes) error {
	return api.engine.SubmitInvalidityProof(idx.Block(blockID), rawInputs(inputs))
}

func rawInputs(inputs []hexutil.Bytes) [][]byte {
	raw := make([][]byte, len(inputs))
	for i, in := range inputs {
		raw[i] = in
	}
	return raw
}
