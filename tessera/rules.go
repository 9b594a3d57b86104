package tessera

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	MainNetworkID uint64 = 7300
	FakeNetworkID uint64 = 73000
	MainNetName          = "main"
	FakeNetName          = "fake"
)

// DeadEndBlockHash is the synthetic terminal hash recorded by a successful
// invalidity proof in place of a real execution result.
var DeadEndBlockHash = common.HexToHash("0x01")

// Rules describes the tessera protocol.
// Note keep track of all the non-copiable variables in Copy()
type Rules struct {
	Name      string
	NetworkID uint64

	Blocks  BlocksRules
	Proving ProvingRules
}

// BlocksRules contains block proposal constraints.
type BlocksRules struct {
	// MaxNumBlocks is the capacity of the proposed-but-unverified block
	// window. Proposed metadata fingerprints are stored in a ring of this
	// size, so at most MaxNumBlocks-1 blocks may be awaiting verification.
	MaxNumBlocks uint64
	MaxExtraData uint64
}

// ProvingRules contains the proof-admission policy.
type ProvingRules struct {
	// ZkProofsPerBlock is the number of zero-knowledge proof slots every
	// submission must fill.
	ZkProofsPerBlock uint32
	// MaxProofsPerForkChoice caps the prover set of a single fork choice.
	MaxProofsPerForkChoice uint32
	// UncleProofDelay is the window after ProvenAt within which additional
	// proofs for an established choice are still admitted.
	UncleProofDelay time.Duration
	// AnchorTxGasLimit is the protocol-fixed gas budget of the anchoring
	// transaction. The claimed header's gas limit must exceed the metadata
	// gas limit by exactly this amount.
	AnchorTxGasLimit uint64
	// EnableAnchorValidation gates decoding and verification of the
	// anchoring transaction/receipt pair.
	EnableAnchorValidation bool
	// EnableOracleProver enables the privileged fast-path: OracleProver may
	// establish a fork choice without zero-knowledge verification, and must
	// do so before anyone else.
	EnableOracleProver bool
	OracleProver       common.Address
}

// MainNetRules returns mainnet protocol rules.
func MainNetRules() Rules {
	return Rules{
		Name:      MainNetName,
		NetworkID: MainNetworkID,
		Blocks: BlocksRules{
			MaxNumBlocks: 2048,
			MaxExtraData: 32,
		},
		Proving: ProvingRules{
			ZkProofsPerBlock:       1,
			MaxProofsPerForkChoice: 5,
			UncleProofDelay:        30 * time.Minute,
			AnchorTxGasLimit:       180000,
			EnableAnchorValidation: true,
		},
	}
}

// FakeNetRules returns rules for the testing purposes.
func FakeNetRules() Rules {
	return Rules{
		Name:      FakeNetName,
		NetworkID: FakeNetworkID,
		Blocks: BlocksRules{
			MaxNumBlocks: 64,
			MaxExtraData: 32,
		},
		Proving: ProvingRules{
			ZkProofsPerBlock:       1,
			MaxProofsPerForkChoice: 5,
			UncleProofDelay:        time.Minute,
			AnchorTxGasLimit:       180000,
			EnableAnchorValidation: false,
		},
	}
}

// Copy returns a deep copy of the rules.
func (r Rules) Copy() Rules {
	cp := r
	return cp
}

func (r Rules) String() string {
	return r.Name
}
