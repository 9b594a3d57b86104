package native

import (
	"github.com/ethereum/go-ethereum/common"
)

// ForkChoice is the accepted execution result for one (block id, claimed
// parent hash) key, together with the provers who have vouched for it.
//
// ProvenAt is zero while the entry is oracle-pending: the privileged oracle
// prover establishes BlockHash without a timestamp, and the first agreeing
// non-oracle proof sets it. Entries are never deleted; once a block becomes
// verified, superseded keys simply stop being referenced.
type ForkChoice struct {
	BlockHash common.Hash
	ProvenAt  Timestamp
	Provers   []common.Address
}

// HasProver reports whether p already vouched for this choice.
func (fc *ForkChoice) HasProver(p common.Address) bool {
	for _, prover := range fc.Provers {
		if prover == p {
			return true
		}
	}
	return false
}

// AddProver appends p to the prover set.
// The caller is responsible for the no-duplicates and capacity invariants.
func (fc *ForkChoice) AddProver(p common.Address) {
	fc.Provers = append(fc.Provers, p)
}

// Copy returns a deep copy of the fork choice.
func (fc ForkChoice) Copy() ForkChoice {
	cp := fc
	cp.Provers = make([]common.Address, len(fc.Provers))
	copy(cp.Provers, fc.Provers)
	return cp
}
