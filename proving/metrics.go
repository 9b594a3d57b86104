package proving

import (
	"github.com/ethereum/go-ethereum/metrics"
)

var (
	proofsAcceptedCounter = metrics.NewRegisteredCounter("proving/proofs/accepted", nil)
	proofsRejectedCounter = metrics.NewRegisteredCounter("proving/proofs/rejected", nil)
	blocksVerifiedCounter = metrics.NewRegisteredCounter("proving/blocks/verified", nil)
	haltedGauge           = metrics.NewRegisteredGauge("proving/halted", nil)
	zkVerifyTimer         = metrics.NewRegisteredTimer("proving/zk/verify", nil)
)
