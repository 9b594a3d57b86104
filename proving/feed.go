package proving

import (
	"github.com/ethereum/go-ethereum/common"
	notify "github.com/ethereum/go-ethereum/event"
	"github.com/unicornultrafoundation/go-helios/native/idx"

	"github.com/tessera-network/go-tessera/native"
)

// BlockProvenEvent is emitted on every successful fork-choice transition.
// It is the durable, externally observable record of the proving layer.
type BlockProvenEvent struct {
	ID            idx.Block
	ParentHash    common.Hash
	BlockHash     common.Hash
	MetaTimestamp native.Timestamp
	ProvenAt      native.Timestamp
	Prover        common.Address
}

// BlockVerifiedEvent is emitted when the finality frontier advances over a
// proven block.
type BlockVerifiedEvent struct {
	ID        idx.Block
	BlockHash common.Hash
}

type ServiceFeed struct {
	scope notify.SubscriptionScope

	blockProven   notify.Feed
	blockVerified notify.Feed
}

func (f *ServiceFeed) SubscribeBlockProven(ch chan<- BlockProvenEvent) notify.Subscription {
	return f.scope.Track(f.blockProven.Subscribe(ch))
}

func (f *ServiceFeed) SubscribeBlockVerified(ch chan<- BlockVerifiedEvent) notify.Subscription {
	return f.scope.Track(f.blockVerified.Subscribe(ch))
}

func (f *ServiceFeed) Close() {
	f.scope.Close()
}
