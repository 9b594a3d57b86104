package provingstore

/*
	In LRU cache data stored like pointer
*/

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/unicornultrafoundation/go-helios/native/idx"

	"github.com/tessera-network/go-tessera/native"
)

func forkChoiceKey(id idx.Block, parentHash common.Hash) []byte {
	key := make([]byte, 8+common.HashLength)
	binary.BigEndian.PutUint64(key[:8], uint64(id))
	copy(key[8:], parentHash.Bytes())
	return key
}

// SetForkChoice stores the fork choice of the (block id, parent hash) key.
// Entries are only ever created and appended to, never deleted.
func (s *Store) SetForkChoice(id idx.Block, parentHash common.Hash, fc *native.ForkChoice) {
	key := forkChoiceKey(id, parentHash)
	s.rlp.Set(s.table.ForkChoices, key, fc)

	// Add to LRU cache.
	s.cache.ForkChoices.Add(string(key), fc)
}

// GetForkChoice returns the stored fork choice of the key, or nil if no proof
// has ever established one.
func (s *Store) GetForkChoice(id idx.Block, parentHash common.Hash) *native.ForkChoice {
	key := forkChoiceKey(id, parentHash)

	// Get data from LRU cache first.
	if c, ok := s.cache.ForkChoices.Get(string(key)); ok {
		if fc, ok := c.(*native.ForkChoice); ok {
			return fc
		}
	}

	fc, _ := s.rlp.Get(s.table.ForkChoices, key, &native.ForkChoice{}).(*native.ForkChoice)

	// Add to LRU cache.
	if fc != nil {
		s.cache.ForkChoices.Add(string(key), fc)
	}

	return fc
}
