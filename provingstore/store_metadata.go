package provingstore

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/unicornultrafoundation/go-helios/native/idx"
)

type proposedBlock struct {
	ID          idx.Block
	Fingerprint common.Hash
}

func metadataKey(maxNumBlocks uint64, id idx.Block) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id)%maxNumBlocks)
	return key
}

// SetProposedBlock stores the metadata fingerprint of a proposed block.
// Fingerprints live in a ring of maxNumBlocks slots, so a slot is reused once
// its previous occupant got verified.
func (s *Store) SetProposedBlock(maxNumBlocks uint64, id idx.Block, fingerprint common.Hash) {
	key := metadataKey(maxNumBlocks, id)
	s.rlp.Set(s.table.BlockMetadata, key, &proposedBlock{
		ID:          id,
		Fingerprint: fingerprint,
	})

	s.cache.Metadata.Add(string(key), &proposedBlock{id, fingerprint})
}

// GetProposedBlock returns the stored metadata fingerprint of the block id.
// The second return is false if the ring slot is empty or occupied by a
// different block.
func (s *Store) GetProposedBlock(maxNumBlocks uint64, id idx.Block) (common.Hash, bool) {
	key := metadataKey(maxNumBlocks, id)

	if c, ok := s.cache.Metadata.Get(string(key)); ok {
		if b, ok := c.(*proposedBlock); ok {
			if b.ID != id {
				return common.Hash{}, false
			}
			return b.Fingerprint, true
		}
	}

	b, _ := s.rlp.Get(s.table.BlockMetadata, key, &proposedBlock{}).(*proposedBlock)
	if b == nil {
		return common.Hash{}, false
	}

	s.cache.Metadata.Add(string(key), b)

	if b.ID != id {
		return common.Hash{}, false
	}
	return b.Fingerprint, true
}
