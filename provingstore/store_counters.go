package provingstore

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/unicornultrafoundation/go-helios/native/idx"
)

var (
	nextBlockKey          = []byte("n")
	latestVerifiedKey     = []byte("v")
	latestVerifiedHashKey = []byte("h")
	haltedKey             = []byte("halted")
)

// ApplyGenesis initializes the global counters of a fresh store.
// genesisHash becomes the parent hash the first block must be proven against.
func (s *Store) ApplyGenesis(genesisHash common.Hash) {
	if s.GetNextBlockID() != 0 {
		s.Log.Crit("Genesis is already applied")
	}
	s.SetNextBlockID(1)
	s.SetLatestVerified(0, genesisHash)
}

// SetNextBlockID stores the id the next proposed block will be assigned.
func (s *Store) SetNextBlockID(id idx.Block) {
	s.setCounter(nextBlockKey, uint64(id))
}

// GetNextBlockID returns the id the next proposed block will be assigned.
// Zero means the genesis wasn't applied yet.
func (s *Store) GetNextBlockID() idx.Block {
	return idx.Block(s.getCounter(nextBlockKey))
}

// SetLatestVerified stores the highest verified block id and its block hash.
func (s *Store) SetLatestVerified(id idx.Block, blockHash common.Hash) {
	s.setCounter(latestVerifiedKey, uint64(id))
	if err := s.table.ProtocolState.Put(latestVerifiedHashKey, blockHash.Bytes()); err != nil {
		s.Log.Crit("Failed to put key-value", "err", err)
	}
}

// GetLatestVerifiedID returns the highest verified block id.
func (s *Store) GetLatestVerifiedID() idx.Block {
	return idx.Block(s.getCounter(latestVerifiedKey))
}

// GetLatestVerifiedHash returns the block hash of the highest verified block.
func (s *Store) GetLatestVerifiedHash() common.Hash {
	b, err := s.table.ProtocolState.Get(latestVerifiedHashKey)
	if err != nil {
		s.Log.Crit("Failed to get key-value", "err", err)
	}
	return common.BytesToHash(b)
}

// SetHalted permanently stops the proving process.
// The transition is one-way: there is no method to clear the flag.
func (s *Store) SetHalted(reason string) {
	if err := s.table.ProtocolState.Put(haltedKey, []byte(reason)); err != nil {
		s.Log.Crit("Failed to put key-value", "err", err)
	}
}

// IsHalted returns whether proving was permanently stopped, and why.
func (s *Store) IsHalted() (bool, string) {
	b, err := s.table.ProtocolState.Get(haltedKey)
	if err != nil {
		s.Log.Crit("Failed to get key-value", "err", err)
	}
	if b == nil {
		return false, ""
	}
	return true, string(b)
}

func (s *Store) setCounter(key []byte, val uint64) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, val)
	if err := s.table.ProtocolState.Put(key, buf); err != nil {
		s.Log.Crit("Failed to put key-value", "err", err)
	}
}

func (s *Store) getCounter(key []byte) uint64 {
	b, err := s.table.ProtocolState.Get(key)
	if err != nil {
		s.Log.Crit("Failed to get key-value", "err", err)
	}
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}
