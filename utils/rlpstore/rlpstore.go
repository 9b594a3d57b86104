package rlpstore

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/unicornultrafoundation/go-helios/u2udb"

	"github.com/tessera-network/go-tessera/logger"
)

// Helper binds RLP encoding with data stores.
type Helper struct {
	logger.Instance
}

// Set RLP-encodes the value and stores it under key.
func (s *Helper) Set(table u2udb.Store, key []byte, val interface{}) {
	buf, err := rlp.EncodeToBytes(val)
	if err != nil {
		s.Log.Crit("Failed to encode rlp", "err", err)
	}

	if err := table.Put(key, buf); err != nil {
		s.Log.Crit("Failed to put key-value", "err", err)
	}
}

// Get returns the RLP-decoded value under key, nil if the key is absent.
func (s *Helper) Get(table u2udb.Store, key []byte, to interface{}) interface{} {
	buf, err := table.Get(key)
	if err != nil {
		s.Log.Crit("Failed to get key-value", "err", err)
	}
	if buf == nil {
		return nil
	}

	if err := rlp.DecodeBytes(buf, to); err != nil {
		s.Log.Crit("Failed to decode rlp", "err", err, "size", len(buf))
	}
	return to
}
