package provingstore

import (
	"encoding/binary"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// ErrAddressNotFound is returned by Resolve for an absent mapping unless the
// caller explicitly allowed the zero address.
var ErrAddressNotFound = errors.New("address not found in the address book")

func addressKey(chainID uint64, name string) []byte {
	key := make([]byte, 8+len(name))
	binary.BigEndian.PutUint64(key[:8], chainID)
	copy(key[8:], name)
	return key
}

// SetAddress stores the (chain id, name) -> address mapping.
func (s *Store) SetAddress(chainID uint64, name string, addr common.Address) {
	if err := s.table.AddressBook.Put(addressKey(chainID, name), addr.Bytes()); err != nil {
		s.Log.Crit("Failed to put key-value", "err", err)
	}
}

// GetAddress returns the address registered under (chain id, name).
func (s *Store) GetAddress(chainID uint64, name string) (common.Address, bool) {
	b, err := s.table.AddressBook.Get(addressKey(chainID, name))
	if err != nil {
		s.Log.Crit("Failed to get key-value", "err", err)
	}
	if b == nil {
		return common.Address{}, false
	}
	return common.BytesToAddress(b), true
}

// Resolve looks up the address registered under (chain id, name).
// An absent mapping is an error unless allowZero is set.
func (s *Store) Resolve(chainID uint64, name string, allowZero bool) (common.Address, error) {
	addr, ok := s.GetAddress(chainID, name)
	if !ok && !allowZero {
		return common.Address{}, ErrAddressNotFound
	}
	return addr, nil
}
