package provingstore

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/unicornultrafoundation/go-helios/u2udb"
	"github.com/unicornultrafoundation/go-helios/u2udb/table"

	"github.com/tessera-network/go-tessera/logger"
	"github.com/tessera-network/go-tessera/utils/rlpstore"
)

// Store is the proving layer persistent storage working over physical
// key-value database. It owns the fork-choice table, the proposed-block
// fingerprint window, the global counters and the address book.
type Store struct {
	cfg StoreConfig

	table struct {
		BlockMetadata u2udb.Store `table:"m"`
		ForkChoices   u2udb.Store `table:"f"`
		AddressBook   u2udb.Store `table:"a"`
		ProtocolState u2udb.Store `table:"s"`
	}

	cache struct {
		ForkChoices *lru.Cache
		Metadata    *lru.Cache
	}

	rlp rlpstore.Helper

	logger.Instance
}

// NewStore creates store over key-value db.
func NewStore(dbs u2udb.DBProducer, cfg StoreConfig) *Store {
	s := &Store{
		cfg:      cfg,
		Instance: logger.New("proving-store"),
		rlp:      rlpstore.Helper{Instance: logger.New("rlp")},
	}

	err := table.OpenTables(&s.table, dbs, "proving")
	if err != nil {
		s.Log.Crit("Failed to open tables", "err", err)
	}

	s.cache.ForkChoices = s.makeCache(cfg.Cache.ForkChoicesNum)
	s.cache.Metadata = s.makeCache(cfg.Cache.MetadataNum)

	return s
}

// Close closes underlying database.
func (s *Store) Close() {
	_ = table.CloseTables(&s.table)
	table.MigrateTables(&s.table, nil)
}

func (s *Store) makeCache(size int) *lru.Cache {
	cache, err := lru.New(size)
	if err != nil {
		s.Log.Crit("Failed to create LRU cache", "err", err)
		return nil
	}
	return cache
}
