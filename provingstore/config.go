package provingstore

import (
	"github.com/unicornultrafoundation/go-helios/utils/cachescale"
)

type (
	// StoreCacheConfig is a config for the db.
	StoreCacheConfig struct {
		// Cache size for fork choices (number of entries).
		ForkChoicesNum int
		// Cache size for proposed block fingerprints (number of entries).
		MetadataNum int
	}
	// StoreConfig is a config for store db.
	StoreConfig struct {
		Cache StoreCacheConfig
	}
)

// DefaultStoreConfig for product.
func DefaultStoreConfig(scale cachescale.Func) StoreConfig {
	return StoreConfig{
		Cache: StoreCacheConfig{
			ForkChoicesNum: scale.I(5000),
			MetadataNum:    scale.I(5000),
		},
	}
}

// LiteStoreConfig is for tests or inmemory.
func LiteStoreConfig() StoreConfig {
	return DefaultStoreConfig(cachescale.Ratio{Base: 10, Target: 1})
}
