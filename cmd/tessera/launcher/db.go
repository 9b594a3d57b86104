package launcher

import (
	"os"
	"path"

	"github.com/ethereum/go-ethereum/cmd/utils"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/unicornultrafoundation/go-helios/u2udb"
	"github.com/unicornultrafoundation/go-helios/u2udb/leveldb"
	"github.com/unicornultrafoundation/go-helios/u2udb/memorydb"
)

// makeDBProducer opens the chaindata DB producer. An empty or "inmemory"
// datadir yields a memory-backed producer for testing runs.
func makeDBProducer(cfg *config) u2udb.DBProducer {
	if cfg.DataDir == "" || cfg.DataDir == "inmemory" {
		return memorydb.NewProducer("")
	}
	chaindataDir := path.Join(cfg.DataDir, "chaindata")
	if err := os.MkdirAll(chaindataDir, 0700); err != nil {
		utils.Fatalf("Failed to create chaindata directory: %v", err)
	}
	cacher := func(string) (int, int) {
		return 64 * opt.MiB, 256
	}
	return leveldb.NewProducer(chaindataDir, cacher)
}
