package launcher

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/ethereum/go-ethereum/cmd/utils"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/naoina/toml"
	"github.com/unicornultrafoundation/go-helios/utils/cachescale"
	"github.com/urfave/cli/v2"

	"github.com/tessera-network/go-tessera/monitoring"
	"github.com/tessera-network/go-tessera/provingstore"
	"github.com/tessera-network/go-tessera/tessera"
)

const (
	// DefaultCacheSize is calculated as memory consumption in a default mode.
	DefaultCacheSize  = 3600
	ConstantCacheSize = 600
)

var (
	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "",
		Flags:       nodeFlags,
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The dumpconfig command shows configuration values.`,
	}
	checkConfigCommand = &cli.Command{
		Action:      checkConfig,
		Name:        "checkconfig",
		Usage:       "Checks configuration file",
		ArgsUsage:   "",
		Flags:       nodeFlags,
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The checkconfig checks configuration file.`,
	}

	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	DataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory for the databases",
		Value: DefaultDataDir(),
	}
	CacheFlag = &cli.IntFlag{
		Name:  "cache",
		Usage: "Megabytes of memory allocated to internal caching",
		Value: DefaultCacheSize,
	}
	FakeNetFlag = &cli.BoolFlag{
		Name:  "fakenet",
		Usage: "Run with the fake network rules (testing purposes only)",
	}
	GenesisFlag = &cli.StringFlag{
		Name:  "genesis",
		Usage: "Hash of the genesis block the first proof must build upon",
	}
	VkDirFlag = &cli.StringFlag{
		Name:  "vkdir",
		Usage: "Directory with groth16 verifying keys (*.vk)",
	}
	VerifyPeriodFlag = &cli.DurationFlag{
		Name:  "verify.period",
		Usage: "Interval between finality-advance attempts",
		Value: 10 * time.Second,
	}
	RPCEnabledFlag = &cli.BoolFlag{
		Name:  "http",
		Usage: "Enable the HTTP-RPC server",
	}
	RPCListenAddrFlag = &cli.StringFlag{
		Name:  "http.addr",
		Usage: "HTTP-RPC server listening interface",
		Value: "127.0.0.1",
	}
	RPCPortFlag = &cli.IntFlag{
		Name:  "http.port",
		Usage: "HTTP-RPC server listening port",
		Value: 18545,
	}
	EnableMonitorFlag = &cli.BoolFlag{
		Name:  "monitoring",
		Usage: "Enable the prometheus metrics endpoint",
	}
	MonitoringPortFlag = &cli.IntFlag{
		Name:  "monitoring.port",
		Usage: "Prometheus metrics endpoint port",
		Value: monitoring.DefaultConfig.Port,
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type RPCConfig struct {
	Enabled bool
	Host    string `toml:",omitempty"`
	Port    int    `toml:",omitempty"`
}

type config struct {
	DataDir      string
	Genesis      common.Hash
	Rules        tessera.Rules
	ProvingStore provingstore.StoreConfig
	// Addresses seeds the on-disk address book: protocol contract and
	// verifier addresses by name.
	Addresses    map[string]common.Address
	VkDir        string
	VerifyPeriod time.Duration
	RPC          RPCConfig
	Monitoring   monitoring.Config
}

func loadAllConfigs(file string, cfg *config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	if err != nil {
		return fmt.Errorf("TOML config file error: %v.\n"+
			"Use 'dumpconfig' command to get an example config file", err)
	}
	return err
}

func cacheScaler(ctx *cli.Context) cachescale.Func {
	if !ctx.IsSet(CacheFlag.Name) {
		return cachescale.Identity
	}
	targetCache := ctx.Int(CacheFlag.Name)
	baseSize := DefaultCacheSize
	if targetCache < baseSize {
		log.Crit("Invalid flag", "flag", CacheFlag.Name, "err", fmt.Sprintf("minimum cache size is %d MB", baseSize))
	}
	return cachescale.Ratio{
		Base:   uint64(baseSize - ConstantCacheSize),
		Target: uint64(targetCache - ConstantCacheSize),
	}
}

func mayMakeAllConfigs(ctx *cli.Context) (*config, error) {
	// Defaults (low priority)
	cacheRatio := cacheScaler(ctx)
	cfg := config{
		DataDir:      DefaultDataDir(),
		Rules:        tessera.MainNetRules(),
		ProvingStore: provingstore.DefaultStoreConfig(cacheRatio),
		VerifyPeriod: VerifyPeriodFlag.Value,
		RPC: RPCConfig{
			Host: RPCListenAddrFlag.Value,
			Port: RPCPortFlag.Value,
		},
		Monitoring: monitoring.DefaultConfig,
	}
	if ctx.Bool(FakeNetFlag.Name) {
		cfg.Rules = tessera.FakeNetRules()
		cfg.ProvingStore = provingstore.LiteStoreConfig()
	}

	// Load config file (medium priority)
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadAllConfigs(file, &cfg); err != nil {
			return &cfg, err
		}
	}

	// Apply flags (high priority)
	if ctx.IsSet(DataDirFlag.Name) {
		cfg.DataDir = ctx.String(DataDirFlag.Name)
	}
	if ctx.IsSet(GenesisFlag.Name) {
		cfg.Genesis = common.HexToHash(ctx.String(GenesisFlag.Name))
	}
	if ctx.IsSet(VkDirFlag.Name) {
		cfg.VkDir = ctx.String(VkDirFlag.Name)
	}
	if ctx.IsSet(VerifyPeriodFlag.Name) {
		cfg.VerifyPeriod = ctx.Duration(VerifyPeriodFlag.Name)
	}
	if ctx.IsSet(RPCEnabledFlag.Name) {
		cfg.RPC.Enabled = true
	}
	if ctx.IsSet(RPCListenAddrFlag.Name) {
		cfg.RPC.Host = ctx.String(RPCListenAddrFlag.Name)
	}
	if ctx.IsSet(RPCPortFlag.Name) {
		cfg.RPC.Port = ctx.Int(RPCPortFlag.Name)
	}
	if ctx.IsSet(MonitoringPortFlag.Name) {
		cfg.Monitoring.Port = ctx.Int(MonitoringPortFlag.Name)
	}

	if cfg.Genesis == (common.Hash{}) && cfg.Rules.NetworkID == tessera.MainNetworkID {
		return nil, fmt.Errorf("genesis hash is required on the main network, use --%s", GenesisFlag.Name)
	}
	return &cfg, nil
}

func makeAllConfigs(ctx *cli.Context) *config {
	cfg, err := mayMakeAllConfigs(ctx)
	if err != nil {
		utils.Fatalf("%v", err)
	}
	return cfg
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg := makeAllConfigs(ctx)

	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	dump := os.Stdout
	_, err = dump.Write(out)
	return err
}

// checkConfig is the checkconfig command.
func checkConfig(ctx *cli.Context) error {
	_, err := mayMakeAllConfigs(ctx)
	return err
}

// DefaultDataDir is the default data directory to use for the databases.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".tessera")
}
