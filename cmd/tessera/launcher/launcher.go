package launcher

import (
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ethereum/go-ethereum/cmd/utils"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/urfave/cli/v2"

	"github.com/tessera-network/go-tessera/monitoring/prometheus"
	"github.com/tessera-network/go-tessera/params"
	"github.com/tessera-network/go-tessera/proving"
	"github.com/tessera-network/go-tessera/provingstore"
	"github.com/tessera-network/go-tessera/utils/errlock"
	"github.com/tessera-network/go-tessera/verifier"
	"github.com/tessera-network/go-tessera/version"
)

const (
	// clientIdentifier to advertise over the network.
	clientIdentifier = "go-tessera"
)

var (
	nodeFlags []cli.Flag

	app = &cli.App{
		Name:     clientIdentifier,
		Usage:    "the go-tessera command line interface",
		Version:  params.VersionWithMeta,
		Action:   tesseraMain,
		Commands: []*cli.Command{
			dumpConfigCommand,
			checkConfigCommand,
		},
	}
)

func init() {
	nodeFlags = []cli.Flag{
		configFileFlag,
		DataDirFlag,
		CacheFlag,
		FakeNetFlag,
		GenesisFlag,
		VkDirFlag,
		VerifyPeriodFlag,
		RPCEnabledFlag,
		RPCListenAddrFlag,
		RPCPortFlag,
		EnableMonitorFlag,
		MonitoringPortFlag,
		verbosityFlag,
	}
	app.Flags = nodeFlags
}

// Launch starts the command line interface.
func Launch(args []string) error {
	return app.Run(args)
}

func tesseraMain(ctx *cli.Context) error {
	setupLogger(ctx)
	cfg := makeAllConfigs(ctx)

	log.Info("Starting", "client", clientIdentifier, "version", version.AsString(), "network", cfg.Rules.Name)

	// Check if we have an already initialized chain and exit.
	errlock.SetDefaultDatadir(cfg.DataDir)
	errlock.Check()

	dbs := makeDBProducer(cfg)
	store := provingstore.NewStore(dbs, cfg.ProvingStore)
	defer store.Close()

	if store.GetNextBlockID() == 0 {
		store.ApplyGenesis(cfg.Genesis)
		log.Info("Applied genesis", "hash", cfg.Genesis)
	}
	for name, addr := range cfg.Addresses {
		store.SetAddress(cfg.Rules.NetworkID, name, addr)
	}

	vrf := verifier.New()
	if cfg.VkDir != "" {
		if err := vrf.LoadVerifyingKeys(cfg.VkDir); err != nil {
			utils.Fatalf("Failed to load verifying keys: %v", err)
		}
	}

	engine := proving.NewEngine(cfg.Rules, store, vrf, store)
	defer engine.Close()

	if ctx.Bool(EnableMonitorFlag.Name) {
		endpoint := net.JoinHostPort(cfg.Monitoring.HTTP, strconv.Itoa(cfg.Monitoring.Port))
		prometheus.PrometheusListener(endpoint, nil)
	}

	if cfg.RPC.Enabled {
		srv := rpc.NewServer()
		if err := srv.RegisterName("proving", proving.NewPublicProvingAPI(engine)); err != nil {
			utils.Fatalf("Failed to register the proving API: %v", err)
		}
		defer srv.Stop()

		httpSrv := &http.Server{
			Addr:    net.JoinHostPort(cfg.RPC.Host, strconv.Itoa(cfg.RPC.Port)),
			Handler: srv,
		}
		go func() {
			log.Info("HTTP server started", "endpoint", httpSrv.Addr)
			if err := httpSrv.ListenAndServe(); err != http.ErrServerClosed {
				log.Error("HTTP server stopped", "err", err)
			}
		}()
		defer httpSrv.Close()
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		engine.VerifyLoop(cfg.VerifyPeriod, stop)
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	log.Info("Shutting down")
	close(stop)
	<-done
	return nil
}

func setupLogger(ctx *cli.Context) {
	level := log.FromLegacyLevel(ctx.Int(verbosityFlag.Name))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, level, false)))
}
