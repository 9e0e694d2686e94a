package main

import (
	"fmt"
	"os"
	"time"

	"github.com/terryburton/munin-plugin-gpsd/internal/collector"
	"github.com/terryburton/munin-plugin-gpsd/internal/config"
	"github.com/terryburton/munin-plugin-gpsd/internal/gpsd"
	"github.com/terryburton/munin-plugin-gpsd/internal/logger"
	"github.com/terryburton/munin-plugin-gpsd/internal/plugin"
	"github.com/terryburton/munin-plugin-gpsd/internal/provider"
	"github.com/terryburton/munin-plugin-gpsd/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose)

	switch cfg.Command {
	case "suggest":
		for _, name := range plugin.Names() {
			fmt.Println(name)
		}
		return
	case "autoconf":
		autoconf(cfg)
		return
	case "config", "":
		if err := run(cfg); err != nil {
			logger.Error().Err(err).Msg("no snapshot available")
			os.Exit(1)
		}
	default:
		logger.Error().Str("command", cfg.Command).Msg("unknown command")
		os.Exit(1)
	}
}

// autoconf reports whether the daemon is reachable. Always exits zero;
// the answer itself is the output.
func autoconf(cfg *config.Config) {
	sess, err := gpsd.Dial(cfg.Host, cfg.Port)
	if err != nil {
		fmt.Printf("no (cannot connect to gpsd at %s:%d)\n", cfg.Host, cfg.Port)
		return
	}
	sess.Close()
	fmt.Println("yes")
}

func run(cfg *config.Config) error {
	aspect, ok := plugin.Lookup(cfg.Aspect)
	if !ok {
		return fmt.Errorf("unknown aspect %q: link this plugin as gpsd_<aspect> or pass --aspect", cfg.Aspect)
	}

	if cfg.StateDir == "" {
		logger.Warn().Msg("no state directory configured; snapshot cache and satellite registry disabled")
	}

	dial := func() (gpsd.Session, error) {
		return gpsd.Dial(cfg.Host, cfg.Port)
	}

	var history telemetry.Recorder
	if cfg.Database != "" {
		rec, err := telemetry.NewRecorder(telemetry.Config{DBPath: cfg.Database})
		if err != nil {
			logger.Warn().Err(err).Msg("snapshot history disabled")
		} else {
			history = rec
			defer rec.Close()
		}
	}

	prov, err := provider.New(provider.Config{
		Timeout:      time.Duration(cfg.Timeout) * time.Second,
		CachePath:    cfg.CachePath(),
		RegistryPath: cfg.RegistryPath(),
	}, collector.New(dial), history)
	if err != nil {
		return err
	}

	snap, err := prov.GetSnapshot()
	if err != nil {
		return err
	}

	if cfg.Command == "config" {
		aspect.WriteConfig(os.Stdout, snap)
		return nil
	}
	aspect.WriteValues(os.Stdout, snap)
	return nil
}
