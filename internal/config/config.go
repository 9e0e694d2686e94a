// Package config assembles plugin settings from the munin environment.
// Munin hands per-plugin env.X settings to the process as same-named
// environment variables and always exports MUNIN_PLUGSTATE as the state
// directory for durable plugin files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/terryburton/munin-plugin-gpsd/internal/errors"
)

const (
	DefaultTimeout = 2
	DefaultHost    = "localhost"
	DefaultPort    = 2947

	cacheFile    = "gpsd-snapshot.json"
	registryFile = "gpsd-satellites.json"

	// Wildcard plugin convention: the aspect is the executable name
	// suffix, e.g. a symlink named gpsd_snr presents the snr aspect.
	aspectPrefix = "gpsd_"
)

type Config struct {
	Timeout  int // read deadline in seconds
	Host     string
	Port     int
	StateDir string
	Database string
	Aspect   string
	Command  string // config | autoconf | suggest | "" (fetch)
	Debug    bool
	Verbose  bool
}

func Load() (*Config, error) {
	errFactory := errors.New()

	fs := pflag.NewFlagSet(filepath.Base(os.Args[0]), pflag.ContinueOnError)
	debug := fs.Bool("debug", false, "Enable debug logging")
	verbose := fs.Bool("verbose", false, "Enable verbose logging")
	aspect := fs.String("aspect", "", "Aspect to present (default: derived from executable name)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v := viper.New()
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)

	// Bind the exact lowercase names munin uses for env.X settings.
	for _, key := range []string{"timeout", "host", "port", "database"} {
		if err := v.BindEnv(key, key); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}
	if err := v.BindEnv("statedir", "MUNIN_PLUGSTATE", "statedir"); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	cfg := &Config{
		Timeout:  v.GetInt("timeout"),
		Host:     v.GetString("host"),
		Port:     v.GetInt("port"),
		StateDir: v.GetString("statedir"),
		Database: v.GetString("database"),
		Aspect:   *aspect,
		Command:  fs.Arg(0),
		Debug:    *debug,
		Verbose:  *verbose,
	}

	if cfg.Aspect == "" {
		cfg.Aspect = aspectFromName(os.Args[0])
	}

	if cfg.Timeout <= 0 {
		return nil, errFactory.WithData(errors.ErrInvalidTimeout, cfg.Timeout)
	}

	return cfg, nil
}

func aspectFromName(path string) string {
	base := filepath.Base(path)
	if strings.HasPrefix(base, aspectPrefix) {
		return strings.TrimPrefix(base, aspectPrefix)
	}
	return ""
}

// CachePath returns the snapshot cache location, or "" when no state
// directory is configured and caching is disabled.
func (c *Config) CachePath() string {
	if c.StateDir == "" {
		return ""
	}
	return filepath.Join(c.StateDir, cacheFile)
}

// RegistryPath returns the satellite registry location, or "" when no
// state directory is configured and the registry is disabled.
func (c *Config) RegistryPath() string {
	if c.StateDir == "" {
		return ""
	}
	return filepath.Join(c.StateDir, registryFile)
}
