package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/itinerary/internal/paths"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyHome        = "home"
	cfgKeySource      = "source"
	cfgKeyFormat      = "format"
	cfgKeyLogLevel    = "log_level"
	cfgKeyLogFormat   = "log_format"
	cfgKeyTravelKinds = "travel_kinds"
	cfgKeyStayKinds   = "stay_kinds"
	cfgKeyAddr        = "addr"

	defaultSource    = types.SourceText
	defaultFormat    = types.FormatText
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	defaultAddr      = ":8080"

	// envHomeLegacy keeps "BASED=SVQ itinerary build ..." working.
	envHomeLegacy = "BASED"
	envPrefix     = "ITINERARY"
)

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"home":       cfgKeyHome,
	"source":     cfgKeySource,
	"format":     cfgKeyFormat,
	"log-level":  cfgKeyLogLevel,
	"log-format": cfgKeyLogFormat,
}

// loadConfig builds a viper instance from, lowest to highest precedence:
// defaults, config.yaml in configDir, ITINERARY_* environment variables
// (plus BASED for home) and the flags of cmd. A missing config.yaml is not
// an error.
func loadConfig(configDir string, cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeySource, defaultSource)
	v.SetDefault(cfgKeyFormat, defaultFormat)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetDefault(cfgKeyAddr, defaultAddr)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(cfgKeyHome, envPrefix+"_HOME", envHomeLegacy); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	if f := cmd.Flags().Lookup("addr"); f != nil {
		if err := v.BindPFlag(cfgKeyAddr, f); err != nil {
			return nil, fmt.Errorf("bind flag addr: %w", err)
		}
	}
	return v, nil
}

// load resolves the config directory, reads the configuration and sets up
// the logger.
func (a *app) load(cmd *cobra.Command) error {
	dir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(dir, cmd)
	if err != nil {
		return userError(err)
	}
	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString(cfgKeyLogLevel), v.GetString(cfgKeyLogFormat))
	if err != nil {
		return userError(err)
	}
	a.configDir = dir
	a.v = v
	a.logger = logger
	return nil
}

// config returns the run settings held by the loaded configuration.
func (a *app) config() types.Config {
	return types.Config{
		Home:   strings.TrimSpace(a.v.GetString(cfgKeyHome)),
		Source: strings.ToLower(a.v.GetString(cfgKeySource)),
		Format: strings.ToLower(a.v.GetString(cfgKeyFormat)),
	}
}

// kinds returns the configured travel and stay keywords; nil means the
// record reader defaults.
func (a *app) kinds() (travel, stay []string) {
	if a.v.IsSet(cfgKeyTravelKinds) {
		travel = a.v.GetStringSlice(cfgKeyTravelKinds)
	}
	if a.v.IsSet(cfgKeyStayKinds) {
		stay = a.v.GetStringSlice(cfgKeyStayKinds)
	}
	return travel, stay
}
