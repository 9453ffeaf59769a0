package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/itinerary/internal/paths"
	"github.com/mesh-intelligence/itinerary/internal/records"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Home        string   `yaml:"home,omitempty"`
	Source      string   `yaml:"source"`
	Format      string   `yaml:"format"`
	LogLevel    string   `yaml:"log_level"`
	LogFormat   string   `yaml:"log_format"`
	TravelKinds []string `yaml:"travel_kinds"`
	StayKinds   []string `yaml:"stay_kinds"`
	Addr        string   `yaml:"addr"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: "Create the configuration directory and write config.yaml with default\n" +
			"values. An existing config.yaml is left untouched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	dir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	home, _ := cmd.Flags().GetString("home")
	path := paths.ConfigFile(dir)
	written, err := writeConfigIfMissing(path, home)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	out := cmd.OutOrStdout()
	if !written {
		fmt.Fprintf(out, "Config already exists at %s\n", path)
		return nil
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. An existing file is left as is and written is false.
func writeConfigIfMissing(path, home string) (written bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFile{
		Home:        home,
		Source:      defaultSource,
		Format:      defaultFormat,
		LogLevel:    defaultLogLevel,
		LogFormat:   defaultLogFormat,
		TravelKinds: records.DefaultTravelKinds,
		StayKinds:   records.DefaultStayKinds,
		Addr:        defaultAddr,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
