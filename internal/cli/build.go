package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/itinerary/internal/grouping"
	"github.com/mesh-intelligence/itinerary/internal/records"
	"github.com/mesh-intelligence/itinerary/internal/render"
	"github.com/mesh-intelligence/itinerary/internal/sqlite"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build <path>",
		Short: "Build trips from a reservation file",
		Long: "Read the segments stored at path, group them into trips starting at the\n" +
			"home location, and print the trips.",
		Example: "  BASED=SVQ itinerary build input.txt\n" +
			"  itinerary build --home SVQ --source jsonl --format json input.jsonl",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd, args)
		},
	}
}

func (a *app) runBuild(cmd *cobra.Command, args []string) error {
	cfg := a.config()
	path, err := checkInput(cfg, args)
	if err != nil {
		return userError(err)
	}

	src, err := a.source(cfg.Source, path)
	if err != nil {
		return userError(err)
	}
	segments, err := src.Segments(cmd.Context())
	if err != nil {
		if errors.Is(err, types.ErrMalformedRecord) || errors.Is(err, types.ErrInputNotFound) {
			return userError(err)
		}
		return sysError(fmt.Errorf("read segments: %w", err))
	}
	a.logger.Debug("segments loaded", "path", path, "count", len(segments))

	trips := grouping.New(cfg.Home, grouping.WithLogger(a.logger)).Trips(segments)
	if err := render.Write(cmd.OutOrStdout(), cfg.Format, trips); err != nil {
		return sysError(fmt.Errorf("render trips: %w", err))
	}
	return nil
}

// checkInput reports every problem with the input path and configuration
// at once, followed by a usage example.
func checkInput(cfg types.Config, args []string) (string, error) {
	var errs []error
	var path string
	if len(args) == 0 || args[0] == "" {
		errs = append(errs, types.ErrInputMissing)
	} else {
		path = args[0]
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("%w: %s", types.ErrInputNotFound, path))
		}
	}
	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return "", fmt.Errorf("%w\n%s", errors.Join(errs...), usageExample)
	}
	return path, nil
}

// source opens the record source named by kind for path.
func (a *app) source(kind, path string) (records.Source, error) {
	if kind == types.SourceSQLite {
		return sqlite.NewSource(path, a.logger), nil
	}
	travel, stay := a.kinds()
	return records.Open(kind, path,
		records.WithKinds(travel, stay),
		records.WithLogger(a.logger),
	)
}
