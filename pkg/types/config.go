package types

import "errors"

// Config holds the resolved settings for one trip-building run.
type Config struct {
	Home   string `json:"home" yaml:"home"`
	Source string `json:"source" yaml:"source"`
	Format string `json:"format" yaml:"format"`
}

// Record source names.
const (
	SourceText   = "text"
	SourceJSONL  = "jsonl"
	SourceSQLite = "sqlite"
)

// Output format names.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var knownSources = map[string]bool{
	SourceText:   true,
	SourceJSONL:  true,
	SourceSQLite: true,
}

var knownFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
}

// Validate checks that the Config is usable. Every problem found is
// reported; the result matches the sentinel errors of this package with
// errors.Is.
func (c Config) Validate() error {
	var errs []error
	if c.Home == "" {
		errs = append(errs, ErrHomeMissing)
	}
	if !knownSources[c.Source] {
		errs = append(errs, ErrSourceUnknown)
	}
	if !knownFormats[c.Format] {
		errs = append(errs, ErrFormatUnknown)
	}
	return errors.Join(errs...)
}

// KnownFormat reports whether name is a supported output format.
func KnownFormat(name string) bool {
	return knownFormats[name]
}
