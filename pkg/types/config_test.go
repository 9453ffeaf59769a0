package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantErrs []error
	}{
		{
			name:   "valid text config",
			config: Config{Home: "SVQ", Source: SourceText, Format: FormatText},
		},
		{
			name:   "valid sqlite json config",
			config: Config{Home: "SVQ", Source: SourceSQLite, Format: FormatJSON},
		},
		{
			name:     "empty home returns ErrHomeMissing",
			config:   Config{Source: SourceText, Format: FormatText},
			wantErrs: []error{ErrHomeMissing},
		},
		{
			name:     "unknown source returns ErrSourceUnknown",
			config:   Config{Home: "SVQ", Source: "csv", Format: FormatText},
			wantErrs: []error{ErrSourceUnknown},
		},
		{
			name:     "unknown format returns ErrFormatUnknown",
			config:   Config{Home: "SVQ", Source: SourceJSONL, Format: "xml"},
			wantErrs: []error{ErrFormatUnknown},
		},
		{
			name:     "all problems are reported together",
			config:   Config{},
			wantErrs: []error{ErrHomeMissing, ErrSourceUnknown, ErrFormatUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestKnownFormat(t *testing.T) {
	assert.True(t, KnownFormat(FormatYAML))
	assert.False(t, KnownFormat("csv"))
}
