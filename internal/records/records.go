// Package records reads travel and stay segments from reservation exports.
// Two formats are supported: the plain-text reservation log, where each
// segment sits on a line starting with "SEGMENT:", and JSON Lines, one
// segment object per line.
package records

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// Source yields the segments of one reservation export.
type Source interface {
	Segments(ctx context.Context) ([]types.Segment, error)
}

// Default segment kinds recognized by keyword.
var (
	DefaultTravelKinds = []string{"flight", "train"}
	DefaultStayKinds   = []string{"hotel"}
)

type options struct {
	travelKinds map[string]bool
	stayKinds   map[string]bool
	logger      *slog.Logger
}

// Option configures a Source built by this package.
type Option func(*options)

// WithKinds replaces the keywords that mark travel and stay segments.
// Keywords are matched case-insensitively. A nil slice keeps the default.
func WithKinds(travel, stay []string) Option {
	return func(o *options) {
		if travel != nil {
			o.travelKinds = kindSet(travel)
		}
		if stay != nil {
			o.stayKinds = kindSet(stay)
		}
	}
}

// WithLogger sets the logger used to report skipped lines.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		travelKinds: kindSet(DefaultTravelKinds),
		stayKinds:   kindSet(DefaultStayKinds),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// category classifies a keyword; ok is false for unknown keywords.
func (o options) category(keyword string) (types.Category, bool) {
	k := strings.ToLower(keyword)
	switch {
	case o.travelKinds[k]:
		return types.CategoryTravel, true
	case o.stayKinds[k]:
		return types.CategoryStay, true
	default:
		return "", false
	}
}

func kindSet(kinds []string) map[string]bool {
	set := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		set[strings.ToLower(strings.TrimSpace(k))] = true
	}
	return set
}

// Open returns a file-backed Source for the named format (types.SourceText
// or types.SourceJSONL). Returns types.ErrSourceUnknown for other names.
// The file is opened when Segments is called.
func Open(format, path string, opts ...Option) (Source, error) {
	switch format {
	case types.SourceText:
		return OpenText(path, opts...), nil
	case types.SourceJSONL:
		return OpenJSONL(path, opts...), nil
	default:
		return nil, types.ErrSourceUnknown
	}
}

// readerFunc opens the underlying input for one read.
type readerFunc func() (io.ReadCloser, error)

func fileReader(path string) readerFunc {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

func staticReader(r io.Reader) readerFunc {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(r), nil
	}
}
