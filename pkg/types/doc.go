// Package types defines the segment variants (Travel, Stay), the Trip
// aggregate, run configuration, and the standard errors shared by the
// record sources, the trip builder, and the command-line and HTTP surfaces.
package types
