// Package report turns identifier checks into rows and renders them as
// styled text, JSON or YAML.
//
// Each row may carry a reference: a UUID v5 derived from the identifier and a
// configurable namespace. The same identifier always yields the same
// reference, so downstream logs can correlate rows without storing the number
// itself. Combine with masking to keep the digits out of output entirely.
package report
