// Package logging provides the Logger used by the pesel command line tool.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to an io.Writer (stderr in the CLI)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
// The pesel library package itself never logs.
package logging
