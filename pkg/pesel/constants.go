package pesel

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // All identifiers accepted
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic              = 3  // Internal panic (unexpected crash)
	ExitConfigError        = 10 // Invalid configuration
	ExitMissingInput       = 20 // No identifier supplied in strict mode
	ExitMalformedInput     = 21 // Identifier rejected in strict mode
	ExitInvalidIdentifiers = 22 // One or more identifiers in a batch rejected
)
