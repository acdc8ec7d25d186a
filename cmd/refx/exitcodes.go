package main

// Exit codes returned by refx commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitInputError  = 2 // Input error (unreadable file, no text extracted)
	ExitLookupError = 3 // Lookup error (API failure aborted the run)
)
