package session

// Package session holds the form state of the main window and runs the
// Idle -> Running -> Idle cycle of a single download. State is owned by the
// UI goroutine; background goroutines only hand closures to the Dispatcher.
