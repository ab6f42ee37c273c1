package platform

// Package platform contains OS integration: resolving the folders shown in
// the window and revealing the output folder in the system file manager.
