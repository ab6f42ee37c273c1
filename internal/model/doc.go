package model

// Package model defines the data passed between the process runner and the
// controller: download requests, output lines and the run status. Values are
// plain structs so they can cross goroutines by copy.
