package ui

// Package ui contains the Fyne-based desktop window. It forwards user input
// to the session controller and renders every controller state change:
// button state, notice, output path and the downloader log.
