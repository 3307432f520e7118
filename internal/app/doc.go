// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (load the layout, read
// the passes, scan them, report the highest seat), decoupled from any
// specific entrypoint like a CLI.
package app
