// Package app contains the core application logic of the walk tool. It
// defines the main App struct, its configuration, and the traversal
// dispatching, decoupled from any specific entrypoint like a CLI.
package app
