// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the resolution lifecycle (load the
// configuration, obtain the shared functor manager, resolve, render),
// decoupled from any specific entrypoint like a CLI.
package app
