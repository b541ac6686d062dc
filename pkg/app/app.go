// Package app defines the runtime contract cmd/* binaries start components through.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
