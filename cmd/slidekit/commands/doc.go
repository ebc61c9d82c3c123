// Package commands wires the slidekit CLI: one cobra command per
// shape-arrangement operation, sharing the persistent deck/slide flags
// and the configured notifier.
package commands
