// Package options defines the configuration record that drives project
// generation. Every field starts unset and is filled once, either from a
// preset or by the interactive collector, before being handed read-only to
// the scaffold generator.
package options
