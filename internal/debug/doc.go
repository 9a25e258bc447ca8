// Package debug provides optional file-based debug logging.
//
// When the GRIDTUI_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op so the
// terminal surface is never written to by the engine's diagnostics.
package debug
