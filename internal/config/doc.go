// Package config loads wsjump settings.
//
// A configuration file is TOML or YAML, chosen by extension:
//
//	[log]
//	level = "info"
//	prefix = "wsjump"
//
//	[motion]
//	end_of_document_notice = "At EOF."
//	start_of_document_notice = "At start of file."
//
//	[keymap]
//	next_whitespace = "Alt+Right"
//	previous_whitespace = "Alt+Left"
//	quit = "Ctrl+q"
//
// Values present in the file override Default(); absent values keep their
// defaults. A missing file is not an error. Unknown keys are rejected so a
// typo does not silently fall back to a default.
//
// Watcher reloads the file when it changes on disk and hands the new
// configuration, or the load error, to a callback.
package config
