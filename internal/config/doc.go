// Package config loads and validates the brb channel configuration.
//
// The configuration is a YAML document that declares notification channels
// keyed by id and the ids notified when no explicit selection is made:
//
//	version: 1
//	default_channels: [desktop]
//	channels:
//	  desktop:
//	    type: desktop
//	  ci:
//	    type: webhook
//	    url: https://hooks.example.com/build
//	    headers:
//	      Authorization: Bearer ${env:CI_HOOK_TOKEN}
//
// Loading happens in three steps, and the first failure aborts the load:
//
//  1. Strict parse. Unknown fields are rejected at every level.
//  2. Interpolation of ${env:NAME} markers in webhook and custom channel
//     strings. Substitution is single pass; substituted values are never
//     scanned again.
//  3. Validation of the schema version and the cross-field invariants
//     between default_channels and channels.
//
// A loaded *Config is read-only. Nothing in brb mutates it after Load
// returns, so it can be shared across goroutines without locking.
//
// Process-level settings (state directory, log level, history size) are
// separate from the channel document and come from BRB_* environment
// variables; see LoadSettings.
package config
