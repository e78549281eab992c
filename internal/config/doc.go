// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads run parameters and output settings for gobench.
//
// Settings come from three layers, later layers winning:
//   - Built-in defaults (same values the suite itself defaults to)
//   - A TOML file passed explicitly by the caller
//   - GOBENCH_* environment variables
//
// There is no global configuration object and no implicit search path;
// the caller decides where config comes from and passes the result
// down. Example file:
//
//	[run]
//	timeout_seconds = 10.0
//	max_iterations  = 1000
//	min_iterations  = 3
//	cut             = 0.05
//
//	[output]
//	verbose       = false
//	export_dir    = ""
//	export_format = "json"
package config
