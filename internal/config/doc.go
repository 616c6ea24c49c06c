// SPDX-License-Identifier: Apache-2.0

// Package config resolves the effective startup configuration of the client.
//
// Configuration is assembled from multiple sources; for every setting the
// source with the highest priority wins (priority from low to high):
//  1. Compiled-in defaults
//  2. Configuration files (later files in the list override earlier ones)
//  3. Environment variables (MPD_HOST, MPD_PORT)
//  4. Command-line flags the user explicitly passed
//
// The main entry point is [Loader.Resolve], which parses the command line,
// captures the environment snapshot, merges all sources, and validates the
// result. [Loader.Bootstrap] then creates the required directories and loads
// the key bindings. No stage terminates the process; errors travel up to the
// caller, and only cmd/ncmpcpp converts them into an exit status.
package config
