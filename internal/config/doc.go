// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the todo API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (loaded into the process environment, never overriding it)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are applied to the merged result, which is then validated. The
// main entry point is [GetStructuredConfig].
package config
