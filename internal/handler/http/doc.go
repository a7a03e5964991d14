// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the todo API.
//
// It wires the chi router, the request gate (bearer authentication and
// schema validation), the JSON envelope and the static uploads route.
// Tracing, access logging, panic recovery, request timeouts and
// compression are handled here before requests reach the service layer.
package http
