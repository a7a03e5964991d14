// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the process's transport.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives
	// and the server has drained.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
