// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain entities, request payloads and response
// envelopes shared by the store, service and transport layers.
package models
