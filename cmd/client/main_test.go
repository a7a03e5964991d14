// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"-a", "127.0.0.1:8080", "-t", "3s", "-phone", "+15551234567", "-password", "Password123!"})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", opts.address)
	assert.Equal(t, 3*time.Second, opts.timeout)
	assert.Equal(t, "Buy milk", opts.title)

	_, err = parseOptions([]string{"-phone", "+15551234567"})
	assert.Error(t, err)
}

func TestAbsoluteURL(t *testing.T) {
	assert.Equal(t, "http://localhost:5000/uploads/a.png", absoluteURL("localhost:5000", "/uploads/a.png"))
	assert.Equal(t, "https://todo.example.com/uploads/a.png", absoluteURL("https://todo.example.com/", "/uploads/a.png"))
}
