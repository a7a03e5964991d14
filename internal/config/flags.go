// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-u uploads directory
//	-c/-config json file path with configs
//	-access-secret access token signing secret
//	-refresh-secret refresh token signing secret
//	-access-ttl access token lifetime (e.g. "15m")
//	-refresh-ttl refresh token lifetime (e.g. "7d")
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-log-level zerolog level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("todo-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var accessTTL, refreshTTL, requestTimeout durationFlag
	var databaseDSN, uploadsDir, jsonConfigPath string
	var accessSecret, refreshSecret, tokenIssuer, logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&uploadsDir, "u", "", "Uploads directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&accessSecret, "access-secret", "", "Access token secret")
	fs.StringVar(&refreshSecret, "refresh-secret", "", "Refresh token secret")
	fs.Var(&accessTTL, "access-ttl", "Access token lifetime (e.g., 15m)")
	fs.Var(&refreshTTL, "refresh-ttl", "Refresh token lifetime (e.g., 7d)")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.Var(&requestTimeout, "request-timeout", "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AccessTokenSecret:  accessSecret,
			RefreshTokenSecret: refreshSecret,
			AccessTokenTTL:     accessTTL.duration(),
			RefreshTokenTTL:    refreshTTL.duration(),
			TokenIssuer:        tokenIssuer,
			LogLevel:           logLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{UploadsDir: uploadsDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout.duration(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
