// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// PostgresDSN returns the connection string handed to lib/pq.
//
// Accepted DSN forms:
//   - URL: postgres://host:5432/metrics?sslmode=disable
//   - Bare connect string: host:5432/metrics (prefixed with postgres://)
//   - Key/value: host=db port=5432 dbname=metrics
//
// User and Password are merged in when the DSN does not carry credentials itself.
func (d DatabaseConfig) PostgresDSN() (string, error) {
	raw := strings.TrimSpace(d.DSN)
	if raw == "" {
		return "", fmt.Errorf("connection string is empty")
	}

	if !strings.Contains(raw, "://") && strings.Contains(raw, "=") {
		return mergeKeyValueCredentials(raw, d.User, d.Password), nil
	}

	if !strings.Contains(raw, "://") {
		raw = "postgres://" + raw
	}

	parsedURL, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL: %w", err)
	}

	if parsedURL.Scheme != "postgres" && parsedURL.Scheme != "postgresql" {
		return "", fmt.Errorf("scheme must be postgres or postgresql, got: %s", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return "", fmt.Errorf("host is required (e.g., localhost:5432/metrics)")
	}

	if parsedURL.User == nil && d.User != "" {
		if d.Password != "" {
			parsedURL.User = url.UserPassword(d.User, d.Password)
		} else {
			parsedURL.User = url.User(d.User)
		}
	}

	return parsedURL.String(), nil
}

// mergeKeyValueCredentials appends user and password to a key/value DSN
// unless the DSN already sets them.
func mergeKeyValueCredentials(dsn, user, password string) string {
	fields := strings.Fields(dsn)
	has := func(key string) bool {
		for _, f := range fields {
			if strings.HasPrefix(f, key+"=") {
				return true
			}
		}
		return false
	}

	if user != "" && !has("user") {
		fields = append(fields, "user="+quoteKeyValue(user))
	}
	if password != "" && !has("password") {
		fields = append(fields, "password="+quoteKeyValue(password))
	}
	return strings.Join(fields, " ")
}

// quoteKeyValue quotes a value per libpq key/value rules when it holds spaces or quotes
func quoteKeyValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
