// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment variable fallback.

Settings:

  - PORT (-p): server port (default: 3418)
  - DATABASE_URL (-d): database location (default: file:truckcheck.db)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - STORAGE_KEY (--storage-key): history slot key override

The sqlite default needs no setup at all: the history lives in a local
database file next to the binary, the closest server-side analog to the
browser local storage the tool grew up with.
*/
package cliparse
