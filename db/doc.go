// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

A single table, storage_slot(key, value, updated_at), holds named JSON
slots. The inspection history occupies one slot as an array of snapshots;
see the store package for the slot contract.

The DDL is deliberately driver-neutral: it runs unchanged under the
modernc sqlite driver (default) and lib/pq.
*/
package db
