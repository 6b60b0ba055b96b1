// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns score persistence through gorm.

# Opening a Store

Open picks a dialector from the configured database type and pings it:

	store, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := store.CreateSchema(ctx); err != nil {
		log.Fatal(err)
	}

Supported types are sqlite (pure Go, the default), postgres (lib/pq) and
mysql. CreateSchema is safe to call on every start.

# Table

	scores(id INTEGER PRIMARY KEY, name TEXT, time REAL)

name is indexed. Rows are only ever inserted.

# Sessions

Every operation runs inside WithSession, which checks out one pooled
connection and hands it back when the callback returns:

	err := store.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Find(&rows).Error
	})

# Pagination

ListByTime orders by time then id. ClampPage forces skip >= 0 and
0 <= limit <= MaxLimit before the query runs.
*/
package db
