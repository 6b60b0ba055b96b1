// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: DSN or file path (default: ./escape_game.db for sqlite)
  - DatabaseType: sqlite, postgres or mysql (default: sqlite)
  - LogLevel: debug, info, warn or error (default: info)
  - LogFormat: text or json (default: text)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-log-level   Log level
	-log-format  Log format

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LOG_LEVEL     → -log-level
	LOG_FORMAT    → -log-format

CLI flags take precedence over environment variables. main loads a .env
file into the environment before parsing, if one exists.

# Validation

ParseFlags returns an error for an unknown database type, an out of range
port, unknown log settings, or a postgres/mysql type without a URL.
*/
package cliparse
