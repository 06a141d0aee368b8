// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required unless memory)
  - DatabaseType: sqlite (default), postgres or memory
  - AdminIdentity: Identity of the session administrator (required)
  - IdentitySalt: Secret for identity token HMAC (required)
  - EnvFile: Environment file loaded before reading variables (default: .env)
  - ShowAdminToken: Print the administrator token and exit

# CLI Flags

	-p                 Server port
	-d                 Database URL
	-t                 Database type
	-admin             Administrator identity
	-identity-salt     Identity token salt
	-env               Environment file
	-show-admin-token  Print admin token

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_IDENTITY → -admin
	IDENTITY_SALT  → -identity-salt

CLI flags take precedence over environment variables, and variables already
in the environment take precedence over the env file.
*/
package cliparse
