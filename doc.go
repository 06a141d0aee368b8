// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote API server.

Quickly Vote runs one permissioned voting session. An administrator
whitelists voters, opens and closes proposal registration and voting, and
tallies the result. Each registered voter may submit proposals and cast a
single vote. Ties on vote count go to the proposal whose votes arrived
earliest (smallest momentum), then to the lowest proposal ID.

# Starting the Server

The server reads a .env file, environment variables or CLI flags:

	ADMIN_IDENTITY=admin IDENTITY_SALT=secret DATABASE_URL=vote.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin admin

Print the administrator credentials and exit:

	go run . -show-admin-token

# Configuration

Required settings:

  - ADMIN_IDENTITY (-admin): Administrator identity
  - IDENTITY_SALT (-identity-salt): Secret for identity token HMAC
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string,
    unless DATABASE_TYPE is memory

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default), postgres or memory
  - -env: Environment file (default: .env)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - session: Registry, proposal ledger, workflow and tally
  - store: Session persistence (SQL or in-memory)
  - audit: Event logging and the queryable event trail
  - handlers: HTTP request handlers (voters, proposals, votes, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Identity token generation and validation
  - db: Connections and schema creation
  - report: Terminal rendering of standings
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
