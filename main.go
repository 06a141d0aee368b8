package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/quickly-vote/audit"
	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/report"
	"github.com/danielhkuo/quickly-vote/router"
	"github.com/danielhkuo/quickly-vote/session"
	"github.com/danielhkuo/quickly-vote/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.ShowAdminToken {
		fmt.Println(report.AdminToken(cfg.AdminIdentity, auth.GenerateIdentityToken(cfg.AdminIdentity, cfg.IdentitySalt)))
		return
	}

	logger := slog.Default()
	opts := session.Options{Logger: logger}
	var events audit.Source

	if cfg.DatabaseType == cliparse.DatabaseMemory {
		recorder := audit.NewRecorder(0)
		opts.Store = store.NewMemory()
		opts.Notifier = audit.Fanout{audit.NewLogger(logger), recorder}
		events = recorder
		slog.Info("Using in-memory store, state is lost on exit")
	} else {
		var dbConn *sql.DB
		dbConn, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)

		table := audit.NewTable(dbConn, cfg.DatabaseType, logger)
		opts.Store = store.NewSQL(dbConn, cfg.DatabaseType, logger)
		opts.Notifier = audit.Fanout{audit.NewLogger(logger), table}
		events = table
	}

	sess, err := session.New(context.Background(), cfg.AdminIdentity, opts)
	if err != nil {
		slog.Error("session setup failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(sess, events, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "session_id", sess.ID())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}

	if out, err := report.Results(sess); err != nil {
		slog.Error("failed to render results", "error", err)
	} else {
		fmt.Print(out)
	}
}
