package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	identityapp "github.com/ivoirestore/backend/internal/application/identity"
	"github.com/ivoirestore/backend/internal/infrastructure/auth"
	"github.com/ivoirestore/backend/internal/infrastructure/config"
	"github.com/ivoirestore/backend/internal/infrastructure/logger"
	"github.com/ivoirestore/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

const commandTimeout = 2 * time.Minute

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync(log) }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch args[0] {
	case "clean":
		err = clean(ctx, db, log)
	case "update-admin":
		err = updateAdmin(ctx, db, log, args[1:])
	default:
		log.Error("Unknown command", zap.String("command", args[0]))
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal("Maintenance command failed", zap.String("command", args[0]), zap.Error(err))
	}
}

func clean(ctx context.Context, db *persistence.Database, log *zap.Logger) error {
	report, err := persistence.NewMaintenanceRepository(db.DB).CleanMarketplace(ctx)
	if err != nil {
		return err
	}
	log.Info("Marketplace cleaned, admin accounts kept",
		zap.Int64("orders", report.Orders),
		zap.Int64("reviews", report.Reviews),
		zap.Int64("products", report.Products),
		zap.Int64("boutiques", report.Boutiques),
	)
	return nil
}

func updateAdmin(ctx context.Context, db *persistence.Database, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("update-admin", flag.ContinueOnError)
	email := fs.String("email", "", "New email of the first admin")
	password := fs.String("password", "", "New password of the first admin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("both -email and -password are required")
	}

	admins := identityapp.NewAdminService(
		persistence.NewGormAdminRepository(db.DB),
		auth.NewPasswordHasher(auth.PasswordCost),
		log,
	)
	info, err := admins.ResetFirstAdmin(ctx, *email, *password)
	if err != nil {
		return err
	}
	log.Info("Admin updated", zap.String("admin_id", info.ID.String()), zap.String("email", info.Email))
	return nil
}

func printUsage() {
	fmt.Println(`IvoireStore maintenance

Usage:
  maintenance [flags] <command> [arguments]

Commands:
  clean                                     Delete all boutiques, products, orders and reviews
  update-admin -email <e> -password <p>     Reset the first admin's credentials

Flags:
  -log-level string     Log level (default: info)

Database settings come from config.toml, .env or IVOIRE_DATABASE_* variables.`)
}
