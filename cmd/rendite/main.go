package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/renditeapp/rendite/internal/api"
	"github.com/renditeapp/rendite/internal/cashflow"
	"github.com/renditeapp/rendite/internal/config"
	"github.com/renditeapp/rendite/internal/database"
	"github.com/renditeapp/rendite/internal/export"
	"github.com/renditeapp/rendite/internal/rates"
	"github.com/renditeapp/rendite/internal/store"
	"github.com/renditeapp/rendite/internal/worker"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	app := &cli.App{
		Name:  "rendite",
		Usage: "personal finance calculation service",
		Commands: []*cli.Command{
			serveCommand(),
			exportCommand(),
			ratesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// services is the wired application core shared by all commands.
type services struct {
	pool     *pgxpool.Pool
	entities *store.Service
	rates    *rates.Service
	flows    *cashflow.Service
}

func (s *services) close() {
	s.pool.Close()
}

// setup connects to the database, runs migrations, and wires the services.
func setup(ctx context.Context, cfg config.Config) (*services, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	migrationsSub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating migrations sub-fs: %w", err)
	}
	if err := database.RunMigrations(ctx, pool, migrationsSub); err != nil {
		pool.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	entities := store.NewService(store.NewPgRepository(pool))

	ratesClient := rates.NewClient(cfg.RatesURL, cfg.RatesRetryBaseDelay, cfg.RatesRetryMax)
	ratesSvc := rates.NewService(ratesClient, rates.NewPgRateRepository(pool), cfg.BaseCurrency)

	flows := cashflow.NewService(entities, ratesSvc)

	return &services{
		pool:     pool,
		entities: entities,
		rates:    ratesSvc,
		flows:    flows,
	}, nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API with background workers",
		Action: func(c *cli.Context) error {
			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg := config.Load()
			svcs, err := setup(ctx, cfg)
			if err != nil {
				return err
			}
			defer svcs.close()

			rateWorker := worker.NewRateWorker(svcs.rates, cfg.RateWorkerInterval)
			go rateWorker.Run(ctx)

			if cfg.SheetsSpreadsheetID != "" && cfg.SheetsCredentials != "" {
				writer, err := export.NewSheetsWriter(ctx, cfg.SheetsSpreadsheetID, cfg.SheetsCredentials)
				if err != nil {
					return fmt.Errorf("creating sheets writer: %w", err)
				}
				exportSvc := export.NewService(svcs.flows, writer)
				exportWorker := worker.NewExportWorker(exportSvc, cfg.BaseCurrency, cfg.ExportWorkerInterval)
				go exportWorker.Run(ctx)
			}

			if cfg.AdminAPIKey == "" {
				slog.Warn("ADMIN_API_KEY not set, mutating endpoints are unprotected")
			}

			srv := api.NewServer(cfg.HTTPPort, svcs.entities, svcs.flows, svcs.rates, cfg.AdminAPIKey)

			go func() {
				log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Printf("HTTP server error: %v", err)
					stop()
				}
			}()

			<-ctx.Done()
			log.Println("Shutting down...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("HTTP server shutdown error: %v", err)
			}

			log.Println("Shutdown complete")
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the cashflow overview to a spreadsheet",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "currency",
				Usage: "display currency (defaults to BASE_CURRENCY)",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "write a local XLSX file instead of Google Sheets",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			svcs, err := setup(c.Context, cfg)
			if err != nil {
				return err
			}
			defer svcs.close()

			currency := c.String("currency")
			if currency == "" {
				currency = cfg.BaseCurrency
			}

			var writer export.SheetWriter
			if out := c.String("out"); out != "" {
				writer = export.NewXLSXWriter(out)
			} else {
				if cfg.SheetsSpreadsheetID == "" || cfg.SheetsCredentials == "" {
					return errors.New("either --out or SHEETS_SPREADSHEET_ID and SHEETS_CREDENTIALS_JSON are required")
				}
				writer, err = export.NewSheetsWriter(c.Context, cfg.SheetsSpreadsheetID, cfg.SheetsCredentials)
				if err != nil {
					return fmt.Errorf("creating sheets writer: %w", err)
				}
			}

			if err := export.NewService(svcs.flows, writer).Export(c.Context, currency); err != nil {
				return err
			}
			log.Println("Export complete")
			return nil
		},
	}
}

func ratesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rates",
		Usage: "exchange rate maintenance",
		Subcommands: []*cli.Command{
			{
				Name:  "fetch",
				Usage: "fetch the latest exchange rates and store them",
				Action: func(c *cli.Context) error {
					cfg := config.Load()
					svcs, err := setup(c.Context, cfg)
					if err != nil {
						return err
					}
					defer svcs.close()

					if err := svcs.rates.FetchAndStoreRates(c.Context); err != nil {
						return err
					}
					log.Println("Rates refreshed")
					return nil
				},
			},
		},
	}
}
