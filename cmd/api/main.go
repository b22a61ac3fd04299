package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/limbo/franklin/internal/api"
	"github.com/limbo/franklin/internal/repository"
	"github.com/limbo/franklin/internal/service"
	"github.com/limbo/franklin/pkg/cleanup"
	"github.com/limbo/franklin/pkg/config"
	jwtservice "github.com/limbo/franklin/pkg/jwt_service"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

func init() {
	service.InitValidator()
}

func main() {
	var envFile, cfgFile string
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:   "franklin",
		Short: "Franklin's thirteen virtues tracker API",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(envFile, cfgFile)
			if err != nil {
				return err
			}
			config.SetupLogger(cfg.Log.Level)
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env", config.DefaultEnvFile, "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "optional config file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	})
	rootCmd.AddCommand(migrateCmd(&cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	defer cleanup.CleanUp()

	var (
		usersRepo   repository.UsersRepositoryI
		recordsRepo repository.VirtueRecordsRepositoryI
		healthCheck func(ctx context.Context) error
	)
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool := repository.NewPostgresPool(pgConfig(cfg))
		usersRepo = repository.NewUsersRepoWithConn(pool)
		recordsRepo = repository.NewVirtueRecordsRepoWithConn(pool)
		healthCheck = pool.Ping
	case config.DriverSQLite, config.DriverMemory:
		path := cfg.SQLite.Path
		if cfg.Storage.Driver == config.DriverMemory {
			path = repository.MemoryDSN
		}
		db, err := repository.NewSQLiteDatabase(path)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		usersRepo = repository.NewSQLiteUsersRepo(db)
		recordsRepo = repository.NewSQLiteVirtueRecordsRepo(db)
		healthCheck = sqlDB.PingContext
	}
	slog.Info("storage selected", slog.String("driver", cfg.Storage.Driver))

	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo, recordsRepo),
		RecordsService: service.NewRecordsService(usersRepo, recordsRepo),
		StatsService:   service.NewStatsService(recordsRepo, cfg.Stats.StreakMaxDays),
		JwtService:     jwtservice.New(cfg.JWT.Secret, cfg.JWT.TTL),
		HealthCheck:    healthCheck,
		RequestTimeout: cfg.API.RequestTimeout,
	})
	if err := serv.Run(ctx, cfg.API.Address); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func migrateCmd(cfg **config.Config) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply or inspect the postgres schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := sql.Open("pgx", pgConfig(*cfg).ConnString())
			if err != nil {
				return fmt.Errorf("opening postgres: %w", err)
			}
			defer db.Close()
			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}
			switch args[0] {
			case "up":
				err = goose.Up(db, dir)
			case "down":
				err = goose.Down(db, dir)
			default:
				err = goose.Status(db, dir)
			}
			if err != nil {
				log.Println("migration error: " + err.Error())
			}
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "./migrations", "directory with goose migrations")
	return cmd
}

func pgConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.Postgres.Address,
		Username: cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		DB:       cfg.Postgres.DB,
		SSLMode:  cfg.Postgres.SSLMode,
	}
}
