package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"task-submission-bot/config"
	_ "task-submission-bot/docs" // Swagger docs
	announcementDiscord "task-submission-bot/internal/announcement/delivery/discord"
	announcementUC "task-submission-bot/internal/announcement/usecase"
	"task-submission-bot/internal/conversation"
	"task-submission-bot/internal/gateway"
	"task-submission-bot/internal/httpserver"
	ledgerDiscord "task-submission-bot/internal/ledger/delivery/discord"
	ledgerRepo "task-submission-bot/internal/ledger/repository"
	"task-submission-bot/internal/ledger/repository/gsheets"
	"task-submission-bot/internal/ledger/repository/sheetdb"
	ledgerUC "task-submission-bot/internal/ledger/usecase"
	"task-submission-bot/internal/router"
	submissionDiscord "task-submission-bot/internal/submission/delivery/discord"
	submissionUC "task-submission-bot/internal/submission/usecase"
	taskfileDiscord "task-submission-bot/internal/taskfile/delivery/discord"
	taskfileUC "task-submission-bot/internal/taskfile/usecase"
	"task-submission-bot/pkg/discord"
	"task-submission-bot/pkg/gdrive"
	"task-submission-bot/pkg/log"
)

// @title       Task Submission Bot API
// @description Health probes and command catalogue for the task submission bot.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Submission Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Bot stopped with error: ", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Bot stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Platform clients
	discordClient, err := discord.NewClient(cfg.Discord.Token)
	if err != nil {
		return err
	}

	ts, err := gdrive.TokenSource(ctx, gdrive.AuthOptions{
		CredentialsPath: cfg.GoogleDrive.CredentialsPath,
		TokenPath:       cfg.GoogleDrive.TokenPath,
		RefreshToken:    cfg.GoogleDrive.RefreshToken,
	})
	if err != nil {
		logger.Warn(ctx, "→ Run `go run scripts/drive-auth/main.go` to generate token.json")
		return fmt.Errorf("google drive auth: %w", err)
	}
	driveClient, err := gdrive.NewClientFromTokenSource(ctx, ts)
	if err != nil {
		return err
	}

	ledgerStore, err := newLedgerRepository(ctx, cfg.Ledger, ts, logger)
	if err != nil {
		return err
	}
	logger.Infof(ctx, "Ledger backend: %s", cfg.Ledger.Backend)

	// 4. Domains
	broker := conversation.New()

	submissionUseCase := submissionUC.New(logger, driveClient, discordClient, broker, submissionUC.Config{
		MembersFolder:         cfg.GoogleDrive.MembersFolderName,
		NotificationChannelID: cfg.Discord.NotificationChannelID,
		SelectionTimeout:      cfg.Bot.SelectionTimeout,
		TempDir:               cfg.Bot.TempDir,
		Location:              cfg.Bot.Location(),
	})
	taskfileUseCase := taskfileUC.New(logger, driveClient, discordClient, taskfileUC.Config{
		TaskFolder: cfg.GoogleDrive.TaskFolderName,
		TempDir:    cfg.Bot.TempDir,
	})
	ledgerUseCase := ledgerUC.New(logger, ledgerStore, cfg.Ledger.SnapshotTTL)
	announcementUseCase := announcementUC.New(logger, discordClient)

	// 5. Command table. Order matters only where patterns share a prefix;
	// word matching keeps !task and !addtask apart.
	registry := router.New(logger, discordClient, router.Options{
		AdminIDs:        cfg.Discord.AdminIDs,
		RateLimitPerMin: cfg.Bot.RateLimitPerMin,
	})
	registry.Register(submissionDiscord.New(logger, submissionUseCase, discordClient, cfg.GoogleDrive.MembersFolderName).Commands()...)
	registry.Register(taskfileDiscord.New(logger, taskfileUseCase, discordClient, taskfileDiscord.Config{
		TaskFolder:       cfg.GoogleDrive.TaskFolderName,
		TaskChannelID:    cfg.Discord.TaskChannelID,
		AddTaskAdminOnly: cfg.Bot.AddTaskAdminOnly,
	}).Commands()...)
	registry.Register(ledgerDiscord.New(logger, ledgerUseCase, discordClient).Commands()...)
	registry.Register(announcementDiscord.New(logger, announcementUseCase, discordClient, cfg.Bot.LegacyAllMessage).Commands()...)
	if len(cfg.Discord.AdminIDs) == 0 {
		logger.Warn(ctx, "No admin IDs configured: admin-only commands are disabled")
	}

	// 6. Gateway
	gw := gateway.New(logger, broker, registry, cfg.Bot.CommandTimeout)
	removeHandler := discordClient.OnMessageCreate(gw.OnMessageCreate)
	defer removeHandler()

	var connected atomic.Bool
	if err := discordClient.Open(); err != nil {
		return err
	}
	connected.Store(true)
	logger.Info(ctx, "✅ Discord gateway connected")

	defer func() {
		connected.Store(false)
		if err := discordClient.Close(); err != nil {
			logger.Warnf(ctx, "Discord close: %v", err)
		}
		gw.Wait()
	}()

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Dispatcher:  registry,
		Ready:       connected.Load,
	})
	if err != nil {
		return err
	}

	// 8. Run until signalled
	return httpServer.Run(ctx)
}

func newLedgerRepository(ctx context.Context, cfg config.LedgerConfig, ts oauth2.TokenSource, logger log.Logger) (ledgerRepo.LedgerRepository, error) {
	switch cfg.Backend {
	case config.LedgerBackendSheets:
		svc, err := sheets.NewService(ctx, option.WithTokenSource(ts))
		if err != nil {
			return nil, fmt.Errorf("failed to create sheets service: %w", err)
		}
		return gsheets.New(svc, gsheets.Options{
			SpreadsheetID: cfg.SpreadsheetID,
			SheetName:     cfg.SheetName,
			SheetID:       cfg.SheetID,
		}, logger), nil
	default:
		return sheetdb.New(sheetdb.NewClient(cfg.SheetDBURL), logger), nil
	}
}
