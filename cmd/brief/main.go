package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"marketbrief/db"
	"marketbrief/internal/app"
	"marketbrief/internal/config"
	"marketbrief/internal/repository"
	"marketbrief/pkg/mail"
	"marketbrief/pkg/news"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	_ "time/tzdata"
)

func main() {

	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "brief",
		Short:         "Build the daily markets brief from news feeds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Int("hours-back", 0, "Only use items published within this many hours (overrides HOURS_BACK)")
	rootCmd.PersistentFlags().Bool("include-weekends", false, "Keep items published on Saturday or Sunday (overrides INCLUDE_WEEKENDS)")

	rootCmd.AddCommand(sendCmd())
	rootCmd.AddCommand(previewCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("brief failed", "error", err)
		os.Exit(1)
	}
}

func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send",
		Short: "Build the brief and email it",
		RunE:  runSend,
	}
}

func previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Build the brief and print the plain text body",
		RunE:  runPreview,
	}
}

// loadConfig reads the environment, applies flag overrides and installs the
// JSON logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("hours-back") {
		n, err := flags.GetInt("hours-back")
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("--hours-back must be positive, got %d", n)
		}
		cfg.HoursBack = n
	}
	if flags.Changed("include-weekends") {
		v, err := flags.GetBool("include-weekends")
		if err != nil {
			return nil, err
		}
		cfg.IncludeWeekends = v
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	return cfg, nil
}

// articleStore connects to Postgres when DATABASE_URL is set. The database
// is an extra source, so a failed connection only drops it.
func articleStore(cfg *config.Config) news.ArticleStore {
	if cfg.DatabaseURL == "" {
		return nil
	}
	if err := db.Connect(cfg.DatabaseURL); err != nil {
		slog.Warn("error connecting to DB, skipping stored articles", "error", err)
		return nil
	}
	return repository.NewArticleRepository(db.DB)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store := articleStore(cfg)
	defer db.Close()

	b, err := app.NewService(cfg, store).Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("build brief: %w", err)
	}

	msg, err := mail.Render(b, cfg.FromName)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), msg.Text)
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	sender := mail.NewSender(mail.SenderConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.GmailUser,
		Password: cfg.GmailAppPassword,
		To:       cfg.ToEmail,
		FromName: cfg.FromName,
	})

	store := articleStore(cfg)
	defer db.Close()

	b, err := app.NewService(cfg, store).Build(ctx)
	if err != nil {
		return fmt.Errorf("build brief: %w", err)
	}

	msg, err := mail.Render(b, cfg.FromName)
	if err != nil {
		return err
	}

	guard, err := sendGuard(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.CloseRedis()

	if guard != nil {
		err := guard.Acquire(ctx, b.Date, b.RunID)
		if errors.Is(err, repository.ErrAlreadySent) {
			slog.Info("brief already sent today, skipping", "run_id", b.RunID, "date", b.Date.Format("2006-01-02"))
			return nil
		}
		if err != nil {
			return fmt.Errorf("acquire send guard: %w", err)
		}
	}

	if err := sender.Send(ctx, msg); err != nil {
		if guard != nil {
			if relErr := guard.Release(ctx, b.Date); relErr != nil {
				slog.Error("error releasing send guard", "run_id", b.RunID, "error", relErr)
			}
		}
		return fmt.Errorf("send brief: %w", err)
	}

	slog.Info("brief sent",
		"run_id", b.RunID,
		"to", cfg.ToEmail,
		"items", b.ItemCount,
		"references", len(b.References),
		"origin", b.Origin,
	)
	return nil
}

// sendGuard returns nil when REDIS_URL is not set.
func sendGuard(ctx context.Context, cfg *config.Config) (*repository.SendGuard, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	if err := db.ConnectRedis(ctx, cfg.RedisURL); err != nil {
		return nil, fmt.Errorf("error connecting to Redis: %w", err)
	}
	return repository.NewSendGuard(db.Redis), nil
}
