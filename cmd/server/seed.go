package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/redis"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/theme"
)

var catalogPath string

var seedThemesCmd = &cobra.Command{
	Use:   "seed-themes",
	Short: "Load the theme catalog into Redis",
	Long:  `Validate the YAML theme catalog and store every theme, replacing existing entries.`,
	RunE:  runSeedThemes,
}

func init() {
	seedThemesCmd.Flags().StringVar(&catalogPath, "catalog", "", "theme catalog path (overrides RPG_PROGRESSION_THEME_CATALOG)")
}

func runSeedThemes(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.LogLevel)
	ctx := cmd.Context()

	path := cfg.ThemeCatalogPath
	if catalogPath != "" {
		path = catalogPath
	}

	themes, err := theme.LoadCatalog(path)
	if err != nil {
		return err
	}

	client, err := redis.Connect(ctx, cfg.RedisAddr, redisOptions(cfg))
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	repo, err := theme.NewRedis(&theme.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	if _, err := repo.Put(ctx, theme.PutInput{Themes: themes}); err != nil {
		return err
	}

	logger.InfoContext(ctx, "theme catalog seeded",
		slog.String("path", path),
		slog.Int("theme_count", len(themes)))
	return nil
}
