package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"pricewatch/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies the SQL files under migrations/ through the atlas CLI. The
// server itself never touches schema; deploys run this first.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("atlasクライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://migrations",
	})
	if err != nil {
		slog.Error("マイグレーションの適用に失敗しました", "error", err)
		os.Exit(1)
	}

	slog.Info("マイグレーション完了", "applied", len(res.Applied), "target", res.Target)
}
