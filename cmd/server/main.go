package main

import (
	"context"
	"os"

	httpadapter "cv-exporter/internal/adapter/http"
	repo "cv-exporter/internal/adapter/repository"
	"cv-exporter/internal/infrastructure/migration"
	"cv-exporter/internal/usecase"
	infra "cv-exporter/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// zapNotifier surfaces pipeline degradation events through the
// structured log; an admin UI could swap in a toast-backed sink.
type zapNotifier struct {
	log *zap.Logger
}

func (n *zapNotifier) Notify(event, detail string) {
	n.log.Warn("pipeline event", zap.String("event", event), zap.String("detail", detail))
}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	pool, err := infra.NewPool(ctx)
	if err != nil {
		log.Warn("cv database not available, serving fallback documents", zap.Error(err))
	} else {
		if err := migration.RunMigrations(ctx, pool, log); err != nil {
			log.Warn("migrations failed", zap.Error(err))
		}
	}

	renderer := infra.NewChromedpRenderer()
	photos := infra.NewRestyPhotoInliner(log)

	cvRepo := repo.NewCVRepo(pool)
	versionsRepo := repo.NewVersionsRepo(pool)

	exporter, err := usecase.NewExporter(cvRepo, renderer, photos, &zapNotifier{log: log}, log)
	if err != nil {
		log.Fatal("exporter init failed", zap.Error(err))
	}

	app := fiber.New()
	h := httpadapter.NewHandler(exporter, versionsRepo, log)
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Info("listening", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
