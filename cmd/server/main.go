package main

import (
	"log"
	"time"

	httpadapter "moodpet/internal/adapter/http"
	gormrepo "moodpet/internal/adapter/repo/gorm"
	"moodpet/internal/app/achievements"
	"moodpet/internal/app/actions"
	"moodpet/internal/app/moods"
	"moodpet/internal/app/pets"
	"moodpet/internal/app/shop"
	"moodpet/internal/config"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	db, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	if err := gormrepo.Migrate(db); err != nil {
		logger.Fatal("migrate schema", zap.Error(err))
	}

	petRepo := gormrepo.NewPetRepo(db)
	h := httpadapter.Handler{
		PetsUC:         pets.UseCase{Pets: petRepo, NewID: uuid.NewString, Now: time.Now},
		ActionsUC:      actions.UseCase{Pets: petRepo, Now: time.Now},
		MoodsUC:        moods.UseCase{Moods: gormrepo.NewMoodEntryRepo(db), Pets: petRepo, NewID: uuid.NewString, Now: time.Now},
		ShopUC:         shop.UseCase{Items: gormrepo.NewShopItemRepo(db), NewID: uuid.NewString},
		AchievementsUC: achievements.UseCase{Achievements: gormrepo.NewAchievementRepo(db), NewID: uuid.NewString},
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	s.Use(httpadapter.CORSMiddleware(cfg.CORSOrigins))
	s.Use(httpadapter.AccessLogMiddleware(logger))
	h.RegisterRoutes(s)

	logger.Info("moodpet server listening", zap.String("addr", cfg.Addr))
	s.Spin()
}

// openDatabase prefers Postgres when a DSN is configured and falls back to a
// local SQLite file otherwise.
func openDatabase(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseDSN != "" {
		return gormrepo.OpenPostgres(cfg.DatabaseDSN)
	}
	return gormrepo.OpenSQLite(cfg.SQLitePath)
}
