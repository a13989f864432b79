package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miufukumura/edushift/config"
	"github.com/miufukumura/edushift/internal/api/handler"
	"github.com/miufukumura/edushift/internal/api/router"
	"github.com/miufukumura/edushift/internal/repository"
	"github.com/miufukumura/edushift/internal/service"
	"github.com/miufukumura/edushift/internal/session"
	"github.com/miufukumura/edushift/pkg/database"
	"github.com/miufukumura/edushift/pkg/logger"
	"github.com/miufukumura/edushift/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "設定ファイルのパス")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	zapLogger, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("ロガーの初期化に失敗: %v", err)
	}
	defer zapLogger.Sync()

	// ── データベース ──
	db, err := database.NewDB(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("データベース初期化に失敗", zap.Error(err))
	}
	if err := database.RunMigrations(&cfg.Database, zapLogger); err != nil {
		zapLogger.Fatal("マイグレーションに失敗", zap.Error(err))
	}

	// ── セッションストア ──
	// Redis に接続できない場合はメモリセッションで縮退運転する
	var sessions session.Store
	redisClient, err := redis.NewClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Warn("Redis に接続できないためメモリセッションで起動", zap.Error(err))
		redisClient = nil
		sessions = session.NewMemoryStore(cfg.Session.TTL)
	} else {
		defer redisClient.Close()
		sessions = session.NewRedisStore(redisClient, cfg.Session.TTL)
	}

	// ── 依存の組み立て ──
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, sessions, zapLogger)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 10*time.Second)
	if err := svc.Admin.EnsureDefaultAdmin(bootCtx, &cfg.Admin); err != nil {
		cancelBoot()
		zapLogger.Fatal("初期管理者の準備に失敗", zap.Error(err))
	}
	cancelBoot()

	h := handler.NewHandler(svc, zapLogger)

	gin.SetMode(gin.ReleaseMode)
	engine := router.Setup(cfg, h, sessions, redisClient, zapLogger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("サーバーの起動に失敗", zap.Error(err))
		}
	}()
	zapLogger.Info("サーバー起動", zap.Int("port", cfg.Server.Port))

	// ── グレースフルシャットダウン ──
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("シャットダウン開始")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("シャットダウンに失敗", zap.Error(err))
	}
	zapLogger.Info("シャットダウン完了")
}
