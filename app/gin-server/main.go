package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/voxprep/voxprep/config"
	"github.com/voxprep/voxprep/internal/api/handlers"
	"github.com/voxprep/voxprep/internal/api/middleware"
	"github.com/voxprep/voxprep/internal/api/routes"
	"github.com/voxprep/voxprep/internal/cache"
	"github.com/voxprep/voxprep/internal/events"
	"github.com/voxprep/voxprep/internal/logger"
	"github.com/voxprep/voxprep/internal/providers/llm"
	"github.com/voxprep/voxprep/internal/providers/stt"
	"github.com/voxprep/voxprep/internal/providers/tts"
	pgrepo "github.com/voxprep/voxprep/internal/repositories/postgres"
	"github.com/voxprep/voxprep/internal/services"
	"github.com/voxprep/voxprep/internal/storage"
	"github.com/voxprep/voxprep/internal/store"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()
	cfg := config.Load()
	ctx := context.Background()

	// Providers
	llmProvider, err := llm.NewVertexGemini(ctx, cfg.LLMProjectID, cfg.LLMLocation, cfg.LLMModel, cfg.LLMAPIKey)
	if err != nil {
		log.Fatalf("LLM init error: %v", err)
	}
	defer llmProvider.Close()

	sttProvider, err := stt.NewGoogleSpeech(ctx, cfg.STTAPIKey)
	if err != nil {
		log.Fatalf("STT init error: %v", err)
	}
	defer sttProvider.Close()

	uploader, err := storage.NewGCSUploader(ctx, cfg.AudioBucket)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}
	defer uploader.Close()

	ttsProvider, err := tts.NewGoogleTTS(ctx, cfg.TTSAPIKey, uploader)
	if err != nil {
		log.Fatalf("TTS init error: %v", err)
	}
	defer ttsProvider.Close()

	// Optional infrastructure
	var bankCache cache.Cache
	var publisher *events.TurnPublisher
	var wsHandler *handlers.WSHandler
	sessions := store.NewMemoryStore(24 * time.Hour)

	if config.RedisConfigured() {
		if err := config.InitRedis(); err != nil {
			log.Fatalf("Redis init error: %v", err)
		}
		bankCache = cache.NewRedisCache(config.RedisClient)
		publisher = events.NewTurnPublisher(config.RedisClient)
		wsHandler = handlers.NewWSHandler(sessions, config.RedisClient)
		l.Info("redis connected")
	} else {
		l.Warn("redis not configured; bank cache and turn-status stream disabled")
	}

	var analytics services.AnalyticsService
	var analyticsHandler *handlers.AnalyticsHandler
	if config.PostgresConfigured() {
		if err := config.InitPostgres(); err != nil {
			log.Fatalf("PostgreSQL init error: %v", err)
		}
		analytics = services.NewAnalyticsService(pgrepo.NewProgressRepo(config.PostgresDB))
		analyticsHandler = handlers.NewAnalyticsHandler(analytics)
		l.Info("postgres connected")
	} else {
		l.Warn("postgres not configured; analytics disabled")
	}

	// Services
	banks := services.NewQuestionBankService(llmProvider, bankCache, l)
	interview := services.NewInterviewService(services.InterviewDeps{
		Sessions:            sessions,
		Banks:               banks,
		LLM:                 llmProvider,
		STT:                 sttProvider,
		TTS:                 ttsProvider,
		Analytics:           analytics,
		Events:              publisher,
		Logger:              l,
		HistoryWindow:       cfg.SessionTurnHistoryWindow,
		TechnicalMaxMinutes: cfg.TechnicalSessionMaxMinutes,
	})
	presence := services.NewPresenceService(sttProvider, l)

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Interview: handlers.NewInterviewHandler(interview),
		Presence:  handlers.NewPresenceHandler(presence),
		Analytics: analyticsHandler,
		WS:        wsHandler,
	})

	l.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
