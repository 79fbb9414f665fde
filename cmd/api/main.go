package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/turnero-digital/turnero-api/internal/callboard"
	"github.com/turnero-digital/turnero-api/internal/config"
	dbpkg "github.com/turnero-digital/turnero-api/internal/db"
	"github.com/turnero-digital/turnero-api/internal/logging"
	"github.com/turnero-digital/turnero-api/internal/middleware"
	"github.com/turnero-digital/turnero-api/internal/routes"
	"github.com/turnero-digital/turnero-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	logging.Init()

	db := dbpkg.NewDB(cfg)

	loc := timezone.Location(cfg.Timezone)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}
	board := callboard.NewPublisher(rdb)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(logging.RequestID())
	r.Use(logging.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, board, loc)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
