package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbeisheim/chessbot-backend/internal/config"
	"github.com/benbeisheim/chessbot-backend/internal/controller"
	"github.com/benbeisheim/chessbot-backend/internal/model"
	"github.com/benbeisheim/chessbot-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	configPath := flag.String("config", os.Getenv(config.EnvPath), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Initialize the application
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	// Then add the CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	gameManager := service.NewGameManager()
	defaults := model.DefaultOptions()
	defaults.ComputerColor = cfg.Search.Computer()
	defaults.Depth = cfg.Search.Depth
	defaults.ComputerDelay = cfg.Search.ComputerDelay
	gameService := service.NewGameService(gameManager, defaults, cfg.Search.MaxDepth)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	controller.SetupRoutes(app, gameController, wsController, websocket.Config{
		ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
		WriteBufferSize: cfg.WebSocket.WriteBufferSize,
		Origins:         cfg.AllowOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go gameManager.RunSweeper(ctx, cfg.Games.SweepInterval, cfg.Games.IdleTimeout)
	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s (search depth %d, max %d)", cfg.Addr, cfg.Search.Depth, cfg.Search.MaxDepth)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
