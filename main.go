package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gamebattles-system/handlers"
	"gamebattles-system/middleware"
	"gamebattles-system/repository"
	"gamebattles-system/services"
	"gamebattles-system/utils"
	"gamebattles-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		log.Println("⚠️  ALLOWED_ORIGINS not set, using default: http://localhost:3000")
		allowedOrigins = "http://localhost:3000"
	}
	originList := strings.Split(allowedOrigins, ",")
	for i, origin := range originList {
		originList[i] = strings.TrimSpace(origin)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	userStore := repository.NewPostgresUserStore(db)
	matchStore := repository.NewPostgresMatchStore(db)

	if strings.EqualFold(os.Getenv("SEED_DEMO_DATA"), "true") {
		if err := utils.SeedDemoData(userStore, matchStore); err != nil {
			log.Printf("⚠️  Demo seed failed: %v", err)
		}
	}

	authService := services.NewAuthService(userStore, jwtSecret)
	matchService := services.NewMatchService(userStore, matchStore)
	leaderboardService := services.NewLeaderboardService(userStore)
	chatService := services.NewChatService()

	app := fiber.New(fiber.Config{
		AppName: "gamebattles-system",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(originList, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	session := middleware.SessionMiddleware(authService)
	handlers.SetupAuthRoutes(app, authService, session)
	handlers.SetupMatchRoutes(app, matchService, session)
	handlers.SetupLeaderboardRoutes(app, leaderboardService)
	handlers.SetupChatRoutes(app, chatService, session)
	handlers.SetupGameRoutes(app)

	digestInterval := 15 * time.Minute
	if v := os.Getenv("DIGEST_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			digestInterval = d
		} else {
			log.Printf("⚠️  Invalid DIGEST_INTERVAL %q, using default 15m", v)
		}
	}
	digest := workers.NewDigestWorker(userStore, matchStore, digestInterval)
	sched, err := digest.Start()
	if err != nil {
		log.Fatal("failed to start digest worker:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Printf("✅ Activity digest running (every %s)", digestInterval)
	log.Printf("✅ CORS configured for origins: %s", strings.Join(originList, ","))

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := sched.Shutdown(); err != nil {
		log.Printf("Scheduler shutdown error: %v", err)
	}
	if err := app.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
