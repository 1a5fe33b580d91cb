package main

import (
	"log"
	"os"
	"time"

	"catden/pkg/cache"
	"catden/pkg/database"
	"catden/pkg/handlers"
	"catden/pkg/hub"
	"catden/pkg/middleware"
	"catden/pkg/repository"
	"catden/pkg/server"
	"catden/pkg/services"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func main() {
	db := database.Connect()
	defer db.Close()

	// Serverless PG: keep pool small, connections short-lived
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetConnMaxIdleTime(30 * time.Second)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("[DB] migration failed: %v", err)
	}

	log.Println("[CATDEN] Connecting to Redis...")
	redis := cache.New()
	defer redis.Close()
	log.Println("[CATDEN] Redis connected")

	wsHub := hub.New()

	authRepo := repository.NewAuthRepository(db)
	catRepo := repository.NewCatRepository(db)
	adoptionRepo := repository.NewAdoptionRepository(db)

	go cleanExpiredSessions(authRepo)

	authService := services.NewAuthService(authRepo)
	catService := services.NewCatService(catRepo, redis, wsHub)
	adoptionService := services.NewAdoptionService(adoptionRepo, redis, wsHub)

	auth := handlers.NewAuth(authService)
	cats := handlers.NewCats(catService)
	adopt := handlers.NewAdopt(adoptionService)

	app := server.NewApp("catden")

	app.Post("/signup", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), auth.Signup)

	app.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), auth.Login)

	app.Post("/logout", auth.Logout)
	app.Get("/check-auth", auth.CheckAuth)

	// ── Cats REST (public read, private write) ──
	app.Get("/cats", cats.List)
	app.Get("/cats/:id", cats.Get)

	gate := middleware.Auth(authService)
	app.Post("/cats", gate, cats.Create)
	app.Put("/cats/:id", gate, cats.Replace)
	app.Patch("/cats/:id", gate, cats.Patch)
	app.Delete("/cats/:id", gate, cats.Delete)

	// ── Adoptions (auth only) ──
	app.Post("/adopt", gate, adopt.Adopt)
	app.Get("/adopted", gate, adopt.ListAdopted)

	app.Get("/hub/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"clients": wsHub.ClientCount()})
	})

	app.Use("/ws", upgradeWS(authService))

	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		username, _ := c.Locals("username").(string)
		wsHub.HandleClientConn(c, username)
	}))

	app.Static("/", "./public")

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	addr := "0.0.0.0:" + port
	log.Printf("[CATDEN] Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("[CATDEN] Failed to start: %v", err)
	}
}

// upgradeWS resolves the session cookie if one is present; anonymous
// viewers still get the event feed.
func upgradeWS(auth services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		username := ""
		if token := c.Cookies(middleware.SessionCookie); token != "" {
			if user, _, err := auth.Authenticate(token); err == nil {
				username = user.Username
			}
		}

		c.Locals("username", username)
		return c.Next()
	}
}

func cleanExpiredSessions(repo repository.AuthRepository) {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		if n, err := repo.DeleteExpiredSessions(); err == nil && n > 0 {
			log.Printf("[CATDEN] swept %d expired sessions", n)
		}
	}
}
