package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2/middleware/cors"
)

func CORSConfig() cors.Config {
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5000,http://localhost:3000"
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "POST,GET,DELETE,PUT,PATCH,OPTIONS",
		AllowHeaders:     "Content-Type,Cache-Control,Pragma",
		AllowCredentials: true,
	}
}
