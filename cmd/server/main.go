package main

import (
	"log"
	"strings"

	"order-demo-backend/internal/config"
	"order-demo-backend/internal/database"
	"order-demo-backend/internal/gateway"
	"order-demo-backend/internal/menu"
	"order-demo-backend/internal/reservation"
	"order-demo-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Database unavailable: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Closing database: %v", err)
		}
	}()

	if cfg.SeedDemoMenu {
		if err := database.SeedDemoMenu(db); err != nil {
			log.Fatalf("Seeding demo menu: %v", err)
		}
	}

	st := store.NewGormStore(db)
	schema, err := gateway.NewSchema(gateway.Resolvers{
		Menu:        menu.NewService(st),
		Reservation: reservation.NewService(st),
	})
	if err != nil {
		log.Fatalf("Building GraphQL schema: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	app.Post("/graphql", gateway.Handler(schema))

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
