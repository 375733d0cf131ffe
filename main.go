package main

import (
	"Savora-Admin/cmd/config"
	migration "Savora-Admin/cmd/database/migrate"
	"Savora-Admin/cmd/database/seed"
	"Savora-Admin/internal/utils"
	"log"
	"os"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seed.Seed(db); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
		return
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "5000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
