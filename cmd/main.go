package main

import (
	"log"

	"github.com/Tanmay0Bhosale/diet-tracker-modern/config"
	"github.com/Tanmay0Bhosale/diet-tracker-modern/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	r := routes.SetupRouter(db, cfg.JWTSecret, cfg.Timezone)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
