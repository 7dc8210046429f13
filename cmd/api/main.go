package main

import (
	"log"

	"comunidade/internal/config"
	"comunidade/internal/repository/mysql"
	"comunidade/internal/router"
)

func main() {
	cfg := config.Load(".env")

	db, err := mysql.InitDB(cfg.DSN, cfg.ConnectionLimit)
	if err != nil {
		log.Fatalf("failed to connect to MySQL: %v", err)
	}
	defer mysql.Close(db)

	if err := mysql.Migrate(db); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	r := router.InitRouter(db, cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
