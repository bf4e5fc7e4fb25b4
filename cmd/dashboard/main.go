package main

import (
	"log"

	"github.com/DougLewin/SuperWeirdOneBudFast/config"
	"github.com/DougLewin/SuperWeirdOneBudFast/services"
	"github.com/DougLewin/SuperWeirdOneBudFast/tui"
	"github.com/DougLewin/SuperWeirdOneBudFast/utils"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utils.InitJWT(conf.JWTSecret)

	db, err := config.OpenDB(conf)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	redisClient, err := config.NewRedisClient(conf)
	if err != nil {
		log.Fatalf("failed to initialize redis: %v", err)
	}

	authService := services.NewAuthService(db, redisClient)
	recordStore := services.NewRecordStore(db)

	if err := tui.Run(authService, recordStore); err != nil {
		log.Fatalf("dashboard exited with error: %v", err)
	}
}
