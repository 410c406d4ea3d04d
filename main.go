package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/annothem/annothem-backend/config"
	"github.com/annothem/annothem-backend/controller"
	"github.com/annothem/annothem-backend/infra"
	"github.com/annothem/annothem-backend/repository"
	routes "github.com/annothem/annothem-backend/route"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infra.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	ctrl := controller.NewController(cfg, infra, repo)

	router := routes.SetupRouter(ctrl)
	router.Run(":" + cfg.EnvConfig.Port)
}
