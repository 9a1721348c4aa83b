package main

import (
	"log"
	"os"

	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/config"
	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/routes"
	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/services"
	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/utils"
)

func main() {
	config.InitDB()

	if os.Getenv("SEED_S3_BUCKET") != "" {
		utils.InitS3()
	}
	if err := services.NewSeedService(config.DB).SeedFoods(); err != nil {
		log.Fatalf("Food seed failed: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(config.DB)
	r.Run(":" + port)
}
