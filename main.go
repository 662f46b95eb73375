package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-digital/cms-go/config"
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/middleware"
	"github.com/prefeitura-digital/cms-go/minio"
	"github.com/prefeitura-digital/cms-go/routes"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()
	if err := db.SeedSettings(config.SettingsSeedPath); err != nil {
		log.Printf("Settings seed failed: %v", err)
	}
	minio.InitMinio()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r)

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
