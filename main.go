package main

import (
	"fmt"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		logrus.Fatalf("connect database: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		logrus.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(db); err != nil {
		logrus.Fatalf("seed admin failed: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORSMiddleware())

	// serve uploaded images (menus, categories, restaurants, users)
	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.Infof("server running at %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
