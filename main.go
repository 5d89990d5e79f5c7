package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	db "HealisPortal/config/db"
	redis "HealisPortal/config/redis"
	"HealisPortal/jobs"
	"HealisPortal/migrations"
	"HealisPortal/routes"
	"HealisPortal/services"
)

var (
	connectDB = db.Connect
	runServer = func(r *gin.Engine, addr string) error { return r.Run(addr) }
	isTest    = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	if err := connectDB(); err != nil {
		log.Fatal("MongoDB connection failed: ", err)
	}
	redis.Connect()

	if !isTest {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.EnsureIndexes(ctx); err != nil {
			log.Println("Error creating indexes: ", err)
		}
		cancel()
	}

	if os.Getenv("MIGRATE") == "true" && !isTest {
		migrations.BackfillLineItemTotals()
		migrations.LowercasePatientEmails()
	}

	if !isTest {
		if err := services.EnsureUploadDir(); err != nil {
			log.Println("Error creating upload dir: ", err)
		}
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Static("/uploads", services.UploadDir)
	routes.Routes(r)

	if !isTest {
		jobs.StartDailyScheduler()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("Server running on port " + port)
	if err := runServer(r, ":"+port); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
