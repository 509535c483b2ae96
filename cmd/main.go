package main

import (
	"context"
	"log"
	"os"

	"nutritrack/config"
	"nutritrack/controllers"
	"nutritrack/routes"
	"nutritrack/services"
	"nutritrack/utils"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

func main() {
	config.LoadEnv()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	groq, err := services.NewGroqService()
	if err != nil {
		log.Fatalf("groq: %v", err)
	}

	// AWS-backed pieces (image upload, recognition, push) degrade to off when
	// the environment has no usable AWS config.
	var (
		vision   services.FoodRecognizer
		uploader services.ImageUploader
		push     *services.PushService
	)
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Printf("aws config unavailable, image and push features disabled: %v", err)
	} else {
		vision = services.NewRekognitionService(awsCfg)
		uploader = utils.NewS3Uploader(awsCfg)
		push = services.NewPushService(db, awsCfg)
	}

	hub := services.NewRealtimeHub()
	alerts := services.NewAlertService(db, hub, push)
	foodLogs := services.NewFoodLogService(db, groq, vision, uploader, alerts)

	h := routes.Handlers{
		Profile:   controllers.NewProfileController(services.NewProfileService(db, groq)),
		Food:      controllers.NewFoodController(foodLogs, services.NewReportService(db)),
		Water:     controllers.NewWaterController(services.NewWaterService(db)),
		Report:    controllers.NewReportController(foodLogs),
		Token:     controllers.NewTokenController(services.NewTokenService(db, push)),
		Assistant: controllers.NewAssistantController(groq),
		Realtime:  controllers.NewRealtimeController(hub),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	r := routes.SetupRouter(h)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
