package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"chisokulab/backend/internal/config"
	amplifier_app "chisokulab/backend/internal/features/amplifier/application"
	"chisokulab/backend/internal/features/amplifier/infrastructure"
	amplifier_http "chisokulab/backend/internal/features/amplifier/presentation/http"
	newsletter_app "chisokulab/backend/internal/features/newsletter/application"
	newsletter_infra "chisokulab/backend/internal/features/newsletter/infrastructure"
	newsletter_http "chisokulab/backend/internal/features/newsletter/presentation/http"
	tuning_http "chisokulab/backend/internal/features/tuning/presentation/http"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Credentials are resolved lazily per request; the store only decides
	// where to look them up.
	creds := config.NewEnvCredentialStore()

	tuningService := config.NewTuningService("config/tuning.json")
	tuning, err := tuningService.LoadTuning()
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	// Provider chain: Gemini first, Groq second, template always last.
	gemini := infrastructure.NewGeminiClient(creds)
	groq := infrastructure.NewGroqClient(creds)

	vaguenessService := amplifier_app.NewVaguenessService(tuning.Vagueness)
	templateService := amplifier_app.NewTemplateService()
	questionsService := amplifier_app.NewQuestionsService(creds, tuning.Clarification, gemini, groq)
	amplifierService := amplifier_app.NewAmplifierService(creds, templateService, tuning.Amplification, gemini, groq)

	newsletterService := newsletter_app.NewNewsletterService(
		creds,
		newsletter_infra.NewConvertKitClient(creds),
		newsletter_infra.NewResendMailer(creds),
	)

	api := r.Group("/api")
	{
		amplifierHandler := amplifier_http.NewAmplifierHandler(vaguenessService, questionsService, amplifierService)
		api.POST("/clarify", amplifierHandler.ClarifyHandler)
		api.POST("/amplify", amplifierHandler.AmplifyHandler)

		newsletterHandler := newsletter_http.NewNewsletterHandler(newsletterService)
		api.POST("/subscribe", newsletterHandler.SubscribeHandler)
		api.POST("/contact", newsletterHandler.ContactHandler)

		tuningHandler := tuning_http.NewTuningHandler(tuningService)
		api.GET("/config/tuning", tuningHandler.GetTuningHandler)
		api.POST("/config/tuning", tuningHandler.SaveTuningHandler)
	}

	r.Run(":8080") // listen and serve on 0.0.0.0:8080
}
