package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rank-matters/backend/internal/config"
	"github.com/rank-matters/backend/internal/database"
	"github.com/rank-matters/backend/internal/fetcher"
	"github.com/rank-matters/backend/internal/handlers"
	"github.com/rank-matters/backend/internal/middleware"
	"github.com/rank-matters/backend/internal/models"
	"github.com/rank-matters/backend/internal/services"
	"github.com/rank-matters/backend/internal/store"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title Rank Matters API
// @version 1.0
// @description Answer-key score and live rank calculator for SSC, Railway, Banking and other competitive exams
// @host localhost:8080
// @BasePath /
func main() {
	if len(os.Args) > 1 {
		handleCommand(os.Args[1])
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if cfg.Server.Env == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		for _, allowedOrigin := range cfg.CORS.Origins {
			if origin == allowedOrigin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Key")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check - simple endpoint that doesn't require DB
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "rank-matters-api"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Rank Matters API", "status": "running"})
	})

	// Metrics
	if cfg.Monitoring.PrometheusEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stores and services
	examStore := store.NewExamStore(db)
	resultStore := store.NewResultStore(db)
	htmlFetcher := fetcher.New(cfg.Fetcher.Timeout, cfg.Fetcher.UserAgent)
	submissionService := services.NewSubmissionService(examStore, resultStore, htmlFetcher)

	// Handlers
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	resultHandler := handlers.NewResultHandler(examStore, resultStore)
	examHandler := handlers.NewExamHandler(examStore)

	// Routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/exams", examHandler.List)
		v1.GET("/results/:slug", resultHandler.GetWithRank)

		calculate := v1.Group("/calculate")
		{
			calculate.POST("/ssc", submissionHandler.Calculate(models.BoardSSC))
			calculate.POST("/rrb", submissionHandler.Calculate(models.BoardRailway))
			calculate.POST("/bank", submissionHandler.Calculate(models.BoardBank))
			calculate.POST("/other", submissionHandler.Calculate(models.BoardOthers))
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminGuard(cfg.Admin.APIKey))
		{
			admin.POST("/exams", examHandler.Create)
			admin.DELETE("/exams/:id", examHandler.Delete)
			admin.DELETE("/results/:id", resultHandler.Delete)
		}
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func handleCommand(cmd string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	switch cmd {
	case "migrate":
		if err := database.Migrate(db); err != nil {
			log.Fatal("Migration failed:", err)
		}
		log.Println("Migration completed successfully")

	case "seed-exams":
		seedExams(db)

	default:
		log.Printf("Unknown command: %s", cmd)
	}
}

func mark(v float64) *float64 {
	return &v
}

func seedExams(db *gorm.DB) {
	var count int64
	db.Model(&models.Exam{}).Count(&count)
	if count > 0 {
		log.Println("Exams already exist")
		return
	}

	exams := []models.Exam{
		{
			Name:           "SSC CPO 2025 Paper-I",
			Board:          models.BoardSSC,
			Description:    "Central Police Organisation recruitment, Tier-I",
			Slug:           "ssc-cpo-2025",
			TotalQuestions: 200,
			PositiveMark:   mark(1),
			NegativeMark:   mark(0.25),
		},
		{
			Name:           "RRB NTPC CBT-1 2025",
			Board:          models.BoardRailway,
			Description:    "Non-Technical Popular Categories, first stage CBT",
			Slug:           "rrb-ntpc-cbt1-2025",
			TotalQuestions: 100,
			PositiveMark:   mark(1),
			NegativeMark:   mark(1.0 / 3.0),
		},
		{
			Name:           "IBPS PO Prelims 2025",
			Board:          models.BoardBank,
			Description:    "Probationary Officer preliminary examination",
			Slug:           "ibps-po-prelims-2025",
			TotalQuestions: 100,
			PositiveMark:   mark(1),
			NegativeMark:   mark(0.25),
		},
	}

	if err := db.Create(&exams).Error; err != nil {
		log.Fatal("Failed to seed exams:", err)
	}

	log.Printf("Successfully seeded %d exams", len(exams))
}
