package server

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/NisithAkalanka/SportNest-sub001/internal/auth"
	"github.com/NisithAkalanka/SportNest-sub001/internal/config"
	"github.com/NisithAkalanka/SportNest-sub001/internal/email"
	"github.com/NisithAkalanka/SportNest-sub001/internal/schedule"
	"github.com/NisithAkalanka/SportNest-sub001/internal/user"
	"github.com/NisithAkalanka/SportNest-sub001/internal/venue"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	venue.RegisterValidation()

	userRepo := user.NewRepository(db)
	userHandler := user.NewHandler(user.NewService(userRepo, cfg.JWTSecret))

	scheduleService := schedule.NewService(
		schedule.NewRepository(db),
		userRepo,
		emailService,
		schedule.NewBookingWindowPolicy(cfg.CoachHorizonDays),
		schedule.NewBookingWindowPolicy(cfg.AdminHorizonDays),
	)
	scheduleHandler := schedule.NewHandler(scheduleService)
	venueHandler := venue.NewHandler()

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/venues", venueHandler.ListVenues)

		protected.POST("/sessions", scheduleHandler.CreateSession)
		protected.GET("/sessions", scheduleHandler.ListMySessions)
		protected.GET("/sessions/:sessionID", scheduleHandler.GetSession)
		protected.PUT("/sessions/:sessionID", scheduleHandler.UpdateSession)
		protected.DELETE("/sessions/:sessionID", scheduleHandler.DeleteSession)

		protected.GET("/calendar", scheduleHandler.Calendar)
		protected.GET("/reports/sessions", scheduleHandler.SessionReport)
		protected.GET("/reports/sessions.csv", scheduleHandler.SessionReportCSV)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}

// Router exposes the engine for httptest-driven tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
