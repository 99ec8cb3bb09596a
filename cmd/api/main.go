package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"theracare/internal/config"
	"theracare/internal/database"
	"theracare/internal/middleware"
	"theracare/internal/modules/auth"
	"theracare/internal/modules/booking"
	"theracare/internal/modules/feedback"
	"theracare/internal/modules/messaging"
	"theracare/internal/modules/mpesa"
	"theracare/internal/modules/session"
	"theracare/internal/modules/timeslot"
	jwtsvc "theracare/internal/pkg/jwt"
	"theracare/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	slotRepo := repository.NewTimeSlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	mpesaRepo := repository.NewMpesaRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j, log.Printf)
	authHandler := auth.NewHandler(authService)

	timeslotService := timeslot.NewService(slotRepo, userRepo, bookingRepo)
	timeslotHandler := timeslot.NewHandler(timeslotService)

	bookingService := booking.NewService(bookingRepo, userRepo, slotRepo, log.Printf)
	bookingHandler := booking.NewHandler(bookingService)

	sessionService := session.NewService(sessionRepo, bookingRepo)
	sessionHandler := session.NewHandler(sessionService)

	feedbackService := feedback.NewService(feedbackRepo, sessionRepo, userRepo)
	feedbackHandler := feedback.NewHandler(feedbackService)

	hub := messaging.NewHub()
	defer hub.Close()

	messagingService := messaging.NewService(messageRepo, userRepo, hub, log.Printf)
	messagingHandler := messaging.NewHandler(messagingService)
	wsHandler := messaging.NewWSHandler(hub, j, messagingService)

	mpesaService := mpesa.NewService(mpesaRepo, bookingRepo, mpesa.NewClient(cfg), log.Printf)
	mpesaHandler := mpesa.NewHandler(mpesaService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		mpesaHandler.RegisterCallbackRoute(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			timeslotHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			sessionHandler.RegisterRoutes(protected)
			feedbackHandler.RegisterRoutes(protected)
			messagingHandler.RegisterRoutes(protected)
			mpesaHandler.RegisterRoutes(protected)
		}
	}

	// token rides in the query string on the websocket handshake
	r.GET("/ws", wsHandler.HandleWebSocket)

	log.Printf("listening on %s (env=%s)", cfg.HTTPAddr, cfg.AppEnv)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
