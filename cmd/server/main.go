package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"parkgate/internal/api"
	"parkgate/internal/auth"
	"parkgate/internal/repository"
	"parkgate/internal/service"
)

const defaultRetentionDays = 30

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	reservationRepo := repository.NewReservationRepository(db)
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)

	sender := service.NewSenderService()
	reservationSvc := service.NewReservationService(reservationRepo, userRepo, sender)
	gateSvc := service.NewGateService(reservationRepo)
	authSvc := service.NewAuthService(userRepo)
	jobSvc := service.NewJobService(jobRepo)

	reservationHandler := api.NewReservationHandler(reservationSvc)
	gateHandler := api.NewGateHandler(gateSvc)
	authHandler := api.NewAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/availability", reservationHandler.CheckAvailability).Methods("POST")

	// Owner endpoints (JWT protected)
	owner := r.PathPrefix("/api/reservations").Subrouter()
	owner.Use(auth.UserAuthMiddleware)
	owner.HandleFunc("", reservationHandler.ListReservations).Methods("GET")
	owner.HandleFunc("", reservationHandler.CreateReservation).Methods("POST")
	owner.HandleFunc("/{id}", reservationHandler.GetReservation).Methods("GET")
	owner.HandleFunc("/{id}", reservationHandler.UpdateReservation).Methods("PUT")
	owner.HandleFunc("/{id}", reservationHandler.DeleteReservation).Methods("DELETE")

	// Gate endpoint (device token protected)
	gate := r.PathPrefix("/api/gate").Subrouter()
	gate.Use(auth.GateAuthMiddleware)
	gate.HandleFunc("/check-plate", gateHandler.CheckPlate).Methods("POST")

	retentionDays := defaultRetentionDays
	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			retentionDays = n
		}
	}
	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", func() {
		if err := jobSvc.PurgeExpiredReservations(retentionDays); err != nil {
			log.Printf("Cron Job failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule retention job: %v", err)
	}
	c.Start()
	defer c.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
