package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"

	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/api"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/auth"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/repository"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/service"
)

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

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	stripeWebhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")

	bookingRepo := repository.NewBookingRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)
	jobRepo := repository.NewJobRepository(db)
	stripeRepo := repository.NewStripeRepository(db)

	stripeSvc := service.NewStripeService(stripeRepo)
	senderSvc := service.NewSenderService()
	bookingSvc := service.NewBookingService(bookingRepo, catalogRepo, stripeSvc, senderSvc)
	adminSvc := service.NewAdminService(bookingSvc, bookingRepo)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)
	jobSvc := service.NewJobService(jobRepo)

	bookingHandler := api.NewBookingHandler(bookingSvc)
	adminHandler := api.NewAdminHandler(adminSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)
	stripeHandler := api.NewStripeWebhookHandler(stripeWebhookSecret, bookingSvc, senderSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/services", bookingHandler.ListServices).Methods("GET")
	r.HandleFunc("/api/bookings/quote", bookingHandler.Quote).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{code}", bookingHandler.GetBooking).Methods("GET")
	r.HandleFunc("/api/bookings/{code}", bookingHandler.CancelBooking).Methods("DELETE")

	// Stripe
	r.HandleFunc("/api/stripe/webhook", stripeHandler.HandleWebhook).Methods("POST")
	r.HandleFunc("/api/stripe/session", stripeHandler.GetBookingBySessionIDHandler).Methods("GET")

	// Admin endpoints (protected)
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/register", adminAuthHandler.RegisterAdmin).Methods("POST")
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings", adminHandler.AdminCreateBooking).Methods("POST")
	admin.HandleFunc("/bookings/{code}/status", adminHandler.AdminUpdateBookingStatus).Methods("PUT")
	admin.HandleFunc("/bookings/{id}", adminHandler.AdminDeleteBooking).Methods("DELETE")

	c := cron.New()
	c.AddFunc("@hourly", func() {
		if err := jobSvc.CompletePastBookings(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
		if n, err := jobSvc.DeleteStalePendingBookings(30 * time.Minute); err != nil {
			log.Printf("Cron Job error deleting stale pending bookings: %v", err)
		} else if n > 0 {
			log.Printf("Cron Job: deleted %d stale pending bookings", n)
		}
	})
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{os.Getenv("FRONTEND_BASE_URL"), "http://localhost:3000"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler(r)))
}
