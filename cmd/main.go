package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/evike/scooter-service/internal/auth"
	"github.com/evike/scooter-service/internal/db"
	"github.com/evike/scooter-service/internal/handlers"
	"github.com/evike/scooter-service/internal/lifecycle"
	"github.com/evike/scooter-service/internal/middleware"
	"github.com/evike/scooter-service/internal/models"
	"github.com/evike/scooter-service/internal/notify"
	"github.com/evike/scooter-service/internal/settings"
	"go.mongodb.org/mongo-driver/mongo"
)

// connectRetryDelay is the fixed backoff between initial connection
// attempts. Only the initial load path retries; mutating calls never do.
const connectRetryDelay = 3 * time.Second

const connectAttempts = 5

func connectWithRetry() (*mongo.Client, error) {
	var client *mongo.Client
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err = db.ConnectMongo()
		if err == nil {
			return client, nil
		}
		log.WithError(err).WithField("attempt", attempt).Warn("MongoDB connection failed, retrying")
		time.Sleep(connectRetryDelay)
	}
	return nil, err
}

func newRouter(recordsHandler *handlers.RecordsHandler, settingsHandler *handlers.SettingsHandler, authHandler *handlers.AuthHandler, authMW *middleware.AuthMiddleware) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/profile", authHandler.GetProfile)
	mux.HandleFunc("/api/records", func(w http.ResponseWriter, r *http.Request) {
		action := models.ActionViewRecords
		if r.Method == http.MethodPost {
			action = models.ActionCreateRecord
		}
		authMW.Permit(action, recordsHandler.Records)(w, r)
	})
	mux.HandleFunc("/api/records/board", authMW.Permit(models.ActionViewRecords, recordsHandler.Board))
	mux.HandleFunc("/api/records/completed", authMW.Permit(models.ActionViewRecords, recordsHandler.Completed))
	mux.HandleFunc("/api/records/", authMW.Permit(models.ActionUpdateStatus, recordsHandler.UpdateStatus))
	mux.HandleFunc("/api/fleet-count", func(w http.ResponseWriter, r *http.Request) {
		action := models.ActionViewStats
		if r.Method == http.MethodPut {
			action = models.ActionManageFleet
		}
		authMW.Permit(action, recordsHandler.FleetCount)(w, r)
	})
	mux.HandleFunc("/api/stats", authMW.Permit(models.ActionViewStats, recordsHandler.Stats))
	mux.HandleFunc("/api/export", authMW.Permit(models.ActionExportRecords, recordsHandler.PeriodicExport))
	mux.HandleFunc("/api/export/completed", authMW.Permit(models.ActionExportRecords, recordsHandler.CompletedExport))
	mux.HandleFunc("/api/settings", settingsHandler.Settings)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	client, err := connectWithRetry()
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	log.Info("connected to MongoDB")

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "scooter_service"
	}
	database := client.Database(dbName)

	recordCollection := &db.MongoRecordCollection{Collection: database.Collection("service_records")}
	fleetCollection := &db.MongoFleetCollection{Collection: database.Collection("fleet_count")}
	userCollection := &db.MongoUserCollection{Collection: database.Collection("users")}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("failed to create auth service")
	}

	publisher, err := notify.NewPublisher(os.Getenv("MQTT_BROKER"), "scooter-service")
	if err != nil {
		// The shop can run without the ops channel; status updates still apply.
		log.WithError(err).Warn("MQTT broker unreachable, status events disabled")
		publisher = nil
	}
	defer publisher.Close()

	engine := &lifecycle.Engine{}
	recordsHandler := handlers.NewRecordsHandler(recordCollection, fleetCollection, engine, publisher)
	settingsHandler := handlers.NewSettingsHandler(settings.NewStore(), fleetCollection)
	authHandler := handlers.NewAuthHandler(authService, userCollection)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()

	mux := newRouter(recordsHandler, settingsHandler, authHandler, authMiddleware)

	handler := rateLimiter.RateLimit(120, 60)(authMiddleware.Authenticate(mux))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
