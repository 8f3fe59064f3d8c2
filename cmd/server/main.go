package main

import (
	adminhandler "spalatorie/internal/admin/handler"
	"spalatorie/internal/admin/session"
	"spalatorie/internal/bookings/events"
	"spalatorie/internal/bookings/handler"
	"spalatorie/internal/bookings/repository"
	"spalatorie/internal/bookings/service"
	"spalatorie/internal/bookings/validator"
	settingshandler "spalatorie/internal/settings/handler"
	settingsrepo "spalatorie/internal/settings/repository"
	"spalatorie/pkg/app"
	"spalatorie/pkg/config"
	"spalatorie/pkg/kafka"
	kafka_config "spalatorie/pkg/kafka/config"

	"github.com/joho/godotenv"
)

const ServiceName = "spalatorie"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting booking service")

	sessions, err := session.NewManager(cfg.SessionKey, cfg.SessionTTL)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize session manager", "error", err)
	}

	publisher := initPublisher(cfg)
	bookingService := initBookingService(cfg, publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.AddCloser(publisher.Close)
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, sessions, cfg.Log),
		adminhandler.NewAdminHandler(sessions, cfg, cfg.Log),
		settingshandler.NewSettingsHandler(settingsrepo.NewMongoSettingsRepository(cfg), sessions, cfg.Log),
	)
	serverApp.Run()
}

func initBookingService(cfg *config.Config, publisher events.Publisher) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	reservationRepo := repository.NewMongoReservationRepository(cfg)
	slotLockRepo := repository.NewSlotLockRepository(cfg)
	bookingService := service.NewBookingService(
		reservationRepo,
		slotLockRepo,
		bookingValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}

func initPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, booking events disabled")
		return events.NewNoopPublisher()
	}

	producer, err := kafka.NewProducer(kafka_config.Load(cfg.KafkaBrokers), events.Topic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize Kafka producer", "error", err)
	}

	cfg.Log.Info("Booking event publisher initialized", "brokers", cfg.KafkaBrokers, "topic", events.Topic)
	return events.NewKafkaPublisher(producer, cfg.Log)
}
