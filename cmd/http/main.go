package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"referral-service/internal/app/config"
	"referral-service/internal/app/delivery/http/controllers"
	"referral-service/internal/app/delivery/http/middlewares"
	"referral-service/internal/app/delivery/http/routers"
	"referral-service/internal/app/drivers/database"
	"referral-service/internal/app/drivers/logger"
	"referral-service/internal/app/drivers/messaging"
	minioDriver "referral-service/internal/app/drivers/storage"
	"referral-service/internal/app/services/core/appointments"
	"referral-service/internal/app/services/core/approvals"
	"referral-service/internal/app/services/core/auth"
	"referral-service/internal/app/services/core/hospitals"
	"referral-service/internal/app/services/core/referrals"
	"referral-service/internal/app/services/core/registration"
	"referral-service/internal/app/services/core/users"
	"referral-service/internal/app/services/shared/notifications"
	redisRepo "referral-service/internal/app/services/shared/redis"
	"referral-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := minioDriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Redis
	redisRepository := redisRepo.NewRedisRepository(redisClient)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(redisRepository, internalConfig, zapLogger)

	// Notifications
	notificationService, err := notifications.NewNotificationService(rabbitMQ, internalConfig.App.NotificationQueue, zapLogger)
	if err != nil {
		log.Fatalf("Failed to initialize notification service: %v", err)
	}
	stopNotifications := notificationService.Start(context.Background())

	// Storage
	minioStorage := storage.NewMinioStorage(minioClient)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	hospitalMongoRepository := hospitals.NewHospitalMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	referralMongoRepository := referrals.NewReferralMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(mongoDB, driverConfig.MongoDB.DbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, internalConfig, zapLogger)
	authController := controllers.NewAuthController(zapLogger, authUsecase)

	// Registration
	registrationUsecase := registration.NewRegistrationUsecase(
		userMongoRepository,
		hospitalMongoRepository,
		redisRepository,
		notificationService,
		internalConfig,
		zapLogger,
	)
	registrationController := controllers.NewRegistrationController(zapLogger, registrationUsecase)

	// Users
	userUsecase := users.NewUserUsecase(userMongoRepository, minioStorage, internalConfig)
	userController := controllers.NewUserController(zapLogger, userUsecase)

	// Hospitals
	hospitalUsecase := hospitals.NewHospitalUsecase(hospitalMongoRepository, internalConfig, zapLogger)
	hospitalController := controllers.NewHospitalController(zapLogger, hospitalUsecase)

	// Approvals
	approvalUsecase := approvals.NewApprovalUsecase(userMongoRepository, hospitalMongoRepository, notificationService, zapLogger)
	approvalController := controllers.NewApprovalController(zapLogger, approvalUsecase)

	// Referrals
	referralUsecase := referrals.NewReferralUsecase(referralMongoRepository, userMongoRepository, hospitalMongoRepository, zapLogger)
	referralController := controllers.NewReferralController(zapLogger, referralUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, userMongoRepository, notificationService, zapLogger)
	appointmentController := controllers.NewAppointmentController(zapLogger, appointmentUsecase)

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		appMiddlewares,
		authController,
		registrationController,
		userController,
		hospitalController,
		approvalController,
		referralController,
		appointmentController,
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	stopNotifications()

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to close connections gracefully: %v", err)
	}

	log.Println("Server exiting")
}
