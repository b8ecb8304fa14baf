package main

import (
	"context"
	"log"

	api "reengage-backend/cmd/api"
	activityDelivery "reengage-backend/internal/activity/delivery"
	activitydomain "reengage-backend/internal/activity/domain"
	activityRepo "reengage-backend/internal/activity/repository"
	"reengage-backend/internal/completion/cache"
	completiondomain "reengage-backend/internal/completion/domain"
	completionRepo "reengage-backend/internal/completion/repository"
	enrolmentdomain "reengage-backend/internal/enrolment/domain"
	enrolmentRepo "reengage-backend/internal/enrolment/repository"
	"reengage-backend/internal/notification"
	trackingDelivery "reengage-backend/internal/tracking/delivery"
	trackingdomain "reengage-backend/internal/tracking/domain"
	trackingRepo "reengage-backend/internal/tracking/repository"
	"reengage-backend/internal/tracking/scheduler"
	trackingUsecase "reengage-backend/internal/tracking/usecase"
	userdomain "reengage-backend/internal/user/domain"
	userRepo "reengage-backend/internal/user/repository"
	"reengage-backend/pkg/config"
	"reengage-backend/pkg/database"
	"reengage-backend/pkg/events"
	"reengage-backend/pkg/fcm"
	"reengage-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&activitydomain.Activity{},
		&trackingdomain.Tracking{},
		&completiondomain.Mark{},
		&enrolmentdomain.Enrolment{},
		&userdomain.User{},
		&userdomain.FCMToken{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	activityRepository := activityRepo.NewGormActivityRepository(db)
	trackingRepository := trackingRepo.NewGormTrackingRepository(db)
	completionRepository := completionRepo.NewGormCompletionRepository(db)
	enrolmentRepository := enrolmentRepo.NewGormEnrolmentRepository(db)
	userRepository := userRepo.NewGormUserRepository(db)
	fcmTokenRepository := userRepo.NewFCMTokenRepository(db)

	// Completion cache shared with any completion read paths
	completionCache := cache.NewStore()

	// Completion-changed event publisher (Pub/Sub when configured)
	var eventPublisher trackingUsecase.EventPublisher = events.NoopPublisher{}
	if cfg.GoogleProjectID != "" {
		publisher, err := events.NewPublisher(context.Background(), cfg.GoogleProjectID, cfg.PubSubTopic, cfg.GoogleCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize Pub/Sub publisher (events disabled): %v", err)
		} else {
			eventPublisher = publisher
			defer publisher.Close()
		}
	} else {
		log.Printf("[WARN] GoogleProjectID not configured, completion events disabled")
	}

	// FCM push client (optional, email works without it)
	var pushSender notification.PushSender
	if cfg.FirebaseCredentials != "" {
		fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push disabled): %v", err)
		} else {
			pushSender = fcmClient
		}
	}

	// Notification service: Gmail sender + optional push
	emailSender := mailer.New(cfg.MailSenderName, cfg.MailSenderAddress, cfg.MailClientID, cfg.MailClientSecret, cfg.MailRefreshToken)
	notificationService := notification.NewService(userRepository, fcmTokenRepository, emailSender, pushSender)

	// The reconciler owns every tracking record transition
	reconciler := trackingUsecase.NewReconciler(
		activityRepository,
		trackingRepository,
		completionRepository,
		enrolmentRepository,
		enrolmentRepository,
		notificationService,
		eventPublisher,
		completionCache,
	)

	// Start the in-process scheduler
	reconcileScheduler := scheduler.NewReconcileScheduler(activityRepository, reconciler, cfg.SchedulerInterval)
	reconcileScheduler.Start()
	defer reconcileScheduler.Stop()

	// Initialize HTTP handler
	activityHandler := activityDelivery.NewActivityHandler(activityRepository)
	trackingHandler := trackingDelivery.NewTrackingHandler(reconciler, trackingRepository)
	handler := api.NewHandler(cfg, activityHandler, trackingHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
