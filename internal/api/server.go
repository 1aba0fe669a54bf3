// @title GlobalPath CMS API
// @version 1.0
// @description Content, student profiles, applications, notifications and lead-capture endpoints.
// @host localhost:3000
// @BasePath /
// @schemes http
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer <JWT>

package api

import (
	"context"
	"log"
	"time"

	"github.com/GlobalPath/cms_service/config"
	"github.com/GlobalPath/cms_service/infra/queue"
	"github.com/GlobalPath/cms_service/internal/api/rest/handlers"
	"github.com/GlobalPath/cms_service/internal/cache"
	"github.com/GlobalPath/cms_service/internal/clients/recaptcha"
	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/repository"
	"github.com/GlobalPath/cms_service/internal/services"
	cldpkg "github.com/GlobalPath/cms_service/pkg/cloudinary"
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const catalogCacheTTL = 60 * time.Second

func StartServer(cfg config.Config) {
	app := fiber.New()
	RegisterSwagger(app)

	prometheus := fiberprometheus.New("cms_service")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260831

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := Migrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	producer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	cld, err := cldpkg.New()
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	uploader := cldpkg.NewCloudinaryUploader(cld)
	recaptchaClient := recaptcha.New(cfg.RecaptchaSecret)
	auth := helper.SetupAuth(cfg.AccessSecret)
	queryCache := cache.NewQueryCache(catalogCacheTTL)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewStudentProfileRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	contactRepo := repository.NewContactRepository(db)
	jobAppRepo := repository.NewJobApplicationRepository(db)
	regRepo := repository.NewRegistrationRepository(db)

	// ---------- Services ----------
	userSvc := services.NewUserService(userRepo, auth, producer)
	studentSvc := services.NewStudentService(profileRepo, userRepo, producer)
	applicationSvc := services.NewApplicationService(applicationRepo, userRepo, producer)
	contentSvc := services.NewContentService(catalogRepo, queryCache)
	notifSvc := services.NewNotificationService(notifRepo)
	mediaSvc := services.NewMediaService(mediaRepo, uploader)
	careerSvc := services.NewCareerService(jobAppRepo, catalogRepo, uploader, producer)
	eventSvc := services.NewEventService(regRepo, catalogRepo, producer)
	contactSvc := services.NewContactService(contactRepo, recaptchaClient, producer)

	// ---------- Notifier worker ----------
	// One consumer materializes every domain event into notification rows,
	// so no request handler writes its own notifications.
	if cfg.KafkaBroker != "" {
		notifier := services.NewNotifier(notifRepo, userRepo)
		consumer := queue.NewKafkaConsumer(
			cfg.KafkaBroker,
			cfg.KafkaTopic,
			cfg.KafkaGroupID,
			cfg.KafkaUsername,
			cfg.KafkaPassword,
			notifier,
		)
		go consumer.Listen(context.Background())
	} else {
		log.Println("kafka broker not configured, notifier worker disabled")
	}

	// ---------- Handlers ----------
	handlers.NewUserHandler(userSvc, auth).SetupRoutes(app)
	handlers.NewStudentHandler(studentSvc, mediaSvc, auth).SetupRoutes(app)
	handlers.NewApplicationHandler(applicationSvc, auth).SetupRoutes(app)
	handlers.NewContentHandler(contentSvc, auth).SetupRoutes(app)
	handlers.NewNotificationHandler(notifSvc, auth).SetupRoutes(app)
	handlers.NewMediaHandler(mediaSvc, auth).SetupRoutes(app)
	handlers.NewCareerHandler(careerSvc, auth).SetupRoutes(app)
	handlers.NewEventHandler(eventSvc, auth).SetupRoutes(app)
	handlers.NewContactHandler(contactSvc, auth).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.StudentProfile{},
		&domain.EducationRecord{},
		&domain.ProfileDocument{},
		&domain.Application{},
		&domain.Course{},
		&domain.University{},
		&domain.Destination{},
		&domain.Blog{},
		&domain.Scholarship{},
		&domain.ServicePage{},
		&domain.Career{},
		&domain.Event{},
		&domain.EventRegistration{},
		&domain.JobApplication{},
		&domain.Notification{},
		&domain.MediaFile{},
		&domain.ContactMessage{},
		&domain.CounsellingRequest{},
	)
}
