package di

import (
	"github.com/fokanendapascal/internship-management-app/internal/handler"
	"github.com/fokanendapascal/internship-management-app/internal/notifier"
	"github.com/fokanendapascal/internship-management-app/internal/repository"
	"github.com/fokanendapascal/internship-management-app/internal/security"
	"github.com/fokanendapascal/internship-management-app/internal/service"
	"github.com/fokanendapascal/internship-management-app/internal/storage"
	"github.com/fokanendapascal/internship-management-app/internal/token"
	"github.com/fokanendapascal/internship-management-app/pkg/database"
	"github.com/fokanendapascal/internship-management-app/pkg/logger"
	"github.com/fokanendapascal/internship-management-app/pkg/redis"
)

// Container holds all wired dependencies of the application
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client
	Files storage.FileStore

	// Security
	Codec    *token.Codec
	Resolver *security.Resolver
	Matrix   *security.Matrix

	// Repositories
	UserRepo         repository.UserRepository
	StudentRepo      repository.StudentRepository
	TeacherRepo      repository.TeacherRepository
	CompanyRepo      repository.CompanyRepository
	InternshipRepo   repository.InternshipRepository
	ApplicationRepo  repository.ApplicationRepository
	AgreementRepo    repository.AgreementRepository
	MessageRepo      repository.MessageRepository
	NotificationRepo repository.NotificationRepository

	// Notifier
	Notifier notifier.Notifier

	// Services
	AuthService         service.AuthService
	UserService         service.UserService
	StudentService      service.StudentService
	TeacherService      service.TeacherService
	CompanyService      service.CompanyService
	InternshipService   service.InternshipService
	ApplicationService  service.ApplicationService
	AgreementService    service.AgreementService
	MessageService      service.MessageService
	NotificationService service.NotificationService

	// Handlers
	HealthHandler       *handler.HealthHandler
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	StudentHandler      *handler.StudentHandler
	TeacherHandler      *handler.TeacherHandler
	CompanyHandler      *handler.CompanyHandler
	InternshipHandler   *handler.InternshipHandler
	ApplicationHandler  *handler.ApplicationHandler
	AgreementHandler    *handler.AgreementHandler
	MessageHandler      *handler.MessageHandler
	NotificationHandler *handler.NotificationHandler
	FileHandler         *handler.FileHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB         *database.PostgresDB
	Redis      *redis.Client // nil disables real-time notifications
	Files      storage.FileStore
	Codec      *token.Codec
	BcryptCost int
	Log        *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
		Files: cfg.Files,
		Codec: cfg.Codec,
	}

	pool := cfg.DB.Pool()

	// Repositories
	c.UserRepo = repository.NewPostgresUserRepository(pool)
	c.StudentRepo = repository.NewPostgresStudentRepository(pool)
	c.TeacherRepo = repository.NewPostgresTeacherRepository(pool)
	c.CompanyRepo = repository.NewPostgresCompanyRepository(pool)
	c.InternshipRepo = repository.NewPostgresInternshipRepository(pool)
	c.ApplicationRepo = repository.NewPostgresApplicationRepository(pool)
	c.AgreementRepo = repository.NewPostgresAgreementRepository(pool)
	c.MessageRepo = repository.NewPostgresMessageRepository(pool)
	c.NotificationRepo = repository.NewPostgresNotificationRepository(pool)

	// Security
	c.Resolver = security.NewResolver(cfg.Codec, c.UserRepo)
	c.Matrix = security.NewMatrix(security.DefaultRules())
	hasher := security.NewHasher(cfg.BcryptCost)

	// Notifier
	if cfg.Redis != nil {
		c.Notifier = notifier.NewRedisNotifier(c.NotificationRepo, cfg.Redis, cfg.Log)
	} else {
		c.Notifier = notifier.NopNotifier{}
	}

	// Services
	c.AuthService = service.NewAuthService(c.UserRepo, cfg.Codec, hasher)
	c.UserService = service.NewUserService(c.UserRepo)
	c.StudentService = service.NewStudentService(c.StudentRepo, c.UserRepo)
	c.TeacherService = service.NewTeacherService(c.TeacherRepo, c.UserRepo)
	c.CompanyService = service.NewCompanyService(c.CompanyRepo, c.UserRepo)
	c.InternshipService = service.NewInternshipService(c.InternshipRepo, c.CompanyRepo)
	c.ApplicationService = service.NewApplicationService(c.ApplicationRepo, c.InternshipRepo, c.StudentRepo, cfg.Files, c.Notifier)
	c.AgreementService = service.NewAgreementService(c.AgreementRepo, c.ApplicationRepo, c.TeacherRepo, c.Notifier)
	c.MessageService = service.NewMessageService(c.MessageRepo, c.UserRepo, c.Notifier)
	c.NotificationService = service.NewNotificationService(c.NotificationRepo)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(cfg.DB, cfg.Redis)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.UserHandler = handler.NewUserHandler(c.UserService)
	c.StudentHandler = handler.NewStudentHandler(c.StudentService)
	c.TeacherHandler = handler.NewTeacherHandler(c.TeacherService)
	c.CompanyHandler = handler.NewCompanyHandler(c.CompanyService)
	c.InternshipHandler = handler.NewInternshipHandler(c.InternshipService)
	c.ApplicationHandler = handler.NewApplicationHandler(c.ApplicationService)
	c.AgreementHandler = handler.NewAgreementHandler(c.AgreementService)
	c.MessageHandler = handler.NewMessageHandler(c.MessageService)
	c.NotificationHandler = handler.NewNotificationHandler(c.NotificationService)
	c.FileHandler = handler.NewFileHandler(cfg.Files)

	return c
}
