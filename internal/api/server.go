package api

import (
	"errors"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/community-api/docs"
	v1 "github.com/vietanh2810/community-api/internal/api/handler/v1"
	"github.com/vietanh2810/community-api/internal/api/middleware"
	"github.com/vietanh2810/community-api/internal/config"
	"github.com/vietanh2810/community-api/internal/pkg/payment"
	"github.com/vietanh2810/community-api/internal/repository"
	"github.com/vietanh2810/community-api/internal/repository/dao"
	"github.com/vietanh2810/community-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	auth         *v1.AuthHandler
	user         *v1.UserHandler
	event        *v1.EventHandler
	registration *v1.RegistrationHandler
	shortCode    *v1.ShortCodeHandler
	payment      *v1.PaymentHandler
	points       *v1.PointsHandler
}

type repositories struct {
	users         *repository.UserRepository
	events        *repository.EventRepository
	registrations *repository.RegistrationRepository
	points        *repository.PointsRepository
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	h, err := s.initHandlers(db)
	if err != nil {
		return nil, err
	}
	s.MountHandlers(h)

	return s, nil
}

func initRepositories(db *gorm.DB) repositories {
	return repositories{
		users:         repository.NewUserRepository(dao.NewUserDAO(db)),
		events:        repository.NewEventRepository(dao.NewEventDAO(db)),
		registrations: repository.NewRegistrationRepository(dao.NewRegistrationDAO(db)),
		points:        repository.NewPointsRepository(dao.NewPointsDAO(db)),
	}
}

func (s *Server) initHandlers(db *gorm.DB) (handlers, error) {
	repos := initRepositories(db)

	provider, err := s.initPaymentProvider()
	if err != nil {
		return handlers{}, err
	}

	uSvc := service.NewUserService(repos.users)

	return handlers{
		auth:  v1.NewAuthHandler(s.Config.API, service.NewAuthService(repos.users)),
		user:  v1.NewUserHandler(uSvc),
		event: v1.NewEventHandler(service.NewEventService(repos.events, repos.registrations), uSvc),
		registration: v1.NewRegistrationHandler(
			service.NewRegistrationService(repos.registrations, repos.events, repos.users),
		),
		shortCode: v1.NewShortCodeHandler(service.NewShortCodeService(repos.events)),
		payment:   v1.NewPaymentHandler(service.NewPaymentService(provider, repos.events, repos.registrations)),
		points:    v1.NewPointsHandler(service.NewPointsService(repos.points), uSvc),
	}, nil
}

// initPaymentProvider returns a nil provider when no secret is configured. Paid confirmations then
// fail with a 500 while the rest of the API keeps serving.
func (s *Server) initPaymentProvider() (service.PaymentProvider, error) {
	provider, err := payment.New(s.Config.Payment)
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			zap.L().Warn("payment provider secret is not set, paid registrations are disabled")
			return nil, nil
		}

		return nil, err
	}

	zap.L().Info("payment provider ready", zap.String("provider", s.Config.Payment.Provider))

	return provider, nil
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", h.auth.HandleSignup)
		public.POST("/auth/login", h.auth.HandleLogin)
		public.GET("/events", h.event.HandleListEvents)
		public.GET("/events/:eventID", h.event.HandleGetEvent)
		public.GET("/e/:code", h.shortCode.HandleResolve)
	}

	// Members and guests share these routes. A token, when sent, must still be valid.
	optional := s.Router.Group(basePath, authenticator.OptionalJWT())
	{
		optional.POST("/events/:eventID/registrations", h.registration.HandleRegister)
		optional.POST("/payments/confirm", h.payment.HandleConfirm)
	}

	users := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		users.GET("/users/me", h.user.HandleGetMe)
		users.GET("/users/me/points", h.points.HandleGetMyPoints)
		users.DELETE("/events/:eventID/registrations/me", h.registration.HandleCancel)
	}

	events := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		events.POST("/events", h.event.HandleCreateEvent)
		events.DELETE("/events/:eventID", h.event.HandleDeleteEvent)
		events.POST("/events/:eventID/complete", h.event.HandleCompleteEvent)
		events.GET("/events/:eventID/registrations", h.event.HandleGetRegistrations)
	}

	admin := s.Router.Group(basePath+"/admin", authenticator.VerifyJWT())
	{
		admin.POST("/users/:userID/points", h.points.HandleAdjust)
		admin.PUT("/users/:userID/role", h.user.HandleChangeRole)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Community API"
	docs.SwaggerInfo.Description = "Event registration, points and payments for a community app."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
