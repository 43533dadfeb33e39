package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/eventpass-app/eventpass-api/docs"
	v1 "github.com/eventpass-app/eventpass-api/internal/api/handler/v1"
	"github.com/eventpass-app/eventpass-api/internal/api/middleware"
	"github.com/eventpass-app/eventpass-api/internal/clock"
	"github.com/eventpass-app/eventpass-api/internal/config"
	"github.com/eventpass-app/eventpass-api/internal/repository"
	"github.com/eventpass-app/eventpass-api/internal/repository/dao"
	"github.com/eventpass-app/eventpass-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userSvc := service.NewUserService(repository.NewAdminUserRepository(dao.NewAdminUserDAO(db)))

	authHandler := s.initAuthHandler(db)
	eventHandler := s.initEventHandler(db, userSvc)
	participantHandler, scanHandler := s.initParticipantHandlers(db, userSvc)
	lotteryHandler := s.initLotteryHandler(db, userSvc)
	settingHandler := s.initSettingHandler(db, userSvc)

	s.MountHandlers(authHandler, eventHandler, participantHandler, scanHandler, lotteryHandler, settingHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewAdminUserDAO(db)
	repo := repository.NewAdminUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB, uSvc *service.UserService) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewEventService(repo)
	handler := v1.NewEventHandler(svc, uSvc)

	return handler
}

func (s *Server) initParticipantHandlers(db *gorm.DB, uSvc *service.UserService) (*v1.ParticipantHandler, *v1.ScanHandler) {
	participantDAO := dao.NewParticipantDAO(db)
	repo := repository.NewParticipantRepository(participantDAO)
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewParticipantService(repo, eventRepo, clock.NewSystem())

	return v1.NewParticipantHandler(svc, uSvc), v1.NewScanHandler(svc, uSvc)
}

func (s *Server) initLotteryHandler(db *gorm.DB, uSvc *service.UserService) *v1.LotteryHandler {
	participantDAO := dao.NewParticipantDAO(db)
	repo := repository.NewParticipantRepository(participantDAO)
	svc := service.NewLotteryService(repo)
	handler := v1.NewLotteryHandler(svc, uSvc)

	return handler
}

func (s *Server) initSettingHandler(db *gorm.DB, uSvc *service.UserService) *v1.SettingHandler {
	settingDAO := dao.NewSettingDAO(db)
	repo := repository.NewSettingRepository(settingDAO)
	svc := service.NewSettingService(repo, clock.NewSystem())
	handler := v1.NewSettingHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	eventHandler *v1.EventHandler,
	participantHandler *v1.ParticipantHandler,
	scanHandler *v1.ScanHandler,
	lotteryHandler *v1.LotteryHandler,
	settingHandler *v1.SettingHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/events", eventHandler.HandleListEvents)
		public.GET("/events/:eventID", eventHandler.HandleGetEvent)

		public.GET("/participants/:entryCode", participantHandler.HandleGetParticipantByCode)
		public.POST("/participants/verify", participantHandler.HandleVerifyEntryCode)

		public.GET("/settings", settingHandler.HandleGetSettings)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.POST("/events", eventHandler.HandleCreateEvent)
		authenticated.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)

		authenticated.GET("/admin/participants", participantHandler.HandleListParticipants)
		authenticated.POST("/admin/participants", participantHandler.HandleRegisterParticipant)
		authenticated.DELETE("/admin/participants/:participantID", participantHandler.HandleDeleteParticipant)

		authenticated.POST("/admin/lottery", lotteryHandler.HandleDraw)

		authenticated.POST("/qr/scan", scanHandler.HandleScan)

		authenticated.PUT("/settings", settingHandler.HandlePutSetting)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "EventPass API"
	docs.SwaggerInfo.Description = "Event check-in, attendance tracking and lottery draws."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
