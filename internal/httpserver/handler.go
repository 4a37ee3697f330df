package httpserver

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"auth-srv/internal/authentication"
	authhttp "auth-srv/internal/authentication/delivery/http"
	authproducer "auth-srv/internal/authentication/delivery/kafka/producer"
	authusecase "auth-srv/internal/authentication/usecase"
	"auth-srv/internal/middleware"
	"auth-srv/internal/user"
	userhttp "auth-srv/internal/user/delivery/http"
	userpostgre "auth-srv/internal/user/repository/postgre"
	userredis "auth-srv/internal/user/repository/redis"
	userusecase "auth-srv/internal/user/usecase"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	// Repositories
	userRepo := userpostgre.New(srv.postgresDB, srv.l)
	userCache := userredis.New(srv.redisClient, srv.l)

	// Usecases
	userUC := userusecase.New(userRepo, userCache, srv.hashPool, srv.l, user.Config{
		SummaryCacheTTL: time.Duration(srv.config.User.SummaryCacheTTL) * time.Second,
		DefaultRole:     srv.config.AccessControl.DefaultRole,
	})

	var publisher authentication.EventPublisher
	if srv.eventProducer != nil {
		publisher = authproducer.New(srv.eventProducer, srv.l)
	}
	authUC := authusecase.New(userUC, srv.hashPool, srv.jwtManager, publisher, srv.l)

	// Handlers
	authHandler := authhttp.New(srv.l, authUC)
	userHandler := userhttp.New(srv.l, userUC)

	// Map routes (no prefix)
	authhttp.MapAuthRoutes(srv.gin.Group("/authentication"), authHandler, mw)
	userhttp.MapUserRoutes(srv.gin.Group("/users"), userHandler)

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(middleware.Recovery(srv.l))
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
