package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/vendomart/vendordash/internal/adapter/config"
	"github.com/vendomart/vendordash/internal/core/port"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokens port.TokenStore,
	authHandler *AuthHandler,
	requestHandler *RequestHandler,
	orderHandler *OrderHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		guarded := api.Group("")
		guarded.Use(sessionCheck(&authHandler.Handler, tokens))
		{
			guarded.GET("/profile", authHandler.Profile)

			requests := guarded.Group("/requests")
			{
				requests.GET("", requestHandler.ListRequests)
				requests.PATCH("/:id/decision", requestHandler.DecideRequest)
			}

			orders := guarded.Group("/orders")
			{
				orders.GET("", orderHandler.ListOrders)
				orders.POST("/:id/advance", orderHandler.AdvanceOrder)
				orders.GET("/:id/status", orderHandler.OrderStatus)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
