package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jhaabhishek9/Nutrifitnes/config"
	"github.com/jhaabhishek9/Nutrifitnes/controllers"
	"github.com/jhaabhishek9/Nutrifitnes/middlewares"
	"github.com/jhaabhishek9/Nutrifitnes/services"
	"github.com/jhaabhishek9/Nutrifitnes/storage"
)

func SetupRouter(cfg *config.Config, store storage.Store) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.RequestID())
	r.Use(corsMiddleware(cfg))

	secret := []byte(cfg.JWTSecret)

	authSvc := services.NewAuthService(store, secret)
	bmiSvc := services.NewBMIService(store)

	authCtl := controllers.NewAuthController(authSvc)
	bmiCtl := controllers.NewBMIController(bmiSvc)
	planCtl := controllers.NewPlanController(store)
	metaCtl := controllers.NewMetaController(store, cfg.Environment)

	r.GET("/health", metaCtl.Health)
	r.GET("/version", metaCtl.GetVersion)
	r.GET("/diet-plans", planCtl.List)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/logout", authCtl.Logout)
		auth.GET("/user", middlewares.Auth(secret), authCtl.CurrentUser)
	}

	protected := r.Group("/", middlewares.Auth(secret))
	{
		protected.POST("/calculate-bmi", bmiCtl.Calculate)
		protected.GET("/bmi-records", bmiCtl.History)
	}

	return r
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	if len(cfg.CORSOrigins) == 0 {
		return cors.Default()
	}
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSOrigins
	corsCfg.AllowCredentials = true
	return cors.New(corsCfg)
}
