package app

import (
	"recipeshare/internal/auth"
	"recipeshare/internal/cache"
	"recipeshare/internal/config"
	"recipeshare/internal/handlers"
	"recipeshare/internal/repo"
	"recipeshare/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	sessionStore := auth.NewRedisStore(rdb, cfg.Session.TTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)

	recipeRepo := repo.NewPGRecipeRepo(db)
	recipeCache := cache.NewRecipeCache(rdb, cfg.Redis.DefaultTTL.Duration())
	recipeSvc := service.NewRecipeService(recipeRepo, userRepo, recipeCache)

	authHandler := handlers.NewAuthHandler(sessionStore, userSvc, cfg.Session.TTL.Duration())
	recipeHandler := handlers.NewRecipeHandler(recipeSvc)

	Routes(r, sessionStore, authHandler, recipeHandler)
}

// Routes wires the endpoints onto the engine; tests call it with fakes
// instead of going through Setup.
func Routes(r *gin.Engine, sessions auth.SessionStore, ah *handlers.AuthHandler, rh *handlers.RecipeHandler) {
	r.POST("/signup", ah.Signup)
	r.POST("/login", ah.Login)

	protected := r.Group("", auth.RequireSession(sessions))
	protected.GET("/check_session", ah.CheckSession)
	protected.DELETE("/logout", ah.Logout)
	protected.GET("/recipes", rh.List)
	protected.POST("/recipes", rh.Create)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Recipe Share API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
