package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"comunidade/internal/config"
	"comunidade/internal/handler"
	"comunidade/internal/middleware"
	"comunidade/internal/repository/mysql"
	"comunidade/internal/service"
)

func InitRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	users := mysql.NewUserRepository(db)
	mural := mysql.NewMuralRepository(db)
	community := mysql.NewCommunityRepository(db)

	auth := handler.NewAuthHandler(service.NewAuthService(users, cfg.JWTSecret, cfg.SMTP))
	muralHandler := handler.NewMuralHandler(service.NewMuralService(mural))
	communityHandler := handler.NewCommunityHandler(service.NewCommunityService(community))
	userHandler := handler.NewUserHandler(service.NewUserService(users))

	authenticated := middleware.Authenticate(cfg.JWTSecret)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Comunidade API is running"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/me", authenticated, auth.Me)
	}

	muralGroup := r.Group("/mural")
	{
		muralGroup.GET("", muralHandler.List)
		muralGroup.POST("", authenticated, middleware.RequireAdmin(), muralHandler.Create)
		muralGroup.DELETE("/:id", authenticated, middleware.RequireAdmin(), muralHandler.Remove)
	}

	// Feed routes are public; viewer identity travels in the body or query
	// string, not in a token.
	communityGroup := r.Group("/community")
	{
		communityGroup.GET("", communityHandler.Feed)
		communityGroup.POST("", communityHandler.CreatePost)
		communityGroup.POST("/:id/like", communityHandler.ToggleLike)
		communityGroup.POST("/:id/comments", communityHandler.CreateComment)
		communityGroup.GET("/:id/comments", communityHandler.ListComments)
	}

	userGroup := r.Group("/users")
	userGroup.Use(authenticated, middleware.RequireAdmin())
	{
		userGroup.GET("", userHandler.ListMembers)
		userGroup.PATCH("/:id/role", userHandler.UpdateRole)
	}

	return r
}
