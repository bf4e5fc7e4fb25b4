package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DougLewin/SuperWeirdOneBudFast/controllers"
	"github.com/DougLewin/SuperWeirdOneBudFast/middleware"
	"github.com/DougLewin/SuperWeirdOneBudFast/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, auth services.AuthService) {
	sessionController := controllers.NewSessionController(services.NewSessionStore(db))
	recordController := controllers.NewRecordController(services.NewRecordStore(db), db)
	authController := controllers.NewAuthController(auth)

	// API variant: public, no user scoping. Deleting by id without an
	// owner check is intentional here; only the dashboard has users.
	r.GET("/", sessionController.Root)
	r.GET("/health", sessionController.Health)
	r.POST("/submit-idea", sessionController.CreateSession)
	r.GET("/surf-sessions", sessionController.ListSessions)
	r.GET("/surf-sessions/:id", sessionController.GetSession)
	r.DELETE("/surf-sessions/:id", sessionController.DeleteSession)

	// Dashboard auth (public)
	public := r.Group("/api/v1")
	{
		public.POST("/auth/signup", authController.SignUp)
		public.POST("/auth/signin", authController.SignIn)
	}

	// Dashboard records (owner-scoped)
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(auth))
	{
		private.POST("/auth/signout", authController.SignOut)
		private.GET("/user", recordController.GetUser)
		private.GET("/records", recordController.ListRecords)
		private.POST("/records", recordController.CreateRecord)
		private.PUT("/records/:id", recordController.UpdateRecord)
		private.DELETE("/records/:id", recordController.DeleteRecord)
	}
}
