package routes

import (
	"admissions-api/controllers"
	"admissions-api/middleware"
	"admissions-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)
			public.POST("/contact/submit", controllers.SubmitContact)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Admissions API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Academic sessions
			protected.GET("/sessions", controllers.GetAcademicSessions)

			// Dashboard (staff and super admin)
			protected.GET("/dashboard/stats", middleware.RequireRole(models.RoleStaff, models.RoleSuperAdmin), controllers.GetDashboardStats)

			// Student applications
			students := protected.Group("/students")
			{
				students.GET("", controllers.GetStudents)
				students.POST("", controllers.CreateStudent)
				students.GET("/:id", controllers.GetStudent)
				students.PUT("/:id", controllers.UpdateStudent)
				students.GET("/:id/history", middleware.RequireRole(models.RoleStaff, models.RoleSuperAdmin), controllers.GetStudentHistory)

				// Review workflow (staff and super admin)
				students.PUT("/:id/status", middleware.RequireRole(models.RoleStaff, models.RoleSuperAdmin), controllers.UpdateStudentStatus)
				students.POST("/:id/resubmit", controllers.ResubmitStudent)

				// Export (staff and super admin)
				students.POST("/export", middleware.RequireRole(models.RoleStaff, models.RoleSuperAdmin), controllers.ExportStudentsCSV)

				// Destructive operations (super admin only)
				students.DELETE("/:id", middleware.RequireRole(models.RoleSuperAdmin), controllers.DeleteStudent)
				students.DELETE("/bulk", middleware.RequireRole(models.RoleSuperAdmin), controllers.BulkDeleteStudents)
			}

			// Document bundles
			applications := protected.Group("/applications")
			applications.Use(middleware.RequireRole(models.RoleStaff, models.RoleSuperAdmin))
			{
				applications.POST("/:id/combined-pdf", controllers.GenerateCombinedPDF)
				applications.POST("/:id/documents-zip", controllers.GenerateDocumentsZip)
			}

			// Documents
			documents := protected.Group("/documents")
			{
				documents.POST("/upload/:id", controllers.UploadDocument)
				documents.GET("/application/:id", controllers.GetDocuments)
				documents.GET("/download/:document_id", controllers.DownloadDocument)
				documents.PUT("/:document_id/review", middleware.RequireRole(models.RoleStaff, models.RoleSuperAdmin), controllers.ReviewDocument)
				documents.DELETE("/:document_id", controllers.DeleteDocument)
				documents.GET("/types", controllers.GetDocumentTypes)
			}
		}
	}
}
