package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/almokadam/backoffice/internal/app/controllers"
	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	folderController *controllers.FolderController,
	universityController *controllers.UniversityController,
	editorController *controllers.EditorController,
	contentController *controllers.ContentController,
	inquiryController *controllers.InquiryController,
	dashboardController *controllers.DashboardController,
	settingsController *controllers.SettingsController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// Contact form submission from the public site
	v1.POST("/inquiries", inquiryController.CreateInquiry)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)
		authenticated.GET("/dashboard", dashboardController.GetDashboard)

		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetCatalogTree)
			courses.POST("", courseController.CreateCourse)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.PUT("/:id/move", courseController.MoveCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		folders := authenticated.Group("/folders")
		{
			folders.GET("", folderController.GetAllFolders)
			folders.POST("", folderController.CreateFolder)
			folders.PUT("/:id", folderController.RenameFolder)
			folders.DELETE("/:id", folderController.DeleteFolder)
		}

		universities := authenticated.Group("/universities")
		{
			universities.GET("", universityController.GetAllUniversities)
			universities.POST("", universityController.CreateUniversity)
			universities.GET("/:id", universityController.GetUniversityByID)
			universities.PUT("/:id", universityController.UpdateUniversity)
			universities.DELETE("/:id", universityController.DeleteUniversity)

			// Course selection editor, seeded from the page
			universities.POST("/:id/editor", editorController.OpenForUniversity)
		}

		editor := authenticated.Group("/editor")
		{
			editor.POST("", editorController.Open)
			editor.GET("/:sid", editorController.GetSession)
			editor.DELETE("/:sid", editorController.CloseSession)
			editor.POST("/:sid/toggle-course", editorController.ToggleCourse)
			editor.POST("/:sid/toggle-folder", editorController.ToggleFolder)
			editor.PUT("/:sid/field", editorController.UpdateField)
			editor.POST("/:sid/create-and-select", editorController.CreateAndSelect)
			editor.GET("/:sid/filter", editorController.Filter)
			editor.POST("/:sid/save", editorController.Save)
		}

		team := authenticated.Group("/team")
		{
			team.GET("", contentController.GetAllTeamMembers)
			team.POST("", contentController.CreateTeamMember)
			team.PUT("/:id", contentController.UpdateTeamMember)
			team.DELETE("/:id", contentController.DeleteTeamMember)
		}

		testimonials := authenticated.Group("/testimonials")
		{
			testimonials.GET("", contentController.GetAllTestimonials)
			testimonials.POST("", contentController.CreateTestimonial)
			testimonials.PUT("/:id", contentController.UpdateTestimonial)
			testimonials.DELETE("/:id", contentController.DeleteTestimonial)
		}

		servicesGroup := authenticated.Group("/services")
		{
			servicesGroup.GET("", contentController.GetAllServices)
			servicesGroup.POST("", contentController.CreateService)
			servicesGroup.PUT("/:id", contentController.UpdateService)
			servicesGroup.DELETE("/:id", contentController.DeleteService)
		}

		inquiries := authenticated.Group("/inquiries")
		{
			inquiries.GET("", inquiryController.ListInquiries)
			inquiries.PUT("/:id/status", inquiryController.UpdateInquiryStatus)
			inquiries.DELETE("/:id", inquiryController.DeleteInquiry)
		}

		authenticated.GET("/settings", settingsController.GetSettings)
		authenticated.PUT("/settings", settingsController.UpdateSettings)
		authenticated.GET("/rates", settingsController.GetRates)

		authenticated.POST("/uploads/images", uploadController.UploadImage)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
