package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-digital/cms-go/handlers"
	"github.com/prefeitura-digital/cms-go/middleware"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos_instance := repositories.New()
	services_instance := services.New(repos_instance)
	handlers_instance := handlers.New(services_instance, repos_instance)

	// public site surface
	r.POST("/login", handlers_instance.Auth.Login)
	r.POST("/logout", handlers_instance.Auth.Logout)

	public := r.Group("/public")
	{
		public.GET("/posts", handlers_instance.Post.ListPublished)
		public.GET("/posts/:slug", handlers_instance.Post.GetPublishedBySlug)
		public.GET("/pages/:slug", handlers_instance.Page.GetPublishedBySlug)
		public.GET("/events", handlers_instance.Event.ListPublished)
		public.GET("/events/:slug", handlers_instance.Event.GetPublishedBySlug)
		public.GET("/galleries", handlers_instance.Gallery.ListGalleries)
		public.GET("/galleries/:slug", handlers_instance.Gallery.GetBySlug)
		public.GET("/secretarias", handlers_instance.Secretaria.List)
		public.GET("/secretarias/:slug", handlers_instance.Secretaria.GetBySlug)
		public.GET("/servicos", handlers_instance.CityService.ListPublished)
		public.GET("/servicos/:slug", handlers_instance.CityService.GetBySlug)
		public.GET("/categories", handlers_instance.Taxonomy.ListCategories)
		public.GET("/tags", handlers_instance.Taxonomy.ListTags)
		public.GET("/settings", handlers_instance.Setting.List)

		public.GET("/forms/:slug", handlers_instance.Form.GetPublishedBySlug)
		public.POST("/forms/:slug/submissions", handlers_instance.Form.Submit)
	}

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", handlers_instance.Auth.Me)
		auth.GET("/ws/submissions", handlers_instance.Hub.Serve)

		users := auth.Group("/users")
		{
			users.GET("", middleware.AuthorizeAdmin(), handlers_instance.User.ListUsers)
			users.GET("/:id", middleware.AuthorizeAdmin(), handlers_instance.User.GetUser)
			users.GET("/:id/permissions", middleware.AuthorizeAdmin(), handlers_instance.Permission.ListByUser)
			users.POST("", middleware.AuthorizeAdmin(), handlers_instance.User.CreateUser)
			users.PUT("/:id", handlers_instance.User.UpdateUser)
			users.DELETE("/:id", middleware.AuthorizeAdmin(), handlers_instance.User.DeleteUser)
			users.DELETE("/:id/permissions/:module", middleware.AuthorizeAdmin(), handlers_instance.Permission.Revoke)
		}
		auth.POST("/permissions", middleware.AuthorizeAdmin(), handlers_instance.Permission.Assign)

		posts := auth.Group("/posts")
		{
			posts.GET("", middleware.RequirePermission("posts", "read", repos_instance.Permission), handlers_instance.Post.ListPosts)
			posts.GET("/:id", middleware.RequirePermission("posts", "read", repos_instance.Permission), handlers_instance.Post.GetPost)
			posts.POST("", middleware.RequirePermission("posts", "create", repos_instance.Permission), handlers_instance.Post.CreatePost)
			posts.PUT("/:id", middleware.RequirePermission("posts", "update", repos_instance.Permission), handlers_instance.Post.UpdatePost)
			posts.DELETE("/:id", middleware.RequirePermission("posts", "delete", repos_instance.Permission), handlers_instance.Post.DeletePost)
		}

		categories := auth.Group("/categories")
		{
			categories.POST("", middleware.RequirePermission("posts", "create", repos_instance.Permission), handlers_instance.Taxonomy.CreateCategory)
			categories.PUT("/:id", middleware.RequirePermission("posts", "update", repos_instance.Permission), handlers_instance.Taxonomy.UpdateCategory)
			categories.DELETE("/:id", middleware.RequirePermission("posts", "delete", repos_instance.Permission), handlers_instance.Taxonomy.DeleteCategory)
		}
		tags := auth.Group("/tags")
		{
			tags.POST("", middleware.RequirePermission("posts", "create", repos_instance.Permission), handlers_instance.Taxonomy.CreateTag)
			tags.PUT("/:id", middleware.RequirePermission("posts", "update", repos_instance.Permission), handlers_instance.Taxonomy.UpdateTag)
			tags.DELETE("/:id", middleware.RequirePermission("posts", "delete", repos_instance.Permission), handlers_instance.Taxonomy.DeleteTag)
		}

		pages := auth.Group("/pages")
		{
			pages.GET("", middleware.RequirePermission("pages", "read", repos_instance.Permission), handlers_instance.Page.ListPages)
			pages.GET("/:id", middleware.RequirePermission("pages", "read", repos_instance.Permission), handlers_instance.Page.GetPage)
			pages.POST("", middleware.RequirePermission("pages", "create", repos_instance.Permission), handlers_instance.Page.CreatePage)
			pages.PUT("/:id", middleware.RequirePermission("pages", "update", repos_instance.Permission), handlers_instance.Page.UpdatePage)
			pages.DELETE("/:id", middleware.RequirePermission("pages", "delete", repos_instance.Permission), handlers_instance.Page.DeletePage)
		}

		events := auth.Group("/events")
		{
			events.GET("", middleware.RequirePermission("events", "read", repos_instance.Permission), handlers_instance.Event.ListEvents)
			events.GET("/:id", middleware.RequirePermission("events", "read", repos_instance.Permission), handlers_instance.Event.GetEvent)
			events.POST("", middleware.RequirePermission("events", "create", repos_instance.Permission), handlers_instance.Event.CreateEvent)
			events.PUT("/:id", middleware.RequirePermission("events", "update", repos_instance.Permission), handlers_instance.Event.UpdateEvent)
			events.DELETE("/:id", middleware.RequirePermission("events", "delete", repos_instance.Permission), handlers_instance.Event.DeleteEvent)
		}

		galleries := auth.Group("/galleries")
		{
			galleries.GET("", middleware.RequirePermission("galleries", "read", repos_instance.Permission), handlers_instance.Gallery.ListGalleries)
			galleries.GET("/:id", middleware.RequirePermission("galleries", "read", repos_instance.Permission), handlers_instance.Gallery.GetGallery)
			galleries.POST("", middleware.RequirePermission("galleries", "create", repos_instance.Permission), handlers_instance.Gallery.CreateGallery)
			galleries.PUT("/:id", middleware.RequirePermission("galleries", "update", repos_instance.Permission), handlers_instance.Gallery.UpdateGallery)
			galleries.DELETE("/:id", middleware.RequirePermission("galleries", "delete", repos_instance.Permission), handlers_instance.Gallery.DeleteGallery)
		}

		media := auth.Group("/media")
		{
			media.GET("", middleware.RequirePermission("media", "read", repos_instance.Permission), handlers_instance.Media.ListMedia)
			media.POST("", middleware.RequirePermission("media", "create", repos_instance.Permission), handlers_instance.Media.Upload)
			media.DELETE("/:id", middleware.RequirePermission("media", "delete", repos_instance.Permission), handlers_instance.Media.Delete)
		}

		secretarias := auth.Group("/secretarias")
		{
			secretarias.GET("", middleware.RequirePermission("secretarias", "read", repos_instance.Permission), handlers_instance.Secretaria.List)
			secretarias.GET("/:id", middleware.RequirePermission("secretarias", "read", repos_instance.Permission), handlers_instance.Secretaria.Get)
			secretarias.POST("", middleware.RequirePermission("secretarias", "create", repos_instance.Permission), handlers_instance.Secretaria.Create)
			secretarias.PUT("/:id", middleware.RequirePermission("secretarias", "update", repos_instance.Permission), handlers_instance.Secretaria.Update)
			secretarias.DELETE("/:id", middleware.RequirePermission("secretarias", "delete", repos_instance.Permission), handlers_instance.Secretaria.Delete)
		}

		cityServices := auth.Group("/servicos")
		{
			cityServices.GET("", middleware.RequirePermission("servicos", "read", repos_instance.Permission), handlers_instance.CityService.List)
			cityServices.GET("/:id", middleware.RequirePermission("servicos", "read", repos_instance.Permission), handlers_instance.CityService.Get)
			cityServices.POST("", middleware.RequirePermission("servicos", "create", repos_instance.Permission), handlers_instance.CityService.Create)
			cityServices.PUT("/:id", middleware.RequirePermission("servicos", "update", repos_instance.Permission), handlers_instance.CityService.Update)
			cityServices.DELETE("/:id", middleware.RequirePermission("servicos", "delete", repos_instance.Permission), handlers_instance.CityService.Delete)
		}

		settings := auth.Group("/settings")
		{
			settings.GET("", middleware.AuthorizeAdmin(), handlers_instance.Setting.List)
			settings.GET("/:key", middleware.AuthorizeAdmin(), handlers_instance.Setting.Get)
			settings.PUT("", middleware.AuthorizeAdmin(), handlers_instance.Setting.Upsert)
			settings.DELETE("/:key", middleware.AuthorizeAdmin(), handlers_instance.Setting.Delete)
		}

		forms := auth.Group("/forms")
		{
			forms.GET("", middleware.RequirePermission("forms", "read", repos_instance.Permission), handlers_instance.Form.ListForms)
			forms.GET("/:id", middleware.RequirePermission("forms", "read", repos_instance.Permission), handlers_instance.Form.GetForm)
			forms.GET("/:id/submissions", middleware.RequirePermission("forms", "read", repos_instance.Permission), handlers_instance.Form.ListSubmissions)
			forms.POST("", middleware.RequirePermission("forms", "create", repos_instance.Permission), handlers_instance.Form.CreateForm)
			forms.PUT("/:id", middleware.RequirePermission("forms", "update", repos_instance.Permission), handlers_instance.Form.UpdateForm)
			forms.DELETE("/:id", middleware.RequirePermission("forms", "delete", repos_instance.Permission), handlers_instance.Form.DeleteForm)
		}
		submissions := auth.Group("/submissions")
		{
			submissions.PUT("/:id/status", middleware.RequirePermission("forms", "update", repos_instance.Permission), handlers_instance.Form.ModerateSubmission)
			submissions.DELETE("/:id", middleware.RequirePermission("forms", "delete", repos_instance.Permission), handlers_instance.Form.DeleteSubmission)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", middleware.AuthorizeAdmin(), handlers_instance.Audit.GetAuditLogs)
		}
	}
}
