package routes

import (
	adminapi "creator-app/internal/api/admin"
	authapi "creator-app/internal/api/auth"
	"creator-app/internal/api/billing"
	biopageapi "creator-app/internal/api/biopage"
	ideasapi "creator-app/internal/api/ideas"
	inspirationsapi "creator-app/internal/api/inspirations"
	leadmagnetsapi "creator-app/internal/api/leadmagnets"
	planningapi "creator-app/internal/api/planning"
	"creator-app/internal/api/plans"
	seriesapi "creator-app/internal/api/series"
	stripewebhooks "creator-app/internal/api/stripewebhook"
	templatesapi "creator-app/internal/api/templates"
	"creator-app/internal/api/users"
	"creator-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public pages (no auth, no sanitizer on GET)
	r.GET("/p/:slug", biopageapi.GetPublicPage)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plans.ListPlans)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.POST("/p/:slug/magnets/:id/subscribe", leadmagnetsapi.Subscribe)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)
	auth.POST("/change-password", authapi.ChangePassword)

	// Workflow & board
	auth.GET("/workflow", planningapi.GetWorkflow)
	auth.POST("/workflow", planningapi.CreateWorkflow)
	auth.POST("/workflow/columns", planningapi.AppendColumn)
	auth.GET("/workflow/presets", planningapi.ListPresets)
	auth.GET("/board", planningapi.GetBoard)

	auth.GET("/cards", planningapi.ListCards)
	auth.POST("/cards", planningapi.CreateCard)
	auth.PUT("/cards/:id", planningapi.UpdateCard)
	auth.PUT("/cards/:id/move", planningapi.MoveCard)
	auth.DELETE("/cards/:id", planningapi.DeleteCard)

	// Idea bank
	auth.GET("/ideas", ideasapi.ListIdeas)
	auth.POST("/ideas", ideasapi.CreateIdea)
	auth.PUT("/ideas/:id", ideasapi.UpdateIdea)
	auth.POST("/ideas/:id/advance", ideasapi.AdvanceIdea)
	auth.DELETE("/ideas/:id", ideasapi.DeleteIdea)

	auth.GET("/series", seriesapi.ListSeries)
	auth.POST("/series", seriesapi.CreateSeries)
	auth.PUT("/series/:id", seriesapi.UpdateSeries)
	auth.DELETE("/series/:id", seriesapi.DeleteSeries)

	auth.GET("/templates", templatesapi.ListTemplates)
	auth.POST("/templates", templatesapi.CreateTemplate)
	auth.PUT("/templates/:id", templatesapi.UpdateTemplate)
	auth.DELETE("/templates/:id", templatesapi.DeleteTemplate)

	auth.GET("/inspirations", inspirationsapi.ListInspirations)
	auth.POST("/inspirations", inspirationsapi.CreateInspiration)
	auth.DELETE("/inspirations/:id", inspirationsapi.DeleteInspiration)

	// Link-in-bio page
	auth.GET("/page/links", biopageapi.ListLinks)
	auth.POST("/page/links", biopageapi.CreateLink)
	auth.PUT("/page/links/:id", biopageapi.UpdateLink)
	auth.PUT("/page/reorder", biopageapi.ReorderLinks)
	auth.DELETE("/page/links/:id", biopageapi.DeleteLink)

	auth.GET("/magnets", leadmagnetsapi.ListMagnets)
	auth.POST("/magnets", leadmagnetsapi.CreateMagnet)
	auth.PUT("/magnets/:id", leadmagnetsapi.UpdateMagnet)
	auth.DELETE("/magnets/:id", leadmagnetsapi.DeleteMagnet)
	auth.GET("/magnets/:id/leads", leadmagnetsapi.ListLeads)

	// Subscribed users
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription())
	subscribed.GET("/billing/plans", billing.ListPlansFromStripe)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.POST("/sync-plans", plans.SyncPlansFromStripe)
}
