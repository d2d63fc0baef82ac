package routes

import (
	"html/template"
	"net/http"
	"time"

	"hotelhub-backend/config"
	"hotelhub-backend/controllers"
	"hotelhub-backend/metrics"
	"hotelhub-backend/services"
	"hotelhub-backend/templates"
	"hotelhub-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps are the collaborators the router wires into its controllers.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Sessions *utils.SessionManager
	Metrics  *metrics.HTTPMetrics
	Notifier services.ReservationNotifier
}

func SetupRouter(deps Deps) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}
	r := newEngine(tmpl, deps.Metrics)
	// Engine level so preflights are answered before routing and sessions.
	r.Use(cors.New(corsConfig(deps.Config.CORSOrigins)))

	db := deps.DB
	authService := services.NewAuthService(db)
	dashboardService := services.NewDashboardService(db)
	hotelService := services.NewHotelService(db)
	reservationService := services.NewReservationService(db, deps.Notifier)
	paymentService := services.NewPaymentService(db)
	analyticsService := services.NewAnalyticsService(db)
	exportService := services.NewExportService(reservationService)

	public := controllers.NewPublicController(db)
	auth := controllers.NewAuthController(authService, deps.Sessions, deps.Metrics)
	dashboard := controllers.NewDashboardController(dashboardService)
	roomTypes := controllers.NewRoomTypeController(hotelService)
	reservations := controllers.NewReservationController(reservationService, exportService)
	payments := controllers.NewPaymentController(paymentService)
	customers := controllers.NewCustomerController(hotelService)
	settings := controllers.NewSettingController(hotelService)
	analytics := controllers.NewAnalyticsController(analyticsService)

	r.GET("/", public.Index)
	r.GET("/health", public.Health)
	r.GET("/api/status", public.APIStatus)

	admin := r.Group("/admin")
	{
		admin.GET("", auth.LoginPage)
		admin.POST("/login", auth.Login)
		admin.GET("/logout", auth.Logout)
		admin.GET("/dashboard", deps.Sessions.RequireSession(false), dashboard.Show)
	}

	api := admin.Group("/api")
	api.Use(deps.Sessions.RequireSession(true))
	{
		api.GET("/dashboard", dashboard.Stats)

		roomTypeRoutes := api.Group("/room-types")
		{
			roomTypeRoutes.GET("", roomTypes.GetRoomTypes)
			roomTypeRoutes.POST("", roomTypes.CreateRoomType)
			roomTypeRoutes.PUT("/:id", roomTypes.UpdateRoomType)
		}

		reservationRoutes := api.Group("/reservations")
		{
			reservationRoutes.GET("", reservations.GetReservations)
			reservationRoutes.POST("", reservations.CreateReservation)
			reservationRoutes.GET("/export", reservations.ExportReservations)
			reservationRoutes.GET("/:code", reservations.GetReservation)
			reservationRoutes.PUT("/:id/status", reservations.UpdateReservationStatus)
		}

		paymentRoutes := api.Group("/payments")
		{
			paymentRoutes.GET("", payments.GetPayments)
			paymentRoutes.POST("", payments.RecordPayment)
		}

		api.GET("/customers", customers.GetCustomers)
		api.GET("/emails", customers.GetEmailLogs)
		api.GET("/analytics", analytics.GetAnalytics)

		api.GET("/settings", settings.GetSettings)
		api.PUT("/settings", settings.UpdateSetting)
	}

	return r, nil
}

// SetupFallbackRouter serves the landing page and a health probe when the
// database is unusable.
func SetupFallbackRouter(m *metrics.HTTPMetrics) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}
	r := newEngine(tmpl, m)
	r.GET("/", controllers.FallbackIndex)
	r.GET("/health", controllers.FallbackHealth)
	return r, nil
}

func newEngine(tmpl *template.Template, m *metrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(config.RequestID())
	r.Use(config.PerformanceLogger())
	r.Use(utils.Recovery())
	if m != nil {
		r.Use(m.Middleware())
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		if utils.IsAPIRequest(c) {
			utils.RespondWithError(c, http.StatusNotFound, "Not found")
			return
		}
		c.Redirect(http.StatusFound, "/")
	})
	return r
}

func corsConfig(origins []string) cors.Config {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return allowed[origin]
		},
		MaxAge: 12 * time.Hour,
	}
}
