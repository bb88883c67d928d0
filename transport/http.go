package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	businessapp "github.com/muhammadheryan/tamirse/application/business"
	notificationapp "github.com/muhammadheryan/tamirse/application/notification"
	requestapp "github.com/muhammadheryan/tamirse/application/request"
	userapp "github.com/muhammadheryan/tamirse/application/user"
	"github.com/muhammadheryan/tamirse/cmd/config"
	"github.com/muhammadheryan/tamirse/utils/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	config          *config.Config
	UserApp         userapp.UserApp
	BusinessApp     businessapp.BusinessApp
	RequestApp      requestapp.RequestApp
	NotificationApp notificationapp.NotificationApp
}

func NewTransport(
	cfg *config.Config,
	m *metrics.Metrics,
	UserApp userapp.UserApp,
	BusinessApp businessapp.BusinessApp,
	RequestApp requestapp.RequestApp,
	NotificationApp notificationapp.NotificationApp,
) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		config:          cfg,
		UserApp:         UserApp,
		BusinessApp:     BusinessApp,
		RequestApp:      RequestApp,
		NotificationApp: NotificationApp,
	}

	rl := cfg.RateLimit
	general := NewRateLimiter("general", rl.General, rl, false, m)
	authLimit := NewRateLimiter("auth", rl.Auth, rl, true, m)
	creation := NewRateLimiter("request_creation", rl.RequestCreation, rl, false, m)
	rating := NewRateLimiter("rating", rl.Rating, rl, false, m)

	router.Use(LoggingMiddleware())
	router.Use(MetricsMiddleware(m))

	// Swagger UI and metrics
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	// internal routes, called by the notification consumer
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/notifications", rh.CreateNotification).Methods(http.MethodPost)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(general.Middleware())

	// public routes
	api.HandleFunc("/health", rh.Health).Methods(http.MethodGet)
	api.Handle("/auth/signup", authLimit.Wrap(rh.Signup)).Methods(http.MethodPost)
	api.Handle("/auth/signup/business", authLimit.Wrap(rh.SignupBusiness)).Methods(http.MethodPost)
	api.Handle("/auth/login", authLimit.Wrap(rh.Login)).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", rh.Refresh).Methods(http.MethodPost)

	// protected routes
	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(UserApp))

	protected.HandleFunc("/auth/me", rh.Me).Methods(http.MethodGet)
	protected.HandleFunc("/profile", rh.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/profile", rh.UpdateProfile).Methods(http.MethodPatch)
	protected.HandleFunc("/profile/business", rh.UpdateBusinessProfile).Methods(http.MethodPatch)

	protected.HandleFunc("/businesses", rh.ListBusinesses).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{id}", rh.GetBusiness).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{id}/reviews", rh.ListReviews).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{id}/stats", rh.GetBusinessStats).Methods(http.MethodGet)

	protected.Handle("/requests", creation.Wrap(rh.CreateRequest)).Methods(http.MethodPost)
	protected.HandleFunc("/requests", rh.ListRequests).Methods(http.MethodGet)
	protected.HandleFunc("/requests/{id}", rh.GetRequest).Methods(http.MethodGet)
	protected.HandleFunc("/requests/{id}/status", rh.UpdateRequestStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/requests/{id}/approve", rh.ApproveRequest).Methods(http.MethodPatch)
	protected.HandleFunc("/requests/{id}/reject", rh.RejectRequest).Methods(http.MethodPatch)
	protected.HandleFunc("/requests/{id}/complete", rh.CompleteRequest).Methods(http.MethodPatch)
	protected.Handle("/requests/{id}/rate", rating.Wrap(rh.RateRequest)).Methods(http.MethodPost)
	protected.HandleFunc("/requests/{id}/pay", rh.PayRequest).Methods(http.MethodPost)
	protected.HandleFunc("/requests/{id}/messages", rh.AddMessage).Methods(http.MethodPost)
	protected.HandleFunc("/requests/{id}/messages", rh.ListMessages).Methods(http.MethodGet)

	protected.HandleFunc("/notifications", rh.ListNotifications).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/read-all", rh.MarkAllNotificationsRead).Methods(http.MethodPatch)
	protected.HandleFunc("/notifications/{id}/read", rh.MarkNotificationRead).Methods(http.MethodPatch)

	return router
}

// Health handler
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}
