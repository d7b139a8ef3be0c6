package api

import (
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	changeEquipmentHandler "github.com/m04kA/SMC-CourtBookingForm/internal/api/handlers/change_equipment"
	changeHoursHandler "github.com/m04kA/SMC-CourtBookingForm/internal/api/handlers/change_hours"
	commitBookingHandler "github.com/m04kA/SMC-CourtBookingForm/internal/api/handlers/commit_booking"
	createSessionHandler "github.com/m04kA/SMC-CourtBookingForm/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/m04kA/SMC-CourtBookingForm/internal/api/handlers/delete_session"
	getSessionHandler "github.com/m04kA/SMC-CourtBookingForm/internal/api/handlers/get_session"
	updateDraftHandler "github.com/m04kA/SMC-CourtBookingForm/internal/api/handlers/update_draft"
	"github.com/m04kA/SMC-CourtBookingForm/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form"
	"github.com/m04kA/SMC-CourtBookingForm/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RouterConfig зависимости и настройки HTTP роутера
type RouterConfig struct {
	FormService    *form.Service
	Metrics        *metrics.Metrics // nil - метрики отключены
	MetricsPath    string
	AllowedOrigins []string
	Logger         Logger
}

// recoveryLogger адаптирует Logger под gorilla/handlers
type recoveryLogger struct {
	log Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("HTTP handler panic: %v", v)
}

// NewRouter собирает маршруты API формы бронирования
func NewRouter(cfg RouterConfig) http.Handler {
	createSession := createSessionHandler.NewHandler(cfg.FormService, cfg.Logger)
	getSession := getSessionHandler.NewHandler(cfg.FormService, cfg.Logger)
	deleteSession := deleteSessionHandler.NewHandler(cfg.FormService, cfg.Logger)
	updateDraft := updateDraftHandler.NewHandler(cfg.FormService, cfg.Logger)
	changeHours := changeHoursHandler.NewHandler(cfg.FormService, cfg.Logger)
	changeEquipment := changeEquipmentHandler.NewHandler(cfg.FormService, cfg.Logger)
	commitBooking := commitBookingHandler.NewHandler(cfg.FormService, cfg.Logger)

	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(cfg.Metrics))
		r.Handle(cfg.MetricsPath, cfg.Metrics.Handler()).Methods(http.MethodGet)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Сессии формы ---
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", deleteSession.Handle).Methods(http.MethodDelete)

	// --- Поля черновика ---
	api.HandleFunc("/sessions/{sessionId}/draft", updateDraft.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/hours", changeHours.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/equipment/{item}", changeEquipment.Handle).Methods(http.MethodPost)

	// --- Бронирование ---
	api.HandleFunc("/sessions/{sessionId}/commit", commitBooking.Handle).Methods(http.MethodPost)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	recovery := gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(recoveryLogger{log: cfg.Logger}),
	)

	return recovery(cors(r))
}
