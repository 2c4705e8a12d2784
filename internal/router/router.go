package router

import (
	"database/sql"
	"net/http"
	"os"

	"pills-tracker/internal/adapters/auth/static"
	mem "pills-tracker/internal/adapters/storage/memory"
	pg "pills-tracker/internal/adapters/storage/postgres"
	"pills-tracker/internal/domain/adherence"
	"pills-tracker/internal/domain/medications"
	"pills-tracker/internal/domain/schedule"
	"pills-tracker/internal/middleware"
	"pills-tracker/internal/platform/logger"
	"pills-tracker/internal/platform/metrics"
	"pills-tracker/internal/ports/auth"

	_ "pills-tracker/docs" // registra el spec swagger generado

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev con X-Debug-User-ID)
	Roles        auth.RoleResolver // puede ser nil => resolver estático desde ADMIN_USERS

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	roles := opts.Roles
	if roles == nil {
		roles = static.NewResolverFromEnv()
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		medRepo  medications.Repository
		logsRepo adherence.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		medRepo = pg.NewMedicationsRepo(db)
		logsRepo = pg.NewLogsRepo(db)
	} else {
		medRepo = mem.NewMedicationsRepo()
		logsRepo = mem.NewLogsRepo()
	}

	collector := metrics.NewCollector()

	// Services por módulo. El de medicamentos recibe el repo de logs para la
	// baja en cascada; el de adherencia consulta medicamentos al marcar.
	medsSvc := medications.NewService(medRepo, logsRepo)
	adhSvc := adherence.NewService(logsRepo, medsSvc).WithMetrics(collector)

	writeLimit := middleware.NewWriteRateLimit(0, 0) // defaults por env/constantes

	// Rutas por módulo
	medications.RegisterRoutes(r, medsSvc, roles, log)
	adherence.RegisterRoutes(r, adhSvc, roles, log, writeLimit.Handler)
	schedule.RegisterRoutes(r, medsSvc, adhSvc, roles)

	r.Handle("/metrics", collector.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
