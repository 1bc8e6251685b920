package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "pet-adoption-api/internal/adapters/storage/memory"
	pg "pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/shelters"
	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-adoption-api/docs"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	Logger       logger.Logger     // puede ser nil (sin request log)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		petRepo      pets.Repository
		adoptionRepo adoptions.Repository
		shelterRepo  shelters.Repository
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
		petRepo = pg.NewPetsRepo(db)
		adoptionRepo = pg.NewAdoptionsRepo(db)
		shelterRepo = pg.NewSheltersRepo(db)
	} else {
		petRepo = mem.NewPetRepo()
		adoptionRepo = mem.NewAdoptionRepo()
		shelterRepo = mem.NewShelterRepo()
	}

	// Services por módulo. adoptions recibe pets como tracker:
	// todas las escrituras de disponibilidad pasan por ahí.
	petsSvc := pets.NewService(petRepo)
	adoptionsSvc := adoptions.NewService(adoptionRepo, petsSvc)
	sheltersSvc := shelters.NewService(shelterRepo)

	pets.RegisterRoutes(r, petsSvc)
	adoptions.RegisterRoutes(r, adoptionsSvc)
	shelters.RegisterRoutes(r, sheltersSvc)

	return r
}
