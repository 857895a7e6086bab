package router

import (
	"database/sql"
	"net/http"

	mem "vetsoft/internal/adapters/storage/memory"
	pg "vetsoft/internal/adapters/storage/postgres"
	_ "vetsoft/internal/docs"
	"vetsoft/internal/domain/clients"
	"vetsoft/internal/domain/meds"
	"vetsoft/internal/domain/pets"
	"vetsoft/internal/domain/products"
	"vetsoft/internal/domain/providers"
	"vetsoft/internal/domain/veterinaries"
	"vetsoft/internal/middleware"
	"vetsoft/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// nil => logger.Nop()
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		clientRepo     clients.Repository
		productRepo    products.Repository
		providerRepo   providers.Repository
		veterinaryRepo veterinaries.Repository
		petRepo        pets.Repository
		medRepo        meds.Repository
	)

	if db := opts.DB; db != nil {
		clientRepo = pg.NewClientsRepo(db)
		productRepo = pg.NewProductsRepo(db)
		providerRepo = pg.NewProvidersRepo(db)
		veterinaryRepo = pg.NewVeterinariesRepo(db)
		petRepo = pg.NewPetsRepo(db)
		medRepo = pg.NewMedsRepo(db)
	} else {
		clientRepo = mem.NewClientRepo()
		productRepo = mem.NewProductRepo()
		providerRepo = mem.NewProviderRepo()
		veterinaryRepo = mem.NewVeterinaryRepo()
		petRepo = mem.NewPetRepo()
		medRepo = mem.NewMedRepo()
	}

	// Rutas por módulo
	clients.RegisterRoutes(r, clients.NewService(clientRepo), log.With(map[string]any{"module": "clients"}))
	products.RegisterRoutes(r, products.NewService(productRepo), log.With(map[string]any{"module": "products"}))
	providers.RegisterRoutes(r, providers.NewService(providerRepo), log.With(map[string]any{"module": "providers"}))
	veterinaries.RegisterRoutes(r, veterinaries.NewService(veterinaryRepo), log.With(map[string]any{"module": "veterinaries"}))
	pets.RegisterRoutes(r, pets.NewService(petRepo), log.With(map[string]any{"module": "pets"}))
	meds.RegisterRoutes(r, meds.NewService(medRepo), log.With(map[string]any{"module": "meds"}))

	return r
}
