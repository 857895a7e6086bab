package pets

import (
	"net/http"
	"time"

	"vetsoft/internal/platform/logger"
	"vetsoft/internal/platform/validation"
	"vetsoft/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, log))
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/breeds", listBreedsHandler())

		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Patch("/{petID}", updatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

type petRequest struct {
	Name     string `json:"name"`
	Breed    Breed  `json:"breed" example:"Perro"`
	Birthday string `json:"birthday" example:"2020-01-31"`
}

type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Breed     Breed     `json:"breed"`
	Birthday  string    `json:"birthday" example:"2020-01-31"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			web.WriteError(w, r, log, "pet", err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// listBreedsHandler godoc
// @Summary Listar razas
// @Description Razas aceptadas por el alta de mascotas, en el orden del formulario.
// @Tags pets
// @Produce json
// @Success 200 {array} string
// @Router /pets/breeds [get]
func listBreedsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, http.StatusOK, Breeds())
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Nombre, raza (de la lista) y fecha de nacimiento (YYYY-MM-DD, no futura) son obligatorios.
// @Tags pets
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} web.ErrorsResponse "errores por campo"
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := web.DecodeFields(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Save(r.Context(), fields)
		if err != nil {
			web.WriteError(w, r, log, "pet", err)
			return
		}

		log.Info("pet saved", map[string]any{"id": p.ID, "breed": string(p.Breed)})
		web.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			web.WriteError(w, r, log, "pet", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Update parcial. Una fecha inválida o futura rechaza el update; una raza fuera de la lista se ignora.
// @Tags pets
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body petRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} web.ErrorsResponse "fecha inválida"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := web.DecodeFields(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), fields)
		if err != nil {
			web.WriteError(w, r, log, "pet", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "petID")
		if err := svc.Delete(r.Context(), id); err != nil {
			web.WriteError(w, r, log, "pet", err)
			return
		}

		log.Info("pet deleted", map[string]any{"id": id})
		w.WriteHeader(http.StatusNoContent)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Breed:     p.Breed,
		Birthday:  p.Birthday.Format(validation.DateLayout),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
