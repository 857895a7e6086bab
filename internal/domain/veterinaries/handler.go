package veterinaries

import (
	"net/http"
	"time"

	"vetsoft/internal/platform/logger"
	"vetsoft/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/veterinaries", func(vr chi.Router) {
		vr.Get("/", listVeterinariesHandler(svc, log))
		vr.Post("/", createVeterinaryHandler(svc, log))

		vr.Get("/{veterinaryID}", getVeterinaryHandler(svc, log))
		vr.Patch("/{veterinaryID}", updateVeterinaryHandler(svc, log))
		vr.Delete("/{veterinaryID}", deleteVeterinaryHandler(svc, log))
	})
}

type veterinaryRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type veterinaryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// listVeterinariesHandler godoc
// @Summary Listar veterinarios
// @Tags veterinaries
// @Produce json
// @Success 200 {array} veterinaryResponse
// @Failure 500 {string} string "internal error"
// @Router /veterinaries [get]
func listVeterinariesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			web.WriteError(w, r, log, "veterinary", err)
			return
		}

		out := make([]veterinaryResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVeterinaryResponse(v))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// createVeterinaryHandler godoc
// @Summary Crear veterinario
// @Description Nombre, teléfono y email (con "@") son obligatorios.
// @Tags veterinaries
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body veterinaryRequest true "Datos del veterinario"
// @Success 201 {object} veterinaryResponse
// @Failure 400 {object} web.ErrorsResponse "errores por campo"
// @Router /veterinaries [post]
func createVeterinaryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := web.DecodeFields(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		v, err := svc.Save(r.Context(), fields)
		if err != nil {
			web.WriteError(w, r, log, "veterinary", err)
			return
		}

		log.Info("veterinary saved", map[string]any{"id": v.ID})
		web.WriteJSON(w, http.StatusCreated, toVeterinaryResponse(v))
	}
}

// getVeterinaryHandler godoc
// @Summary Obtener veterinario
// @Tags veterinaries
// @Produce json
// @Param veterinaryID path string true "ID del veterinario"
// @Success 200 {object} veterinaryResponse
// @Failure 404 {string} string "veterinary not found"
// @Router /veterinaries/{veterinaryID} [get]
func getVeterinaryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "veterinaryID"))
		if err != nil {
			web.WriteError(w, r, log, "veterinary", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toVeterinaryResponse(v))
	}
}

// updateVeterinaryHandler godoc
// @Summary Actualizar veterinario
// @Description Update parcial sin revalidación: los campos vacíos u omitidos conservan el valor actual.
// @Tags veterinaries
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param veterinaryID path string true "ID del veterinario"
// @Param payload body veterinaryRequest true "Campos a modificar"
// @Success 200 {object} veterinaryResponse
// @Failure 404 {string} string "veterinary not found"
// @Router /veterinaries/{veterinaryID} [patch]
func updateVeterinaryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := web.DecodeFields(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		v, err := svc.Update(r.Context(), chi.URLParam(r, "veterinaryID"), fields)
		if err != nil {
			web.WriteError(w, r, log, "veterinary", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toVeterinaryResponse(v))
	}
}

// deleteVeterinaryHandler godoc
// @Summary Eliminar veterinario
// @Tags veterinaries
// @Param veterinaryID path string true "ID del veterinario"
// @Success 204
// @Failure 404 {string} string "veterinary not found"
// @Router /veterinaries/{veterinaryID} [delete]
func deleteVeterinaryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "veterinaryID")
		if err := svc.Delete(r.Context(), id); err != nil {
			web.WriteError(w, r, log, "veterinary", err)
			return
		}

		log.Info("veterinary deleted", map[string]any{"id": id})
		w.WriteHeader(http.StatusNoContent)
	}
}

func toVeterinaryResponse(v Veterinary) veterinaryResponse {
	return veterinaryResponse{
		ID:        v.ID,
		Name:      v.Name,
		Phone:     v.Phone,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
