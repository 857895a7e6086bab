package providers

import (
	"net/http"
	"time"

	"vetsoft/internal/platform/logger"
	"vetsoft/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/providers", func(pr chi.Router) {
		pr.Get("/", listProvidersHandler(svc, log))
		pr.Post("/", createProviderHandler(svc, log))

		pr.Get("/{providerID}", getProviderHandler(svc, log))
		pr.Patch("/{providerID}", updateProviderHandler(svc, log))
		pr.Delete("/{providerID}", deleteProviderHandler(svc, log))
	})
}

type providerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type providerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// listProvidersHandler godoc
// @Summary Listar proveedores
// @Tags providers
// @Produce json
// @Success 200 {array} providerResponse
// @Failure 500 {string} string "internal error"
// @Router /providers [get]
func listProvidersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			web.WriteError(w, r, log, "provider", err)
			return
		}

		out := make([]providerResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProviderResponse(p))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// createProviderHandler godoc
// @Summary Crear proveedor
// @Description Nombre, email (con "@") y dirección son obligatorios.
// @Tags providers
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body providerRequest true "Datos del proveedor"
// @Success 201 {object} providerResponse
// @Failure 400 {object} web.ErrorsResponse "errores por campo"
// @Router /providers [post]
func createProviderHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := web.DecodeFields(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Save(r.Context(), fields)
		if err != nil {
			web.WriteError(w, r, log, "provider", err)
			return
		}

		log.Info("provider saved", map[string]any{"id": p.ID})
		web.WriteJSON(w, http.StatusCreated, toProviderResponse(p))
	}
}

// getProviderHandler godoc
// @Summary Obtener proveedor
// @Tags providers
// @Produce json
// @Param providerID path string true "ID del proveedor"
// @Success 200 {object} providerResponse
// @Failure 404 {string} string "provider not found"
// @Router /providers/{providerID} [get]
func getProviderHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "providerID"))
		if err != nil {
			web.WriteError(w, r, log, "provider", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toProviderResponse(p))
	}
}

// updateProviderHandler godoc
// @Summary Actualizar proveedor
// @Description Update parcial sin revalidación: los campos vacíos u omitidos conservan el valor actual.
// @Tags providers
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param providerID path string true "ID del proveedor"
// @Param payload body providerRequest true "Campos a modificar"
// @Success 200 {object} providerResponse
// @Failure 404 {string} string "provider not found"
// @Router /providers/{providerID} [patch]
func updateProviderHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := web.DecodeFields(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "providerID"), fields)
		if err != nil {
			web.WriteError(w, r, log, "provider", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toProviderResponse(p))
	}
}

// deleteProviderHandler godoc
// @Summary Eliminar proveedor
// @Tags providers
// @Param providerID path string true "ID del proveedor"
// @Success 204
// @Failure 404 {string} string "provider not found"
// @Router /providers/{providerID} [delete]
func deleteProviderHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "providerID")
		if err := svc.Delete(r.Context(), id); err != nil {
			web.WriteError(w, r, log, "provider", err)
			return
		}

		log.Info("provider deleted", map[string]any{"id": id})
		w.WriteHeader(http.StatusNoContent)
	}
}

func toProviderResponse(p Provider) providerResponse {
	return providerResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
