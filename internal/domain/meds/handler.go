package meds

import (
	"net/http"
	"time"

	"vetsoft/internal/platform/logger"
	"vetsoft/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/meds", func(mr chi.Router) {
		mr.Get("/", listMedsHandler(svc, log))
		mr.Post("/", createMedHandler(svc, log))

		mr.Get("/{medID}", getMedHandler(svc, log))
		mr.Patch("/{medID}", updateMedHandler(svc, log))
		mr.Delete("/{medID}", deleteMedHandler(svc, log))
	})
}

// medRequest acepta dose como string o número.
type medRequest struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
	Dose string `json:"dose" example:"2.5"`
}

type medResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Desc      string    `json:"desc"`
	Dose      float64   `json:"dose"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// listMedsHandler godoc
// @Summary Listar medicamentos
// @Tags meds
// @Produce json
// @Success 200 {array} medResponse
// @Failure 500 {string} string "internal error"
// @Router /meds [get]
func listMedsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			web.WriteError(w, r, log, "med", err)
			return
		}

		out := make([]medResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedResponse(m))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// createMedHandler godoc
// @Summary Crear medicamento
// @Description Nombre, descripción y dosis son obligatorios; la dosis debe estar entre 1 y 10.
// @Tags meds
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body medRequest true "Datos del medicamento"
// @Success 201 {object} medResponse
// @Failure 400 {object} web.ErrorsResponse "errores por campo"
// @Router /meds [post]
func createMedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := web.DecodeFields(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		m, err := svc.Save(r.Context(), fields)
		if err != nil {
			web.WriteError(w, r, log, "med", err)
			return
		}

		log.Info("med saved", map[string]any{"id": m.ID})
		web.WriteJSON(w, http.StatusCreated, toMedResponse(m))
	}
}

// getMedHandler godoc
// @Summary Obtener medicamento
// @Tags meds
// @Produce json
// @Param medID path string true "ID del medicamento"
// @Success 200 {object} medResponse
// @Failure 404 {string} string "med not found"
// @Router /meds/{medID} [get]
func getMedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medID"))
		if err != nil {
			web.WriteError(w, r, log, "med", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toMedResponse(m))
	}
}

// updateMedHandler godoc
// @Summary Actualizar medicamento
// @Description Revalida el formulario completo: name, desc y dose son obligatorios también al actualizar.
// @Tags meds
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param medID path string true "ID del medicamento"
// @Param payload body medRequest true "Campos a modificar"
// @Success 200 {object} medResponse
// @Failure 400 {object} web.ErrorsResponse "errores por campo"
// @Failure 404 {string} string "med not found"
// @Router /meds/{medID} [patch]
func updateMedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := web.DecodeFields(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		m, err := svc.Update(r.Context(), chi.URLParam(r, "medID"), fields)
		if err != nil {
			web.WriteError(w, r, log, "med", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toMedResponse(m))
	}
}

// deleteMedHandler godoc
// @Summary Eliminar medicamento
// @Tags meds
// @Param medID path string true "ID del medicamento"
// @Success 204
// @Failure 404 {string} string "med not found"
// @Router /meds/{medID} [delete]
func deleteMedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "medID")
		if err := svc.Delete(r.Context(), id); err != nil {
			web.WriteError(w, r, log, "med", err)
			return
		}

		log.Info("med deleted", map[string]any{"id": id})
		w.WriteHeader(http.StatusNoContent)
	}
}

func toMedResponse(m Med) medResponse {
	return medResponse{
		ID:        m.ID,
		Name:      m.Name,
		Desc:      m.Desc,
		Dose:      m.Dose,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
