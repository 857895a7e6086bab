package clients

import (
	"net/http"
	"time"

	"vetsoft/internal/platform/logger"
	"vetsoft/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/clients", func(cr chi.Router) {
		cr.Get("/", listClientsHandler(svc, log))
		cr.Post("/", createClientHandler(svc, log))

		cr.Get("/{clientID}", getClientHandler(svc, log))
		cr.Patch("/{clientID}", updateClientHandler(svc, log))
		cr.Delete("/{clientID}", deleteClientHandler(svc, log))
	})
}

// clientRequest documenta el formulario; el handler lo lee como campos crudos.
type clientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// listClientsHandler godoc
// @Summary Listar clientes
// @Tags clients
// @Produce json
// @Success 200 {array} clientResponse
// @Failure 500 {string} string "internal error"
// @Router /clients [get]
func listClientsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			web.WriteError(w, r, log, "client", err)
			return
		}

		out := make([]clientResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClientResponse(c))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// createClientHandler godoc
// @Summary Crear cliente
// @Description Valida nombre (sin números), teléfono (solo dígitos) y email (@vetsoft.com). La dirección es opcional.
// @Tags clients
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body clientRequest true "Datos del cliente"
// @Success 201 {object} clientResponse
// @Failure 400 {object} web.ErrorsResponse "errores por campo"
// @Router /clients [post]
func createClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := web.DecodeFields(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		c, err := svc.Save(r.Context(), fields)
		if err != nil {
			web.WriteError(w, r, log, "client", err)
			return
		}

		log.Info("client saved", map[string]any{"id": c.ID})
		web.WriteJSON(w, http.StatusCreated, toClientResponse(c))
	}
}

// getClientHandler godoc
// @Summary Obtener cliente
// @Tags clients
// @Produce json
// @Param clientID path string true "ID del cliente"
// @Success 200 {object} clientResponse
// @Failure 404 {string} string "client not found"
// @Router /clients/{clientID} [get]
func getClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "clientID"))
		if err != nil {
			web.WriteError(w, r, log, "client", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toClientResponse(c))
	}
}

// updateClientHandler godoc
// @Summary Actualizar cliente
// @Description Update parcial: los campos vacíos u omitidos conservan el valor actual. Un teléfono no numérico se ignora; un email inválido rechaza el update completo.
// @Tags clients
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param clientID path string true "ID del cliente"
// @Param payload body clientRequest true "Campos a modificar"
// @Success 200 {object} clientResponse
// @Failure 400 {object} web.ErrorsResponse "email inválido"
// @Failure 404 {string} string "client not found"
// @Router /clients/{clientID} [patch]
func updateClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := web.DecodeFields(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "clientID"), fields)
		if err != nil {
			web.WriteError(w, r, log, "client", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toClientResponse(c))
	}
}

// deleteClientHandler godoc
// @Summary Eliminar cliente
// @Tags clients
// @Param clientID path string true "ID del cliente"
// @Success 204
// @Failure 404 {string} string "client not found"
// @Router /clients/{clientID} [delete]
func deleteClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "clientID")
		if err := svc.Delete(r.Context(), id); err != nil {
			web.WriteError(w, r, log, "client", err)
			return
		}

		log.Info("client deleted", map[string]any{"id": id})
		w.WriteHeader(http.StatusNoContent)
	}
}

func toClientResponse(c Client) clientResponse {
	return clientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
