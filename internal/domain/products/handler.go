package products

import (
	"net/http"
	"time"

	"vetsoft/internal/platform/logger"
	"vetsoft/internal/platform/web"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/products", func(pr chi.Router) {
		pr.Get("/", listProductsHandler(svc, log))
		pr.Post("/", createProductHandler(svc, log))

		pr.Get("/{productID}", getProductHandler(svc, log))
		pr.Patch("/{productID}", updateProductHandler(svc, log))
		pr.Delete("/{productID}", deleteProductHandler(svc, log))

		pr.Post("/{productID}/stock/increment", incrementStockHandler(svc, log))
		pr.Post("/{productID}/stock/decrement", decrementStockHandler(svc, log))
	})
}

type productRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Price string `json:"price" example:"1500.50"`
	Stock string `json:"stock" example:"10"`
}

type productResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price" swaggertype:"string"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// productListResponse incluye avisos de productos sin stock.
type productListResponse struct {
	Products []productResponse `json:"products"`
	Warnings []string          `json:"warnings"`
}

// listProductsHandler godoc
// @Summary Listar productos
// @Description Devuelve los productos y un aviso por cada producto con stock 0.
// @Tags products
// @Produce json
// @Success 200 {object} productListResponse
// @Failure 500 {string} string "internal error"
// @Router /products [get]
func listProductsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			web.WriteError(w, r, log, "product", err)
			return
		}

		out := productListResponse{
			Products: make([]productResponse, 0, len(items)),
			Warnings: OutOfStockWarnings(items),
		}
		for _, p := range items {
			out.Products = append(out.Products, toProductResponse(p))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// createProductHandler godoc
// @Summary Crear producto
// @Description Nombre, tipo, precio y stock son obligatorios. El stock debe ser un entero no negativo.
// @Tags products
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body productRequest true "Datos del producto"
// @Success 201 {object} productResponse
// @Failure 400 {object} web.ErrorsResponse "errores por campo"
// @Router /products [post]
func createProductHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := web.DecodeFields(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Save(r.Context(), fields)
		if err != nil {
			web.WriteError(w, r, log, "product", err)
			return
		}

		log.Info("product saved", map[string]any{"id": p.ID})
		web.WriteJSON(w, http.StatusCreated, toProductResponse(p))
	}
}

// getProductHandler godoc
// @Summary Obtener producto
// @Tags products
// @Produce json
// @Param productID path string true "ID del producto"
// @Success 200 {object} productResponse
// @Failure 404 {string} string "product not found"
// @Router /products/{productID} [get]
func getProductHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			web.WriteError(w, r, log, "product", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toProductResponse(p))
	}
}

// updateProductHandler godoc
// @Summary Actualizar producto
// @Description Update parcial. Si viene stock, debe ser un entero no negativo (si no, 400 y no se toca nada).
// @Tags products
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param productID path string true "ID del producto"
// @Param payload body productRequest true "Campos a modificar"
// @Success 200 {object} productResponse
// @Failure 400 {object} web.ErrorsResponse "stock inválido"
// @Failure 404 {string} string "product not found"
// @Router /products/{productID} [patch]
func updateProductHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := web.DecodeFields(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if errs := ValidateStockUpdate(fields); len(errs) > 0 {
			web.WriteValidation(w, errs)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "productID"), fields)
		if err != nil {
			web.WriteError(w, r, log, "product", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toProductResponse(p))
	}
}

// deleteProductHandler godoc
// @Summary Eliminar producto
// @Tags products
// @Param productID path string true "ID del producto"
// @Success 204
// @Failure 404 {string} string "product not found"
// @Router /products/{productID} [delete]
func deleteProductHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productID")
		if err := svc.Delete(r.Context(), id); err != nil {
			web.WriteError(w, r, log, "product", err)
			return
		}

		log.Info("product deleted", map[string]any{"id": id})
		w.WriteHeader(http.StatusNoContent)
	}
}

// incrementStockHandler godoc
// @Summary Sumar una unidad de stock
// @Tags products
// @Produce json
// @Param productID path string true "ID del producto"
// @Success 200 {object} productResponse
// @Failure 404 {string} string "product not found"
// @Router /products/{productID}/stock/increment [post]
func incrementStockHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.IncrementStock(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			web.WriteError(w, r, log, "product", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toProductResponse(p))
	}
}

// decrementStockHandler godoc
// @Summary Restar una unidad de stock
// @Description Con stock 0 no hace nada.
// @Tags products
// @Produce json
// @Param productID path string true "ID del producto"
// @Success 200 {object} productResponse
// @Failure 404 {string} string "product not found"
// @Router /products/{productID}/stock/decrement [post]
func decrementStockHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.DecrementStock(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			web.WriteError(w, r, log, "product", err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toProductResponse(p))
	}
}

func toProductResponse(p Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
