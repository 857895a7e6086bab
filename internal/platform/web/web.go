package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"vetsoft/internal/platform/logger"
	"vetsoft/internal/platform/validation"
	"vetsoft/internal/ports/storage"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ErrorsResponse es el cuerpo de un 400 por validación.
type ErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteValidation(w http.ResponseWriter, errs validation.Errors) {
	WriteJSON(w, http.StatusBadRequest, ErrorsResponse{Errors: errs})
}

// WriteError traduce un error de servicio a la respuesta HTTP:
// validación -> 400 con el mapa de errores, not found -> 404, resto -> 500.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, entity string, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		WriteValidation(w, verrs)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, entity+" not found", http.StatusNotFound)
	default:
		log.Error("request failed", map[string]any{
			"entity":     entity,
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": chimw.GetReqID(r.Context()),
			"err":        err.Error(),
		})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// maxFormMemory limita lo que ParseMultipartForm guarda en memoria; los
// formularios de la clínica no suben archivos.
const maxFormMemory = 1 << 20

// DecodeFields lee el cuerpo como formulario (urlencoded o multipart) o como
// objeto JSON plano (valores string, número, bool o null) y lo normaliza a
// validation.Fields. Un cuerpo vacío equivale a un formulario sin campos.
func DecodeFields(r *http.Request) (validation.Fields, error) {
	fields := validation.Fields{}

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form: %w", err)
		}
		return formFields(r.PostForm), nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, fmt.Errorf("invalid form: %w", err)
		}
		return formFields(r.PostForm), nil
	}

	if r.Body == nil {
		return fields, nil
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return fields, nil
		}
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	for k, v := range raw {
		switch x := v.(type) {
		case nil:
			fields[k] = ""
		case string:
			fields[k] = x
		case json.Number:
			fields[k] = x.String()
		case bool:
			fields[k] = strconv.FormatBool(x)
		default:
			return nil, fmt.Errorf("invalid json: field %q must be a scalar", k)
		}
	}
	return fields, nil
}

func formFields(form url.Values) validation.Fields {
	fields := make(validation.Fields, len(form))
	for k := range form {
		fields[k] = form.Get(k)
	}
	return fields
}
