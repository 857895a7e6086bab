package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"vetsoft/internal/router"
)

func TestHTTP_EndToEnd_Client(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Alta inválida: un error por campo
	{
		st, body := doReq(t, ts.URL, "POST", "/clients", map[string]any{})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 on empty client, got %d body=%s", st, string(body))
		}
		errs := decodeErrors(t, body)
		if errs["name"] != "Por favor ingrese un nombre" || errs["phone"] != "Por favor ingrese un teléfono" {
			t.Fatalf("unexpected errors: %v", errs)
		}
	}

	// 2) Alta válida
	clientID := create(t, ts.URL, "/clients", map[string]any{
		"name":  "Juan Sebastian Veron",
		"phone": "221555232",
		"email": "brujita75@vetsoft.com",
	})

	// 3) Teléfono con letras: se ignora, sigue 200
	{
		st, body := doReq(t, ts.URL, "PATCH", "/clients/"+clientID, map[string]any{"phone": "221abc"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch client, got %d body=%s", st, string(body))
		}
		var got struct {
			Phone string `json:"phone"`
		}
		_ = json.Unmarshal(body, &got)
		if got.Phone != "221555232" {
			t.Fatalf("expected phone to keep persisted value, got %q", got.Phone)
		}
	}

	// 4) Email fuera del dominio: 400 y nada cambia
	{
		st, body := doReq(t, ts.URL, "PATCH", "/clients/"+clientID, map[string]any{
			"name":  "Otro Nombre",
			"email": "brujita75@hotmail.com",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 patch client email, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/clients/"+clientID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get client, got %d", st)
		}
		if !strings.Contains(string(body), `"name":"Juan Sebastian Veron"`) {
			t.Fatalf("client changed after rejected update: %s", string(body))
		}
	}

	// 5) Baja y 404 posterior
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/clients/"+clientID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete client, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/clients/"+clientID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 on second delete, got %d", st)
		}
	}
}

func TestHTTP_Client_FormEncoded(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	form := url.Values{}
	form.Set("name", "Ana")
	form.Set("phone", "12345")
	form.Set("email", "ana@vetsoft.com")

	res, err := http.Post(ts.URL+"/clients", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("post form: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(res.Body)
		t.Fatalf("expected 201 create client from form, got %d body=%s", res.StatusCode, string(body))
	}
}

func TestHTTP_Product_Stock(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	productID := create(t, ts.URL, "/products", map[string]any{
		"name":  "Pipeta",
		"type":  "Antiparasitario",
		"price": "350.99",
		"stock": 0,
	})

	// stock 0 => aviso en el listado
	{
		st, body := doReq(t, ts.URL, "GET", "/products", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list products, got %d", st)
		}
		var list struct {
			Warnings []string `json:"warnings"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list.Warnings) != 1 || list.Warnings[0] != `El stock del producto "Pipeta" es 0.` {
			t.Fatalf("unexpected warnings: %v", list.Warnings)
		}
	}

	// stock negativo: 400 y el stock no cambia
	{
		st, body := doReq(t, ts.URL, "PATCH", "/products/"+productID, map[string]any{"stock": "-5"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 negative stock, got %d body=%s", st, string(body))
		}
		if decodeErrors(t, body)["stock"] != "El stock no puede ser negativo." {
			t.Fatalf("unexpected body: %s", string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "POST", "/products/"+productID+"/stock/increment", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"stock":1`) {
			t.Fatalf("expected stock 1 after increment, got %d body=%s", st, string(body))
		}
	}

	{
		st, _ := doReq(t, ts.URL, "POST", "/products/missing/stock/decrement", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 decrement unknown product, got %d", st)
		}
	}
}

func TestHTTP_Pets(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	{
		st, body := doReq(t, ts.URL, "GET", "/pets/breeds", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 breeds, got %d", st)
		}
		var breeds []string
		_ = json.Unmarshal(body, &breeds)
		if len(breeds) != 6 || breeds[0] != "Perro" {
			t.Fatalf("unexpected breeds: %v", breeds)
		}
	}

	petID := create(t, ts.URL, "/pets", map[string]any{
		"name":     "Milo",
		"breed":    "Perro",
		"birthday": "2020-01-31",
	})

	{
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+petID, map[string]any{"birthday": "2022-13-32"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 bad birthday, got %d body=%s", st, string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"birthday":"2020-01-31"`) {
			t.Fatalf("expected persisted birthday, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_Med_DoseOutOfRange(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/meds", map[string]any{
		"name": "Paracetamol",
		"desc": "Analgésico",
		"dose": 10.5,
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 dose out of range, got %d body=%s", st, string(body))
	}
	if decodeErrors(t, body)["dose"] != "La dosis debe estar entre 1 y 10" {
		t.Fatalf("unexpected body: %s", string(body))
	}
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected swagger doc, got %d", st)
	}

	var doc struct {
		Paths map[string]map[string]struct {
			Summary   string `json:"summary"`
			Responses map[string]struct {
				Schema map[string]any `json:"schema"`
			} `json:"responses"`
		} `json:"paths"`
		Definitions map[string]any `json:"definitions"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("decode swagger doc: %v", err)
	}

	for path, ops := range doc.Paths {
		for method, op := range ops {
			if op.Summary == "" {
				t.Fatalf("%s %s: missing summary", method, path)
			}
		}
	}
	if doc.Paths["/clients"]["get"].Responses["200"].Schema["type"] != "array" {
		t.Fatalf("GET /clients 200 should be an array schema")
	}
	for _, def := range []string{"clients.clientResponse", "products.productListResponse", "pets.petResponse", "pets.Breed", "meds.medResponse"} {
		if _, ok := doc.Definitions[def]; !ok {
			t.Fatalf("swagger doc missing definition %s", def)
		}
	}
}

func create(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func decodeErrors(t *testing.T, body []byte) map[string]string {
	t.Helper()

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode errors: %v body=%s", err, string(body))
	}
	return resp.Errors
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
