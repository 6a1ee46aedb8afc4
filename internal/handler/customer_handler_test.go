package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/steelbridge/fabshop/internal/repository"
	"github.com/steelbridge/fabshop/internal/service"
	"github.com/steelbridge/fabshop/internal/testutil"
)

func setupCustomerRouter(t *testing.T) (*gin.Engine, *repository.Repositories) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)

	h := NewCustomerHandler(service.NewCustomerService(repos.Customer))
	jh := NewJobHandler(service.NewJobService(repos.Job, repos.JobMaterial, repos.WorkLog, repos.Note, repos.Shipment))

	router := testutil.SetupRouter()
	router.POST("/api/v1/customers", h.Create)
	router.GET("/api/v1/customers/:id", h.Get)
	router.DELETE("/api/v1/customers/:id", h.Delete)
	router.GET("/api/v1/customers/:id/can-delete", h.CanDelete)
	router.POST("/api/v1/jobs", jh.Create)
	return router, repos
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func TestCustomerCreateAndGet(t *testing.T) {
	router, _ := setupCustomerRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/customers", gin.H{
		"name":  "Harbor Iron Works",
		"phone": "555-0100",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Code != 0 {
		t.Fatalf("create code = %d, want 0", env.Code)
	}
	var created struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if created.ID == 0 || created.Name != "Harbor Iron Works" {
		t.Fatalf("created = %+v", created)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/customers/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
}

func TestCustomerCreateValidationStatus(t *testing.T) {
	router, _ := setupCustomerRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/customers", gin.H{"phone": "555-0100"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Code != 10001 {
		t.Errorf("code = %d, want 10001", env.Code)
	}
}

func TestCustomerGetNotFoundStatus(t *testing.T) {
	router, _ := setupCustomerRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/customers/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Code != 10002 {
		t.Errorf("code = %d, want 10002", env.Code)
	}
}

func TestCustomerDeleteConflictStatus(t *testing.T) {
	router, _ := setupCustomerRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/customers", gin.H{"name": "Busy Customer"})
	if w.Code != http.StatusOK {
		t.Fatalf("create customer: %d", w.Code)
	}
	w = doJSON(t, router, http.MethodPost, "/api/v1/jobs", gin.H{
		"customer_id": 1,
		"description": "fence section",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create job: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/customers/1/can-delete", nil)
	env := decodeEnvelope(t, w)
	var check struct {
		CanDelete bool `json:"can_delete"`
	}
	if err := json.Unmarshal(env.Data, &check); err != nil {
		t.Fatalf("decode can-delete: %v", err)
	}
	if check.CanDelete {
		t.Error("can_delete = true for customer with a job")
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/customers/1", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("delete status = %d, want 409", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Code != 10003 {
		t.Errorf("code = %d, want 10003", env.Code)
	}
}

func TestCustomerBadIDParam(t *testing.T) {
	router, _ := setupCustomerRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/customers/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
