package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"phonecheck_backend/internal/numbering/engine"
	"phonecheck_backend/internal/numbering/plan"
	"phonecheck_backend/internal/numbering/service"
	"phonecheck_backend/internal/numbering/transport"
	"phonecheck_backend/platform/logger"
	"phonecheck_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := plan.Load("")
	if err != nil {
		t.Fatalf("loading embedded plan failed: %v", err)
	}
	svc := service.New(engine.New(store), service.NewDirectory(), logger.New("development"))
	h := New(svc, validator.New())

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1/phone-numbers"))
	return r
}

func postValidate(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/phone-numbers/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateEndpoint_ValidNumber(t *testing.T) {
	r := newTestRouter(t)

	w := postValidate(t, r, `{"number": "+44 20 7946 0958"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp transport.ValidateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	if !resp.Valid || resp.RegionCode != "GB" {
		t.Fatalf("expected valid GB response, got %+v", resp)
	}
	if resp.RegionName != "United Kingdom" {
		t.Fatalf("expected display name, got %q", resp.RegionName)
	}
	if resp.InternationalFormat != "+44 20 7946 0958" {
		t.Fatalf("unexpected international format %q", resp.InternationalFormat)
	}
}

func TestValidateEndpoint_InvalidNumberIsOK(t *testing.T) {
	r := newTestRouter(t)

	w := postValidate(t, r, `{"number": "+1 000-000-0000"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for merely-invalid number, got %d", w.Code)
	}

	var resp transport.ValidateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	if resp.Valid {
		t.Fatal("expected valid=false")
	}
	if resp.RegionCode != engine.RegionUnknown {
		t.Fatalf("expected region %q, got %s", engine.RegionUnknown, resp.RegionCode)
	}
}

func TestValidateEndpoint_EmptyInputIsBadRequest(t *testing.T) {
	r := newTestRouter(t)

	w := postValidate(t, r, `{"number": "---"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty input, got %d", w.Code)
	}
}

func TestValidateEndpoint_AmbiguousRegionIsBadRequest(t *testing.T) {
	r := newTestRouter(t)

	w := postValidate(t, r, `{"number": "12345"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for ambiguous region, got %d", w.Code)
	}
}

func TestValidateEndpoint_RejectsBadPayload(t *testing.T) {
	r := newTestRouter(t)

	// Missing required number field.
	if w := postValidate(t, r, `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing number, got %d", w.Code)
	}
	// Malformed region hint.
	if w := postValidate(t, r, `{"number": "12345", "default_region": "G1B"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed region, got %d", w.Code)
	}
	// Not JSON at all.
	if w := postValidate(t, r, `not json`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}
}

func TestRegionsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/phone-numbers/regions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp transport.RegionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	if len(resp.Regions) == 0 {
		t.Fatal("expected regions in response")
	}
	for _, region := range resp.Regions {
		if region.Code == "" || region.CountryCallingCode == 0 {
			t.Fatalf("incomplete region entry: %+v", region)
		}
	}
}
