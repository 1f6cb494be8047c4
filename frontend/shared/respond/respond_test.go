package respond

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sampark/infrastructure/apperrors"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("tasks %q: %w", "T-9", apperrors.ErrNotFound), http.StatusNotFound},
		{apperrors.Validation("bad"), http.StatusBadRequest},
		{fmt.Errorf("wrap: %w", apperrors.ErrConflict), http.StatusConflict},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.err); got != tc.want {
			t.Fatalf("StatusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestErrorHidesInternalMessages(t *testing.T) {
	rr := httptest.NewRecorder()
	Error(rr, httptest.NewRequest(http.MethodGet, "/api/projects", nil), errors.New("secret detail"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "secret detail") {
		t.Fatalf("internal error leaked: %s", rr.Body.String())
	}
}

func TestJSONUnencodableValueIs500(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusOK, map[string]float64{"geo_lat": math.NaN()})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"error":"internal error"`) {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var body struct {
		Comments string `json:"comments"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"comments":"ok","extra":1}`))
	if err := DecodeJSON(req, &body); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"comments":"ok"}`))
	if err := DecodeJSON(req, &body); err != nil || body.Comments != "ok" {
		t.Fatalf("expected clean decode, got %v %+v", err, body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	if err := DecodeJSON(req, &body); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for empty body, got %v", err)
	}
}

func TestIfMatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/", nil)
	if v, err := IfMatch(req); err != nil || v != 0 {
		t.Fatalf("expected no version, got %d %v", v, err)
	}
	req.Header.Set("If-Match", `"3"`)
	if v, err := IfMatch(req); err != nil || v != 3 {
		t.Fatalf("expected version 3, got %d %v", v, err)
	}
	req.Header.Set("If-Match", "abc")
	if _, err := IfMatch(req); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
