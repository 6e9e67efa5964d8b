package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/ballboxd/ballboxd/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestMapError_StatusCodes(t *testing.T) {
	cases := []struct {
		err        error
		wantCode   int
		wantStatus string
	}{
		{fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), http.StatusBadRequest, "INVALID_ARGUMENT"},
		{fmt.Errorf("%w: missing", usecase.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("%w: who are you", usecase.ErrUnauthorized), http.StatusUnauthorized, "UNAUTHENTICATED"},
		{fmt.Errorf("%w: not yours", usecase.ErrForbidden), http.StatusForbidden, "PERMISSION_DENIED"},
		{fmt.Errorf("%w: already rated", usecase.ErrConflict), http.StatusConflict, "ALREADY_EXISTS"},
		{fmt.Errorf("%w: webhook down", usecase.ErrDependencyUnavailable), http.StatusServiceUnavailable, "UNAVAILABLE"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		mapped := mapError(context.Background(), tc.err)
		if mapped.HTTPStatus != tc.wantCode {
			t.Fatalf("error %v: expected status %d, got %d", tc.err, tc.wantCode, mapped.HTTPStatus)
		}
		if mapped.Status != tc.wantStatus {
			t.Fatalf("error %v: expected %s, got %s", tc.err, tc.wantStatus, mapped.Status)
		}
	}
}

func TestWriteError_FeaturedCapacityDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, &usecase.FeaturedCapacityError{Current: []int64{1, 2, 3, 4}})

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "ALREADY_EXISTS" {
		t.Fatalf("expected error status ALREADY_EXISTS, got %v", errorObj["status"])
	}

	details, ok := errorObj["details"].(map[string]any)
	if !ok {
		t.Fatalf("expected details object on capacity conflict")
	}
	if got, _ := details["max_count"].(float64); got != 4 {
		t.Fatalf("expected max_count=4, got %v", details["max_count"])
	}
	current, ok := details["current"].([]any)
	if !ok || len(current) != 4 {
		t.Fatalf("expected 4 current match ids, got %v", details["current"])
	}
}
