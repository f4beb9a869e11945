package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"articles-api/internal/domain/entity"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON %q: %v", rr.Body.String(), err)
	}
	return body
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{"map", http.StatusOK, map[string]string{"message": "success"}, `{"message":"success"}`},
		{"struct", http.StatusCreated, struct{ ID int }{ID: 123}, `{"ID":123}`},
		{"nil", http.StatusNoContent, nil, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			JSON(rr, tt.code, tt.data)

			if rr.Code != tt.code {
				t.Errorf("code = %d, want %d", rr.Code, tt.code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := strings.TrimSpace(rr.Body.String()); got != tt.expectedBody {
				t.Errorf("body = %q, want %q", got, tt.expectedBody)
			}
		})
	}
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		err     error
		wantMsg string
	}{
		{"safe 4xx passes through", http.StatusBadRequest, errors.New("invalid id"), "invalid id"},
		{"5xx is always masked", http.StatusInternalServerError, errors.New("user not found"), "internal server error"},
		{"unknown 4xx text is masked", http.StatusBadRequest, errors.New("pq: relation does not exist"), "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			SafeError(rr, tt.code, tt.err)
			if rr.Code != tt.code {
				t.Errorf("code = %d, want %d", rr.Code, tt.code)
			}
			if got := decode(t, rr)["error"]; got != tt.wantMsg {
				t.Errorf("error = %q, want %q", got, tt.wantMsg)
			}
		})
	}

	rr := httptest.NewRecorder()
	SafeError(rr, http.StatusBadRequest, nil)
	if rr.Body.Len() != 0 {
		t.Errorf("nil error must not write a body")
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody map[string]string
	}{
		{
			name:     "duplicate",
			err:      fmt.Errorf("create user: %w", entity.NewDuplicateError("email")),
			wantCode: http.StatusConflict,
			wantBody: map[string]string{"error": "duplicate_field", "field": "email"},
		},
		{
			name: "validation",
			err: entity.ValidationErrors{
				{Field: "username", Message: "length must be between 5 and 30"},
				{Field: "email", Message: "must be a valid email"},
			},
			wantCode: http.StatusUnprocessableEntity,
			wantBody: map[string]string{
				"error":        "validation_field",
				"field_errors": "username:length must be between 5 and 30; email:must be a valid email",
			},
		},
		{
			name:     "access denied",
			err:      &entity.AccessDeniedError{Action: "update", Resource: "article"},
			wantCode: http.StatusForbidden,
			wantBody: map[string]string{"error": "access denied"},
		},
		{
			name:     "not found on a write path is internal",
			err:      fmt.Errorf("user: %w", entity.ErrNotFound),
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]string{"error": "internal server error"},
		},
		{
			name:     "app error",
			err:      BadRequest("malformed JSON body", errors.New("unexpected EOF")),
			wantCode: http.StatusBadRequest,
			wantBody: map[string]string{"error": "malformed JSON body"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)
			if rr.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d", rr.Code, tt.wantCode)
			}
			got := decode(t, rr)
			for k, v := range tt.wantBody {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestReadError_NotFoundIs404(t *testing.T) {
	rr := httptest.NewRecorder()
	ReadError(rr, fmt.Errorf("article: %w", entity.ErrNotFound))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", rr.Code)
	}

	rr = httptest.NewRecorder()
	ReadError(rr, errors.New("connection refused"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", rr.Code)
	}
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		notWant string
	}{
		{"nil", nil, "", ""},
		{
			name:    "dsn password",
			err:     errors.New("dial postgres://app:hunter2@db:5432/articles failed"),
			want:    "postgres://app:****@db:5432/articles",
			notWant: "hunter2",
		},
		{
			name:    "bearer token",
			err:     errors.New("bad header Bearer eyJhbGciOi.eyJzdWIiOi.c2lnbmF0dXJl"),
			want:    "Bearer ****",
			notWant: "eyJzdWIiOi",
		},
		{
			name:    "bcrypt hash",
			err:     errors.New("hash $2a$11$abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0 rejected"),
			want:    "$2****",
			notWant: "abcdefghijklmnop",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeError(tt.err)
			if !strings.Contains(got, tt.want) {
				t.Errorf("SanitizeError = %q, want it to contain %q", got, tt.want)
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Errorf("SanitizeError = %q leaks %q", got, tt.notWant)
			}
		})
	}
}
