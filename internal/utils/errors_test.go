package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	wrapped := errors.New("dial timeout")
	err := E(CodeUnavailable, "Provider.Call", "llm unavailable", wrapped)

	want := "Provider.Call: llm unavailable: dial timeout"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, wrapped) {
		t.Error("wrapped error must survive errors.Is")
	}
}

func TestIsCode(t *testing.T) {
	err := E(CodeNotFound, "Store.Get", "session not found", nil)

	if !IsCode(err, CodeNotFound) {
		t.Error("IsCode must match the error's own code")
	}
	if IsCode(err, CodeInternal) {
		t.Error("IsCode must not match a different code")
	}
	if IsCode(errors.New("plain"), CodeNotFound) {
		t.Error("IsCode must reject non-AppError values")
	}

	// wrapped AppErrors still match
	wrapped := fmt.Errorf("handler: %w", err)
	if !IsCode(wrapped, CodeNotFound) {
		t.Error("IsCode must unwrap")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidArgument, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeUnavailable, http.StatusServiceUnavailable},
		{CodeTimeout, http.StatusGatewayTimeout},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := HTTPStatus(E(tt.code, "op", "msg", nil)); got != tt.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}

	if got := HTTPStatus(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("HTTPStatus(plain error) = %d, want 500", got)
	}
}
