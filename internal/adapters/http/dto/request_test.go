package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-service/internal/domain"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid request passes",
			req:     dto.CreateTodoRequest{Text: "Buy groceries", Category: "Personal"},
			wantErr: false,
		},
		{
			name:      "missing text",
			req:       dto.CreateTodoRequest{Category: "Personal"},
			wantErr:   true,
			wantField: "text",
		},
		{
			name:      "whitespace-only category",
			req:       dto.CreateTodoRequest{Text: "Buy groceries", Category: " \t"},
			wantErr:   true,
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func decodeUpdate(t *testing.T, body string) dto.UpdateTodoRequest {
	t.Helper()

	var req dto.UpdateTodoRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal(%s) error = %v", body, err)
	}
	return req
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantField string
	}{
		{name: "empty body", body: `{}`},
		{name: "done only", body: `{"done":true}`},
		{name: "all fields", body: `{"text":"x","category":"Work","done":false}`},
		{name: "null text", body: `{"text":null}`, wantErr: true, wantField: "text"},
		{name: "blank category", body: `{"category":"  "}`, wantErr: true, wantField: "category"},
		{name: "null done", body: `{"done":null}`, wantErr: true, wantField: "done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := decodeUpdate(t, tt.body)
			err := req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateTodoRequest_WrongTypeFailsDecode(t *testing.T) {
	t.Parallel()

	var req dto.UpdateTodoRequest
	if err := json.Unmarshal([]byte(`{"done":"yes"}`), &req); err == nil {
		t.Error("Unmarshal() = nil, want type error for string done")
	}
}

func TestUpdateTodoRequest_Patch(t *testing.T) {
	t.Parallel()

	req := decodeUpdate(t, `{"category":"Home","done":true}`)
	patch := req.Patch()

	if patch.Text.IsSet() {
		t.Error("Text should be absent")
	}
	if got, ok := patch.Category.Get(); !ok || got != "Home" {
		t.Errorf("Category = %q/%v, want Home/true", got, ok)
	}
	if got, ok := patch.Done.Get(); !ok || !got {
		t.Errorf("Done = %v/%v, want true/true", got, ok)
	}
}

func TestUpdateTodoRequest_PatchFalseIsPresent(t *testing.T) {
	t.Parallel()

	req := decodeUpdate(t, `{"done":false}`)
	if got, ok := req.Patch().Done.Get(); !ok || got {
		t.Errorf("Done = %v/%v, want false/true", got, ok)
	}
}
