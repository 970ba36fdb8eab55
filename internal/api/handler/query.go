package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"

	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// decodeQuery converte a query string em struct usando as tags mapstructure.
// Apenas o primeiro valor de cada parâmetro é considerado.
func decodeQuery(r *http.Request, out any) error {
	values := make(map[string]any)
	for key, items := range r.URL.Query() {
		if len(items) > 0 && items[0] != "" {
			values[key] = items[0]
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}

// parseQuery decodifica e valida a query; em caso de erro a resposta já foi escrita
func parseQuery(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := decodeQuery(r, out); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de consulta com formato inválido", err.Error())
		return false
	}

	if err := validate.Struct(out); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetros de consulta inválidos", fieldErrors(err))
		return false
	}

	return true
}

func validateLimit(w http.ResponseWriter, limit, maxLimit int) bool {
	if err := validate.Var(limit, fmt.Sprintf("omitempty,min=1,max=%d", maxLimit)); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetros de consulta inválidos", []FieldError{
			{Field: "limit", Rule: "max", Param: fmt.Sprint(maxLimit)},
		})
		return false
	}
	return true
}

func fieldErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	result := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		result = append(result, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return result
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
