package config

import (
	"encoding/json"
	"net/http"

	"github.com/careerclarity/careerclarity-api/internal/apperror"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Bind decodes the JSON request body into dst and runs struct validation.
func Bind(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.Wrap(apperror.Validation, "invalid request body", err)
	}
	if err := validate.Struct(dst); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			f := verrs[0]
			return apperror.New(apperror.Validation, f.Field()+" failed on "+f.Tag())
		}
		return apperror.Wrap(apperror.Validation, "validation failed", err)
	}
	return nil
}
