package validation

import (
	"net/http"

	"imagine_hub/internal/adapter/http/dto/request"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with custom struct-level
// validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// An extra marked "incluso" must not carry a value: the document
	// shows "Incluso" instead of a number for those rows.
	v.RegisterStructValidation(extraEditStructValidation, request.UpdateExtraRequest{})

	return v
}

func extraEditStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(request.UpdateExtraRequest)

	if req.IsIncluded != nil && *req.IsIncluded && req.Value != nil && *req.Value != 0 {
		sl.ReportError(req.Value, "value", "Value", "value_forbidden_when_included", "")
	}
}

// BindAndValidate binds the JSON body into `out` and runs validation.
// If either step fails it writes a 400 response and returns an error
// for the handler to short-circuit.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid_request_body",
			"msg":   err.Error(),
		})
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation_failed",
			"fields": validationErrorsToMap(err),
		})
		return err
	}
	return nil
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.StructNamespace()] = fe.Error()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}
