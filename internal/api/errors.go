package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"stayflow/pkg/domain"
)

// writeError translates domain errors into the HTTP contract: validation
// failures return 422 with the field→message map, missing records 404, rule
// and transition conflicts 409, and storage failures 500.
func writeError(c echo.Context, err error) error {
	var validation domain.ValidationError
	if errors.As(err, &validation) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": validation.Fields})
	}
	var notFound domain.NotFoundError
	if errors.As(err, &notFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": notFound.Error()})
	}
	var transition domain.TransitionError
	if errors.As(err, &transition) {
		return c.JSON(http.StatusConflict, echo.Map{"message": transition.Error()})
	}
	var violation domain.RuleViolationError
	if errors.As(err, &violation) {
		messages := make([]string, 0, len(violation.Result.Violations))
		for _, v := range violation.Result.Violations {
			messages = append(messages, v.Message)
		}
		return c.JSON(http.StatusConflict, echo.Map{"message": violation.Error(), "violations": messages})
	}
	var persistence domain.PersistenceError
	if errors.As(err, &persistence) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "storage failure"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func badID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
}

func badRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
}
