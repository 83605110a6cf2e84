package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Message   string `json:"message"`
	Requested string `json:"requested,omitempty"`
	Expected  string `json:"expected,omitempty"`
	Error     string `json:"error,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

// failWith maps a Catalog error to its HTTP status. operation names the
// call for the conflict counter.
func (s *Server) failWith(c echo.Context, operation string, err error) error {
	var conflict *types.ConflictError
	switch {
	case errors.As(err, &conflict):
		if s.metrics != nil {
			s.metrics.RecordConflict(operation)
		}
		return c.JSON(http.StatusConflict, errorBody{
			Message:   conflict.Error(),
			Requested: string(conflict.Requested),
			Expected:  string(conflict.Expected),
		})
	case errors.Is(err, types.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorBody{Message: err.Error()})
	default:
		s.logger.Error("catalog operation failed", zap.String("operation", operation), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorBody{
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
}

// pathIDs parses the named path parameters as non-negative integers. A
// malformed value yields a 400 HTTPError.
func pathIDs(c echo.Context, names ...string) ([]int, error) {
	ids := make([]int, len(names))
	for i, name := range names {
		v, err := strconv.Atoi(c.Param(name))
		if err != nil || v < 0 {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+idLabel(name))
		}
		ids[i] = v
	}
	return ids, nil
}

func idLabel(name string) string {
	switch name {
	case "productId":
		return "product ID"
	case "attributeId":
		return "attribute ID"
	default:
		return "parameter ID"
	}
}
