package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mesh-intelligence/catalog/internal/metrics"
	"github.com/mesh-intelligence/catalog/pkg/types"
)

const resetMessage = "Mock data has been reset to the initial state."

func (s *Server) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) trackProducts() {
	if s.metrics != nil {
		s.metrics.SetProducts(len(s.catalog.ListProducts()))
	}
}

func (s *Server) listProducts(c echo.Context) error {
	products := s.catalog.ListProducts()
	if s.metrics != nil {
		s.metrics.SetProducts(len(products))
	}
	return c.JSON(http.StatusOK, products)
}

func (s *Server) getProduct(c echo.Context) error {
	ids, err := pathIDs(c, "productId")
	if err != nil {
		return err
	}
	p, err := s.catalog.GetProduct(ids[0])
	if err != nil {
		return s.failWith(c, "get_product", err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) createProduct(c echo.Context) error {
	var in types.ProductInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to parse product")
	}
	p, err := s.catalog.CreateProduct(in)
	if err != nil {
		return s.failWith(c, "create_product", err)
	}
	s.trackProducts()
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) getAttribute(c echo.Context) error {
	ids, err := pathIDs(c, "productId", "attributeId")
	if err != nil {
		return err
	}
	a, err := s.catalog.GetAttribute(ids[0], ids[1])
	if err != nil {
		return s.failWith(c, "get_attribute", err)
	}
	return c.JSON(http.StatusOK, a)
}

func (s *Server) addAttribute(c echo.Context) error {
	ids, err := pathIDs(c, "productId")
	if err != nil {
		return err
	}
	var in types.AttributeInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to parse attribute")
	}
	a, err := s.catalog.AddAttribute(ids[0], in)
	if err != nil {
		return s.failWith(c, "add_attribute", err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (s *Server) updateAttribute(c echo.Context) error {
	ids, err := pathIDs(c, "productId", "attributeId")
	if err != nil {
		return err
	}
	var in types.AttributeInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to parse attribute")
	}
	a, err := s.catalog.UpdateAttribute(ids[0], ids[1], in)
	if err != nil {
		return s.failWith(c, "update_attribute", err)
	}
	return c.JSON(http.StatusOK, a)
}

func (s *Server) deleteAttribute(c echo.Context) error {
	ids, err := pathIDs(c, "productId", "attributeId")
	if err != nil {
		return err
	}
	if err := s.catalog.DeleteAttribute(ids[0], ids[1]); err != nil {
		return s.failWith(c, "delete_attribute", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getParam(c echo.Context) error {
	ids, err := pathIDs(c, "productId", "attributeId", "paramId")
	if err != nil {
		return err
	}
	p, err := s.catalog.GetParam(ids[0], ids[1], ids[2])
	if err != nil {
		return s.failWith(c, "get_param", err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) addParam(c echo.Context) error {
	ids, err := pathIDs(c, "productId", "attributeId")
	if err != nil {
		return err
	}
	var in types.ParamInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to parse parameter")
	}
	if in.Type == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Parameter type is required")
	}
	p, err := s.catalog.AddParam(ids[0], ids[1], in)
	if err != nil {
		return s.failWith(c, metrics.OpAddParam, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) updateParam(c echo.Context) error {
	ids, err := pathIDs(c, "productId", "attributeId", "paramId")
	if err != nil {
		return err
	}
	var in types.ParamInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to parse parameter")
	}
	p, err := s.catalog.UpdateParam(ids[0], ids[1], ids[2], in)
	if err != nil {
		return s.failWith(c, metrics.OpUpdateParam, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) deleteParam(c echo.Context) error {
	ids, err := pathIDs(c, "productId", "attributeId", "paramId")
	if err != nil {
		return err
	}
	if err := s.catalog.DeleteParam(ids[0], ids[1], ids[2]); err != nil {
		return s.failWith(c, "delete_param", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) refresh(c echo.Context) error {
	if err := s.catalog.Reset(); err != nil {
		return s.failWith(c, "reset", err)
	}
	if s.metrics != nil {
		s.metrics.RecordReset()
	}
	s.trackProducts()
	return c.JSON(http.StatusOK, messageBody{Message: resetMessage})
}
