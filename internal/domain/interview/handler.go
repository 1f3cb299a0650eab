package interview

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arthur04112006/Pharm-Assist/internal/scripts"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/modules", h.ListModules)
	api.GET("/modules/:slug/questions", h.GetQuestions)
}

func (h *Handler) ListModules(c echo.Context) error {
	modules, err := h.svc.ListModules()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"modules": modules})
}

func (h *Handler) GetQuestions(c echo.Context) error {
	slug := c.Param("slug")
	filterKnown := c.QueryParam("filter_known") == "1" || c.QueryParam("filter_known") == "true"

	questions, err := h.svc.Questions(slug, filterKnown)
	if err != nil {
		if errors.Is(err, scripts.ErrModuleNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "module not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"module":    slug,
		"questions": questions,
	})
}
