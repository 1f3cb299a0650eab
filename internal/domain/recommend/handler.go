package recommend

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/arthur04112006/Pharm-Assist/internal/domain/triage"
	"github.com/arthur04112006/Pharm-Assist/internal/scripts"
)

// RecommendRequest is the payload of POST /triage/recommend. The scoring
// result is the one returned by POST /triage/score.
type RecommendRequest struct {
	Module  string                 `json:"module" validate:"required"`
	Scoring *triage.ScoringResult  `json:"scoring" validate:"required"`
	Answers map[string]interface{} `json:"answers"`
	Profile triage.PatientProfile  `json:"profile"`
}

type Handler struct {
	svc      *Service
	validate *validator.Validate
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/triage/recommend", h.Recommend)
}

func (h *Handler) Recommend(c echo.Context) error {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bundle, err := h.svc.Recommend(c.Request().Context(), req.Module, req.Scoring, req.Answers, req.Profile)
	if err != nil {
		if errors.Is(err, scripts.ErrModuleNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "module not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bundle)
}
