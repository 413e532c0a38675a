package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/vitae-lab/healthbridge/internal/api/v1"
	healtherr "github.com/vitae-lab/healthbridge/internal/core/errors"
)

// RegisterRoutes registers all health API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/availability", s.HandleAvailability)
	r.GET("/v1/version", s.HandleVersion)

	r.POST("/v1/authorization/request", s.HandleRequestAuthorization)
	r.POST("/v1/authorization/check", s.HandleCheckAuthorization)

	r.POST("/v1/samples/query", s.HandleReadSamples)
	r.POST("/v1/samples", s.HandleSaveSample)
	r.POST("/v1/aggregates/query", s.HandleQueryAggregated)
	r.POST("/v1/workouts/query", s.HandleQueryWorkouts)
}

// HandleAvailability handles GET /v1/availability
func (s *Service) HandleAvailability(c *gin.Context) {
	c.JSON(http.StatusOK, s.Availability(c.Request.Context()))
}

// HandleVersion handles GET /v1/version
func (s *Service) HandleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":  s.version,
		"platform": string(s.store.Platform()),
	})
}

// HandleRequestAuthorization handles POST /v1/authorization/request
func (s *Service) HandleRequestAuthorization(c *gin.Context) {
	var req v1.AuthorizationRequest
	if !s.bind(c, &req) {
		return
	}
	status, err := s.RequestAuthorization(c.Request.Context(), req)
	if err != nil {
		s.renderError(c, "Failed to request authorization", err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// HandleCheckAuthorization handles POST /v1/authorization/check
func (s *Service) HandleCheckAuthorization(c *gin.Context) {
	var req v1.AuthorizationRequest
	if !s.bind(c, &req) {
		return
	}
	status, err := s.CheckAuthorization(c.Request.Context(), req)
	if err != nil {
		s.renderError(c, "Failed to check authorization", err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// HandleReadSamples handles POST /v1/samples/query
func (s *Service) HandleReadSamples(c *gin.Context) {
	var req v1.ReadSamplesRequest
	if !s.bind(c, &req) {
		return
	}
	result, err := s.ReadSamples(c.Request.Context(), req)
	if err != nil {
		s.renderError(c, "Failed to read samples", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleSaveSample handles POST /v1/samples
func (s *Service) HandleSaveSample(c *gin.Context) {
	var req v1.SaveSampleRequest
	if !s.bind(c, &req) {
		return
	}
	if err := s.SaveSample(c.Request.Context(), req); err != nil {
		s.renderError(c, "Failed to save sample", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleQueryAggregated handles POST /v1/aggregates/query
func (s *Service) HandleQueryAggregated(c *gin.Context) {
	var req v1.QueryAggregatedRequest
	if !s.bind(c, &req) {
		return
	}
	result, err := s.QueryAggregated(c.Request.Context(), req)
	if err != nil {
		s.renderError(c, "Failed to aggregate samples", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleQueryWorkouts handles POST /v1/workouts/query
func (s *Service) HandleQueryWorkouts(c *gin.Context) {
	var req v1.QueryWorkoutsRequest
	if !s.bind(c, &req) {
		return
	}
	result, err := s.QueryWorkouts(c.Request.Context(), req)
	if err != nil {
		s.renderError(c, "Failed to query workouts", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Service) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, healtherr.ErrorResponse{
			ErrorType: "invalid_json",
			Message:   "Invalid request body",
			Details:   err.Error(),
		})
		return false
	}
	return true
}

// renderError maps a taxonomy kind to its HTTP status. Caller mistakes are
// 4xx, platform gaps are 422, everything else is a 5xx.
func (s *Service) renderError(c *gin.Context, msg string, err error) {
	kind := healtherr.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case healtherr.KindInvalidDataType, healtherr.KindInvalidDate, healtherr.KindInvalidDateRange, healtherr.KindInvalidBucket:
		status = http.StatusBadRequest
	case healtherr.KindDataTypeUnavailable, healtherr.KindUnsupportedAggregation, healtherr.KindUnsupportedWrite:
		status = http.StatusUnprocessableEntity
	case healtherr.KindStoreUnavailable:
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error(msg, "error", err.Error())
	}
	c.JSON(status, healtherr.ErrorResponse{
		ErrorType: string(kind),
		Message:   msg,
		Details:   err.Error(),
	})
}
