package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// scheduleHandler handles POST /api/v1/schedule: one utterance in, calendar
// events out.
func (s *Server) scheduleHandler(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query is required"})
		return
	}

	outcome, err := s.schedules.Schedule(c.Request.Context(), req.Query, req.Timezone)
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, outcome)
}
