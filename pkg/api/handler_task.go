package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *gin.Context) {
	records, err := s.tasks.List(c.Request.Context())
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": records})
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *gin.Context) {
	record, err := s.tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, record)
}

// deleteTaskHandler handles DELETE /api/v1/tasks/:id. Deleting a parent
// cascades to its subtasks.
func (s *Server) deleteTaskHandler(c *gin.Context) {
	result, err := s.creator.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, result)
}

// deleteParentHandler handles DELETE /api/v1/tasks/parent/:id: removes every
// subtask under the parent, then the parent itself.
func (s *Server) deleteParentHandler(c *gin.Context) {
	result, err := s.creator.DeleteByParentID(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, result)
}
