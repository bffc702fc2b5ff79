package handlers

import (
	"net/http"

	"camp-records-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles staff directory lookups
type DirectoryHandler struct {
	service *service.DirectoryService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(s *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: s}
}

// UserSearch searches directory users by CN prefix
// @Summary Search directory users by CN prefix
// @Description Searches the staff directory for users where cn starts with the given prefix
// @Tags directory
// @Produce json
// @Param cn query string true "Common name prefix"
// @Success 200 {object} map[string]interface{} "Search results"
// @Failure 400 {object} map[string]interface{} "Missing or invalid query parameter"
// @Failure 502 {object} map[string]interface{} "Directory connection or search failed"
// @Security BearerAuth
// @Router /directory/users/search [get]
func (h *DirectoryHandler) UserSearch(c *gin.Context) {
	cn := c.Query("cn")
	if cn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: cn"})
		return
	}

	users, err := h.service.SearchUsersByCN(cn)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "ldap search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": users})
}
