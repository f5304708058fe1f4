package search_controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/i-iangurazov/roksosh/catalog"
	"github.com/i-iangurazov/roksosh/models"
)

// SearchProducts godoc
// @Summary Search the catalog
// @Description One-shot product search by free-text term
// @Tags store
// @Produce json
// @Param q query string true "Search term"
// @Param limit query int false "Max results"
// @Success 200 {object} models.ApiResponse
// @Router /store/search [get]
func SearchProducts(coordinator *catalog.Coordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := strings.TrimSpace(c.Query("q"))
		if term == "" {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Nothing to search for", []models.Product{}))
			return
		}

		query := models.FilterQuery{SearchTerm: term}
		if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
			query.Limit = limit
		}

		products := coordinator.FetchOnce(c.Request.Context(), query)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Search completed", products))
	}
}
