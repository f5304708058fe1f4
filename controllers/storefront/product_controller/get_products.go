package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/i-iangurazov/roksosh/cache/product_cache"
	"github.com/i-iangurazov/roksosh/catalog"
	"github.com/i-iangurazov/roksosh/filterquery"
	"github.com/i-iangurazov/roksosh/models"
)

// GetProducts godoc
// @Summary List storefront products
// @Description Fetch products from the backend catalog with the current filter query
// @Tags store
// @Produce json
// @Param categoryId query string false "Category ID"
// @Param colorId query []string false "Color IDs"
// @Param sizeId query []string false "Size IDs"
// @Param brand query []string false "Brands"
// @Param priceSort query string false "asc or desc"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param q query string false "Search term"
// @Success 200 {object} models.ApiResponse
// @Router /store/products [get]
func GetProducts(coordinator *catalog.Coordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := filterquery.Decode(c.Request.URL.Query())
		cacheKey := filterquery.Encode(query)

		if products, ok := product_cache.Get(cacheKey); ok {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
			return
		}

		products := coordinator.FetchOnce(c.Request.Context(), query)
		product_cache.Set(cacheKey, products)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
	}
}
