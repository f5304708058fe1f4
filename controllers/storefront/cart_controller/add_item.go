package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/i-iangurazov/roksosh/cartstore"
	"github.com/i-iangurazov/roksosh/models"
)

type addItemRequest struct {
	Product   models.Product       `json:"product" binding:"required"`
	Selection *cartstore.Selection `json:"selection,omitempty"`
}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Merges into an existing line when the same variant is already in the cart
// @Tags store
// @Accept json
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/cart/items [post]
func AddItem(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart item payload"))
			return
		}
		if req.Product.ID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product id is required"))
			return
		}

		store.AddItem(req.Product, req.Selection)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", gin.H{
			"totalCount": store.TotalItemCount(),
		}))
	}
}
