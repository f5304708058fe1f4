package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/i-iangurazov/roksosh/cartstore"
	"github.com/i-iangurazov/roksosh/models"
)

// RemoveItem godoc
// @Summary Remove one unit of a cart line
// @Description Decrements the line; the line disappears when its count reaches zero. Unknown ids are a no-op.
// @Tags store
// @Produce json
// @Param id path string true "Cart item ID (variant key)"
// @Success 200 {object} models.ApiResponse
// @Router /store/cart/items/{id} [delete]
func RemoveItem(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.RemoveItem(c.Param("id"))

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", gin.H{
			"totalCount": store.TotalItemCount(),
		}))
	}
}
