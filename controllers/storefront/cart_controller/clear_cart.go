package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/i-iangurazov/roksosh/cartstore"
	"github.com/i-iangurazov/roksosh/models"
)

// ClearCart godoc
// @Summary Remove every line from the cart
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/cart [delete]
func ClearCart(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.RemoveAll()
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", nil))
	}
}
