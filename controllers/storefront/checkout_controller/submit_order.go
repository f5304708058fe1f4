package checkout_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/i-iangurazov/roksosh/cartstore"
	"github.com/i-iangurazov/roksosh/models"
	"github.com/i-iangurazov/roksosh/services"
	"github.com/i-iangurazov/roksosh/utils"
)

// SubmitOrder godoc
// @Summary Place a manual order from the current cart
// @Description Validates the checkout form, forwards the order to the backend and clears the cart on success
// @Tags store
// @Accept json
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/checkout [post]
func SubmitOrder(store *cartstore.Store, orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid checkout payload"))
			return
		}

		if err := utils.ValidateCheckout(req.FullName, req.Phone, req.Address); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		req.Phone = utils.FormatPhone(req.Phone)

		items := store.OrderItems()
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Your cart is empty"))
			return
		}

		if err := orders.SubmitOrder(c.Request.Context(), req, items); err != nil {
			log.Printf("[checkout] order submission failed: %v", err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to place the order, please try again"))
			return
		}

		store.RemoveAll()
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Order placed successfully", nil))
	}
}
