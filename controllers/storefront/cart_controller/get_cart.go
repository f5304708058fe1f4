package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/i-iangurazov/roksosh/cartstore"
	"github.com/i-iangurazov/roksosh/models"
)

type cartView struct {
	Items      []models.CartLine `json:"items"`
	TotalCount int               `json:"totalCount"`
	TotalPrice string            `json:"totalPrice"`
}

// GetCart godoc
// @Summary Current cart contents
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart [get]
func GetCart(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := store.TotalPrice()
		if err != nil {
			log.Printf("[cart] total price failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Cart contains a line with an invalid price"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cartView{
			Items:      store.Items(),
			TotalCount: store.TotalItemCount(),
			TotalPrice: total.String(),
		}))
	}
}
