package controllers

import (
	"errors"
	"market-api/models"
	"market-api/repositories"
	"market-api/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func (ctrl *CartController) customerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("customerId"), 10, 64)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid customer id"})
		return 0, false
	}
	return id, true
}

func (ctrl *CartController) storeError(c *gin.Context, err error) {
	if errors.Is(err, repositories.ErrStoreUnavailable) {
		c.JSON(503, models.ErrorResponse{Success: false, Message: "Cart store unavailable"})
		return
	}
	c.JSON(500, models.ErrorResponse{Success: false, Message: "Internal server error"})
}

// GetCart godoc
// @Summary Get a customer's cart
// @Description Returns the stored cart, or an empty cart when none exists
// @Tags Cart
// @Produce json
// @Param customerId path int true "Customer ID"
// @Success 200 {object} models.Response
// @Failure 503 {object} models.ErrorResponse
// @Router /carts/{customerId} [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	customerID, ok := ctrl.customerID(c)
	if !ok {
		return
	}

	cart, err := ctrl.cartService.GetCart(c.Request.Context(), customerID)
	if err != nil {
		ctrl.storeError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Data: cart})
}

// ReplaceCart godoc
// @Summary Replace a customer's cart
// @Description Unconditionally overwrites the stored cart with the request body
// @Tags Cart
// @Accept json
// @Produce json
// @Param customerId path int true "Customer ID"
// @Param cart body models.Cart true "Cart"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /carts/{customerId} [put]
func (ctrl *CartController) ReplaceCart(c *gin.Context) {
	customerID, ok := ctrl.customerID(c)
	if !ok {
		return
	}

	var cart models.Cart
	if err := c.ShouldBindJSON(&cart); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	stored, err := ctrl.cartService.ReplaceCart(c.Request.Context(), customerID, &cart)
	if err != nil {
		ctrl.storeError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Data: stored})
}

// AddToCart godoc
// @Summary Add a product to a customer's cart
// @Description Merges the submitted product and items into the stored cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param customerId path int true "Customer ID"
// @Param form body models.AddProductCartForm true "Product to add"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /carts/{customerId}/items [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	customerID, ok := ctrl.customerID(c)
	if !ok {
		return
	}

	var form models.AddProductCartForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	cart, err := ctrl.cartService.AddToCart(c.Request.Context(), customerID, form)
	if err != nil {
		ctrl.storeError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Data: cart})
}
