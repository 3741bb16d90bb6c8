package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/freshbasket/app/services"
	"github.com/shashiranjanraj/freshbasket/pkg/bind"
	"github.com/shashiranjanraj/freshbasket/pkg/response"
)

// CartController exposes the cart endpoints, including bulk add.
type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// Index handles GET /api/cart?user_id=N.
func (c *CartController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := uintQuery(r, "user_id")
	if !ok {
		response.BadRequest(w, "missing_user_id", "user_id query parameter is required")
		return
	}

	lines, err := c.cart.GetCart(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, lines)
}

type addToCartRequest struct {
	UserID    uint  `json:"user_id" validate:"required"`
	ProductID uint  `json:"product_id" validate:"required"`
	Quantity  int64 `json:"quantity"`
}

// Store handles POST /api/cart: a single add with stock pre-check.
func (c *CartController) Store(w http.ResponseWriter, r *http.Request) {
	var in addToCartRequest
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "invalid_body", err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	line, err := c.cart.AddToCart(r.Context(), in.UserID, in.ProductID, in.Quantity)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, line)
}

// Destroy handles DELETE /api/cart/{id}.
func (c *CartController) Destroy(w http.ResponseWriter, r *http.Request) {
	cartID, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "invalid_id", "cart id must be a positive integer")
		return
	}

	if err := c.cart.RemoveFromCart(r.Context(), cartID); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]string{"message": "Item removed from cart"})
}

type bulkAddRequest struct {
	UserID uint                   `json:"user_id" validate:"required"`
	Items  []services.BulkAddItem `json:"items" validate:"required"`
}

// BulkAdd handles POST /api/bulk-add-to-cart.
func (c *CartController) BulkAdd(w http.ResponseWriter, r *http.Request) {
	var in bulkAddRequest
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "invalid_body", err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}
	if len(in.Items) == 0 {
		response.BadRequest(w, "missing_items", "items must be a non-empty array")
		return
	}

	result := c.cart.BulkAdd(r.Context(), in.UserID, in.Items)
	response.Success(w, result)
}
