package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/freshbasket/app/services"
	"github.com/shashiranjanraj/freshbasket/pkg/bind"
	"github.com/shashiranjanraj/freshbasket/pkg/response"
)

// OrderController exposes checkout and order history.
type OrderController struct {
	checkout *services.CheckoutService
	refs     *services.ReferenceService
}

func NewOrderController(checkout *services.CheckoutService, refs *services.ReferenceService) *OrderController {
	return &OrderController{checkout: checkout, refs: refs}
}

// Create handles POST /api/orders: converts the user's cart into an order.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CheckoutInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "invalid_body", err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	summary, err := c.checkout.Checkout(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Created(w, map[string]interface{}{
		"message":       "Order placed successfully",
		"order_id":      summary.OrderID,
		"total_amount":  summary.TotalAmount,
		"items_ordered": summary.ItemsOrdered,
	})
}

// Index handles GET /api/orders?user_id=N: order history with line items.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := uintQuery(r, "user_id")
	if !ok {
		response.BadRequest(w, "missing_user_id", "user_id query parameter is required")
		return
	}

	orders, err := c.refs.ListOrders(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, orders)
}
