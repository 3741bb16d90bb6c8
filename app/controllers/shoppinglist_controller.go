package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/freshbasket/app/services"
	"github.com/shashiranjanraj/freshbasket/pkg/bind"
	"github.com/shashiranjanraj/freshbasket/pkg/response"
)

// ShoppingListController exposes free-text shopping list matching.
type ShoppingListController struct {
	matcher *services.ShoppingListService
}

func NewShoppingListController(matcher *services.ShoppingListService) *ShoppingListController {
	return &ShoppingListController{matcher: matcher}
}

type parseListRequest struct {
	UserID uint   `json:"user_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

// Parse handles POST /api/parse-shopping-list.
func (c *ShoppingListController) Parse(w http.ResponseWriter, r *http.Request) {
	var in parseListRequest
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "invalid_body", err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	outcome, err := c.matcher.MatchShoppingList(r.Context(), in.Text)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, outcome)
}
