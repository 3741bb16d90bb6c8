// Package routes declares the API surface.
package routes

import (
	"github.com/shashiranjanraj/freshbasket/app/controllers"
	"github.com/shashiranjanraj/freshbasket/pkg/middleware"
	"github.com/shashiranjanraj/freshbasket/pkg/router"
)

// Controllers bundles everything RegisterAPI mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Products     *controllers.ProductController
	Cart         *controllers.CartController
	Orders       *controllers.OrderController
	ShoppingList *controllers.ShoppingListController
	Reference    *controllers.ReferenceController
}

// RegisterAPI mounts the /api group.
func RegisterAPI(r *router.Router, c Controllers) {
	api := r.Group("/api")

	// Auth
	api.Post("/register", "auth.register", c.Auth.Register)
	api.Post("/login", "auth.login", c.Auth.Login)
	api.Post("/send-otp", "auth.otp.send", c.Auth.SendOTP)
	api.Post("/verify-otp", "auth.otp.verify", c.Auth.VerifyOTP)
	api.Post("/resend-otp", "auth.otp.resend", c.Auth.ResendOTP)

	// Catalogue
	api.Get("/products", "products.index", c.Products.Index)
	api.Get("/products/{id}", "products.show", c.Products.Show)
	api.Post("/products/{id}/image", "products.image", c.Products.UploadImage, middleware.Auth)

	// Cart
	api.Get("/cart", "cart.index", c.Cart.Index)
	api.Post("/cart", "cart.store", c.Cart.Store)
	api.Delete("/cart/{id}", "cart.destroy", c.Cart.Destroy)
	api.Post("/bulk-add-to-cart", "cart.bulk", c.Cart.BulkAdd)

	// Shopping list matching
	api.Post("/parse-shopping-list", "shoppinglist.parse", c.ShoppingList.Parse)

	// Orders
	api.Post("/orders", "orders.create", c.Orders.Create)
	api.Get("/orders", "orders.index", c.Orders.Index)

	// Reference data
	api.Get("/stores", "stores.index", c.Reference.Stores)
	api.Get("/locations", "locations.index", c.Reference.Locations)
}
