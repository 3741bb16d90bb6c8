package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/freshbasket/app/services"
	"github.com/shashiranjanraj/freshbasket/pkg/response"
)

// maxImageUpload caps product image uploads at 8 MB.
const maxImageUpload = 8 << 20

// ProductController exposes the catalogue read endpoints and image upload.
type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// Index handles GET /api/products.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.ListProducts(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, products)
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "invalid_id", "product id must be a positive integer")
		return
	}

	product, err := c.catalog.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, product)
}

// UploadImage handles POST /api/products/{id}/image (multipart, field
// "image"). Requires authentication.
func (c *ProductController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "invalid_id", "product id must be a positive integer")
		return
	}

	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		response.BadRequest(w, "invalid_upload", "could not parse multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "missing_image", "image file is required")
		return
	}
	defer file.Close()

	url, err := c.catalog.UploadProductImage(r.Context(), id, header.Filename, file)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]string{"image_url": url})
}
