package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/freshbasket/app/services"
	"github.com/shashiranjanraj/freshbasket/pkg/response"
)

// ReferenceController lists stores and serviceable locations.
type ReferenceController struct {
	refs *services.ReferenceService
}

func NewReferenceController(refs *services.ReferenceService) *ReferenceController {
	return &ReferenceController{refs: refs}
}

// Stores handles GET /api/stores.
func (c *ReferenceController) Stores(w http.ResponseWriter, r *http.Request) {
	stores, err := c.refs.ListStores(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, stores)
}

// Locations handles GET /api/locations.
func (c *ReferenceController) Locations(w http.ResponseWriter, r *http.Request) {
	locations, err := c.refs.ListLocations(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, locations)
}
