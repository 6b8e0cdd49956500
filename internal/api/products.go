package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jcanett1/Mar-de-Cortez/internal/imaging"
	"github.com/jcanett1/Mar-de-Cortez/internal/model"
	"github.com/jcanett1/Mar-de-Cortez/internal/pricing"
	"github.com/jcanett1/Mar-de-Cortez/internal/store"
)

// ProductsHandler handles catalog endpoints. Suppliers manage their own
// items; the final price is always derived from the pricing inputs.
type ProductsHandler struct {
	DB *sql.DB
}

type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	BasePrice   *float64 `json:"base_price"`
	ProfitType  string   `json:"profit_type"`
	ProfitValue *float64 `json:"profit_value"`
	TaxRate     *float64 `json:"tax_rate"`
	SKU         string   `json:"sku"`
	ImageURL    string   `json:"image_url"`
}

// priced validates the pricing inputs and returns a product with the
// derived sell price. A missing tax rate falls back to the default.
func (req *productRequest) priced() (*model.Product, error) {
	if req.Name == "" {
		return nil, errors.New("name required")
	}
	if req.BasePrice == nil || req.ProfitValue == nil {
		return nil, errors.New("base_price and profit_value required")
	}

	taxRate := model.DefaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	price, err := pricing.SellPrice(*req.BasePrice, req.ProfitType, *req.ProfitValue, taxRate)
	if err != nil {
		return nil, err
	}

	return &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       price,
		BasePrice:   req.BasePrice,
		ProfitType:  req.ProfitType,
		ProfitValue: req.ProfitValue,
		TaxRate:     &taxRate,
		SKU:         req.SKU,
		ImageURL:    req.ImageURL,
	}, nil
}

// List handles GET /api/products.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	supplierID := r.URL.Query().Get("supplier_id")

	products, err := store.ListProducts(r.Context(), h.DB, category, supplierID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := store.GetProduct(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	if product == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	jsonResponse(w, http.StatusOK, product)
}

// Create handles POST /api/products. The item is owned by the calling
// supplier; the price is derived, never accepted directly.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	account := CurrentAccount(r.Context())

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := req.priced()
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	p.SupplierID = account.ID
	p.SupplierName = account.Name

	product, err := store.CreateProduct(r.Context(), h.DB, p)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	jsonResponse(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id}.
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	account := CurrentAccount(r.Context())

	existing, err := store.GetProduct(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	if account.Role != model.RoleAdmin && existing.SupplierID != account.ID {
		jsonError(w, http.StatusForbidden, "not your product")
		return
	}

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := req.priced()
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	p.ID = existing.ID
	p.SupplierName = existing.SupplierName

	if err := store.UpdateProduct(r.Context(), h.DB, p); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	product, err := store.GetProduct(r.Context(), h.DB, existing.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	jsonResponse(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	account := CurrentAccount(r.Context())

	existing, err := store.GetProduct(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	if account.Role != model.RoleAdmin && existing.SupplierID != account.ID {
		jsonError(w, http.StatusForbidden, "not your product")
		return
	}

	if err := store.DeleteProduct(r.Context(), h.DB, existing.ID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// UploadImage handles PUT /api/products/{id}/image. The upload is
// normalized (format sniffed, downscaled, re-encoded) before storage.
func (h *ProductsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	account := CurrentAccount(r.Context())

	existing, err := store.GetProduct(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	if account.Role != model.RoleAdmin && existing.SupplierID != account.ID {
		jsonError(w, http.StatusForbidden, "not your product")
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	data, mime, err := imaging.Normalize(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetProductImage(r.Context(), h.DB, existing.ID, data, mime); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/products/{id}/image.
func (h *ProductsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	data, mime, err := store.GetProductImage(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
