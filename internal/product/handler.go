package product

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/catalog/service/internal/response"
)

// Handler holds HTTP handlers for product endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new product Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// productRequest is the create/update payload. ImageURL distinguishes an
// omitted field (preserve on update) from an explicit null (clear on update).
type productRequest struct {
	ID          string          `json:"id"          example:"e7eedc79-0707-4fe4-8734-526b7ef13a7b"`
	Name        string          `json:"name"        example:"Widget"`
	Description string          `json:"description" example:"A useful widget"`
	Price       decimal.Decimal `json:"price"       swaggertype:"number" example:"29.99"`
	ImageURL    OptionalString  `json:"imageUrl"    swaggertype:"string"`
}

func (req *productRequest) toProduct() *Product {
	return &Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL.Value,
	}
}

// List godoc
//
//	@Summary		List products
//	@Description	Returns all products in the catalog. Order is unspecified.
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}	product.Product
//	@Router			/products [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.svc.List(r.Context()))
}

// Get godoc
//
//	@Summary		Get product
//	@Description	Returns the product with the given id.
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"Product id"
//	@Success		200	{object}	product.Product
//	@Failure		404	{object}	response.ErrorBody
//	@Router			/products/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "product not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, p)
}

// Create godoc
//
//	@Summary		Create product
//	@Description	Stores a new product. A UUID id is generated when the payload omits one.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		productRequest	true	"Product"
//	@Success		201		{object}	product.Product
//	@Failure		400		{object}	response.ErrorBody
//	@Router			/products [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	created := h.svc.Create(r.Context(), req.toProduct())
	response.JSON(w, http.StatusCreated, created)
}

// Update godoc
//
//	@Summary		Update product
//	@Description	Replaces the product wholesale. The id in the body is ignored. An omitted imageUrl preserves the stored one; an explicit null clears it.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Product id"
//	@Param			request	body		productRequest	true	"Product"
//	@Success		200		{object}	product.Product
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		404		{object}	response.ErrorBody
//	@Router			/products/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.toProduct(), req.ImageURL.Set)
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "product not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, updated)
}

// Delete godoc
//
//	@Summary		Delete product
//	@Description	Removes the product and, best-effort, its stored image.
//	@Tags			products
//	@Param			id	path	string	true	"Product id"
//	@Success		204
//	@Failure		404	{object}	response.ErrorBody
//	@Router			/products/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !h.svc.Delete(r.Context(), id) {
		response.NotFound(w, "product not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadImage godoc
//
//	@Summary		Upload product image
//	@Description	Stores the uploaded file as the product's image, overwriting any previous one, and returns the product with imageUrl set.
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Product id"
//	@Param			file	formData	file	true	"Image file"
//	@Success		200		{object}	product.Product
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		404		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/products/{id}/image [post]
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file field is required")
		return
	}
	defer file.Close()

	if header.Size == 0 {
		response.BadRequest(w, "uploaded file is empty")
		return
	}

	p, err := h.svc.UploadImage(r.Context(), id, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "product not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, p)
}

// DownloadImage godoc
//
//	@Summary		Download product image
//	@Description	Returns the raw image bytes. The response content type is always image/jpeg regardless of what was uploaded.
//	@Tags			products
//	@Produce		jpeg
//	@Param			id	path		string	true	"Product id"
//	@Success		200	{file}		file
//	@Failure		404	{object}	response.ErrorBody
//	@Router			/products/{id}/image [get]
func (h *Handler) DownloadImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	data, err := h.svc.DownloadImage(r.Context(), id)
	if err != nil {
		// Missing image, unknown product, and transient storage failures are
		// indistinguishable here; all map to 404.
		response.NotFound(w, "image not found")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
