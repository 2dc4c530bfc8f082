package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/product-catalog/internal/antiforgery"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	repo "github.com/rogerio-castellano/product-catalog/internal/repo"
	"go.uber.org/zap"
)

const conflictMessage = "This product was modified by someone else after you opened it. " +
	"The form shows your changes; review them and save again to overwrite."

// ListProductsHandler godoc
// @Summary List all products
// @Description Products with their category and supplier
// @Tags products
// @Produce html,json
// @Success 200 {object} ProductListView
// @Failure 500 {string} string "Internal error"
// @Router /Products [get]
func ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll(r.Context())
	if err != nil {
		serverError(w, r, "could not fetch products", err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	render(w, r, http.StatusOK, "index.html", "Products", ProductListView{Products: products})
}

// ProductDetailsHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce html,json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductView
// @Failure 404 {object} ErrorView
// @Failure 500 {string} string "Internal error"
// @Router /Products/Details/{id} [get]
func ProductDetailsHandler(w http.ResponseWriter, r *http.Request) {
	showProduct(w, r, "details.html", "Details")
}

// DeleteProductConfirmHandler godoc
// @Summary Show a product before deleting it
// @Tags products
// @Produce html,json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductView
// @Failure 404 {object} ErrorView
// @Failure 500 {string} string "Internal error"
// @Router /Products/Delete/{id} [get]
func DeleteProductConfirmHandler(w http.ResponseWriter, r *http.Request) {
	showProduct(w, r, "delete.html", "Delete")
}

func showProduct(w http.ResponseWriter, r *http.Request, name, title string) {
	id, ok := productIDParam(r)
	if !ok {
		renderNotFound(w, r)
		return
	}

	product, err := productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			renderNotFound(w, r)
			return
		}
		serverError(w, r, "could not fetch product", err)
		return
	}

	render(w, r, http.StatusOK, name, title, ProductView{
		Product: product,
		Token:   antiforgery.Token(r.Context()),
	})
}

// CreateProductFormHandler godoc
// @Summary Empty product form with the category and supplier lists
// @Tags products
// @Produce html,json
// @Success 200 {object} ProductFormView
// @Failure 500 {string} string "Internal error"
// @Router /Products/Create [get]
func CreateProductFormHandler(w http.ResponseWriter, r *http.Request) {
	renderProductForm(w, r, http.StatusOK, "create.html", ProductFormView{})
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Redirects to the list on success, shows the form again on validation errors
// @Tags products
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param product body ProductRequest true "Product to add"
// @Param X-CSRF-Token header string false "Anti-forgery token, or the __RequestVerificationToken form field"
// @Success 302 "Redirect to /Products"
// @Success 200 {object} ProductFormView "Validation failed"
// @Failure 400 {string} string "Invalid input or anti-forgery token"
// @Failure 500 {string} string "Internal error"
// @Router /Products/Create [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	form, req, errs, err := bindProduct(w, r)
	if err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	errs = append(errs, validateProduct(req)...)
	if len(errs) > 0 {
		renderProductForm(w, r, http.StatusOK, "create.html", ProductFormView{Product: form, Errors: errs})
		return
	}

	created, err := productRepo.Create(r.Context(), req.toModel())
	if err != nil {
		serverError(w, r, "could not create product", err)
		return
	}

	requestLogger(r).Info("product created", zap.Int("product_id", created.ProductID))
	redirectToList(w, r)
}

// EditProductFormHandler godoc
// @Summary Product form filled with the stored values
// @Tags products
// @Produce html,json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductFormView
// @Failure 404 {object} ErrorView
// @Failure 500 {string} string "Internal error"
// @Router /Products/Edit/{id} [get]
func EditProductFormHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		renderNotFound(w, r)
		return
	}

	product, err := productRepo.Find(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			renderNotFound(w, r)
			return
		}
		serverError(w, r, "could not fetch product", err)
		return
	}

	renderProductForm(w, r, http.StatusOK, "edit.html", ProductFormView{Product: formFromProduct(product)})
}

// EditProductHandler godoc
// @Summary Update a product
// @Description Overwrites every editable field when the submitted version matches the stored one.
// @Description A version mismatch answers 409 with the form, or 404 when the product is gone.
// @Tags products
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product, productId must equal id"
// @Param X-CSRF-Token header string false "Anti-forgery token, or the __RequestVerificationToken form field"
// @Success 302 "Redirect to /Products"
// @Success 200 {object} ProductFormView "Validation failed"
// @Failure 400 {string} string "Invalid input or anti-forgery token"
// @Failure 404 {object} ErrorView
// @Failure 409 {object} ProductFormView
// @Failure 500 {string} string "Internal error"
// @Router /Products/Edit/{id} [post]
func EditProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		renderNotFound(w, r)
		return
	}

	form, req, errs, err := bindProduct(w, r)
	if err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if req.ProductID != id {
		renderNotFound(w, r)
		return
	}

	errs = append(errs, validateProduct(req)...)
	if req.Version <= 0 {
		errs = append(errs, ProductValidationError{Field: fieldVersion, Description: "Version is required"})
	}
	if len(errs) > 0 {
		renderProductForm(w, r, http.StatusOK, "edit.html", ProductFormView{Product: form, Errors: errs})
		return
	}

	_, err = productRepo.Update(r.Context(), req.toModel())
	if errors.Is(err, repo.ErrConcurrencyConflict) {
		handleEditConflict(w, r, form)
		return
	}
	if err != nil {
		serverError(w, r, "could not update product", err)
		return
	}

	redirectToList(w, r)
}

// handleEditConflict decides between a vanished row (404) and a stale
// version (409 with the stored version, so the user can resubmit).
func handleEditConflict(w http.ResponseWriter, r *http.Request, form ProductForm) {
	id, _ := strconv.Atoi(form.ProductID)

	current, err := productRepo.Find(r.Context(), id)
	if errors.Is(err, repo.ErrProductNotFound) {
		renderNotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, r, "could not update product", err)
		return
	}

	requestLogger(r).Warn("concurrent product update rejected",
		zap.Int("product_id", id),
		zap.String("submitted_version", form.Version),
		zap.Int("stored_version", current.Version),
	)

	form.Version = strconv.Itoa(current.Version)
	renderProductForm(w, r, http.StatusConflict, "edit.html", ProductFormView{Product: form, Message: conflictMessage})
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Param X-CSRF-Token header string false "Anti-forgery token, or the __RequestVerificationToken form field"
// @Success 302 "Redirect to /Products"
// @Failure 400 {string} string "Invalid anti-forgery token"
// @Failure 404 {object} ErrorView
// @Failure 500 {string} string "Internal error"
// @Router /Products/Delete/{id} [post]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(r)
	if !ok {
		renderNotFound(w, r)
		return
	}

	if err := productRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			renderNotFound(w, r)
			return
		}
		serverError(w, r, "could not delete product", err)
		return
	}

	requestLogger(r).Info("product deleted", zap.Int("product_id", id))
	redirectToList(w, r)
}

// SearchProductsHandler godoc
// @Summary Search products by name
// @Description Products whose name contains q; every product when q is empty
// @Tags products
// @Produce html,json
// @Param q query string false "Part of the product name"
// @Success 200 {object} SearchView
// @Failure 500 {string} string "Internal error"
// @Router /Products/SearchProducts [get]
func SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	products, err := productRepo.SearchByName(r.Context(), q)
	if err != nil {
		serverError(w, r, "could not search products", err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	render(w, r, http.StatusOK, "search.html", "Search Products", SearchView{Query: q, Products: products})
}

func loadReferenceLists(ctx context.Context) ([]models.Category, []models.Supplier, error) {
	categories, err := referenceRepo.Categories(ctx)
	if err != nil {
		return nil, nil, err
	}
	suppliers, err := referenceRepo.Suppliers(ctx)
	if err != nil {
		return nil, nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	return categories, suppliers, nil
}

// renderProductForm fills in the reference lists and the anti-forgery token.
func renderProductForm(w http.ResponseWriter, r *http.Request, status int, name string, view ProductFormView) {
	categories, suppliers, err := loadReferenceLists(r.Context())
	if err != nil {
		serverError(w, r, "could not fetch categories and suppliers", err)
		return
	}
	view.Categories = categories
	view.Suppliers = suppliers
	view.Token = antiforgery.Token(r.Context())

	title := "Create"
	if name == "edit.html" {
		title = "Edit"
	}
	render(w, r, status, name, title, view)
}
