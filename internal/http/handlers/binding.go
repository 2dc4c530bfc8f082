package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

// Form field names used by the create and edit pages.
const (
	fieldProductID       = "ProductId"
	fieldProductName     = "ProductName"
	fieldSupplierID      = "SupplierId"
	fieldCategoryID      = "CategoryId"
	fieldQuantityPerUnit = "QuantityPerUnit"
	fieldUnitPrice       = "UnitPrice"
	fieldUnitsInStock    = "UnitsInStock"
	fieldUnitsOnOrder    = "UnitsOnOrder"
	fieldReorderLevel    = "ReorderLevel"
	fieldDiscontinued    = "Discontinued"
	fieldVersion         = "Version"
)

// bindProduct reads a submission either from a JSON body or from form values.
// Values that cannot be parsed are reported as validation errors so the form
// can be shown again with what the user typed.
func bindProduct(w http.ResponseWriter, r *http.Request) (ProductForm, ProductRequest, []ProductValidationError, error) {
	if isJSONRequest(r) {
		var req ProductRequest
		if err := readJSON(w, r, &req); err != nil {
			return ProductForm{}, ProductRequest{}, nil, err
		}
		var errs []ProductValidationError
		if !priceExponentInRange(req.UnitPrice) {
			errs = append(errs, ProductValidationError{Field: fieldUnitPrice, Description: unitPriceRangeMessage})
			req.UnitPrice = decimal.Zero
		}
		return formFromRequest(req), req, errs, nil
	}

	if err := r.ParseForm(); err != nil {
		return ProductForm{}, ProductRequest{}, nil, err
	}
	form := formFromValues(r.PostForm)
	req, errs := form.toRequest()
	return form, req, errs, nil
}

func formFromValues(v url.Values) ProductForm {
	return ProductForm{
		ProductID:       strings.TrimSpace(v.Get(fieldProductID)),
		ProductName:     v.Get(fieldProductName),
		SupplierID:      strings.TrimSpace(v.Get(fieldSupplierID)),
		CategoryID:      strings.TrimSpace(v.Get(fieldCategoryID)),
		QuantityPerUnit: v.Get(fieldQuantityPerUnit),
		UnitPrice:       strings.TrimSpace(v.Get(fieldUnitPrice)),
		UnitsInStock:    strings.TrimSpace(v.Get(fieldUnitsInStock)),
		UnitsOnOrder:    strings.TrimSpace(v.Get(fieldUnitsOnOrder)),
		ReorderLevel:    strings.TrimSpace(v.Get(fieldReorderLevel)),
		Discontinued:    parseCheckbox(v.Get(fieldDiscontinued)),
		Version:         strings.TrimSpace(v.Get(fieldVersion)),
	}
}

func parseCheckbox(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func formFromRequest(req ProductRequest) ProductForm {
	return ProductForm{
		ProductID:       strconv.Itoa(req.ProductID),
		ProductName:     req.ProductName,
		SupplierID:      strconv.Itoa(req.SupplierID),
		CategoryID:      strconv.Itoa(req.CategoryID),
		QuantityPerUnit: req.QuantityPerUnit,
		UnitPrice:       req.UnitPrice.String(),
		UnitsInStock:    strconv.Itoa(req.UnitsInStock),
		UnitsOnOrder:    strconv.Itoa(req.UnitsOnOrder),
		ReorderLevel:    strconv.Itoa(req.ReorderLevel),
		Discontinued:    req.Discontinued,
		Version:         strconv.Itoa(req.Version),
	}
}

func formFromProduct(p models.Product) ProductForm {
	return ProductForm{
		ProductID:       strconv.Itoa(p.ProductID),
		ProductName:     p.ProductName,
		SupplierID:      strconv.Itoa(p.SupplierID),
		CategoryID:      strconv.Itoa(p.CategoryID),
		QuantityPerUnit: p.QuantityPerUnit,
		UnitPrice:       p.UnitPrice.StringFixed(2),
		UnitsInStock:    strconv.Itoa(int(p.UnitsInStock)),
		UnitsOnOrder:    strconv.Itoa(int(p.UnitsOnOrder)),
		ReorderLevel:    strconv.Itoa(int(p.ReorderLevel)),
		Discontinued:    p.Discontinued,
		Version:         strconv.Itoa(p.Version),
	}
}

func (f ProductForm) toRequest() (ProductRequest, []ProductValidationError) {
	var errs []ProductValidationError
	intField := func(field, value string) int {
		if value == "" {
			return 0
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			errs = append(errs, ProductValidationError{Field: field, Description: field + " must be a whole number"})
			return 0
		}
		return v
	}

	req := ProductRequest{
		ProductID:       intField(fieldProductID, f.ProductID),
		ProductName:     f.ProductName,
		SupplierID:      intField(fieldSupplierID, f.SupplierID),
		CategoryID:      intField(fieldCategoryID, f.CategoryID),
		QuantityPerUnit: f.QuantityPerUnit,
		UnitsInStock:    intField(fieldUnitsInStock, f.UnitsInStock),
		UnitsOnOrder:    intField(fieldUnitsOnOrder, f.UnitsOnOrder),
		ReorderLevel:    intField(fieldReorderLevel, f.ReorderLevel),
		Discontinued:    f.Discontinued,
		Version:         intField(fieldVersion, f.Version),
	}

	if f.UnitPrice != "" {
		price, err := decimal.NewFromString(f.UnitPrice)
		switch {
		case err != nil:
			errs = append(errs, ProductValidationError{Field: fieldUnitPrice, Description: "Unit price must be a number"})
		case !priceExponentInRange(price):
			errs = append(errs, ProductValidationError{Field: fieldUnitPrice, Description: unitPriceRangeMessage})
		default:
			req.UnitPrice = price
		}
	}
	return req, errs
}

func (req ProductRequest) toModel() models.Product {
	return models.Product{
		ProductID:       req.ProductID,
		ProductName:     strings.TrimSpace(req.ProductName),
		SupplierID:      req.SupplierID,
		CategoryID:      req.CategoryID,
		QuantityPerUnit: req.QuantityPerUnit,
		UnitPrice:       req.UnitPrice,
		UnitsInStock:    int16(req.UnitsInStock),
		UnitsOnOrder:    int16(req.UnitsOnOrder),
		ReorderLevel:    int16(req.ReorderLevel),
		Discontinued:    req.Discontinued,
		Version:         req.Version,
	}
}
