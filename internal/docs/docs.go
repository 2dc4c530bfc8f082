// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/Products": {
            "get": {
                "produces": ["text/html", "application/json"],
                "tags": ["products"],
                "summary": "List all products",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductListView"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/Products/Details/{id}": {
            "get": {
                "produces": ["text/html", "application/json"],
                "tags": ["products"],
                "summary": "Get product by ID",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorView"}}
                }
            }
        },
        "/Products/Create": {
            "get": {
                "produces": ["text/html", "application/json"],
                "tags": ["products"],
                "summary": "Empty product form with the category and supplier lists",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductFormView"}}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "produces": ["text/html", "application/json"],
                "tags": ["products"],
                "summary": "Create a new product",
                "parameters": [
                    {"description": "Product to add", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ProductRequest"}},
                    {"type": "string", "description": "Anti-forgery token", "name": "X-CSRF-Token", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "Validation failed", "schema": {"$ref": "#/definitions/handlers.ProductFormView"}},
                    "302": {"description": "Redirect to /Products"},
                    "400": {"description": "Invalid input or anti-forgery token", "schema": {"type": "string"}}
                }
            }
        },
        "/Products/Edit/{id}": {
            "get": {
                "produces": ["text/html", "application/json"],
                "tags": ["products"],
                "summary": "Product form filled with the stored values",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductFormView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorView"}}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "produces": ["text/html", "application/json"],
                "tags": ["products"],
                "summary": "Update a product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Updated product, productId must equal id", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ProductRequest"}},
                    {"type": "string", "description": "Anti-forgery token", "name": "X-CSRF-Token", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "Validation failed", "schema": {"$ref": "#/definitions/handlers.ProductFormView"}},
                    "302": {"description": "Redirect to /Products"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorView"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ProductFormView"}}
                }
            }
        },
        "/Products/Delete/{id}": {
            "get": {
                "produces": ["text/html", "application/json"],
                "tags": ["products"],
                "summary": "Show a product before deleting it",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorView"}}
                }
            },
            "post": {
                "tags": ["products"],
                "summary": "Delete a product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Anti-forgery token", "name": "X-CSRF-Token", "in": "header"}
                ],
                "responses": {
                    "302": {"description": "Redirect to /Products"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorView"}}
                }
            }
        },
        "/Products/SearchProducts": {
            "get": {
                "produces": ["text/html", "application/json"],
                "tags": ["products"],
                "summary": "Search products by name",
                "parameters": [{"type": "string", "description": "Part of the product name", "name": "q", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SearchView"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorView": {
            "type": "object",
            "properties": {"status": {"type": "integer"}, "message": {"type": "string"}}
        },
        "handlers.ProductRequest": {
            "type": "object",
            "properties": {
                "productId": {"type": "integer"},
                "productName": {"type": "string"},
                "supplierId": {"type": "integer"},
                "categoryId": {"type": "integer"},
                "quantityPerUnit": {"type": "string"},
                "unitPrice": {"type": "string"},
                "unitsInStock": {"type": "integer"},
                "unitsOnOrder": {"type": "integer"},
                "reorderLevel": {"type": "integer"},
                "discontinued": {"type": "boolean"},
                "version": {"type": "integer"}
            }
        },
        "handlers.ProductListView": {
            "type": "object",
            "properties": {"products": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}}}
        },
        "handlers.ProductView": {
            "type": "object",
            "properties": {"product": {"$ref": "#/definitions/models.Product"}, "token": {"type": "string"}}
        },
        "handlers.ProductFormView": {
            "type": "object",
            "properties": {
                "product": {"type": "object"},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}},
                "suppliers": {"type": "array", "items": {"$ref": "#/definitions/models.Supplier"}},
                "errors": {"type": "array", "items": {"type": "object", "properties": {"field": {"type": "string"}, "description": {"type": "string"}}}},
                "message": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "handlers.SearchView": {
            "type": "object",
            "properties": {"query": {"type": "string"}, "products": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}}}
        },
        "models.Category": {
            "type": "object",
            "properties": {"categoryId": {"type": "integer"}, "categoryName": {"type": "string"}}
        },
        "models.Supplier": {
            "type": "object",
            "properties": {"supplierId": {"type": "integer"}, "companyName": {"type": "string"}}
        },
        "models.Product": {
            "type": "object",
            "properties": {
                "productId": {"type": "integer"},
                "productName": {"type": "string"},
                "supplierId": {"type": "integer"},
                "categoryId": {"type": "integer"},
                "quantityPerUnit": {"type": "string"},
                "unitPrice": {"type": "string"},
                "unitsInStock": {"type": "integer"},
                "unitsOnOrder": {"type": "integer"},
                "reorderLevel": {"type": "integer"},
                "discontinued": {"type": "boolean"},
                "version": {"type": "integer"},
                "category": {"$ref": "#/definitions/models.Category"},
                "supplier": {"$ref": "#/definitions/models.Supplier"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Product Catalog",
	Description:      "Product catalog pages: list, details, create, edit, delete and search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
