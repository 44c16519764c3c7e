// Package docs holds the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/assumptions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["methods"],
                "summary": "Default assumptions",
                "responses": {"200": {"description": "Default assumptions", "schema": {"type": "object"}}}
            }
        },
        "/methods/select": {
            "get": {
                "produces": ["application/json"],
                "tags": ["methods"],
                "summary": "Recommend a valuation method",
                "parameters": [
                    {"type": "string", "description": "Property category", "name": "category", "in": "query", "required": true},
                    {"type": "integer", "description": "Number of comparables (default 0)", "name": "comparables", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Recommended method", "schema": {"$ref": "#/definitions/services.MethodSelection"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/valuations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "List valuations",
                "parameters": [
                    {"type": "string", "description": "Filter by method", "name": "method", "in": "query"},
                    {"type": "string", "description": "Filter by property category", "name": "category", "in": "query"},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (default 20, max 100)", "name": "page_size", "in": "query"},
                    {"type": "string", "enum": ["newest", "oldest", "value_desc", "value_asc"], "description": "Order (default newest)", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Paginated valuations", "schema": {"type": "object"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/valuations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Get valuation by ID",
                "parameters": [{"type": "string", "description": "Valuation ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Valuation details", "schema": {"$ref": "#/definitions/models.Valuation"}},
                    "400": {"description": "Invalid valuation ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Valuation not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/valuations/sales-comparison": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Sales comparison valuation",
                "parameters": [{"description": "Subject and comparables", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "201": {"description": "Archived valuation", "schema": {"$ref": "#/definitions/models.Valuation"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Insufficient data or invalid assumptions", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/valuations/residual": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Residual land valuation",
                "parameters": [{"description": "Development scheme", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "201": {"description": "Archived valuation", "schema": {"$ref": "#/definitions/models.Valuation"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Invalid assumptions", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/valuations/dcf": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Discounted cash flow valuation",
                "parameters": [{"description": "Income forecast", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "201": {"description": "Archived valuation", "schema": {"$ref": "#/definitions/models.Valuation"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Invalid assumptions", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/valuations/profits": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Profits method valuation",
                "parameters": [{"description": "Business financials", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "201": {"description": "Archived valuation", "schema": {"$ref": "#/definitions/models.Valuation"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Invalid assumptions", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/valuations/site-rent": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Site rental value",
                "parameters": [{"description": "Site and lease terms", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "201": {"description": "Archived valuation", "schema": {"$ref": "#/definitions/models.Valuation"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/valuations/auto": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Select and run a valuation method",
                "parameters": [{"description": "Property and method inputs", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "201": {"description": "Selection and archived valuation", "schema": {"type": "object"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Insufficient data or invalid assumptions", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/valuations/batch": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Batch valuation",
                "parameters": [{"description": "Valuation requests", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "Per-item outcomes in request order", "schema": {"type": "object"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/handlers.ErrorDetail"}}
        },
        "services.MethodSelection": {
            "type": "object",
            "properties": {
                "method": {"type": "string"},
                "name": {"type": "string"},
                "tier": {"type": "string"},
                "rationale": {"type": "string"}
            }
        },
        "models.Valuation": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "method": {"type": "string"},
                "category": {"type": "string"},
                "label": {"type": "string"},
                "total_value": {"type": "string"},
                "value_per_unit_area": {"type": "string"},
                "confidence": {"type": "number"},
                "flags": {"type": "array", "items": {"type": "string"}},
                "result": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Appraisal API",
	Description:      "Appraisal values real estate by sales comparison, residual land value, discounted cash flow and the profits method, and archives every result.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
