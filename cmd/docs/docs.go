// Package docs holds the Swagger 2.0 document served at /swagger by gin-swagger.
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
        "/": {
            "get": {
                "description": "get the status of server and the currencies it knows about.",
                "consumes": ["*/*"],
                "produces": ["application/json"],
                "tags": ["root"],
                "summary": "Show the status of server.",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/api/seed-currency": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Reads back one seeded pair; defaults to USD to ILS",
                "produces": ["application/json"],
                "tags": ["seed"],
                "summary": "Test a stored currency rate",
                "parameters": [
                    {"type": "string", "default": "USD", "description": "Source currency", "name": "from", "in": "query"},
                    {"type": "string", "default": "ILS", "description": "Target currency", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SeedCurrencyResponse"}},
                    "400": {"description": "Unknown currency code", "schema": {"$ref": "#/definitions/dto.SeedCurrencyResponse"}},
                    "404": {"description": "Pair not seeded", "schema": {"$ref": "#/definitions/dto.SeedCurrencyResponse"}},
                    "500": {"description": "Lookup failed", "schema": {"$ref": "#/definitions/dto.SeedCurrencyResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Upserts the built-in USD, EUR, GBP and ILS rate table into currency_rates",
                "produces": ["application/json"],
                "tags": ["seed"],
                "summary": "Seed currency rates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SeedCurrencyResponse"}},
                    "401": {"description": "Admin token required", "schema": {"$ref": "#/definitions/dto.SeedCurrencyResponse"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/dto.SeedCurrencyResponse"}},
                    "500": {"description": "Seeding failed", "schema": {"$ref": "#/definitions/dto.SeedCurrencyResponse"}}
                }
            }
        },
        "/api/seed-currency/rates": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves every row of currency_rates",
                "produces": ["application/json"],
                "tags": ["seed"],
                "summary": "List stored currency rates",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CurrencyRateResponse"}}},
                    "500": {"description": "Failed to list rates", "schema": {"$ref": "#/definitions/dto.SeedCurrencyResponse"}}
                }
            }
        },
        "/api/v1/currency/amounts": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Clean, parse and classify amount strings",
                "parameters": [
                    {"description": "Raw amounts", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.InspectAmountsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.AmountInsightResponse"}}},
                    "400": {"description": "Invalid input", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/currency/detect": {
            "post": {
                "description": "Uses a single-valued currency column when present, otherwise the most frequent amount symbol",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Detect the currency of a table",
                "parameters": [
                    {"description": "Rows and column names", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.DetectCurrencyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DetectCurrencyResponse"}},
                    "400": {"description": "Invalid input", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/currency/detect/csv": {
            "post": {
                "description": "Parses the header and up to DETECTION_MAX_ROWS rows. The currency column is suggested from the headers when not given.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Detect the currency of an uploaded CSV",
                "parameters": [
                    {"type": "file", "description": "CSV file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Amount column header", "name": "amountField", "in": "formData", "required": true},
                    {"type": "string", "description": "Currency column header", "name": "currencyField", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DetectCSVResponse"}},
                    "400": {"description": "Invalid input", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to read upload", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/currency/suggest-mapping": {
            "post": {
                "description": "Picks the header most likely to hold currency labels",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Suggest the currency column",
                "parameters": [
                    {"description": "Table headers", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SuggestMappingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SuggestMappingResponse"}},
                    "400": {"description": "Invalid input", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/token": {
            "post": {
                "description": "Returns a short-lived JWT accepted by the seeding routes when REQUIRE_ADMIN_AUTH is set.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange the admin secret for a token",
                "parameters": [
                    {"description": "Admin secret", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AdminTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AdminTokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AdminTokenRequest": {
            "type": "object",
            "required": ["secret"],
            "properties": {"secret": {"type": "string"}}
        },
        "dto.AdminTokenResponse": {
            "type": "object",
            "properties": {"expiresAt": {"type": "string"}, "token": {"type": "string"}}
        },
        "dto.AmountInsightResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "cleaned": {"type": "string"},
                "currency": {"type": "string"},
                "input": {"type": "string"}
            }
        },
        "dto.CurrencyRateResponse": {
            "type": "object",
            "properties": {
                "fromCurrency": {"type": "string"},
                "lastUpdated": {"type": "string"},
                "rate": {"type": "string"},
                "toCurrency": {"type": "string"}
            }
        },
        "dto.DetectCSVResponse": {
            "type": "object",
            "properties": {
                "currency": {"type": "string"},
                "currencyField": {"type": "string"},
                "found": {"type": "boolean"},
                "headers": {"type": "array", "items": {"type": "string"}},
                "method": {"type": "string"},
                "rowsScanned": {"type": "integer"}
            }
        },
        "dto.DetectCurrencyRequest": {
            "type": "object",
            "required": ["amountField"],
            "properties": {
                "amountField": {"type": "string"},
                "currencyField": {"type": "string"},
                "rows": {"type": "array", "items": {"type": "object", "additionalProperties": {"type": "string"}}}
            }
        },
        "dto.DetectCurrencyResponse": {
            "type": "object",
            "properties": {
                "currency": {"type": "string"},
                "found": {"type": "boolean"},
                "method": {"type": "string"}
            }
        },
        "dto.InspectAmountsRequest": {
            "type": "object",
            "required": ["amounts"],
            "properties": {"amounts": {"type": "array", "maxItems": 1000, "items": {"type": "string"}}}
        },
        "dto.SeedCurrencyResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"},
                "testResult": {"$ref": "#/definitions/dto.TestResult"}
            }
        },
        "dto.SuggestMappingRequest": {
            "type": "object",
            "required": ["headers"],
            "properties": {"headers": {"type": "array", "items": {"type": "string"}}}
        },
        "dto.SuggestMappingResponse": {
            "type": "object",
            "properties": {"column": {"type": "string"}, "found": {"type": "boolean"}}
        },
        "dto.TestResult": {
            "type": "object",
            "properties": {
                "from": {"type": "string"},
                "rate": {"type": "number"},
                "to": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Currency Toolkit API",
	Description:      "Currency detection for imported tables and the rate seeding endpoint behind the admin setup page.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
