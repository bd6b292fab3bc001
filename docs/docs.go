// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/ping": {"get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}},
        "/pricing/region": {"get": {"tags": ["pricing"], "summary": "Resolve the visitor's pricing region", "parameters": [
            {"type": "string", "name": "country", "in": "query"},
            {"type": "string", "name": "tz", "in": "query"},
            {"type": "string", "name": "X-Session-ID", "in": "header"}
        ], "responses": {"200": {"description": "OK"}}}},
        "/pricing/tiers": {"get": {"tags": ["pricing"], "summary": "List pricing tiers with their USD base prices", "responses": {"200": {"description": "OK"}}}},
        "/pricing/format": {"get": {"tags": ["pricing"], "summary": "Format an amount for display in a currency", "parameters": [
            {"type": "string", "name": "amount", "in": "query", "required": true},
            {"type": "string", "name": "currency", "in": "query"}
        ], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/quotes/totals": {"post": {"tags": ["quotes"], "summary": "Compute totals for a posted quote", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/quotes": {"post": {"tags": ["quotes"], "summary": "Create an empty quote", "responses": {"201": {"description": "Created"}}}},
        "/quotes/{id}": {
            "get": {"tags": ["quotes"], "summary": "Get a quote with its summary", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["quotes"], "summary": "Delete a quote", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/quotes/{id}/summary": {"get": {"tags": ["quotes"], "summary": "Totals, profit and margin of a stored quote", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/quotes/{id}/fees": {"put": {"tags": ["quotes"], "summary": "Set fee and discount percentages", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/quotes/{id}/sections": {"post": {"tags": ["quotes"], "summary": "Add a section", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}},
        "/quotes/{id}/sections/{section_id}": {"delete": {"tags": ["quotes"], "summary": "Remove a section", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "section_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/quotes/{id}/sections/{section_id}/items": {"post": {"tags": ["quotes"], "summary": "Add a line item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "section_id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}},
        "/quotes/{id}/sections/{section_id}/items/{item_id}": {
            "put": {"tags": ["quotes"], "summary": "Update a line item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "section_id", "in": "path", "required": true}, {"type": "string", "name": "item_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["quotes"], "summary": "Remove a line item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "section_id", "in": "path", "required": true}, {"type": "string", "name": "item_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/checkout/quotes/{id}": {"post": {"tags": ["checkout"], "summary": "Pay a quote", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}}},
        "/checkout/plans": {"post": {"tags": ["checkout"], "summary": "Subscribe to a plan at the visitor's regional price", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/checkout/payments/{reference}": {"get": {"tags": ["checkout"], "summary": "Payments recorded for a quote id or plan reference, newest first", "parameters": [{"type": "string", "name": "reference", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Quote Service API",
	Description:      "Regional pricing, quote totals and checkout.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
