// Package docs registers the swagger document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/api/main.go
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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Matrix backends not configured"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List annotated events",
                "parameters": [
                    {"type": "string", "description": "Start date (YYYY-MM-DD, today, besok, ...)", "name": "from", "in": "query"},
                    {"type": "string", "description": "End date, inclusive", "name": "to", "in": "query"},
                    {"type": "integer", "description": "Max events (default 250)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/events/{id}": {
            "get": {
                "tags": ["Events"],
                "summary": "Get an annotated event",
                "parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/events/{id}/disposition": {
            "put": {
                "tags": ["Events"],
                "summary": "Set the disposition of an event",
                "consumes": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"description": "Disposition", "name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {"disposition": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/events/{id}/record": {
            "post": {
                "tags": ["Matrix"],
                "summary": "Record an event in the activity matrix",
                "parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Event, sheet or date column not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Column full or slot taken", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/matrix/slots": {
            "post": {
                "tags": ["Matrix"],
                "summary": "Plan a matrix append",
                "consumes": ["application/json"],
                "parameters": [
                    {"description": "Date", "name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {"date": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Sheet or date column not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Column full", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/matrix/slots/commit": {
            "post": {
                "tags": ["Matrix"],
                "summary": "Commit a planned matrix append",
                "consumes": ["application/json"],
                "parameters": [
                    {"description": "Slot and value", "name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {"slot": {"type": "object"}, "value": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid slot or value", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Slot taken", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/matrix/days/{date}": {
            "get": {
                "tags": ["Matrix"],
                "summary": "List the cells of a day",
                "parameters": [{"type": "string", "description": "Date (YYYY-MM-DD)", "name": "date", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Sheet or date column not found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "SPPD Activity Matrix API",
	Description:      "Records calendar events into the monthly activity matrix and manages their dispositions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
