// Package docs registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/login": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign-in form metadata",
                "parameters": [
                    {"type": "string", "description": "Originally requested path", "name": "from", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [
                    {"description": "DataLab ID and password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign out",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/password-reset": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Request a password reset",
                "parameters": [
                    {"description": "DataLab ID", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.passwordResetRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/auth/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Identity"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/session/watch": {
            "get": {
                "tags": ["session"],
                "summary": "Watch the guard decision for a route",
                "parameters": [
                    {"type": "string", "description": "Protected path being displayed (e.g. /database)", "name": "route", "in": "query", "required": true}
                ],
                "responses": {"101": {"description": "Switching Protocols"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/dashboard":    {"get": {"produces": ["application/json"], "tags": ["lab"], "summary": "Dashboard overview (member)", "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}}}},
        "/samples":      {"get": {"produces": ["application/json"], "tags": ["lab"], "summary": "List samples (member)", "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}}}, "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["lab"], "summary": "Submit a new sample (member)", "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.sampleRequest"}}], "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}}},
        "/samples/{id}": {"get": {"produces": ["application/json"], "tags": ["lab"], "summary": "Get a sample (member)", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}, "404": {"description": "Not Found"}}}},
        "/reports":      {"get": {"produces": ["application/json"], "tags": ["lab"], "summary": "Reports (member)", "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}}}},
        "/profile":      {"get": {"produces": ["application/json"], "tags": ["lab"], "summary": "User profile (member)", "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}}}},
        "/database":     {"get": {"produces": ["application/json"], "tags": ["lab"], "summary": "Sample database (worker)", "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}}}},
        "/laboratory":   {"get": {"produces": ["application/json"], "tags": ["lab"], "summary": "Samples awaiting results (worker)", "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}}}},
        "/settings":     {"get": {"produces": ["application/json"], "tags": ["lab"], "summary": "Settings (handler)", "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}}}},
        "/laboratory/results":     {"post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["lab"], "summary": "Submit a lab result (worker)", "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.labResultRequest"}}], "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}}},
        "/settings/profile":       {"post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["lab"], "summary": "Update profile settings (handler)", "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.profileRequest"}}], "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}}},
        "/settings/notifications": {"post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["lab"], "summary": "Update notification preferences (handler)", "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.notificationsRequest"}}], "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}}}
    },
    "definitions": {
        "domain.Identity": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"},
                "department": {"type": "string"},
                "accessLevel": {"type": "string", "enum": ["handler", "worker", "member"]},
                "email": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["userId", "password"],
            "properties": {
                "userId": {"type": "string", "example": "25hd001"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "handler.passwordResetRequest": {
            "type": "object",
            "properties": {
                "userId": {"type": "string", "example": "25hd001"}
            }
        },
        "handler.sampleRequest": {
            "type": "object",
            "required": ["type", "batchNumber", "dateCollected"],
            "properties": {
                "name": {"type": "string", "minLength": 2},
                "type": {"type": "string"},
                "description": {"type": "string"},
                "batchNumber": {"type": "string"},
                "dateCollected": {"type": "string"},
                "temperature": {"type": "string"},
                "ph": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "handler.labResultRequest": {
            "type": "object",
            "required": ["labType", "testType", "value", "units", "collectedBy"],
            "properties": {
                "sampleId": {"type": "string", "minLength": 3},
                "labType": {"type": "string", "enum": ["clinical", "research"]},
                "testType": {"type": "string"},
                "value": {"type": "string"},
                "units": {"type": "string"},
                "notes": {"type": "string"},
                "collectedBy": {"type": "string"}
            }
        },
        "handler.profileRequest": {
            "type": "object",
            "required": ["email", "role"],
            "properties": {
                "name": {"type": "string", "minLength": 2},
                "email": {"type": "string", "format": "email"},
                "role": {"type": "string"},
                "department": {"type": "string"}
            }
        },
        "handler.notificationsRequest": {
            "type": "object",
            "properties": {
                "sampleCreated": {"type": "boolean", "default": true},
                "sampleUpdated": {"type": "boolean", "default": true},
                "sampleCompleted": {"type": "boolean", "default": true},
                "reportGenerated": {"type": "boolean", "default": true},
                "systemUpdates": {"type": "boolean", "default": false}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "DataLab API",
	Description:      "Identity store and access guard for the DataLab sample tracker.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
