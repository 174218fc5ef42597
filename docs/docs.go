// Package docs holds the OpenAPI description served under /swagger.
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
                "produces": ["application/json"],
                "summary": "Welcome message",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.WelcomeResponse"}}
                }
            }
        },
        "/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "summary": "Upload an .xls/.xlsx sheet and stage its validated rows",
                "parameters": [
                    {"type": "file", "description": "spreadsheet", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "staged, or wrong extension / no file", "schema": {"$ref": "#/definitions/dtos.UploadErrorResponse"}},
                    "422": {"description": "malformed spreadsheet", "schema": {"$ref": "#/definitions/dtos.UploadErrorResponse"}}
                }
            }
        },
        "/upload/template": {
            "get": {
                "produces": ["application/json"],
                "summary": "JSON Schema of one upload row",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/upload/summary": {
            "get": {
                "produces": ["application/json"],
                "summary": "Latest ingestion summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/app.IngestionSummary"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dtos.UploadErrorResponse"}}
                }
            }
        },
        "/records": {
            "get": {
                "produces": ["application/json"],
                "summary": "Page through the staged batch",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "1-indexed page", "name": "page", "in": "query"},
                    {"type": "integer", "default": 50, "description": "page size", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}}
            }
        },
        "/users": {
            "post": {
                "produces": ["application/json"],
                "summary": "Persist the staged batch into the users table",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dtos.PersistUsersResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dtos.PersistUsersErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "app.IngestionSummary": {
            "type": "object",
            "properties": {
                "file_name": {"type": "string"},
                "total_rows": {"type": "integer"},
                "invalid_rows": {"type": "integer"},
                "staged_at": {"type": "string"}
            }
        },
        "dtos.PersistUsersErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "index": {"type": "integer"},
                "persisted": {"type": "integer"}
            }
        },
        "dtos.PersistUsersResponse": {
            "type": "object",
            "properties": {"persisted": {"type": "integer"}}
        },
        "dtos.UploadErrorResponse": {
            "type": "object",
            "properties": {
                "err_desc": {"type": "string"},
                "error_code": {"type": "integer"}
            }
        },
        "dtos.WelcomeResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "excel-users",
	Description:      "Upload, validate, page and persist user spreadsheets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
