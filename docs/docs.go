// Package docs registers the OpenAPI description served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue a token",
                "parameters": [
                    {"in": "body", "name": "credentials", "required": true, "schema": {"$ref": "#/definitions/auth.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.TokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ValidationBody"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/registration": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register",
                "parameters": [
                    {"in": "body", "name": "account", "required": true, "schema": {"$ref": "#/definitions/registration.Request"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/user.DTO"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.DuplicateBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ValidationBody"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "string", "description": "Comma-separated ids", "name": "ids", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/user.DTO"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user (admin)",
                "parameters": [
                    {"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/user.CreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/user.DTO"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.DuplicateBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ValidationBody"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/user.DTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/user.UpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/user.DTO"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.DuplicateBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ValidationBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/users/authorship/{articleId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Authors of an article",
                "parameters": [{"type": "integer", "name": "articleId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/user.DTO"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/articles": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "List articles",
                "parameters": [
                    {"type": "string", "description": "Comma-separated ids", "name": "ids", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/article.DTO"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Create an article",
                "parameters": [
                    {"in": "body", "name": "article", "required": true, "schema": {"$ref": "#/definitions/article.CreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/article.DTO"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ValidationBody"}}
                }
            }
        },
        "/articles/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Get an article",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/article.DTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Update an article",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "article", "required": true, "schema": {"$ref": "#/definitions/article.UpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/article.DTO"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ValidationBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["articles"],
                "summary": "Delete an article",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/articles/authorship/{authorId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Articles of an author",
                "parameters": [{"type": "integer", "name": "authorId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/article.DTO"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/reviews": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Create a review",
                "parameters": [
                    {"in": "body", "name": "review", "required": true, "schema": {"$ref": "#/definitions/review.CreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/review.DTO"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ValidationBody"}}
                }
            }
        },
        "/reviews/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Get a review",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/review.DTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["reviews"],
                "summary": "Delete a review",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/reviews/articles/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Reviews of an article",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/review.DTO"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/reviews/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Reviews written by a user",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/review.DTO"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["operations"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/http.HealthResponse"}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["operations"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "ready"}, "503": {"description": "not ready"}}
            }
        },
        "/live": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["operations"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "alive"}}
            }
        }
    },
    "definitions": {
        "auth.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string", "minLength": 5, "maxLength": 30, "example": "alice"},
                "password": {"type": "string", "minLength": 5, "maxLength": 50}
            }
        },
        "auth.TokenResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "registration.Request": {
            "type": "object",
            "properties": {
                "username": {"type": "string", "minLength": 5, "maxLength": 30, "example": "alice"},
                "email": {"type": "string", "minLength": 5, "maxLength": 50, "example": "alice@example.com"},
                "password": {"type": "string", "minLength": 5, "maxLength": 50}
            }
        },
        "user.DTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "username": {"type": "string", "example": "alice"},
                "email": {"type": "string", "example": "alice@example.com"},
                "role": {"type": "string", "example": "USER"}
            }
        },
        "user.CreateRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string", "minLength": 5, "maxLength": 30},
                "email": {"type": "string", "minLength": 5, "maxLength": 50},
                "password": {"type": "string", "minLength": 5, "maxLength": 50},
                "role": {"type": "string", "enum": ["USER", "ADMIN"]}
            }
        },
        "user.UpdateRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string", "minLength": 5, "maxLength": 30},
                "email": {"type": "string", "minLength": 5, "maxLength": 50},
                "password": {"type": "string", "minLength": 5, "maxLength": 50},
                "role": {"type": "string", "enum": ["USER", "ADMIN"]}
            }
        },
        "article.DTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "dateOfCreation": {"type": "string", "format": "date-time"},
                "topic": {"type": "string", "example": "Go generics"},
                "content": {"type": "string"}
            }
        },
        "article.CreateRequest": {
            "type": "object",
            "properties": {
                "topic": {"type": "string", "minLength": 1, "maxLength": 50},
                "content": {"type": "string", "minLength": 1, "maxLength": 1500},
                "authorIds": {"type": "array", "items": {"type": "integer", "minimum": 1}}
            }
        },
        "article.UpdateRequest": {
            "type": "object",
            "properties": {
                "topic": {"type": "string", "minLength": 1, "maxLength": 50},
                "content": {"type": "string", "minLength": 1, "maxLength": 1500}
            }
        },
        "review.DTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "type": {"type": "string", "example": "POSITIVE"},
                "dateOfCreation": {"type": "string", "format": "date-time"},
                "content": {"type": "string"},
                "authorId": {"type": "integer"},
                "articleId": {"type": "integer"}
            }
        },
        "review.CreateRequest": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["POSITIVE", "NEUTRAL", "CRITICAL"]},
                "content": {"type": "string", "minLength": 1, "maxLength": 500},
                "authorId": {"type": "integer", "minimum": 1},
                "articleId": {"type": "integer", "minimum": 1}
            }
        },
        "respond.ErrorBody": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "respond.DuplicateBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "duplicate_field"},
                "field": {"type": "string", "example": "username"}
            }
        },
        "respond.ValidationBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "validation_field"},
                "field_errors": {"type": "string", "example": "username:must be at least 5 characters in length"}
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"},
                "version": {"type": "string"},
                "checks": {"type": "object", "additionalProperties": {"$ref": "#/definitions/http.CheckStatus"}}
            }
        },
        "http.CheckStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT issued by POST /auth/token, sent as \"Bearer {token}\".",
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
	Title:            "Articles API",
	Description:      "Users, co-authored articles and reviews with ownership-based edit permissions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
