// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/authentication/login": {
            "post": {
                "description": "Authenticate with email and password. Every failure returns the same 401.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.loginReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.loginResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/authentication/logout": {
            "post": {
                "security": [{"Bearer": []}],
                "description": "Tokens are stateless and cannot be revoked; always 501.",
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Logout",
                "responses": {
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "501": {"description": "Not Implemented", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/authentication/me": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Current token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.meResp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/users": {
            "post": {
                "description": "Create an active user with the default role.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Register user",
                "parameters": [
                    {
                        "description": "New user",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.createReq"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.userResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        }
    },
    "definitions": {
        "http.loginReq": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "http.loginResp": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expires_at": {"type": "string"},
                "user": {"$ref": "#/definitions/http.userInfo"}
            }
        },
        "http.userInfo": {
            "type": "object",
            "properties": {
                "user_id": {"type": "integer"},
                "full_name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "http.meResp": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "token_id": {"type": "string"},
                "expires_at": {"type": "string"}
            }
        },
        "http.createReq": {
            "type": "object",
            "required": ["full_name", "email", "password"],
            "properties": {
                "full_name": {"type": "string", "maxLength": 100},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 8, "maxLength": 72}
            }
        },
        "http.userResp": {
            "type": "object",
            "properties": {
                "user_id": {"type": "integer"},
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "is_active": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Format: \"Bearer {token}\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Auth Service API",
	Description:      "Email and password login issuing HS256 bearer tokens.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
