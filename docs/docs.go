// Package docs holds the OpenAPI document served under /swagger/. Keep it in
// step with the route annotations in internal/server.
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
        "/auth/login": {
            "post": {
                "description": "Exchanges the editor password for a 24h bearer token. Wrong passwords are answered after a delay.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in to the blog editor",
                "parameters": [
                    {
                        "description": "Editor password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/server.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.LoginResponse"}},
                    "400": {"description": "Invalid request payload", "schema": {"$ref": "#/definitions/server.ErrorResponse"}},
                    "401": {"description": "Invalid password", "schema": {"$ref": "#/definitions/server.ErrorResponse"}},
                    "429": {"description": "Too many login attempts", "schema": {"$ref": "#/definitions/server.ErrorResponse"}},
                    "500": {"description": "Server configuration error", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/auth/verify": {
            "post": {
                "description": "Reports whether the token is still valid",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Verify an editor token",
                "parameters": [
                    {
                        "description": "Token to verify",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/server.VerifyRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.VerifyResponse"}},
                    "400": {"description": "Invalid request payload", "schema": {"$ref": "#/definitions/server.ErrorResponse"}},
                    "401": {"description": "No token provided, Token expired or Invalid token", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/blogs": {
            "get": {
                "description": "Returns every blog slug, newest first",
                "produces": ["application/json"],
                "tags": ["blogs"],
                "summary": "List blog slugs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Failed to fetch blogs", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/blogs/create": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates a post whose slug is derived from its title. Requires an editor token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["blogs"],
                "summary": "Create a blog post",
                "parameters": [
                    {
                        "description": "Post",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/blog.CreateBlogRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/blog.CreateBlogResponse"}},
                    "400": {"description": "Title and content are required", "schema": {"$ref": "#/definitions/server.ErrorResponse"}},
                    "401": {"description": "Invalid or expired token", "schema": {"$ref": "#/definitions/server.ErrorResponse"}},
                    "409": {"description": "Blog with this title already exists", "schema": {"$ref": "#/definitions/server.ErrorResponse"}},
                    "500": {"description": "Failed to create blog", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/blogs/{slug}": {
            "get": {
                "description": "Returns the post front matter and markdown content",
                "produces": ["application/json"],
                "tags": ["blogs"],
                "summary": "Get a blog post",
                "parameters": [
                    {"type": "string", "description": "Blog slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/blog.BlogResponse"}},
                    "404": {"description": "Blog not found", "schema": {"$ref": "#/definitions/server.ErrorResponse"}},
                    "500": {"description": "Failed to fetch blog", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/portfolio": {
            "get": {
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Get the portfolio",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "500": {"description": "Failed to fetch portfolio", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/portfolio/{section}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Get a portfolio section",
                "parameters": [
                    {
                        "type": "string",
                        "description": "about, education, skills, experience, projects, certifications, contact or resume",
                        "name": "section",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Section not found", "schema": {"$ref": "#/definitions/server.ErrorResponse"}},
                    "500": {"description": "Failed to fetch portfolio", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/status": {
            "get": {
                "description": "Status of the API",
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Status of the API",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "blog.BlogMeta": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "readTime": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"}
            }
        },
        "blog.BlogResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "data": {"$ref": "#/definitions/blog.BlogMeta"}
            }
        },
        "blog.CreateBlogRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "date": {"type": "string"},
                "readTime": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"}
            }
        },
        "blog.CreateBlogResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "server.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "server.LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"}
            }
        },
        "server.LoginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"},
                "token": {"type": "string"}
            }
        },
        "server.VerifyRequest": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "server.VerifyResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "termfolio API",
	Description:      "Blog, auth and portfolio API behind the termfolio terminal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
