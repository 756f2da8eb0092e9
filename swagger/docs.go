// Package swagger registers the OpenAPI document served at /swagger/*.
package swagger

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
        "/book/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["book"],
                "summary": "list books",
                "parameters": [
                    {"type": "string", "description": "exact price", "name": "price", "in": "query"},
                    {"type": "string", "description": "substring of name or author_name", "name": "search", "in": "query"},
                    {"type": "string", "description": "price, author_name; prefix - for descending", "name": "ordering", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Book"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["book"],
                "summary": "create book owned by the caller",
                "parameters": [
                    {"description": "book", "name": "book", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.BookInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Book"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/detail"}}
                }
            }
        },
        "/book/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["book"],
                "summary": "get book",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Book"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/detail"}}
                }
            },
            "put": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["book"],
                "summary": "replace book fields, owner or staff only",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "book", "name": "book", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.BookInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Book"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/detail"}}
                }
            },
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["book"],
                "summary": "update some book fields, owner or staff only",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "book", "name": "book", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.BookInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Book"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/detail"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["book"],
                "summary": "delete book, owner or staff only",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/detail"}}
                }
            }
        },
        "/book_relation/{book}/": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["relation"],
                "summary": "get or create the caller's relation to a book",
                "parameters": [{"type": "integer", "name": "book", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Relation"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/detail"}}
                }
            },
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["relation"],
                "summary": "like, bookmark or rate a book",
                "parameters": [
                    {"type": "integer", "name": "book", "in": "path", "required": true},
                    {"description": "relation", "name": "relation", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.RelationPatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Relation"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/detail"}}
                }
            }
        },
        "/manage/health": {
            "get": {
                "produces": ["text/plain"],
                "summary": "health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        }
    },
    "definitions": {
        "detail": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "model.Book": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "string", "example": "25.00"},
                "author_name": {"type": "string"},
                "annotated_likes": {"type": "integer"},
                "rating": {"type": "string", "example": "4.67", "x-nullable": true},
                "owner_name": {"type": "string"},
                "readers": {"type": "array", "items": {"$ref": "#/definitions/model.Reader"}}
            }
        },
        "model.BookInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 255},
                "price": {"type": "string", "example": "25.00"},
                "author_name": {"type": "string", "maxLength": 255}
            }
        },
        "model.Reader": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "model.Relation": {
            "type": "object",
            "properties": {
                "book": {"type": "integer"},
                "like": {"type": "boolean"},
                "in_bookmarks": {"type": "boolean"},
                "rating": {"type": "integer", "enum": [1, 2, 3, 4, 5], "x-nullable": true}
            }
        },
        "model.RelationPatch": {
            "type": "object",
            "properties": {
                "like": {"type": "boolean"},
                "in_bookmarks": {"type": "boolean"},
                "rating": {"type": "integer", "enum": [1, 2, 3, 4, 5]}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo is filled into docTemplate on every read.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Book store API",
	Description:      "Book catalog with likes, bookmarks and ratings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
