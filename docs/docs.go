// Package docs holds the Swagger document served under /swagger. It mirrors
// the @-annotations on the handlers; `go generate ./cmd` rebuilds it with
// swag, and handlers.TestSwaggerDocMatchesAnnotations fails when the two drift.
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
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/users/{userId}": {
            "get": {
                "description": "Unknown ids return an object holding only userId.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get profile",
                "parameters": [
                    {"type": "string", "description": "Client token", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Save profile",
                "parameters": [
                    {"type": "string", "description": "Client token", "name": "userId", "in": "path", "required": true},
                    {"description": "Profile", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/handlers.SaveUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/questions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List questions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Create question",
                "parameters": [
                    {"description": "Question", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.QuestionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Question"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/questions/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "description": "An id that matches no question still answers 200 with the submitted record.",
                "summary": "Update question",
                "parameters": [
                    {"type": "integer", "description": "Question id", "name": "id", "in": "path", "required": true},
                    {"description": "Question", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.QuestionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Question"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Answers to the question are removed with it.",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Delete question",
                "parameters": [
                    {"type": "integer", "description": "Question id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/answers": {
            "post": {
                "description": "Upserts the answer of a user to a question; the latest submission wins.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["answers"],
                "summary": "Submit answer",
                "parameters": [
                    {"description": "Answer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SubmitAnswerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Answer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/answers/{userId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["answers"],
                "summary": "List answers of a user",
                "parameters": [
                    {"type": "string", "description": "Client token", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.UserAnswer"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Backs the \"forget me\" action of the profile view.",
                "produces": ["application/json"],
                "tags": ["answers"],
                "summary": "Delete answers of a user",
                "parameters": [
                    {"type": "string", "description": "Client token", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/stats/answers": {
            "get": {
                "description": "One row per question, including questions nobody answered yet.",
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Answer statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.AnswerStat"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/contacts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "List contacts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Contact"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Create contact",
                "parameters": [
                    {"description": "Contact", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Contact"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/contacts/{id}": {
            "delete": {
                "description": "An id that is not a number matches no contact.",
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Delete contact",
                "parameters": [
                    {"type": "integer", "description": "Contact id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.SaveUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "address": {"type": "string"},
                "dateOfBirth": {"type": "string"}
            }
        },
        "handlers.QuestionRequest": {
            "type": "object",
            "properties": {
                "prompt": {"type": "string"},
                "imageUrl": {"type": "string"},
                "additionalInfo": {"type": "string"}
            }
        },
        "handlers.SubmitAnswerRequest": {
            "type": "object",
            "required": ["answer", "questionId", "userId"],
            "properties": {
                "userId": {"type": "string"},
                "questionId": {"type": "number"},
                "answer": {"type": "boolean"}
            }
        },
        "handlers.ContactRequest": {
            "type": "object",
            "required": ["name", "phone"],
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "address": {"type": "string"},
                "dateOfBirth": {"type": "string"}
            }
        },
        "models.Question": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "prompt": {"type": "string"},
                "imageUrl": {"type": "string"},
                "additionalInfo": {"type": "string"}
            }
        },
        "models.Answer": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "questionId": {"type": "integer"},
                "answer": {"type": "boolean"}
            }
        },
        "models.UserAnswer": {
            "type": "object",
            "properties": {
                "questionId": {"type": "integer"},
                "answer": {"type": "boolean"}
            }
        },
        "models.AnswerStat": {
            "type": "object",
            "properties": {
                "questionId": {"type": "integer"},
                "prompt": {"type": "string"},
                "total": {"type": "integer"},
                "trueCount": {"type": "integer"},
                "percentTrue": {"type": "integer"}
            }
        },
        "models.Contact": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Community Survey API",
	Description:      "Swipe survey: prompts, answers, area statistics and profiles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
