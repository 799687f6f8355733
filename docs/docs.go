// Package docs registra el documento swagger de la API.
// Se mantiene a mano en el formato de swag init; actualizarlo al cambiar anotaciones de los handlers.
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
        "/pets": {
            "get": {
                "description": "Devuelve las mascotas en orden de creación. Con ` + "`" + `species` + "`" + ` filtra por coincidencia exacta; sin coincidencias devuelve lista vacía.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas",
                "parameters": [
                    {"type": "string", "description": "Especie exacta", "name": "species", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.listPetsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pets.errorBody"}}
                }
            },
            "post": {
                "description": "Registra una mascota. Requeridos: name, species, image, lat, long, desc, age. Devuelve el petId generado.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Crear mascota",
                "parameters": [
                    {"description": "Mascota a crear", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.createPetRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.createdPetResponse"}},
                    "400": {"description": "missing required field / invalid request body", "schema": {"$ref": "#/definitions/pets.errorBody"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Obtener mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petEnvelope"}},
                    "404": {"description": "no pet with that petId", "schema": {"$ref": "#/definitions/pets.errorBody"}}
                }
            }
        },
        "/users": {
            "get": {
                "description": "Devuelve todos los usuarios en orden de creación.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Listar usuarios",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.listUsersResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/users.errorBody"}}
                }
            },
            "post": {
                "description": "Crea un usuario con un username que no esté tomado. Devuelve el userId generado.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Crear usuario",
                "parameters": [
                    {"description": "Usuario a crear", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.createUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/users.createdUserResponse"}},
                    "400": {"description": "missing required field / username taken / invalid request body", "schema": {"$ref": "#/definitions/users.errorBody"}}
                }
            }
        },
        "/users/{userID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Obtener usuario",
                "parameters": [
                    {"type": "string", "description": "ID del usuario", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.userEnvelope"}},
                    "404": {"description": "no user with that userId", "schema": {"$ref": "#/definitions/users.errorBody"}}
                }
            },
            "delete": {
                "tags": ["users"],
                "summary": "Borrar usuario",
                "parameters": [
                    {"type": "string", "description": "ID del usuario", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "no user with that userId", "schema": {"$ref": "#/definitions/users.errorBody"}}
                }
            },
            "patch": {
                "description": "Aplica solo los campos enviados. El username nuevo no se valida contra otros usuarios.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Actualizar usuario",
                "parameters": [
                    {"type": "string", "description": "ID del usuario", "name": "userID", "in": "path", "required": true},
                    {"description": "Campos a modificar", "name": "payload", "in": "body", "schema": {"$ref": "#/definitions/users.updateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.userEnvelope"}},
                    "400": {"description": "missing required field / invalid request body", "schema": {"$ref": "#/definitions/users.errorBody"}},
                    "404": {"description": "no user with that userId", "schema": {"$ref": "#/definitions/users.errorBody"}}
                }
            }
        }
    },
    "definitions": {
        "pets.createPetRequest": {
            "type": "object",
            "properties": {
                "age": {"type": "number"},
                "breed": {"type": "string"},
                "desc": {"type": "string"},
                "funFact": {"type": "string"},
                "image": {"type": "string"},
                "lat": {"type": "number"},
                "long": {"type": "number"},
                "name": {"type": "string"},
                "species": {"type": "string"}
            }
        },
        "pets.createdPetResponse": {
            "type": "object",
            "properties": {"pet": {"type": "string"}}
        },
        "pets.errorBody": {
            "type": "object",
            "properties": {"msg": {"type": "string"}}
        },
        "pets.listPetsResponse": {
            "type": "object",
            "properties": {
                "pets": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}}
            }
        },
        "pets.petEnvelope": {
            "type": "object",
            "properties": {"pet": {"$ref": "#/definitions/pets.petResponse"}}
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "age": {"type": "number"},
                "breed": {"type": "string"},
                "desc": {"type": "string"},
                "funFact": {"type": "string"},
                "image": {"type": "string"},
                "lat": {"type": "number"},
                "long": {"type": "number"},
                "name": {"type": "string"},
                "petId": {"type": "string"},
                "species": {"type": "string"}
            }
        },
        "users.createUserRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}}
        },
        "users.createdUserResponse": {
            "type": "object",
            "properties": {"user": {"type": "string"}}
        },
        "users.errorBody": {
            "type": "object",
            "properties": {"msg": {"type": "string"}}
        },
        "users.listUsersResponse": {
            "type": "object",
            "properties": {
                "users": {"type": "array", "items": {"$ref": "#/definitions/users.userResponse"}}
            }
        },
        "users.updateUserRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}}
        },
        "users.userEnvelope": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/users.userResponse"}}
        },
        "users.userResponse": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "username": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Pets API",
	Description:      "API JSON de usuarios y mascotas sobre un store en memoria sembrable.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
