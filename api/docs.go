// Package api holds the OpenAPI documentation served on /docs.
//
// The document follows the swag annotations of the handlers. Regenerate it
// with `swag init --parseDependency --output api` after changing them.
package api

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
                "description": "Entrypoint for the API, linking the ledger and the operational endpoints",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/root.Response"
                        }
                    }
                },
                "summary": "API root",
                "tags": [
                    "General"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "General"
                ]
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/healthz.Response"
                        }
                    }
                },
                "summary": "Get health",
                "tags": [
                    "General"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "General"
                ]
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response"
                        }
                    }
                },
                "summary": "v1 API",
                "tags": [
                    "v1"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "v1"
                ]
            }
        },
        "/v1/allocations": {
            "get": {
                "description": "Returns a list of allocations",
                "parameters": [
                    {
                        "description": "Filter by goal ID",
                        "in": "query",
                        "name": "goal",
                        "type": "string"
                    },
                    {
                        "description": "Filter by bank ID",
                        "in": "query",
                        "name": "bank",
                        "type": "string"
                    },
                    {
                        "description": "The offset of the first allocation returned. Defaults to 0.",
                        "in": "query",
                        "name": "offset",
                        "type": "integer"
                    },
                    {
                        "description": "Maximum number of allocations to return. Defaults to 50.",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationListResponse"
                        }
                    }
                },
                "summary": "List allocations",
                "tags": [
                    "Allocations"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Allocations"
                ]
            },
            "post": {
                "description": "Creates new allocations. The allocations of a bank must not exceed its balance.",
                "parameters": [
                    {
                        "description": "Allocations",
                        "in": "body",
                        "name": "allocations",
                        "required": true,
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/v1.AllocationEditable"
                            },
                            "type": "array"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationCreateResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationCreateResponse"
                        }
                    }
                },
                "summary": "Create allocations",
                "tags": [
                    "Allocations"
                ]
            }
        },
        "/v1/allocations/{id}": {
            "delete": {
                "description": "Deletes an allocation",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Delete allocation",
                "tags": [
                    "Allocations"
                ]
            },
            "get": {
                "description": "Returns a specific allocation",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    }
                },
                "summary": "Get allocation",
                "tags": [
                    "Allocations"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Allocations"
                ]
            },
            "patch": {
                "description": "Updates an allocation. Only values to be updated need to be specified. The allocations of a bank must not exceed its balance.",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Allocation",
                        "in": "body",
                        "name": "allocation",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationEditable"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    }
                },
                "summary": "Update allocation",
                "tags": [
                    "Allocations"
                ]
            }
        },
        "/v1/banks": {
            "get": {
                "description": "Returns a list of banks",
                "parameters": [
                    {
                        "description": "Filter by owner ID",
                        "in": "query",
                        "name": "owner",
                        "type": "string"
                    },
                    {
                        "description": "Filter by name",
                        "in": "query",
                        "name": "name",
                        "type": "string"
                    },
                    {
                        "description": "Search for this text in name and note",
                        "in": "query",
                        "name": "search",
                        "type": "string"
                    },
                    {
                        "description": "The offset of the first bank returned. Defaults to 0.",
                        "in": "query",
                        "name": "offset",
                        "type": "integer"
                    },
                    {
                        "description": "Maximum number of banks to return. Defaults to 50.",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BankListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BankListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BankListResponse"
                        }
                    }
                },
                "summary": "List banks",
                "tags": [
                    "Banks"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Banks"
                ]
            },
            "post": {
                "description": "Creates new banks",
                "parameters": [
                    {
                        "description": "Banks",
                        "in": "body",
                        "name": "banks",
                        "required": true,
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/v1.BankEditable"
                            },
                            "type": "array"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.BankCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BankCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BankCreateResponse"
                        }
                    }
                },
                "summary": "Create banks",
                "tags": [
                    "Banks"
                ]
            }
        },
        "/v1/banks/{id}": {
            "delete": {
                "description": "Deletes a bank and its allocations. Transactions are kept.",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Delete bank",
                "tags": [
                    "Banks"
                ]
            },
            "get": {
                "description": "Returns a specific bank",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BankResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BankResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BankResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BankResponse"
                        }
                    }
                },
                "summary": "Get bank",
                "tags": [
                    "Banks"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Banks"
                ]
            },
            "patch": {
                "description": "Updates a bank. Only values to be updated need to be specified. The balance must not be lower than the sum of the bank's allocations.",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Bank",
                        "in": "body",
                        "name": "bank",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BankEditable"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BankResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BankResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BankResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BankResponse"
                        }
                    }
                },
                "summary": "Update bank",
                "tags": [
                    "Banks"
                ]
            }
        },
        "/v1/goals": {
            "get": {
                "description": "Returns a list of goals",
                "parameters": [
                    {
                        "description": "Filter by owner ID",
                        "in": "query",
                        "name": "owner",
                        "type": "string"
                    },
                    {
                        "description": "Filter by name",
                        "in": "query",
                        "name": "name",
                        "type": "string"
                    },
                    {
                        "description": "Search for this text in name and note",
                        "in": "query",
                        "name": "search",
                        "type": "string"
                    },
                    {
                        "description": "The offset of the first goal returned. Defaults to 0.",
                        "in": "query",
                        "name": "offset",
                        "type": "integer"
                    },
                    {
                        "description": "Maximum number of goals to return. Defaults to 50.",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalListResponse"
                        }
                    }
                },
                "summary": "List goals",
                "tags": [
                    "Goals"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Goals"
                ]
            },
            "post": {
                "description": "Creates new goals",
                "parameters": [
                    {
                        "description": "Goals",
                        "in": "body",
                        "name": "goals",
                        "required": true,
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/v1.GoalEditable"
                            },
                            "type": "array"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalCreateResponse"
                        }
                    }
                },
                "summary": "Create goals",
                "tags": [
                    "Goals"
                ]
            }
        },
        "/v1/goals/{id}": {
            "delete": {
                "description": "Deletes a goal and its allocations. Transactions are kept.",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Delete goal",
                "tags": [
                    "Goals"
                ]
            },
            "get": {
                "description": "Returns a specific goal",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    }
                },
                "summary": "Get goal",
                "tags": [
                    "Goals"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Goals"
                ]
            },
            "patch": {
                "description": "Updates a goal. Only values to be updated need to be specified.",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Goal",
                        "in": "body",
                        "name": "goal",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.GoalEditable"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalResponse"
                        }
                    }
                },
                "summary": "Update goal",
                "tags": [
                    "Goals"
                ]
            }
        },
        "/v1/transactions": {
            "get": {
                "description": "Returns one page of transactions, newest first. Transactions of deleted banks and goals are labelled \"Unknown Bank\" and \"Unknown Objective\".",
                "parameters": [
                    {
                        "description": "Filter by owner ID",
                        "in": "query",
                        "name": "owner",
                        "type": "string"
                    },
                    {
                        "description": "The page to return, starting at 1. Defaults to 1.",
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "description": "Transactions per page. Defaults to 15, at most 100.",
                        "in": "query",
                        "name": "pageSize",
                        "type": "integer"
                    },
                    {
                        "description": "Only list withdrawals",
                        "in": "query",
                        "name": "withdrawnOnly",
                        "type": "boolean"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    }
                },
                "summary": "List transactions",
                "tags": [
                    "Transactions"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ]
            }
        },
        "/v1/transactions/return": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ]
            },
            "post": {
                "description": "Fully returns the withdrawals with the given IDs. Withdrawals from the same allocation are returned together, a failing allocation does not stop the others.",
                "parameters": [
                    {
                        "description": "Withdrawals to return",
                        "in": "body",
                        "name": "return",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ReturnBatchRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ReturnBatchResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ReturnBatchResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.ReturnBatchResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.ReturnBatchResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ReturnBatchResponse"
                        }
                    }
                },
                "summary": "Return money of several withdrawals",
                "tags": [
                    "Transactions"
                ]
            }
        },
        "/v1/transactions/selection": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ]
            },
            "post": {
                "description": "Returns the total and count of the selected withdrawals on a page of the transaction history, together with all IDs that can be selected on it.",
                "parameters": [
                    {
                        "description": "Selection",
                        "in": "body",
                        "name": "selection",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.SelectionRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SelectionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SelectionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SelectionResponse"
                        }
                    }
                },
                "summary": "Summarize a selection",
                "tags": [
                    "Transactions"
                ]
            }
        },
        "/v1/transactions/{id}": {
            "get": {
                "description": "Returns a specific transaction",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                },
                "summary": "Get transaction",
                "tags": [
                    "Transactions"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ]
            }
        },
        "/v1/transactions/{id}/return": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ]
            },
            "post": {
                "description": "Returns money of a withdrawal to its allocation. A partial return leaves a withdrawal for the remaining amount.",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Return",
                        "in": "body",
                        "name": "return",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ReturnRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ReturnResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ReturnResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.ReturnResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.ReturnResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ReturnResponse"
                        }
                    }
                },
                "summary": "Return money",
                "tags": [
                    "Transactions"
                ]
            }
        },
        "/v1/withdrawals": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Withdrawals"
                ]
            },
            "post": {
                "description": "Takes money out of the allocation of a goal at a bank. The bank balance and the allocation are lowered by the amount.",
                "parameters": [
                    {
                        "description": "Withdrawal",
                        "in": "body",
                        "name": "withdrawal",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.WithdrawalRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.WithdrawalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.WithdrawalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.WithdrawalResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.WithdrawalResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.WithdrawalResponse"
                        }
                    }
                },
                "summary": "Withdraw money",
                "tags": [
                    "Withdrawals"
                ]
            }
        },
        "/version": {
            "get": {
                "description": "Returns the release, the Go version and the VCS revision of the running backend",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/version.Response"
                        }
                    }
                },
                "summary": "API version",
                "tags": [
                    "General"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "General"
                ]
            }
        }
    },
    "definitions": {
        "healthz.Response": {
            "properties": {
                "error": {
                    "description": "The reason the backend is not healthy",
                    "example": "the database is not reachable",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "root.Links": {
            "properties": {
                "docs": {
                    "description": "Interactive documentation of every route",
                    "example": "https://example.com/api/docs/index.html",
                    "type": "string"
                },
                "healthz": {
                    "description": "Database reachability",
                    "example": "https://example.com/api/healthz",
                    "type": "string"
                },
                "metrics": {
                    "description": "Prometheus scrape target",
                    "example": "https://example.com/api/metrics",
                    "type": "string"
                },
                "v1": {
                    "description": "Banks, goals, allocations and transactions",
                    "example": "https://example.com/api/v1",
                    "type": "string"
                },
                "version": {
                    "description": "Build of the running backend",
                    "example": "https://example.com/api/version",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "root.Response": {
            "properties": {
                "links": {
                    "$ref": "#/definitions/root.Links"
                }
            },
            "type": "object"
        },
        "shell.Level": {
            "enum": [
                "success",
                "error"
            ],
            "type": "string",
            "x-enum-varnames": [
                "LevelSuccess",
                "LevelError"
            ]
        },
        "shell.Message": {
            "properties": {
                "level": {
                    "$ref": "#/definitions/shell.Level"
                },
                "message": {
                    "example": "Withdrew €150.00",
                    "type": "string"
                },
                "title": {
                    "example": "Withdrawal Recorded",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.Allocation": {
            "properties": {
                "amount": {
                    "default": 0,
                    "description": "Part of the bank's balance set aside for the goal",
                    "example": 400,
                    "maximum": 1000000000000,
                    "minimum": 0,
                    "multipleOf": 1e-8,
                    "type": "number"
                },
                "bankId": {
                    "description": "ID of the bank holding the money",
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11",
                    "format": "uuid",
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z",
                    "format": "date-time",
                    "type": "string"
                },
                "goalId": {
                    "description": "ID of the goal",
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12",
                    "format": "uuid",
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f10",
                    "format": "uuid",
                    "type": "string"
                },
                "links": {
                    "$ref": "#/definitions/v1.AllocationLinks"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z",
                    "format": "date-time",
                    "type": "string"
                },
                "version": {
                    "description": "Incremented with every amount change",
                    "example": 2,
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "v1.AllocationCreateResponse": {
            "properties": {
                "data": {
                    "description": "List of created allocations",
                    "items": {
                        "$ref": "#/definitions/v1.AllocationResponse"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.AllocationEditable": {
            "properties": {
                "amount": {
                    "default": 0,
                    "description": "Part of the bank's balance set aside for the goal",
                    "example": 400,
                    "maximum": 1000000000000,
                    "minimum": 0,
                    "multipleOf": 1e-8,
                    "type": "number"
                },
                "bankId": {
                    "description": "ID of the bank holding the money",
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11",
                    "format": "uuid",
                    "type": "string"
                },
                "goalId": {
                    "description": "ID of the goal",
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12",
                    "format": "uuid",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.AllocationLinks": {
            "properties": {
                "bank": {
                    "description": "The bank",
                    "example": "https://example.com/api/v1/banks/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11",
                    "type": "string"
                },
                "goal": {
                    "description": "The goal",
                    "example": "https://example.com/api/v1/goals/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12",
                    "type": "string"
                },
                "self": {
                    "description": "The allocation itself",
                    "example": "https://example.com/api/v1/allocations/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f14",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.AllocationListResponse": {
            "properties": {
                "data": {
                    "description": "List of allocations",
                    "items": {
                        "$ref": "#/definitions/v1.Allocation"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                },
                "pagination": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ],
                    "description": "Pagination information"
                }
            },
            "type": "object"
        },
        "v1.AllocationResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Allocation"
                        }
                    ],
                    "description": "Data for the allocation"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.Bank": {
            "properties": {
                "balance": {
                    "default": 0,
                    "description": "Money held in the bank",
                    "example": 1000,
                    "maximum": 1000000000000,
                    "minimum": 0,
                    "multipleOf": 1e-8,
                    "type": "number"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z",
                    "format": "date-time",
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f10",
                    "format": "uuid",
                    "type": "string"
                },
                "links": {
                    "$ref": "#/definitions/v1.BankLinks"
                },
                "name": {
                    "default": "",
                    "description": "Name of the bank. Unique per owner.",
                    "example": "Checking",
                    "type": "string"
                },
                "note": {
                    "default": "",
                    "description": "A longer description for the bank",
                    "example": "Joint account",
                    "type": "string"
                },
                "ownerId": {
                    "description": "ID of the owner of the bank",
                    "example": "0192f1a6-0000-7000-8000-000000000001",
                    "format": "uuid",
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z",
                    "format": "date-time",
                    "type": "string"
                },
                "version": {
                    "description": "Incremented with every balance change",
                    "example": 3,
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "v1.BankCreateResponse": {
            "properties": {
                "data": {
                    "description": "List of created banks",
                    "items": {
                        "$ref": "#/definitions/v1.BankResponse"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.BankEditable": {
            "properties": {
                "balance": {
                    "default": 0,
                    "description": "Money held in the bank",
                    "example": 1000,
                    "maximum": 1000000000000,
                    "minimum": 0,
                    "multipleOf": 1e-8,
                    "type": "number"
                },
                "name": {
                    "default": "",
                    "description": "Name of the bank. Unique per owner.",
                    "example": "Checking",
                    "type": "string"
                },
                "note": {
                    "default": "",
                    "description": "A longer description for the bank",
                    "example": "Joint account",
                    "type": "string"
                },
                "ownerId": {
                    "description": "ID of the owner of the bank",
                    "example": "0192f1a6-0000-7000-8000-000000000001",
                    "format": "uuid",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.BankLinks": {
            "properties": {
                "allocations": {
                    "description": "Allocations at this bank",
                    "example": "https://example.com/api/v1/allocations?bank=0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11",
                    "type": "string"
                },
                "self": {
                    "description": "The bank itself",
                    "example": "https://example.com/api/v1/banks/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11",
                    "type": "string"
                },
                "transactions": {
                    "example": "https://example.com/api/v1/transactions?owner=0192f1a6-0000-7000-8000-000000000001",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.BankListResponse": {
            "properties": {
                "data": {
                    "description": "List of banks",
                    "items": {
                        "$ref": "#/definitions/v1.Bank"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                },
                "pagination": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ],
                    "description": "Pagination information"
                }
            },
            "type": "object"
        },
        "v1.BankResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Bank"
                        }
                    ],
                    "description": "Data for the bank"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.Goal": {
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z",
                    "format": "date-time",
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f10",
                    "format": "uuid",
                    "type": "string"
                },
                "links": {
                    "$ref": "#/definitions/v1.GoalLinks"
                },
                "name": {
                    "default": "",
                    "description": "Name of the goal. Unique per owner.",
                    "example": "Vacation",
                    "type": "string"
                },
                "note": {
                    "default": "",
                    "description": "A longer description for the goal",
                    "example": "Two weeks at the sea",
                    "type": "string"
                },
                "ownerId": {
                    "description": "ID of the owner of the goal",
                    "example": "0192f1a6-0000-7000-8000-000000000001",
                    "format": "uuid",
                    "type": "string"
                },
                "target": {
                    "description": "Amount of money to save for the goal",
                    "example": 2500,
                    "maximum": 1000000000000,
                    "minimum": 1e-8,
                    "multipleOf": 1e-8,
                    "type": "number"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z",
                    "format": "date-time",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.GoalCreateResponse": {
            "properties": {
                "data": {
                    "description": "List of created goals",
                    "items": {
                        "$ref": "#/definitions/v1.GoalResponse"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.GoalEditable": {
            "properties": {
                "name": {
                    "default": "",
                    "description": "Name of the goal. Unique per owner.",
                    "example": "Vacation",
                    "type": "string"
                },
                "note": {
                    "default": "",
                    "description": "A longer description for the goal",
                    "example": "Two weeks at the sea",
                    "type": "string"
                },
                "ownerId": {
                    "description": "ID of the owner of the goal",
                    "example": "0192f1a6-0000-7000-8000-000000000001",
                    "format": "uuid",
                    "type": "string"
                },
                "target": {
                    "description": "Amount of money to save for the goal",
                    "example": 2500,
                    "maximum": 1000000000000,
                    "minimum": 1e-8,
                    "multipleOf": 1e-8,
                    "type": "number"
                }
            },
            "type": "object"
        },
        "v1.GoalLinks": {
            "properties": {
                "allocations": {
                    "description": "Allocations for this goal",
                    "example": "https://example.com/api/v1/allocations?goal=0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12",
                    "type": "string"
                },
                "self": {
                    "description": "The goal itself",
                    "example": "https://example.com/api/v1/goals/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.GoalListResponse": {
            "properties": {
                "data": {
                    "description": "List of goals",
                    "items": {
                        "$ref": "#/definitions/v1.Goal"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                },
                "pagination": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ],
                    "description": "Pagination information"
                }
            },
            "type": "object"
        },
        "v1.GoalResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Goal"
                        }
                    ],
                    "description": "Data for the goal"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.Links": {
            "properties": {
                "allocations": {
                    "description": "URL of Allocation collection endpoint",
                    "example": "https://example.com/api/v1/allocations",
                    "type": "string"
                },
                "banks": {
                    "description": "URL of Bank collection endpoint",
                    "example": "https://example.com/api/v1/banks",
                    "type": "string"
                },
                "goals": {
                    "description": "URL of Goal collection endpoint",
                    "example": "https://example.com/api/v1/goals",
                    "type": "string"
                },
                "transactions": {
                    "description": "URL of Transaction collection endpoint",
                    "example": "https://example.com/api/v1/transactions",
                    "type": "string"
                },
                "withdrawals": {
                    "description": "URL of the withdrawal endpoint",
                    "example": "https://example.com/api/v1/withdrawals",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.PagePagination": {
            "properties": {
                "count": {
                    "description": "The amount of records returned in this response",
                    "example": 15,
                    "type": "integer"
                },
                "page": {
                    "description": "The page returned, starting at 1",
                    "example": 2,
                    "type": "integer"
                },
                "pageSize": {
                    "description": "The maximum amount of records on one page",
                    "example": 15,
                    "type": "integer"
                },
                "total": {
                    "description": "The total number of records matching the query",
                    "example": 94,
                    "type": "integer"
                },
                "totalPages": {
                    "description": "The number of pages",
                    "example": 7,
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "v1.Pagination": {
            "properties": {
                "count": {
                    "description": "The amount of records returned in this response",
                    "example": 25,
                    "type": "integer"
                },
                "limit": {
                    "description": "The maximum amount of resources to return for this request",
                    "example": 25,
                    "type": "integer"
                },
                "offset": {
                    "description": "The offset for the first record returned",
                    "example": 50,
                    "type": "integer"
                },
                "total": {
                    "description": "The total number of resources matching the query",
                    "example": 827,
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "v1.Response": {
            "properties": {
                "links": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Links"
                        }
                    ],
                    "description": "Links for the v1 API"
                }
            },
            "type": "object"
        },
        "v1.Return": {
            "properties": {
                "remainder": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Transaction"
                        }
                    ],
                    "description": "Withdrawal for the amount that stays withdrawn, if any"
                },
                "returned": {
                    "description": "The amount given back to the allocation",
                    "example": 50,
                    "type": "number"
                }
            },
            "type": "object"
        },
        "v1.ReturnBatch": {
            "properties": {
                "failed": {
                    "description": "Groups that could not be returned",
                    "items": {
                        "$ref": "#/definitions/v1.ReturnGroup"
                    },
                    "type": "array"
                },
                "groups": {
                    "description": "Groups that were returned",
                    "items": {
                        "$ref": "#/definitions/v1.ReturnGroup"
                    },
                    "type": "array"
                },
                "returned": {
                    "description": "Sum over all returned groups",
                    "example": 150,
                    "type": "number"
                }
            },
            "type": "object"
        },
        "v1.ReturnBatchRequest": {
            "properties": {
                "confirm": {
                    "description": "Confirms the return. Unconfirmed returns are cancelled.",
                    "example": true,
                    "type": "boolean"
                },
                "ids": {
                    "description": "IDs of the withdrawals to return in full",
                    "items": {
                        "format": "uuid",
                        "type": "string"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "v1.ReturnBatchResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.ReturnBatch"
                        }
                    ],
                    "description": "The result of the return"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the record was modified concurrently, please try again",
                    "type": "string"
                },
                "messages": {
                    "description": "Notifications for the user",
                    "items": {
                        "$ref": "#/definitions/shell.Message"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "v1.ReturnGroup": {
            "properties": {
                "bankId": {
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11",
                    "format": "uuid",
                    "type": "string"
                },
                "goalId": {
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12",
                    "format": "uuid",
                    "type": "string"
                },
                "ids": {
                    "items": {
                        "format": "uuid",
                        "type": "string"
                    },
                    "type": "array"
                },
                "total": {
                    "example": 150,
                    "type": "number"
                }
            },
            "type": "object"
        },
        "v1.ReturnRequest": {
            "properties": {
                "amount": {
                    "description": "Amount to return, at most the withdrawn amount",
                    "example": 50,
                    "minimum": 1e-8,
                    "type": "number"
                },
                "confirm": {
                    "description": "Confirms the return. Unconfirmed returns are cancelled.",
                    "example": true,
                    "type": "boolean"
                }
            },
            "type": "object"
        },
        "v1.ReturnResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Return"
                        }
                    ],
                    "description": "The result of the return"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "only withdrawals can be returned",
                    "type": "string"
                },
                "messages": {
                    "description": "Notifications for the user",
                    "items": {
                        "$ref": "#/definitions/shell.Message"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "v1.Selection": {
            "properties": {
                "allSelected": {
                    "description": "Every selectable row is selected. False if no row is selectable.",
                    "type": "boolean"
                },
                "count": {
                    "description": "Number of selected rows",
                    "type": "integer"
                },
                "ids": {
                    "description": "IDs of the selected transactions",
                    "items": {
                        "format": "uuid",
                        "type": "string"
                    },
                    "type": "array"
                },
                "selectableIds": {
                    "description": "IDs of all transactions on the page that can be selected",
                    "items": {
                        "format": "uuid",
                        "type": "string"
                    },
                    "type": "array"
                },
                "total": {
                    "description": "Sum of the absolute amounts of the selected rows",
                    "type": "number"
                }
            },
            "type": "object"
        },
        "v1.SelectionRequest": {
            "properties": {
                "ids": {
                    "description": "IDs of the selected transactions",
                    "items": {
                        "format": "uuid",
                        "type": "string"
                    },
                    "type": "array"
                },
                "owner": {
                    "description": "Owner of the listed transactions",
                    "format": "uuid",
                    "type": "string"
                },
                "page": {
                    "description": "The page the selection was made on. Defaults to 1.",
                    "type": "integer"
                },
                "pageSize": {
                    "description": "Transactions per page. Defaults to 15.",
                    "type": "integer"
                },
                "toggleAll": {
                    "description": "Select all selectable transactions, or none if all are selected already",
                    "type": "boolean"
                },
                "withdrawnOnly": {
                    "description": "Only withdrawals are listed",
                    "type": "boolean"
                }
            },
            "type": "object"
        },
        "v1.SelectionResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Selection"
                        }
                    ],
                    "description": "Summary of the selection"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the page must be 1 or greater",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.Transaction": {
            "properties": {
                "amount": {
                    "example": -150,
                    "type": "number"
                },
                "bankId": {
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11",
                    "format": "uuid",
                    "type": "string"
                },
                "bankName": {
                    "example": "Checking",
                    "type": "string"
                },
                "createdAt": {
                    "example": "2024-04-02T19:28:44.491514Z",
                    "format": "date-time",
                    "type": "string"
                },
                "description": {
                    "example": "New tent",
                    "type": "string"
                },
                "goalId": {
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12",
                    "format": "uuid",
                    "type": "string"
                },
                "goalName": {
                    "example": "Vacation",
                    "type": "string"
                },
                "id": {
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f10",
                    "format": "uuid",
                    "type": "string"
                },
                "links": {
                    "$ref": "#/definitions/v1.TransactionLinks"
                },
                "ownerId": {
                    "example": "0192f1a6-0000-7000-8000-000000000001",
                    "format": "uuid",
                    "type": "string"
                },
                "parentId": {
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f13",
                    "format": "uuid",
                    "type": "string"
                },
                "selectable": {
                    "description": "The transaction is a withdrawal and can be returned",
                    "example": true,
                    "type": "boolean"
                }
            },
            "type": "object"
        },
        "v1.TransactionLinks": {
            "properties": {
                "bank": {
                    "description": "The bank",
                    "example": "https://example.com/api/v1/banks/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11",
                    "type": "string"
                },
                "goal": {
                    "description": "The goal",
                    "example": "https://example.com/api/v1/goals/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12",
                    "type": "string"
                },
                "return": {
                    "description": "Returns money of this withdrawal",
                    "example": "https://example.com/api/v1/transactions/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f10/return",
                    "type": "string"
                },
                "self": {
                    "description": "The transaction itself",
                    "example": "https://example.com/api/v1/transactions/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f10",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.TransactionListResponse": {
            "properties": {
                "data": {
                    "description": "List of transactions, newest first",
                    "items": {
                        "$ref": "#/definitions/v1.Transaction"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the page must be 1 or greater",
                    "type": "string"
                },
                "pagination": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.PagePagination"
                        }
                    ],
                    "description": "Pagination information"
                }
            },
            "type": "object"
        },
        "v1.TransactionResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Transaction"
                        }
                    ],
                    "description": "Data for the transaction"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.WithdrawalRequest": {
            "properties": {
                "amount": {
                    "description": "Amount to withdraw",
                    "example": 150,
                    "minimum": 1e-8,
                    "type": "number"
                },
                "bankId": {
                    "description": "ID of the bank the money is taken from",
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11",
                    "format": "uuid",
                    "type": "string"
                },
                "confirm": {
                    "description": "Confirms the withdrawal. Unconfirmed withdrawals are cancelled.",
                    "example": true,
                    "type": "boolean"
                },
                "description": {
                    "description": "A description of what the money is used for",
                    "example": "New tent",
                    "type": "string"
                },
                "goalId": {
                    "description": "ID of the goal to withdraw from",
                    "example": "0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12",
                    "format": "uuid",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.WithdrawalResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Transaction"
                        }
                    ],
                    "description": "The recorded withdrawal"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the amount exceeds the allocation of the goal at this bank",
                    "type": "string"
                },
                "messages": {
                    "description": "Notifications for the user",
                    "items": {
                        "$ref": "#/definitions/shell.Message"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "v1.httpError": {
            "properties": {
                "error": {
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "version.Object": {
            "properties": {
                "goVersion": {
                    "description": "Go release the binary was built with",
                    "example": "go1.25.5",
                    "type": "string"
                },
                "revision": {
                    "description": "VCS revision, empty if the build carries none",
                    "example": "4b825dc642cb6eb9a060e54bf8d69288fbee4904",
                    "type": "string"
                },
                "version": {
                    "description": "Release version",
                    "example": "1.1.0",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "version.Response": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/version.Object"
                        }
                    ],
                    "description": "Build of the running backend"
                }
            },
            "type": "object"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
