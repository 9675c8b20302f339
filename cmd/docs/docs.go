// Package docs holds the Swagger document served at /swagger. It mirrors the
// handler annotations; regenerate with
// swag init -g cmd/ledger_backend/main.go -o cmd/docs
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
        "/budget-items/{budget_item_id}": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BudgetItemResponse"
                        }
                    },
                    "409": {
                        "description": "Confirmation required",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Update a budget item",
                "description": "Turning isSaving off on an item with spend needs confirmDestructive.",
                "tags": [
                    "budget"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Budget item ID",
                        "name": "budget_item_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "budgetItem",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateBudgetItemRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "409": {
                        "description": "Referenced by expenses",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Delete a budget item",
                "description": "Fails with 409 when referenced by expenses.",
                "tags": [
                    "budget"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Budget item ID",
                        "name": "budget_item_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/budget-items/{budget_item_id}/preview-toggle": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.SavingTogglePreview"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Budget item not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Preview flipping isSaving on a budget item",
                "tags": [
                    "budget"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Budget item ID",
                        "name": "budget_item_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/budget-types/{budget_type_id}": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BudgetTypeResponse"
                        }
                    }
                },
                "summary": "Update a budget type",
                "tags": [
                    "budget"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Budget type ID",
                        "name": "budget_type_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "budgetType",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateBudgetTypeRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "409": {
                        "description": "Referenced by expenses",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Delete a budget type and its items",
                "description": "Fails with 409 when an item is referenced by expenses.",
                "tags": [
                    "budget"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Budget type ID",
                        "name": "budget_type_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/budget-types/{budget_type_id}/items": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.BudgetItemResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Create a budget item",
                "tags": [
                    "budget"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Budget type ID",
                        "name": "budget_type_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Budget item",
                        "name": "budgetItem",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateBudgetItemRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/expenses/{expense_id}": {
            "delete": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Expense not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Delete an expense",
                "description": "Soft delete; the expense no longer counts toward any total. Requires EDITOR.",
                "tags": [
                    "expenses"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expense ID",
                        "name": "expense_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/me": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MeResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to load profile",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Get the caller's profile",
                "description": "Returns the caller's profile and every workspace they belong to, with their role.",
                "tags": [
                    "profile"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/months/{month_id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MonthResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Month not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Get a month",
                "tags": [
                    "months"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month ID",
                        "name": "month_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MonthResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Funds are locked",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Update income and carry-over",
                "description": "Requires EDITOR. Fails with 409 once the month has budget types.",
                "tags": [
                    "months"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month ID",
                        "name": "month_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Income and carry-over",
                        "name": "funds",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateMonthFundsRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "409": {
                        "description": "Month has budget types",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Delete a month",
                "description": "Requires EDITOR. Fails with 409 while the month has budget types.",
                "tags": [
                    "months"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month ID",
                        "name": "month_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/months/{month_id}/budget": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BudgetViewResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Get the month budget with computed spend",
                "tags": [
                    "months"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month ID",
                        "name": "month_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/months/{month_id}/budget-types": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.BudgetTypeResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Create a budget type",
                "description": "Requires EDITOR. Locks the month's income and carry-over.",
                "tags": [
                    "budget"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month ID",
                        "name": "month_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Budget type",
                        "name": "budgetType",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateBudgetTypeRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/months/{month_id}/duplicate": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.MonthResponse"
                        }
                    },
                    "409": {
                        "description": "Target month already exists",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Duplicate a month",
                "description": "Copies budget types and items into a new period with fresh income. Requires EDITOR.",
                "tags": [
                    "months"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Source month ID",
                        "name": "month_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Target period",
                        "name": "target",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.DuplicateMonthRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/months/{month_id}/expenses": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.ExpenseResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Create an expense",
                "description": "Creates the expense, its lines and attachments atomically. Requires EDITOR.",
                "tags": [
                    "expenses"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month ID",
                        "name": "month_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Expense with lines",
                        "name": "expense",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateExpenseRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListExpensesResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "List expenses of a month",
                "description": "Newest first, excluding deleted expenses. Cursor paginated via nextToken.",
                "tags": [
                    "expenses"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month ID",
                        "name": "month_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Search in name and note",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "POSTED, PENDING, APPROVED or REJECTED",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size (default 20, max 100)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Token from the previous page",
                        "name": "nextToken",
                        "in": "query"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/months/{month_id}/totals": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MonthTotalsResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Get month totals",
                "tags": [
                    "months"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month ID",
                        "name": "month_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/reimbursements/{expense_item_id}/approve": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReimbursementResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Already decided",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Approve a pending reimbursement",
                "description": "Requires OWNER. Only PENDING lines can be decided.",
                "tags": [
                    "reimbursements"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expense item ID",
                        "name": "expense_item_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/reimbursements/{expense_item_id}/reimburse-to": {
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReimbursementResponse"
                        }
                    },
                    "400": {
                        "description": "Not a member",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Set or clear the member to reimburse",
                "description": "Requires EDITOR. The target must be a member of the workspace.",
                "tags": [
                    "reimbursements"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expense item ID",
                        "name": "expense_item_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Member to reimburse, or null",
                        "name": "target",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.ReassignReimburseToRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/reimbursements/{expense_item_id}/reject": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReimbursementResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Already decided",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Reject a pending reimbursement",
                "description": "Requires OWNER. Only PENDING lines can be decided.",
                "tags": [
                    "reimbursements"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Expense item ID",
                        "name": "expense_item_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/workspaces": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.WorkspaceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to create workspace",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Create a new workspace",
                "description": "Creates a new workspace and makes the caller its OWNER.",
                "tags": [
                    "workspaces"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Workspace details",
                        "name": "workspace",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateWorkspaceRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListWorkspacesResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to list workspaces",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "List workspaces for current user",
                "description": "Retrieves the workspaces the caller belongs to, with the caller's role.",
                "tags": [
                    "workspaces"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/workspaces/{workspace_id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.WorkspaceResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Workspace not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Get a workspace",
                "tags": [
                    "workspaces"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.WorkspaceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Rename a workspace",
                "description": "Requires OWNER.",
                "tags": [
                    "workspaces"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New name",
                        "name": "workspace",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateWorkspaceRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Workspace still has months",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Delete a workspace",
                "description": "Requires OWNER. Fails with 409 while the workspace still has months.",
                "tags": [
                    "workspaces"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/workspaces/{workspace_id}/members": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListMembersResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "List workspace members",
                "tags": [
                    "workspaces"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.MemberResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "No profile with that e-mail",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Already a member",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Invite a profile to a workspace",
                "description": "Adds an existing profile, found by e-mail, with the given role (default VIEWER). Requires OWNER.",
                "tags": [
                    "workspaces"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "E-mail and role",
                        "name": "invitation",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.InviteMemberRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/workspaces/{workspace_id}/members/{profile_id}": {
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MemberResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Last owner",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Change a member's role",
                "description": "Requires OWNER. The last OWNER cannot be demoted.",
                "tags": [
                    "workspaces"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Profile ID",
                        "name": "profile_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New role",
                        "name": "role",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateMemberRoleRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Last owner",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Remove a member or leave a workspace",
                "description": "Requires OWNER, unless the caller removes themselves. The last OWNER cannot leave.",
                "tags": [
                    "workspaces"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Profile ID",
                        "name": "profile_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/workspaces/{workspace_id}/months": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListMonthsResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "List months of a workspace",
                "description": "Newest period first.",
                "tags": [
                    "months"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.MonthResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Month already exists",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Create a month",
                "description": "Requires EDITOR. One month per (year, month) per workspace.",
                "tags": [
                    "months"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Month details",
                        "name": "month",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateMonthRequest"
                        },
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/workspaces/{workspace_id}/reimbursements": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListReimbursementsResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "List reimbursement lines of a workspace",
                "tags": [
                    "reimbursements"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Workspace ID",
                        "name": "workspace_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ALL, PENDING (default), APPROVED or REJECTED",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Restrict to one month",
                        "name": "monthId",
                        "in": "query"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "domain.SavingTogglePreview": {
            "type": "object",
            "properties": {
                "budgetItemAmount": {
                    "type": "number"
                },
                "budgetItemId": {
                    "type": "string"
                },
                "budgetItemName": {
                    "type": "string"
                },
                "currentIsSaving": {
                    "type": "boolean"
                },
                "destructive": {
                    "type": "boolean"
                },
                "expenseCount": {
                    "type": "integer"
                },
                "hasExpenses": {
                    "type": "boolean"
                },
                "savedRemainingAfter": {
                    "type": "number"
                },
                "savedRemainingBefore": {
                    "type": "number"
                },
                "spentOnSavingBudgets": {
                    "type": "number"
                },
                "totalSavingAfter": {
                    "type": "number"
                },
                "totalSavingBefore": {
                    "type": "number"
                },
                "totalSpentOnThisItem": {
                    "type": "number"
                }
            }
        },
        "dto.AttachmentResponse": {
            "type": "object",
            "properties": {
                "attachmentID": {
                    "type": "string"
                },
                "fileURL": {
                    "type": "string"
                },
                "filename": {
                    "type": "string"
                },
                "sizeBytes": {
                    "type": "integer"
                }
            }
        },
        "dto.BudgetItemResponse": {
            "type": "object",
            "properties": {
                "budgetAmount": {
                    "type": "number"
                },
                "budgetItemID": {
                    "type": "string"
                },
                "budgetTypeID": {
                    "type": "string"
                },
                "isSaving": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.BudgetItemViewResponse": {
            "type": "object",
            "properties": {
                "approvedReimbursedSpend": {
                    "type": "number"
                },
                "budgetAmount": {
                    "type": "number"
                },
                "budgetItemID": {
                    "type": "string"
                },
                "budgetTypeID": {
                    "type": "string"
                },
                "isSaving": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "order": {
                    "type": "integer"
                },
                "overBudget": {
                    "type": "boolean"
                },
                "postedSpend": {
                    "type": "number"
                },
                "remaining": {
                    "type": "number"
                }
            }
        },
        "dto.BudgetTypeResponse": {
            "type": "object",
            "properties": {
                "budgetTypeID": {
                    "type": "string"
                },
                "monthID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.BudgetTypeViewResponse": {
            "type": "object",
            "properties": {
                "budgetTypeID": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.BudgetItemViewResponse"
                    }
                },
                "monthID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.BudgetViewResponse": {
            "type": "object",
            "properties": {
                "month": {
                    "$ref": "#/definitions/dto.MonthResponse"
                },
                "types": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.BudgetTypeViewResponse"
                    }
                }
            }
        },
        "dto.CreateAttachmentRequest": {
            "type": "object",
            "properties": {
                "fileURL": {
                    "type": "string"
                },
                "filename": {
                    "type": "string"
                },
                "sizeBytes": {
                    "type": "integer"
                }
            },
            "required": [
                "fileURL",
                "filename"
            ]
        },
        "dto.CreateBudgetItemRequest": {
            "type": "object",
            "properties": {
                "budgetAmount": {
                    "type": "number"
                },
                "isSaving": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "order": {
                    "type": "integer"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.CreateBudgetTypeRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "order": {
                    "type": "integer"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.CreateExpenseItemRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "budgetItemID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "needReimburse": {
                    "type": "boolean"
                },
                "reimburseTo": {
                    "type": "string"
                },
                "reimbursementAmount": {
                    "type": "number"
                }
            },
            "required": [
                "budgetItemID",
                "name"
            ]
        },
        "dto.CreateExpenseRequest": {
            "type": "object",
            "properties": {
                "attachments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CreateAttachmentRequest"
                    }
                },
                "date": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CreateExpenseItemRequest"
                    }
                },
                "name": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                }
            },
            "required": [
                "date",
                "items",
                "name"
            ]
        },
        "dto.CreateMonthRequest": {
            "type": "object",
            "properties": {
                "carryOver": {
                    "type": "number"
                },
                "income": {
                    "type": "number"
                },
                "month": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                }
            },
            "required": [
                "month",
                "year"
            ]
        },
        "dto.CreateWorkspaceRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.DuplicateMonthRequest": {
            "type": "object",
            "properties": {
                "carryOver": {
                    "type": "number"
                },
                "income": {
                    "type": "number"
                },
                "targetMonth": {
                    "type": "integer"
                },
                "targetYear": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                }
            },
            "required": [
                "targetMonth",
                "targetYear"
            ]
        },
        "dto.ExpenseItemResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "budgetItemID": {
                    "type": "string"
                },
                "budgetItemName": {
                    "type": "string"
                },
                "expenseItemID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "needReimburse": {
                    "type": "boolean"
                },
                "reimburseStatus": {
                    "type": "string"
                },
                "reimburseTo": {
                    "type": "string"
                },
                "reimbursementAmount": {
                    "type": "number"
                }
            }
        },
        "dto.ExpenseResponse": {
            "type": "object",
            "properties": {
                "attachments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AttachmentResponse"
                    }
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "createdBy": {
                    "type": "string"
                },
                "createdByEmail": {
                    "type": "string"
                },
                "createdByName": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "expenseID": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ExpenseItemResponse"
                    }
                },
                "monthID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "number"
                }
            }
        },
        "dto.InviteMemberRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            },
            "required": [
                "email"
            ]
        },
        "dto.ListExpensesResponse": {
            "type": "object",
            "properties": {
                "expenses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ExpenseResponse"
                    }
                },
                "nextToken": {
                    "type": "string"
                }
            }
        },
        "dto.ListMembersResponse": {
            "type": "object",
            "properties": {
                "members": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MemberResponse"
                    }
                }
            }
        },
        "dto.ListMonthsResponse": {
            "type": "object",
            "properties": {
                "months": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MonthResponse"
                    }
                }
            }
        },
        "dto.ListReimbursementsResponse": {
            "type": "object",
            "properties": {
                "reimbursements": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ReimbursementResponse"
                    }
                }
            }
        },
        "dto.ListWorkspacesResponse": {
            "type": "object",
            "properties": {
                "workspaces": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.WorkspaceResponse"
                    }
                }
            }
        },
        "dto.MeResponse": {
            "type": "object",
            "properties": {
                "displayName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "profileID": {
                    "type": "string"
                },
                "workspaces": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.WorkspaceResponse"
                    }
                }
            }
        },
        "dto.MemberResponse": {
            "type": "object",
            "properties": {
                "displayName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "joinedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "profileID": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "workspaceID": {
                    "type": "string"
                }
            }
        },
        "dto.MonthResponse": {
            "type": "object",
            "properties": {
                "carryOver": {
                    "type": "number"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "createdBy": {
                    "type": "string"
                },
                "income": {
                    "type": "number"
                },
                "month": {
                    "type": "integer"
                },
                "monthID": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "workspaceID": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                }
            }
        },
        "dto.MonthTotalsResponse": {
            "type": "object",
            "properties": {
                "approvedReimburse": {
                    "type": "number"
                },
                "expenseCount": {
                    "type": "integer"
                },
                "monthID": {
                    "type": "string"
                },
                "posted": {
                    "type": "number"
                },
                "remaining": {
                    "type": "number"
                },
                "totalBudget": {
                    "type": "number"
                },
                "totalIncome": {
                    "type": "number"
                },
                "totalSaving": {
                    "type": "number"
                },
                "totalSpending": {
                    "type": "number"
                },
                "unallocated": {
                    "type": "number"
                }
            }
        },
        "dto.ReassignReimburseToRequest": {
            "type": "object",
            "properties": {
                "reimburseTo": {
                    "type": "string"
                }
            }
        },
        "dto.ReimbursementResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "budgetItemID": {
                    "type": "string"
                },
                "budgetItemName": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "createdByEmail": {
                    "type": "string"
                },
                "expenseDate": {
                    "type": "string"
                },
                "expenseID": {
                    "type": "string"
                },
                "expenseItemID": {
                    "type": "string"
                },
                "expenseName": {
                    "type": "string"
                },
                "monthID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "needReimburse": {
                    "type": "boolean"
                },
                "reimburseStatus": {
                    "type": "string"
                },
                "reimburseTo": {
                    "type": "string"
                },
                "reimbursementAmount": {
                    "type": "number"
                },
                "workspaceID": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateBudgetItemRequest": {
            "type": "object",
            "properties": {
                "budgetAmount": {
                    "type": "number"
                },
                "confirmDestructive": {
                    "type": "boolean"
                },
                "isSaving": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.UpdateBudgetTypeRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "order": {
                    "type": "integer"
                }
            }
        },
        "dto.UpdateMemberRoleRequest": {
            "type": "object",
            "properties": {
                "role": {
                    "type": "string"
                }
            },
            "required": [
                "role"
            ]
        },
        "dto.UpdateMonthFundsRequest": {
            "type": "object",
            "properties": {
                "carryOver": {
                    "type": "number"
                },
                "income": {
                    "type": "number"
                }
            }
        },
        "dto.UpdateWorkspaceRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.WorkspaceResponse": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "createdBy": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "workspaceID": {
                    "type": "string"
                }
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Budget Ledger API",
	Description:      "Multi-tenant monthly budgeting ledger with reimbursement workflow.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
