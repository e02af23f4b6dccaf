package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Voyago Travel Admin API",
        "description": "Back-office API serving generated dashboard, statistics and site-settings data",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Admin authentication"},
        {"name": "Dashboard", "description": "Dashboard widget data"},
        {"name": "Statistics", "description": "Statistics cards and exports"},
        {"name": "Site Settings", "description": "Mutable site configuration"},
        {"name": "Chats", "description": "Support chat messages"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate the back-office admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/bookings": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Recent bookings widget",
                "parameters": [
                    {"name": "seed", "in": "query", "type": "integer"},
                    {"name": "count", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/notifications": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Admin notification feed",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/dashboard/announcements": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Platform announcements",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/dashboard/pending-actions": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Administrator work queue",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/dashboard/recent-activity": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Recent back-office activity",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/dashboard/trending-insights": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Trending analytics teasers",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/dashboard/company-overview": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Aggregate company overview card",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/statistics/{kind}": {
            "get": {
                "tags": ["Statistics"],
                "summary": "One statistics card",
                "parameters": [
                    {"name": "kind", "in": "path", "required": true, "type": "string", "enum": ["chats", "employees", "images", "kpi", "reports", "reviews"]},
                    {"name": "seed", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown kind", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/statistics/export": {
            "get": {
                "tags": ["Statistics"],
                "summary": "Download all statistics as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File attachment"}
                }
            }
        },
        "/site-settings/payment-accounts": {
            "get": {
                "tags": ["Site Settings"],
                "summary": "List payment accounts",
                "parameters": [
                    {"name": "provider", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "pageSize", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid page size", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/site-settings/payment-accounts/{id}": {
            "get": {
                "tags": ["Site Settings"],
                "summary": "Get one payment account",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/site-settings/enums": {
            "get": {
                "tags": ["Site Settings"],
                "summary": "List enum groups",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Site Settings"],
                "summary": "Create an enum group",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEnumGroupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/site-settings/enums/{name}/values/{valueKey}": {
            "delete": {
                "tags": ["Site Settings"],
                "summary": "Delete one value from an enum group",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"},
                    {"name": "valueKey", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Group or value not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/site-settings/guide-banners": {
            "get": {
                "tags": ["Site Settings"],
                "summary": "List guide banners in display order",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/site-settings/guide-banners/reorder": {
            "post": {
                "tags": ["Site Settings"],
                "summary": "Apply a new banner display order",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReorderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Empty order list", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/site-settings/advertising/prices": {
            "get": {
                "tags": ["Site Settings"],
                "summary": "List advertising placement prices",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Site Settings"],
                "summary": "Create a placement price",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePriceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/site-settings/advertising/prices/{id}": {
            "put": {
                "tags": ["Site Settings"],
                "summary": "Replace a placement price",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePriceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Site Settings"],
                "summary": "Delete a placement price",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/site-settings/social-links": {
            "get": {
                "tags": ["Site Settings"],
                "summary": "List social links in display order",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Site Settings"],
                "summary": "Add a social link",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertSocialLinkRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/site-settings/social-links/reorder": {
            "post": {
                "tags": ["Site Settings"],
                "summary": "Apply a new link display order",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReorderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Empty order list", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/site-settings/social-links/{id}": {
            "put": {
                "tags": ["Site Settings"],
                "summary": "Replace a social link",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertSocialLinkRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Site Settings"],
                "summary": "Delete a social link",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/site-settings/reset-password-requests": {
            "get": {
                "tags": ["Site Settings"],
                "summary": "List reset requests newest-first",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "pageSize", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/site-settings/reset-password-requests/{id}/resolve": {
            "post": {
                "tags": ["Site Settings"],
                "summary": "Mark a reset request handled",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/chats/messages": {
            "get": {
                "tags": ["Chats"],
                "summary": "List chat messages oldest-first",
                "parameters": [
                    {"name": "conversationId", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "pageSize", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/chats/{id}/read": {
            "post": {
                "tags": ["Chats"],
                "summary": "Flag a message read",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "CreateEnumGroupRequest": {
            "type": "object",
            "required": ["name", "values"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "values": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/CreateEnumValuePayload"}
                },
                "metadata": {"type": "object"}
            }
        },
        "CreateEnumValuePayload": {
            "type": "object",
            "required": ["key", "label", "value"],
            "properties": {
                "key": {"type": "string"},
                "label": {"type": "string"},
                "value": {"type": "string"},
                "description": {"type": "string"},
                "active": {"type": "boolean"}
            }
        },
        "ReorderRequest": {
            "type": "object",
            "required": ["orderedIds"],
            "properties": {
                "orderedIds": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            }
        },
        "CreatePriceRequest": {
            "type": "object",
            "required": ["placement", "price"],
            "properties": {
                "placement": {"type": "string"},
                "price": {"type": "number"},
                "currency": {"type": "string"},
                "periodDays": {"type": "integer"},
                "active": {"type": "boolean"}
            }
        },
        "UpsertSocialLinkRequest": {
            "type": "object",
            "required": ["platform", "url"],
            "properties": {
                "platform": {"type": "string"},
                "url": {"type": "string"},
                "label": {"type": "string"},
                "active": {"type": "boolean"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "totalCount": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
