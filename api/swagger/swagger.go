package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Classroom Insights Dashboard API",
        "description": "Class overview and per-student dashboards over a 52-week school calendar",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Dashboard",
            "description": "Composed dashboard views"
        },
        {
            "name": "Students",
            "description": "Student roster and suggestions"
        },
        {
            "name": "Filters",
            "description": "Time filter presets, ranges and calendar"
        },
        {
            "name": "Exports",
            "description": "Downloadable student reports"
        },
        {
            "name": "System",
            "description": "Health checks and metrics"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "System"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "System"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "Cache unreachable"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "System"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/v1/dashboard/overview": {
            "get": {
                "tags": [
                    "Dashboard"
                ],
                "summary": "Class overview dashboard",
                "parameters": [
                    {
                        "name": "filter",
                        "in": "query",
                        "type": "string",
                        "description": "Filter label"
                    },
                    {
                        "name": "mode",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "presets",
                            "months",
                            "weeks"
                        ]
                    },
                    {
                        "name": "startYear",
                        "in": "query",
                        "type": "integer",
                        "description": "Range start year, -1 for a week of the current year"
                    },
                    {
                        "name": "startUnit",
                        "in": "query",
                        "type": "integer",
                        "description": "Range start month (0-11) or week (1-52)"
                    },
                    {
                        "name": "endYear",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "endUnit",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "type": "integer",
                        "minimum": 0
                    },
                    {
                        "name": "year",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/OverviewEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid parameters",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/dashboard/students/{name}": {
            "get": {
                "tags": [
                    "Dashboard"
                ],
                "summary": "Single student dashboard",
                "parameters": [
                    {
                        "name": "name",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Student full name"
                    },
                    {
                        "name": "filter",
                        "in": "query",
                        "type": "string",
                        "description": "Filter label"
                    },
                    {
                        "name": "mode",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "presets",
                            "months",
                            "weeks"
                        ]
                    },
                    {
                        "name": "startYear",
                        "in": "query",
                        "type": "integer",
                        "description": "Range start year, -1 for a week of the current year"
                    },
                    {
                        "name": "startUnit",
                        "in": "query",
                        "type": "integer",
                        "description": "Range start month (0-11) or week (1-52)"
                    },
                    {
                        "name": "endYear",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "endUnit",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "type": "integer",
                        "minimum": 0
                    },
                    {
                        "name": "year",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid parameters",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Unknown student",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/dashboard/students/{name}/export": {
            "get": {
                "tags": [
                    "Exports"
                ],
                "summary": "Export a student's weekly series",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "name",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Student full name"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "required": true,
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    },
                    {
                        "name": "filter",
                        "in": "query",
                        "type": "string",
                        "description": "Filter label"
                    },
                    {
                        "name": "mode",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "presets",
                            "months",
                            "weeks"
                        ]
                    },
                    {
                        "name": "startYear",
                        "in": "query",
                        "type": "integer",
                        "description": "Range start year, -1 for a week of the current year"
                    },
                    {
                        "name": "startUnit",
                        "in": "query",
                        "type": "integer",
                        "description": "Range start month (0-11) or week (1-52)"
                    },
                    {
                        "name": "endYear",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "endUnit",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "type": "integer",
                        "minimum": 0
                    },
                    {
                        "name": "year",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Report file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid parameters",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Exports disabled",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/students": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "List students",
                "parameters": [
                    {
                        "name": "active",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "minimum": 1
                    },
                    {
                        "name": "pageSize",
                        "in": "query",
                        "type": "integer",
                        "minimum": 1,
                        "maximum": 100
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/students/search": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "Student name suggestions",
                "parameters": [
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/filters/presets": {
            "get": {
                "tags": [
                    "Filters"
                ],
                "summary": "List filter presets and modes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/filters/weeks": {
            "get": {
                "tags": [
                    "Filters"
                ],
                "summary": "Resolve a filter into plotted weeks",
                "parameters": [
                    {
                        "name": "filter",
                        "in": "query",
                        "type": "string",
                        "description": "Filter label"
                    },
                    {
                        "name": "mode",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "presets",
                            "months",
                            "weeks"
                        ]
                    },
                    {
                        "name": "startYear",
                        "in": "query",
                        "type": "integer",
                        "description": "Range start year, -1 for a week of the current year"
                    },
                    {
                        "name": "startUnit",
                        "in": "query",
                        "type": "integer",
                        "description": "Range start month (0-11) or week (1-52)"
                    },
                    {
                        "name": "endYear",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "endUnit",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "type": "integer",
                        "minimum": 0
                    },
                    {
                        "name": "year",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid parameters",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/filters/transition": {
            "post": {
                "tags": [
                    "Filters"
                ],
                "summary": "Apply a filter action",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TransitionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid parameters",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/calendar/months": {
            "get": {
                "tags": [
                    "Filters"
                ],
                "summary": "School year month table",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/system/metrics": {
            "get": {
                "tags": [
                    "System"
                ],
                "summary": "Runtime metrics snapshot",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "RangePoint": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string",
                    "enum": [
                        "month",
                        "week"
                    ]
                },
                "year": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer"
                },
                "week": {
                    "type": "integer"
                }
            }
        },
        "FilterState": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "mode": {
                    "type": "string"
                },
                "start": {
                    "$ref": "#/definitions/RangePoint"
                },
                "end": {
                    "$ref": "#/definitions/RangePoint"
                },
                "weekOffset": {
                    "type": "integer"
                },
                "year": {
                    "type": "integer"
                },
                "currentYear": {
                    "type": "integer"
                }
            }
        },
        "FilterAction": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "select_preset",
                        "set_mode",
                        "select_month",
                        "select_week",
                        "shift_year",
                        "page_weeks",
                        "reset"
                    ]
                },
                "label": {
                    "type": "string"
                },
                "mode": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                },
                "unit": {
                    "type": "integer"
                },
                "delta": {
                    "type": "integer"
                }
            }
        },
        "TransitionRequest": {
            "type": "object",
            "properties": {
                "state": {
                    "$ref": "#/definitions/FilterState"
                },
                "action": {
                    "$ref": "#/definitions/FilterAction"
                }
            }
        },
        "WeekDescriptor": {
            "type": "object",
            "properties": {
                "year": {
                    "type": "integer"
                },
                "week": {
                    "type": "integer"
                },
                "day": {
                    "type": "string"
                }
            }
        },
        "StatCard": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                },
                "subtext": {
                    "type": "string"
                }
            }
        },
        "Bubble": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "question": {
                    "type": "string"
                },
                "errors": {
                    "type": "integer"
                },
                "radius": {
                    "type": "number"
                },
                "diameter": {
                    "type": "number"
                },
                "color": {
                    "type": "string"
                },
                "x": {
                    "type": "number"
                },
                "y": {
                    "type": "number"
                },
                "capped": {
                    "type": "boolean"
                }
            }
        },
        "ErrorAnalysis": {
            "type": "object",
            "properties": {
                "word_id": {
                    "type": "integer"
                },
                "word": {
                    "type": "string"
                },
                "occurrence_count": {
                    "type": "integer"
                },
                "fill": {
                    "type": "string"
                }
            }
        },
        "Overview": {
            "type": "object",
            "properties": {
                "filter": {
                    "$ref": "#/definitions/FilterState"
                },
                "weeks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/WeekDescriptor"
                    }
                },
                "summary": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/StatCard"
                    }
                },
                "writing": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "engagement": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "improvement": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "errorWords": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ErrorAnalysis"
                    }
                },
                "bubbles": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/Bubble"
                    }
                },
                "generatedAt": {
                    "type": "string"
                }
            }
        },
        "OverviewEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/Overview"
                },
                "meta": {
                    "type": "object"
                }
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "meta": {
                    "type": "object"
                }
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
