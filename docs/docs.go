// Package docs registers the swagger document for the JSON API with swag.
// Keep docTemplate in step with the annotations on handlers.ListCaptions.
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
        "/api/v1/captions": {
            "get": {
                "description": "Up to 10 captions, newest first, read fresh from Supabase on every call.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "captions"
                ],
                "summary": "Latest captions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.CaptionListResponse"
                        }
                    },
                    "502": {
                        "description": "Supabase answered with an error or could not be reached",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "SUPABASE_URL or SUPABASE_ANON_KEY is not set",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.CaptionListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Caption"
                    }
                },
                "status": {
                    "type": "string",
                    "example": "success"
                }
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Supabase error 500: server error"
                },
                "status": {
                    "type": "string",
                    "example": "error"
                }
            }
        },
        "models.Caption": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                },
                "created_datetime_utc": {
                    "type": "string"
                },
                "like_count": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo is the spec served by fiber-swagger at /swagger/doc.json.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Caption Board API",
	Description:      "Read-only view of the latest captions stored in Supabase.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
