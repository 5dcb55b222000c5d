package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Placement API",
        "description": "Campus placement portal core",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Login, registration and identity"},
        {"name": "Users", "description": "Admin user management"},
        {"name": "Profiles", "description": "Student profiles"},
        {"name": "Jobs", "description": "Job postings"},
        {"name": "Applications", "description": "Application lifecycle"},
        {"name": "Verifications", "description": "Document verification workflow"},
        {"name": "Catalog", "description": "Departments and skills"},
        {"name": "Analytics", "description": "Aggregated reporting"},
        {"name": "Exports", "description": "Downloadable reports"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a new account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "parameters": [
                    {"name": "role", "in": "query", "type": "string"},
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get a user",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/users/{id}/active": {
            "patch": {
                "tags": ["Users"],
                "summary": "Activate or deactivate a user",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/users/{id}/role": {
            "patch": {
                "tags": ["Users"],
                "summary": "Change a user's role",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/profiles/{id}": {
            "get": {
                "tags": ["Profiles"],
                "summary": "Get a student profile",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Profiles"],
                "summary": "Update a student profile",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/jobs": {
            "get": {
                "tags": ["Jobs"],
                "summary": "List job postings",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "location", "in": "query", "type": "string"},
                    {"name": "skill", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Jobs"],
                "summary": "Create a job posting",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/JobRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid payload"}
                }
            }
        },
        "/jobs/mine": {
            "get": {
                "tags": ["Jobs"],
                "summary": "List the caller's own postings",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/jobs/{id}": {
            "get": {
                "tags": ["Jobs"],
                "summary": "Get a job posting",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Jobs"],
                "summary": "Update a job posting",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/JobRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Not the posting owner"}
                }
            },
            "delete": {
                "tags": ["Jobs"],
                "summary": "Delete a job posting",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "409": {"description": "Applications reference this posting"}
                }
            }
        },
        "/jobs/{id}/status": {
            "patch": {
                "tags": ["Jobs"],
                "summary": "Open or close a posting",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/jobs/{id}/applications": {
            "get": {
                "tags": ["Applications"],
                "summary": "List applications for a posting",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Not the posting owner"}
                }
            }
        },
        "/applications": {
            "post": {
                "tags": ["Applications"],
                "summary": "Apply to a job",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ApplicationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Duplicate application or closed job"},
                    "422": {"description": "Eligibility criteria not met"}
                }
            }
        },
        "/applications/mine": {
            "get": {
                "tags": ["Applications"],
                "summary": "List the caller's own applications",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/applications/{id}/stage": {
            "patch": {
                "tags": ["Applications"],
                "summary": "Move an application to a stage",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Unknown stage"}
                }
            }
        },
        "/applications/{id}/scores": {
            "put": {
                "tags": ["Applications"],
                "summary": "Record interview scores",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Scores out of range"}
                }
            }
        },
        "/applications/{id}/notes": {
            "post": {
                "tags": ["Applications"],
                "summary": "Append a review note",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Note required"}
                }
            }
        },
        "/verifications": {
            "get": {
                "tags": ["Verifications"],
                "summary": "List verification requests",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Verifications"],
                "summary": "Submit a document for verification",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VerificationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Pending request already exists"}
                }
            }
        },
        "/verifications/mine": {
            "get": {
                "tags": ["Verifications"],
                "summary": "List the caller's own verification requests",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/verifications/{id}/approve": {
            "post": {
                "tags": ["Verifications"],
                "summary": "Approve a pending verification",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Already reviewed"}
                }
            }
        },
        "/verifications/{id}/reject": {
            "post": {
                "tags": ["Verifications"],
                "summary": "Reject a pending verification",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Remark required"},
                    "409": {"description": "Already reviewed"}
                }
            }
        },
        "/departments": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List departments",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Catalog"],
                "summary": "Add a department",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Code already exists"}
                }
            }
        },
        "/skills": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List skills",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Catalog"],
                "summary": "Add a skill",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Name already exists"}
                }
            }
        },
        "/analytics/overview": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Portal-wide analytics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/analytics/recruiter": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Analytics for the caller's postings",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/exports/placement-summary": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the placement summary report",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/exports/skill-demand": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the skill demand report",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {"200": {"description": "OK"}}
            }
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
        "RegisterRequest": {
            "type": "object",
            "required": ["name", "email", "password", "role"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["student", "recruiter", "faculty", "admin"]},
                "department": {"type": "string"}
            }
        },
        "ProfileRequest": {
            "type": "object",
            "required": ["program", "graduation_year"],
            "properties": {
                "program": {"type": "string"},
                "graduation_year": {"type": "integer"},
                "cgpa": {"type": "number"},
                "skills": {"type": "array", "items": {"type": "string"}},
                "resume_url": {"type": "string"}
            }
        },
        "JobRequest": {
            "type": "object",
            "required": ["company_name", "title", "description", "batch", "location", "deadline"],
            "properties": {
                "company_name": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "skills": {"type": "array", "items": {"type": "string"}},
                "min_cgpa": {"type": "number"},
                "batch": {"type": "array", "items": {"type": "integer"}},
                "requires_verification": {"type": "boolean"},
                "location": {"type": "string"},
                "remote": {"type": "boolean"},
                "stipend": {"type": "integer"},
                "salary": {"type": "integer"},
                "deadline": {"type": "string"}
            }
        },
        "ApplicationRequest": {
            "type": "object",
            "required": ["job_id", "cover_letter"],
            "properties": {
                "job_id": {"type": "string"},
                "cover_letter": {"type": "string"}
            }
        },
        "VerificationRequest": {
            "type": "object",
            "required": ["document_type", "file_url", "file_name"],
            "properties": {
                "document_type": {"type": "string", "enum": ["transcript", "certificate", "id_proof"]},
                "file_url": {"type": "string"},
                "file_name": {"type": "string"}
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
