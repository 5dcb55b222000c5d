package models

// Department is a flat reference entry. Codes are unique; entries are
// append-only in the current scope.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Skill is a flat reference entry with case-insensitively unique names.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
