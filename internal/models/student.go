package models

// Student represents one learner of the class.
type Student struct {
	ID       int    `yaml:"id" json:"id"`
	FullName string `yaml:"full_name" json:"full_name"`
	Active   bool   `yaml:"active" json:"active"`
}

// StudentFilter encapsulates allowed parameters for listing students.
type StudentFilter struct {
	Search   string
	Active   *bool
	Page     int
	PageSize int
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
