package product

import "io"

// Upload is a file attached to a multipart submission.
type Upload struct {
	Name   string
	Reader io.Reader
}

// CreateRequest carries the raw form fields of a create submission.
// Numeric fields arrive as strings and are coerced by the service.
type CreateRequest struct {
	Name        string
	Price       string
	Category    string
	Stock       string
	Description string
	Sizes       string
	AddedBy     string
}

// UpdateRequest carries the raw form fields of an update submission.
// Empty fields are treated as absent and left untouched by the merge.
type UpdateRequest struct {
	Name        string
	Price       string
	Category    string
	Stock       string
	Description string
	Sizes       string
}

type CreateInput struct {
	Fields CreateRequest
	Image  *Upload
}

type UpdateInput struct {
	Fields UpdateRequest
	Image  *Upload
}

type CreateResult struct {
	ProductID string
	ImageURL  string
}

type UpdateResult struct {
	ProductID     string
	ImageURL      string
	UpdatedFields []string
}

type CreateResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProductID string `json:"productId"`
	ImageURL  string `json:"imageUrl"`
}

type UpdateResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	ProductID     string   `json:"productId"`
	ImageURL      string   `json:"imageUrl"`
	UpdatedFields []string `json:"updatedFields"`
}
