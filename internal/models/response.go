package models

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type IDsResponse struct {
	IDs []string `json:"ids"`
}

type BlogListResponse struct {
	Blogs []BlogPost `json:"blogs"`
}

type ProjectListResponse struct {
	Projects []Project `json:"projects"`
}

type WorkListResponse struct {
	Works []Work `json:"works"`
}

type ValidateResponse struct {
	Valid bool `json:"valid"`
}

type UploadResponse struct {
	Bucket string `json:"bucket"`
	Path   string `json:"path"`
	URL    string `json:"url"`
	Size   int64  `json:"size"`
}

type RevalidateResponse struct {
	Revalidated bool   `json:"revalidated"`
	Path        string `json:"path"`
	Type        string `json:"type"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
