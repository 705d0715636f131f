package report

// ExportResponse describes a file handed to the save-as-file storage
type ExportResponse struct {
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
