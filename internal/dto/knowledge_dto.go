package dto

type KnowledgeDocument struct {
	Id      string                 `json:"id"`
	Payload map[string]interface{} `json:"payload"`
}

type ListDocumentsResponse struct {
	Documents  []KnowledgeDocument `json:"documents"`
	Count      int                 `json:"count"`
	NextOffset string              `json:"nextOffset,omitempty"`
}

type UploadDocumentRequest struct {
	Text     string                 `json:"text"`
	FileName string                 `json:"fileName"`
	Metadata map[string]interface{} `json:"metadata"`
}

type UploadDocumentResponse struct {
	ChunksUploaded int `json:"chunksUploaded"`
}
