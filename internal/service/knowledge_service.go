package service

import (
	"context"
	"errors"
	"time"

	"chatdesk-be/internal/config"
	"chatdesk-be/internal/dto"
	"chatdesk-be/pkg/utils"
	"chatdesk-be/pkg/vectorstore"

	"github.com/google/uuid"
)

var (
	ErrVectorStoreNotConfigured = errors.New("vector store is not configured")
	ErrEmptyDocument            = errors.New("document text is empty")
)

type IKnowledgeService interface {
	ListDocuments(ctx context.Context, limit int, offset string) (*dto.ListDocumentsResponse, error)
	UploadDocument(ctx context.Context, text, fileName string, metadata map[string]interface{}) (*dto.UploadDocumentResponse, error)
	DeleteDocument(ctx context.Context, id string) error
}

type knowledgeService struct {
	store            *vectorstore.Client // nil when unconfigured
	cfg              *config.Config
	publisherService IPublisherService
}

func NewKnowledgeService(
	store *vectorstore.Client,
	cfg *config.Config,
	publisherService IPublisherService,
) IKnowledgeService {
	return &knowledgeService{
		store:            store,
		cfg:              cfg,
		publisherService: publisherService,
	}
}

func (s *knowledgeService) ListDocuments(ctx context.Context, limit int, offset string) (*dto.ListDocumentsResponse, error) {
	if s.store == nil {
		return nil, ErrVectorStoreNotConfigured
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}

	points, nextOffset, err := s.store.Scroll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	docs := make([]dto.KnowledgeDocument, 0, len(points))
	for _, p := range points {
		docs = append(docs, dto.KnowledgeDocument{
			Id:      p.ID,
			Payload: p.Payload,
		})
	}

	return &dto.ListDocumentsResponse{
		Documents:  docs,
		Count:      len(docs),
		NextOffset: nextOffset,
	}, nil
}

// UploadDocument splits the text into word-packed chunks and stores each one
// with a random placeholder vector sized to the collection. Real embeddings
// are produced by the external workflow; these points only need to index.
// Caller metadata is merged into each chunk's payload; the bookkeeping keys
// always win on collision.
func (s *knowledgeService) UploadDocument(ctx context.Context, text, fileName string, metadata map[string]interface{}) (*dto.UploadDocumentResponse, error) {
	if s.store == nil {
		return nil, ErrVectorStoreNotConfigured
	}

	chunks := utils.SplitWords(text, s.cfg.Vector.ChunkSize)
	if len(chunks) == 0 {
		return nil, ErrEmptyDocument
	}

	dim := s.store.CollectionDim(ctx)
	uploadedAt := time.Now().Format(time.RFC3339)

	points := make([]vectorstore.Point, 0, len(chunks))
	for i, chunk := range chunks {
		payload := make(map[string]interface{}, len(metadata)+5)
		for k, v := range metadata {
			payload[k] = v
		}
		payload["text"] = chunk
		payload["fileName"] = fileName
		payload["chunkIndex"] = i
		payload["totalChunks"] = len(chunks)
		payload["uploadedAt"] = uploadedAt

		points = append(points, vectorstore.Point{
			ID:      uuid.New().String(),
			Vector:  vectorstore.RandomVector(dim),
			Payload: payload,
		})
	}

	if err := s.store.Upsert(ctx, points); err != nil {
		return nil, err
	}

	s.publisherService.PublishAudit(ctx, "KNOWLEDGE_UPLOADED", map[string]interface{}{
		"fileName": fileName,
		"chunks":   len(chunks),
	})

	return &dto.UploadDocumentResponse{ChunksUploaded: len(chunks)}, nil
}

func (s *knowledgeService) DeleteDocument(ctx context.Context, id string) error {
	if s.store == nil {
		return ErrVectorStoreNotConfigured
	}
	return s.store.DeletePoints(ctx, []string{id})
}
