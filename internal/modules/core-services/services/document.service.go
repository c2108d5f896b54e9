package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"formation-suite-core/internal/infrastructure/database/mongodb"
	"formation-suite-core/internal/shared/domain"
)

const (
	documentsCollection = "documents"
	maxDocumentSize     = 10 << 20 // 10 Mo
	pdfContentType      = "application/pdf"
)

// StoredDocument représente un support PDF stocké dans MongoDB.
// Les tables relationnelles ne conservent que la référence opaque.
type StoredDocument struct {
	Reference   string    `bson:"reference"`
	ContentType string    `bson:"content_type"`
	Filename    string    `bson:"filename"`
	Data        []byte    `bson:"-"`
	UploadedAt  time.Time `bson:"uploaded_at"`
}

// DocumentService stocke et restitue les supports PDF des cours,
// mémoires et programmes
type DocumentService struct {
	mongo *mongodb.Client
}

func NewDocumentService(mongoClient *mongodb.Client) *DocumentService {
	return &DocumentService{mongo: mongoClient}
}

// Store enregistre un document et retourne sa référence opaque.
// Seuls les PDF sont acceptés, taille plafonnée.
func (s *DocumentService) Store(ctx context.Context, data []byte, contentType, filename string) (string, error) {
	if len(data) == 0 {
		return "", domain.NewValidationError("Document vide", nil)
	}
	if len(data) > maxDocumentSize {
		return "", domain.NewValidationError("Document trop volumineux (max 10 Mo)", map[string]interface{}{
			"taille": len(data),
		})
	}
	if contentType != pdfContentType {
		return "", domain.NewValidationError("Seuls les documents PDF sont acceptés", map[string]interface{}{
			"content_type": contentType,
		})
	}

	reference := uuid.New().String()

	_, err := s.mongo.Collection(documentsCollection).InsertOne(ctx, bson.M{
		"reference":    reference,
		"content_type": contentType,
		"filename":     filename,
		"data":         primitive.Binary{Subtype: 0x00, Data: data},
		"uploaded_at":  time.Now(),
	})
	if err != nil {
		return "", domain.NewInternalError("Erreur stockage du document",
			fmt.Errorf("erreur insertion MongoDB: %w", err))
	}

	return reference, nil
}

// Retrieve restitue le document référencé
func (s *DocumentService) Retrieve(ctx context.Context, reference string) (*StoredDocument, error) {
	var raw struct {
		Reference   string           `bson:"reference"`
		ContentType string           `bson:"content_type"`
		Filename    string           `bson:"filename"`
		Data        primitive.Binary `bson:"data"`
		UploadedAt  time.Time        `bson:"uploaded_at"`
	}

	err := s.mongo.Collection(documentsCollection).
		FindOne(ctx, bson.M{"reference": reference}).
		Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, domain.NewNotFoundError("Document introuvable", nil)
	}
	if err != nil {
		return nil, domain.NewInternalError("Erreur lecture du document",
			fmt.Errorf("erreur lecture MongoDB: %w", err))
	}

	return &StoredDocument{
		Reference:   raw.Reference,
		ContentType: raw.ContentType,
		Filename:    raw.Filename,
		Data:        raw.Data.Data,
		UploadedAt:  raw.UploadedAt,
	}, nil
}

// Delete supprime le document référencé. Best-effort : l'appelant journalise
// l'échec sans faire échouer l'opération métier.
func (s *DocumentService) Delete(ctx context.Context, reference string) error {
	if reference == "" {
		return nil
	}

	_, err := s.mongo.Collection(documentsCollection).DeleteOne(ctx, bson.M{"reference": reference})
	if err != nil {
		return fmt.Errorf("erreur suppression document %s: %w", reference, err)
	}

	return nil
}
