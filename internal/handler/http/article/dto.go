// Package article provides HTTP handlers for articles and their authorship.
package article

import (
	"time"

	"articles-api/internal/domain/entity"
)

// DTO is the JSON view of an article.
type DTO struct {
	ID             int64     `json:"id" example:"1"`
	DateOfCreation time.Time `json:"dateOfCreation" example:"2025-10-26T12:00:00Z"`
	Topic          string    `json:"topic" example:"Generics in practice"`
	Content        string    `json:"content" example:"Type parameters arrived in Go 1.18..."`
}

// CreateRequest is the body of POST /articles.
type CreateRequest struct {
	Topic     string  `json:"topic" validate:"min=1,max=50" example:"Generics in practice"`
	Content   string  `json:"content" validate:"min=1,max=1500" example:"Type parameters arrived in Go 1.18..."`
	AuthorIDs []int64 `json:"authorIds" validate:"dive,gte=1" example:"1,2"`
}

// UpdateRequest is the body of PATCH /articles/{id}. Both fields are required.
type UpdateRequest struct {
	Topic   string `json:"topic" validate:"min=1,max=50"`
	Content string `json:"content" validate:"min=1,max=1500"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{ID: a.ID, DateOfCreation: a.CreatedAt, Topic: a.Topic, Content: a.Content}
}

func toDTOs(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	return out
}
