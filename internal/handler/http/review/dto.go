// Package review provides HTTP handlers for article reviews.
package review

import (
	"time"

	"articles-api/internal/domain/entity"
)

// DTO is the JSON view of a review.
type DTO struct {
	ID             int64     `json:"id" example:"1"`
	Type           string    `json:"type" example:"POSITIVE"`
	DateOfCreation time.Time `json:"dateOfCreation" example:"2025-10-26T12:00:00Z"`
	Content        string    `json:"content" example:"Clear and well argued."`
	AuthorID       int64     `json:"authorId" example:"2"`
	ArticleID      int64     `json:"articleId" example:"1"`
}

// CreateRequest is the body of POST /reviews.
type CreateRequest struct {
	Type      string `json:"type" validate:"oneof=POSITIVE NEUTRAL CRITICAL" example:"POSITIVE"`
	Content   string `json:"content" validate:"min=1,max=500" example:"Clear and well argued."`
	AuthorID  int64  `json:"authorId" validate:"gte=1" example:"2"`
	ArticleID int64  `json:"articleId" validate:"gte=1" example:"1"`
}

func toDTO(r *entity.Review) DTO {
	return DTO{
		ID:             r.ID,
		Type:           string(r.Type),
		DateOfCreation: r.CreatedAt,
		Content:        r.Content,
		AuthorID:       r.AuthorID,
		ArticleID:      r.ArticleID,
	}
}

func toDTOs(reviews []*entity.Review) []DTO {
	out := make([]DTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toDTO(r))
	}
	return out
}
