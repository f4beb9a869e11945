package repository

import "articles-api/internal/domain/entity"

type ArticleRepository interface {
	CrudRepository[entity.Article]
}
