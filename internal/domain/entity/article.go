package entity

import "time"

// Article is a piece of content co-authored by one or more users.
// CreatedAt is assigned by the store on insert and never changes afterwards.
type Article struct {
	ID        int64
	CreatedAt time.Time
	Topic     string
	Content   string
}

func (a Article) WithID(id int64) Article {
	a.ID = id
	return a
}

func (a Article) WithTopic(topic string) Article {
	a.Topic = topic
	return a
}

func (a Article) WithContent(content string) Article {
	a.Content = content
	return a
}

// Authorship links an article to one of its authors.
type Authorship struct {
	ArticleID int64
	AuthorID  int64
}

// NewAuthorships builds one authorship per author id, dropping repeated ids
// so that a pair is never written twice.
func NewAuthorships(articleID int64, authorIDs []int64) []Authorship {
	seen := make(map[int64]struct{}, len(authorIDs))
	out := make([]Authorship, 0, len(authorIDs))
	for _, id := range authorIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, Authorship{ArticleID: articleID, AuthorID: id})
	}
	return out
}
