package entity

// Field length limits enforced at the input boundary and mirrored by the schema.
const (
	UsernameMinLength = 5
	UsernameMaxLength = 30
	EmailMinLength    = 5
	EmailMaxLength    = 50
	PasswordMinLength = 5
	PasswordMaxLength = 50

	TopicMinLength          = 1
	TopicMaxLength          = 50
	ArticleContentMinLength = 1
	ArticleContentMaxLength = 1500

	ReviewContentMinLength = 1
	ReviewContentMaxLength = 500
)

// Field names as they appear in payloads and error bodies.
const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldTopic     = "topic"
	FieldContent   = "content"
	FieldType      = "type"
	FieldAuthorID  = "authorId"
	FieldArticleID = "articleId"
	FieldAuthorIDs = "authorIds"
)
