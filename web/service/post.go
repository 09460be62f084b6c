package service

import (
	"time"

	"github.com/mindwell-app/mindwell/database"
	"github.com/mindwell-app/mindwell/database/model"
	"github.com/mindwell-app/mindwell/logger"
)

const anonymousAuthor = "Anonymous"

// ForumPost is a post prepared for rendering: the author name is already
// resolved, or replaced for anonymous posts.
type ForumPost struct {
	Id        int       `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type PostService struct{}

func (s *PostService) Add(userId int, content string, anonymous bool) error {
	post := &model.Post{
		UserId:      userId,
		Content:     content,
		IsAnonymous: anonymous,
	}
	return database.GetDB().Create(post).Error
}

// List returns every post newest first, with usernames joined in for
// non-anonymous posts. A read failure is logged and yields an empty list so
// the forum page still renders.
func (s *PostService) List() []ForumPost {
	type postRow struct {
		Id          int
		Content     string
		IsAnonymous bool
		CreatedAt   time.Time
		Username    string
	}

	var rows []postRow
	err := database.GetDB().Raw(`
		SELECT posts.id, posts.content, posts.is_anonymous, posts.created_at, users.username
		FROM posts
		LEFT JOIN users ON users.id = posts.user_id
		ORDER BY posts.created_at DESC, posts.id DESC
	`).Scan(&rows).Error
	if err != nil {
		logger.Warning("failed to load forum posts:", err)
		return []ForumPost{}
	}

	posts := make([]ForumPost, 0, len(rows))
	for _, row := range rows {
		author := row.Username
		if row.IsAnonymous || author == "" {
			author = anonymousAuthor
		}
		posts = append(posts, ForumPost{
			Id:        row.Id,
			Author:    author,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
		})
	}
	return posts
}
