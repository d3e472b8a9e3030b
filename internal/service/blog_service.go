package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bloggydev/bloggy/internal/domain"
	"github.com/bloggydev/bloggy/internal/logging"
	"github.com/bloggydev/bloggy/internal/repository"
)

// BlogService handles blog post creation and reads.
type BlogService struct {
	users repository.UserRepository
	posts repository.PostRepository
}

func NewBlogService(users repository.UserRepository, posts repository.PostRepository) *BlogService {
	return &BlogService{
		users: users,
		posts: posts,
	}
}

type CreatePostInput struct {
	Title   string
	Content string
}

// CreatePost saves a blog post for the signed-on user. The user id comes
// from a verified token, so a missing user should not happen, but the
// lookup still guards against a deleted account.
func (s *BlogService) CreatePost(ctx context.Context, input CreatePostInput, userID uint) (*domain.BlogPost, error) {
	l := logging.FromContext(ctx).With("svc", "blog.create_post")

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, &domain.PersistenceError{Err: err}
	}

	now := time.Now().UTC()
	post := &domain.BlogPost{
		Title:      input.Title,
		Content:    input.Content,
		DatePosted: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		UserID:     user.ID,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, &domain.PersistenceError{Err: err}
	}

	l.Info("blog post created", "post_id", post.ID, "user_id", user.ID)
	return post, nil
}

func (s *BlogService) GetPost(ctx context.Context, id uint) (*domain.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, &domain.PersistenceError{Err: err}
	}
	return post, nil
}

func (s *BlogService) ListPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, &domain.PersistenceError{Err: err}
	}
	return posts, nil
}
