package service

import (
	"github.com/bloggydev/bloggy/internal/config"
	"github.com/bloggydev/bloggy/internal/repository"
	"github.com/bloggydev/bloggy/internal/token"
)

type Services struct {
	User   *UserService
	Blog   *BlogService
	Tokens *token.Issuer
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	issuer := token.NewIssuer(cfg)
	return &Services{
		User:   NewUserService(repos.User, repos.Role, issuer),
		Blog:   NewBlogService(repos.User, repos.Post),
		Tokens: issuer,
	}
}
