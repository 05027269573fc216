package github

import (
	"context"

	"github.com/gan0622/DevForFun/internal/domain/github"
)

// GetReposUseCase proxies the external repository listing. It has no
// dependency on profile persistence; a failing lookup never touches profile
// state.
type GetReposUseCase struct {
	githubSvc github.Service
}

func NewGetReposUseCase(svc github.Service) *GetReposUseCase {
	return &GetReposUseCase{githubSvc: svc}
}

type GetReposInput struct {
	Username string
}

type GetReposOutput struct {
	Repos []github.Repo
}

func (uc *GetReposUseCase) Execute(ctx context.Context, input GetReposInput) (*GetReposOutput, error) {
	repos, err := uc.githubSvc.ListByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	return &GetReposOutput{Repos: repos}, nil
}
