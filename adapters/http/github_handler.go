package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	githubUC "github.com/gan0622/DevForFun/internal/application/usecase/github"
)

type GithubHandler struct {
	getRepos *githubUC.GetReposUseCase
}

func NewGithubHandler(uc *githubUC.GetReposUseCase) *GithubHandler {
	return &GithubHandler{getRepos: uc}
}

// GetRepos proxies the external repository listing for a username. Public.
func (h *GithubHandler) GetRepos(c *gin.Context) {
	output, err := h.getRepos.Execute(c.Request.Context(), githubUC.GetReposInput{
		Username: c.Param("username"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToRepoDTOs(output.Repos))
}
