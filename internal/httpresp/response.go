package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-backoffice/internal/dto"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// MutationResponse is the {success, message, id?} envelope of every write.
type MutationResponse struct {
	Success bool `json:"success"`
	*dto.MutationResult
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Mutation(c *gin.Context, status int, res *dto.MutationResult) {
	c.JSON(status, MutationResponse{
		Success:        true,
		MutationResult: res,
	})
}

func Message(c *gin.Context, message string) {
	Mutation(c, http.StatusOK, &dto.MutationResult{Message: message})
}
