package operator

import (
	"strings"

	"github.com/avtorazbor/internal/http/response"
	"github.com/avtorazbor/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListUsers lists accounts with optional role filter and keyword search
// over username and email.
func (h *Handler) ListUsers(c *gin.Context) {
	page, limit := h.queryPagination(c)

	users, total, err := h.UserService.ListUsers(repository.UserListFilter{
		Page:     page,
		PageSize: limit,
		Keyword:  strings.TrimSpace(c.Query("search")),
		Role:     strings.TrimSpace(c.Query("role")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "user list failed", err)
		return
	}
	response.SuccessWithPage(c, users, response.BuildPagination(page, limit, total))
}

// GetUser returns one account.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.UserService.GetUser(id)
	if err != nil {
		respondWithMappedError(c, err, userAdminErrorRules, response.CodeInternal, "user fetch failed")
		return
	}
	response.Success(c, user)
}

// DeleteUser removes an account and everything owned by it.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.UserService.DeleteAccount(id); err != nil {
		respondWithMappedError(c, err, userAdminErrorRules, response.CodeInternal, "user deletion failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
