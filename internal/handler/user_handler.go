package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comunidade/internal/model"
	"comunidade/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type UpdateRoleReq struct {
	Role string `json:"role"`
}

func (h *UserHandler) ListMembers(c *gin.Context) {
	members, err := h.svc.ListMembers()
	if err != nil {
		respondError(c, err, "Erro ao listar membros da igreja.")
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": `Papel inválido. Use "Membro" ou "Administrador".`})
		return
	}
	if req.Role != model.RoleMember && req.Role != model.RoleAdministrator {
		c.JSON(http.StatusBadRequest, gin.H{"message": `Papel inválido. Use "Membro" ou "Administrador".`})
		return
	}

	user, err := h.svc.UpdateRole(id, req.Role)
	if err != nil {
		respondError(c, err, "Erro ao atualizar papel.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Papel atualizado com sucesso.",
		"user":    user,
	})
}
