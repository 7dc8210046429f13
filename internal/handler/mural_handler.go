package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"comunidade/internal/service"
)

type MuralHandler struct {
	svc *service.MuralService
}

func NewMuralHandler(svc *service.MuralService) *MuralHandler {
	return &MuralHandler{svc: svc}
}

type MuralCreateReq struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	PublishDate string `json:"publish_date"`
	Link        string `json:"link"`
}

func (h *MuralHandler) List(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		respondError(c, err, "Erro ao listar mural.")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MuralHandler) Create(c *gin.Context) {
	var req MuralCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Corpo da requisição inválido."})
		return
	}

	missing := missingFields([]field{
		{"title", req.Title},
		{"subtitle", req.Subtitle},
		{"publish_date", req.PublishDate},
	})
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Campos obrigatórios ausentes: " + strings.Join(missing, ", "),
		})
		return
	}

	item, err := h.svc.Create(req.Title, req.Subtitle, req.PublishDate, req.Link)
	if err != nil {
		respondError(c, err, "Erro ao criar aviso.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Aviso criado com sucesso!",
		"item":    item,
	})
}

func (h *MuralHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Remove(id); err != nil {
		respondError(c, err, "Erro ao remover aviso.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Aviso removido com sucesso."})
}
