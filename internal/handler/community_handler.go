package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"comunidade/internal/service"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

type CreatePostReq struct {
	UserID  uint64 `json:"user_id"`
	Content string `json:"content"`
}

type LikeReq struct {
	UserID uint64 `json:"user_id"`
}

type CreateCommentReq struct {
	UserID  uint64 `json:"user_id"`
	Comment string `json:"comment"`
}

// Feed is public; the optional userId query parameter only adds the
// liked_by_user flag for that viewer.
func (h *CommunityHandler) Feed(c *gin.Context) {
	var viewerID uint64
	if v := c.Query("userId"); v != "" {
		viewerID, _ = strconv.ParseUint(v, 10, 64)
	}

	items, err := h.svc.Feed(viewerID)
	if err != nil {
		respondError(c, err, "Erro ao carregar o feed.")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Corpo da requisição inválido."})
		return
	}

	var missing []string
	if req.UserID == 0 {
		missing = append(missing, "user_id")
	}
	if strings.TrimSpace(req.Content) == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Campos obrigatórios ausentes: " + strings.Join(missing, ", "),
		})
		return
	}

	post, err := h.svc.CreatePost(req.UserID, req.Content)
	if err != nil {
		respondError(c, err, "Erro ao criar publicação.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Publicação criada com sucesso!",
		"post":    post,
	})
}

func (h *CommunityHandler) ToggleLike(c *gin.Context) {
	postID, ok := parseID(c)
	if !ok {
		return
	}

	var req LikeReq
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "user_id é obrigatório."})
		return
	}

	liked, count, err := h.svc.ToggleLike(postID, req.UserID)
	if err != nil {
		respondError(c, err, "Erro ao curtir publicação.")
		return
	}

	message := "Curtida removida."
	if liked {
		message = "Publicação curtida com sucesso."
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     message,
		"liked":       liked,
		"likes_count": count,
	})
}

func (h *CommunityHandler) CreateComment(c *gin.Context) {
	postID, ok := parseID(c)
	if !ok {
		return
	}

	var req CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Corpo da requisição inválido."})
		return
	}

	var missing []string
	if req.UserID == 0 {
		missing = append(missing, "user_id")
	}
	if strings.TrimSpace(req.Comment) == "" {
		missing = append(missing, "comment")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Campos obrigatórios ausentes: " + strings.Join(missing, ", "),
		})
		return
	}

	result, err := h.svc.CreateComment(postID, req.UserID, req.Comment)
	if err != nil {
		respondError(c, err, "Erro ao comentar.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Comentário enviado!",
		"comments":       result.Comments,
		"comments_count": result.Count,
	})
}

func (h *CommunityHandler) ListComments(c *gin.Context) {
	postID, ok := parseID(c)
	if !ok {
		return
	}

	comments, err := h.svc.ListComments(postID)
	if err != nil {
		respondError(c, err, "Erro ao listar comentários.")
		return
	}
	c.JSON(http.StatusOK, comments)
}
