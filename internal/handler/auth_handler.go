package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"comunidade/internal/middleware"
	"comunidade/internal/pkg"
	"comunidade/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type RegisterReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Corpo da requisição inválido."})
		return
	}

	missing := missingFields([]field{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"birth_date", req.BirthDate},
		{"email", req.Email},
		{"password", req.Password},
	})
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Campos obrigatórios não informados: " + strings.Join(missing, ", "),
		})
		return
	}

	user, err := h.svc.Register(service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		respondError(c, err, "Erro ao criar usuário.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuário criado com sucesso!",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email e senha são obrigatórios."})
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email e senha são obrigatórios."})
		return
	}

	token, user, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Erro ao realizar login.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login realizado com sucesso!",
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	claimsAny, ok := c.Get(middleware.ContextClaimsKey)
	claims, _ := claimsAny.(*pkg.Claims)
	if !ok || claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token não informado."})
		return
	}

	user, err := h.svc.CurrentUser(claims.UserID)
	if err != nil {
		respondError(c, err, "Erro ao carregar usuário.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
