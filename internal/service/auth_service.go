package service

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"comunidade/internal/model"
	"comunidade/internal/pkg"
)

// UserStore is the slice of the user repository the services need.
type UserStore interface {
	Create(user *model.User) error
	EmailExists(email string) (bool, error)
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint64) (*model.User, error)
	List() ([]model.User, error)
	UpdateRole(id uint64, role string) error
}

type AuthService struct {
	users  UserStore
	secret []byte
	smtp   pkg.SMTPConfig
}

func NewAuthService(users UserStore, secret []byte, smtp pkg.SMTPConfig) *AuthService {
	return &AuthService{users: users, secret: secret, smtp: smtp}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	BirthDate string
	Email     string
	Phone     string
	Password  string
	Role      string
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var errDuplicateEmail = pkg.NewHTTPError(http.StatusConflict, "E-mail já cadastrado.")

func (s *AuthService) Register(in RegisterInput) (*model.PublicUser, error) {
	email := NormalizeEmail(in.Email)

	role := model.RoleMember
	if strings.EqualFold(strings.TrimSpace(in.Role), model.RoleAdministrator) {
		role = model.RoleAdministrator
	}

	exists, err := s.users.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errDuplicateEmail
	}

	hash, err := pkg.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var phone *string
	if p := strings.TrimSpace(in.Phone); p != "" {
		phone = &p
	}

	user := &model.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		BirthDate:    in.BirthDate,
		Email:        email,
		Phone:        phone,
		Role:         role,
		PasswordHash: hash,
	}
	if err := s.users.Create(user); err != nil {
		// Two concurrent registrations can both pass the existence check;
		// the unique index on email decides, and its violation is still a
		// conflict, not an internal error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errDuplicateEmail
		}
		return nil, err
	}

	saved, err := s.users.FindByID(user.ID)
	if err != nil {
		return nil, err
	}

	s.sendWelcome(saved)

	pub := saved.Public()
	return &pub, nil
}

// sendWelcome is best effort; a mail failure never fails the registration.
func (s *AuthService) sendWelcome(u *model.User) {
	if !s.smtp.Enabled() {
		return
	}
	html := pkg.WelcomeEmailHTML(u.FirstName)
	if err := pkg.SendEmail(s.smtp, u.Email, "Bem-vindo à comunidade", html); err != nil {
		log.Printf("welcome email to %s failed: %v", u.Email, err)
	}
}

// errInvalidCredentials is shared by the unknown-email and wrong-password
// paths so login responses carry no enumeration signal.
var errInvalidCredentials = pkg.NewHTTPError(http.StatusUnauthorized, "Credenciais inválidas.")

func (s *AuthService) Login(email, password string) (string, *model.PublicUser, error) {
	user, err := s.users.FindByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errInvalidCredentials
		}
		return "", nil, err
	}

	if !pkg.CheckPassword(user.PasswordHash, password) {
		return "", nil, errInvalidCredentials
	}

	token, err := pkg.GenerateToken(s.secret, user)
	if err != nil {
		return "", nil, err
	}

	pub := user.Public()
	return token, &pub, nil
}

func (s *AuthService) CurrentUser(id uint64) (*model.PublicUser, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NewHTTPError(http.StatusNotFound, "Usuário não encontrado.")
		}
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}
