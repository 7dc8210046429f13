package service

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"comunidade/internal/model"
	"comunidade/internal/pkg"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) ListMembers() ([]model.PublicUser, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	members := make([]model.PublicUser, 0, len(users))
	for i := range users {
		members = append(members, users[i].Public())
	}
	return members, nil
}

// UpdateRole changes a member's role. Tokens issued before the change keep
// the old role claim until they expire.
func (s *UserService) UpdateRole(id uint64, role string) (*model.PublicUser, error) {
	if _, err := s.users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NewHTTPError(http.StatusNotFound, "Usuário não encontrado.")
		}
		return nil, err
	}

	if err := s.users.UpdateRole(id, role); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}
