package service

import (
	"net/http"
	"strings"

	"comunidade/internal/model"
	"comunidade/internal/pkg"
)

type MuralStore interface {
	List() ([]model.MuralItem, error)
	Create(item *model.MuralItem) (*model.MuralItem, error)
	DeleteByID(id uint64) (bool, error)
}

// MuralService has no authorization awareness; the admin gate lives in the
// middleware chain.
type MuralService struct {
	repo MuralStore
}

func NewMuralService(repo MuralStore) *MuralService {
	return &MuralService{repo: repo}
}

func (s *MuralService) List() ([]model.MuralItem, error) {
	return s.repo.List()
}

func (s *MuralService) Create(title, subtitle, publishDate, link string) (*model.MuralItem, error) {
	var l *string
	if v := strings.TrimSpace(link); v != "" {
		l = &v
	}
	item := &model.MuralItem{
		Title:       strings.TrimSpace(title),
		Subtitle:    strings.TrimSpace(subtitle),
		PublishDate: publishDate,
		Link:        l,
	}
	return s.repo.Create(item)
}

func (s *MuralService) Remove(id uint64) error {
	deleted, err := s.repo.DeleteByID(id)
	if err != nil {
		return err
	}
	if !deleted {
		return pkg.NewHTTPError(http.StatusNotFound, "Aviso não encontrado.")
	}
	return nil
}
