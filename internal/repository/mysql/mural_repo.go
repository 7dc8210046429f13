package mysql

import (
	"gorm.io/gorm"

	"comunidade/internal/model"
)

type MuralRepository struct {
	DB *gorm.DB
}

func NewMuralRepository(db *gorm.DB) *MuralRepository {
	return &MuralRepository{DB: db}
}

func (r *MuralRepository) List() ([]model.MuralItem, error) {
	items := []model.MuralItem{}
	err := r.DB.Order("publish_date DESC").Find(&items).Error
	return items, err
}

// Create inserts the item and re-reads it by primary key so the returned
// timestamps are the server-assigned ones.
func (r *MuralRepository) Create(item *model.MuralItem) (*model.MuralItem, error) {
	if err := r.DB.Create(item).Error; err != nil {
		return nil, err
	}
	var saved model.MuralItem
	if err := r.DB.First(&saved, item.ID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *MuralRepository) DeleteByID(id uint64) (bool, error) {
	tx := r.DB.Delete(&model.MuralItem{}, id)
	return tx.RowsAffected > 0, tx.Error
}
