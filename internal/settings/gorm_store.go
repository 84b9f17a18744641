package settings

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"hazelview_backend/internal/model"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) SoldVisibility() Visibility {
	var setting model.Setting
	err := s.db.Where("key = ?", KeySoldVisibility).First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Could not read sold visibility setting: %v", err)
		}
		return VisibilityShow
	}

	if v := Visibility(setting.Value); ValidVisibility(v) {
		return v
	}
	return VisibilityShow
}

func (s *GormStore) SetSoldVisibility(v Visibility) error {
	_, err := s.Upsert(KeySoldVisibility, string(v), "Whether sold properties appear on the public site")
	return err
}

func (s *GormStore) All() ([]model.Setting, error) {
	var items []model.Setting
	if err := s.db.Order("key asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) Upsert(key, value, description string) (model.Setting, error) {
	var setting model.Setting
	err := s.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = model.Setting{Key: key, Value: value, Description: description}
		if err := s.db.Create(&setting).Error; err != nil {
			return model.Setting{}, err
		}
		return setting, nil
	}
	if err != nil {
		return model.Setting{}, err
	}

	updates := map[string]interface{}{"value": value}
	if description != "" {
		updates["description"] = description
	}
	if err := s.db.Model(&setting).Updates(updates).Error; err != nil {
		return model.Setting{}, err
	}
	return setting, nil
}
