package services

import (
	"errors"
	"fmt"

	"github.com/restobook/reservation-app/models"
	"gorm.io/gorm"
)

// TableService is the table registry.
type TableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

// ListTables returns all tables in creation order.
func (s *TableService) ListTables() ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.Order("id").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// AddTable registers a new table. Labels are unique; a duplicate is
// reported as ErrConflict.
func (s *TableService) AddTable(label string, capacity int) (*models.Table, error) {
	if label == "" {
		return nil, fmt.Errorf("%w: table label is required", ErrInvalidInput)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidInput, capacity)
	}

	table := models.Table{Label: label, Capacity: capacity}
	if err := s.db.Create(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &table, nil
}

// GetTable returns one table by id, or ErrNotFound.
func (s *TableService) GetTable(id uint) (*models.Table, error) {
	var table models.Table
	if err := s.db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}
