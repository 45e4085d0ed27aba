package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mehmetadiyaman/DiyetimTakip-sub000/models"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/planner"
)

// ClientRepository is the gorm-backed client store. It satisfies
// planner.ClientStore for the planning engine.
type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// GetClient resolves a client by primary id. An unknown id maps to
// planner.ErrClientNotFound so the engine can propagate it unchanged.
func (r *ClientRepository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client %d: %w", id, planner.ErrClientNotFound)
		}
		return nil, err
	}
	return &client, nil
}

// CreateClient stores a new client record, assigning an external UUID.
func (r *ClientRepository) CreateClient(ctx context.Context, client *models.Client) error {
	if client.ExternalID == "" {
		client.ExternalID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(client).Error
}

// ListClients returns all active client records.
func (r *ClientRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// DeleteClient soft-deletes a client record. Reports NotFound when no row
// was affected.
func (r *ClientRepository) DeleteClient(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("client %d: %w", id, planner.ErrClientNotFound)
	}
	return nil
}
