package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	app "github.com/sqlplayground/playground/internal/application/seed"
	domain "github.com/sqlplayground/playground/internal/domain/seed"
	"github.com/sqlplayground/playground/internal/infrastructure/db/models"
)

// SeedRunRepository records setup runs in the seed_runs table. The table
// lives outside the six playground tables, so run history survives the
// drop-everything lifecycle it documents.
type SeedRunRepository struct {
	db *gorm.DB
}

func NewSeedRunRepository(db *gorm.DB) *SeedRunRepository {
	return &SeedRunRepository{db: db}
}

// Migrate creates the seed_runs table if needed.
func (r *SeedRunRepository) Migrate() error {
	return r.db.AutoMigrate(&models.SeedRun{})
}

func (r *SeedRunRepository) Begin(ctx context.Context, trigger string, cfg domain.Config) (string, error) {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal run config: %w", err)
	}

	run := models.SeedRun{
		ID:         uuid.NewString(),
		Trigger:    trigger,
		Status:     "running",
		ConfigJSON: string(cfgJSON),
		StartedAt:  time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&run).Error; err != nil {
		return "", fmt.Errorf("create seed run: %w", err)
	}

	return run.ID, nil
}

func (r *SeedRunRepository) Complete(ctx context.Context, runID string, counts app.RowCounts) error {
	now := time.Now()
	err := r.db.WithContext(ctx).
		Model(&models.SeedRun{}).
		Where("id = ?", runID).
		Updates(map[string]any{
			"status":            "succeeded",
			"countries_count":   counts.Countries,
			"cities_count":      counts.Cities,
			"users_count":       counts.Users,
			"products_count":    counts.Products,
			"orders_count":      counts.Orders,
			"order_items_count": counts.OrderItems,
			"finished_at":       &now,
		}).Error
	if err != nil {
		return fmt.Errorf("complete seed run: %w", err)
	}
	return nil
}

func (r *SeedRunRepository) Fail(ctx context.Context, runID, phase, reason string) error {
	now := time.Now()
	err := r.db.WithContext(ctx).
		Model(&models.SeedRun{}).
		Where("id = ?", runID).
		Updates(map[string]any{
			"status":        "failed",
			"failed_phase":  &phase,
			"error_message": &reason,
			"finished_at":   &now,
		}).Error
	if err != nil {
		return fmt.Errorf("fail seed run: %w", err)
	}
	return nil
}
