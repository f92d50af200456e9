package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "task-time-tracker.com/task-time-tracker/internal/models"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) List(ctx context.Context) ([]model.BasAccount, error) {
	var accounts []model.BasAccount
	err := r.db.WithContext(ctx).Order("id").Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepository) FindActive(ctx context.Context, id string) (*model.BasAccount, error) {
	var account model.BasAccount
	err := r.db.WithContext(ctx).
		First(&account, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BasAccount{}).
		Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// EnsureActiveFlag adds the is_active column when the table predates it.
func (r *AccountRepository) EnsureActiveFlag(ctx context.Context) error {
	migrator := r.db.WithContext(ctx).Migrator()
	if migrator.HasColumn(&model.BasAccount{}, "is_active") {
		return nil
	}
	return migrator.AddColumn(&model.BasAccount{}, "is_active")
}

// Resync replaces the active account set in one transaction: every stored
// account is deactivated, then each incoming account is upserted with
// is_active set. Accounts absent from the feed stay stored but inactive.
func (r *AccountRepository) Resync(ctx context.Context, accounts []model.BasAccount) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Model(&model.BasAccount{}).
			Update("is_active", false).Error
		if err != nil {
			return err
		}

		for i := range accounts {
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"name", "category", "description", "is_active",
				}),
			}).Create(&accounts[i]).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
