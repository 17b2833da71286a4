package database

import (
	"errors"
	"time"

	"github.com/meusite/cms/internal/buttons"
	"github.com/meusite/cms/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const migrationRecomputeButtonURLs = "2026-08-20_recompute_custom_button_urls"

type migrationRecord struct {
	Name             string `gorm:"column:name;primaryKey;size:190;not null"`
	AppliedAtSeconds int64  `gorm:"column:applied_at_s;not null"`
}

func (migrationRecord) TableName() string {
	return "db_migrations"
}

type migrationDefinition struct {
	name  string
	apply func(*gorm.DB) error
}

func applyMigrations(db *gorm.DB, logger *zap.Logger) error {
	migrations := []migrationDefinition{
		{name: migrationRecomputeButtonURLs, apply: recomputeButtonURLs},
	}

	for _, migration := range migrations {
		var record migrationRecord
		err := db.Where("name = ?", migration.name).Take(&record).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := migration.apply(db); err != nil {
			return err
		}
		appliedAt := time.Now().UTC().Unix()
		if err := db.Create(&migrationRecord{Name: migration.name, AppliedAtSeconds: appliedAt}).Error; err != nil {
			return err
		}
		if logger != nil {
			logger.Info("database migration applied", zap.String("migration", migration.name))
		}
	}
	return nil
}

// recomputeButtonURLs re-derives custom_buttons.url from type and the
// matching target field. Rows written by older builds could carry a
// stale URL after a type change.
func recomputeButtonURLs(db *gorm.DB) error {
	var rows []store.CustomButton
	if err := db.Find(&rows).Error; err != nil {
		return err
	}

	for _, row := range rows {
		value := ""
		switch row.Type {
		case store.ButtonTypeInternal:
			if row.InternalLink != nil {
				value = *row.InternalLink
			}
		case store.ButtonTypeExternal, store.ButtonTypeIframe:
			if row.ExternalURL != nil {
				value = *row.ExternalURL
			}
		case store.ButtonTypeEmail:
			if row.Email != nil {
				value = *row.Email
			}
		}
		if value == "" {
			continue
		}
		derived := buttons.DeriveURL(row.Type, value)
		if derived == row.URL {
			continue
		}
		if err := db.Model(&store.CustomButton{}).
			Where("id = ?", row.ID).
			Update("url", derived).Error; err != nil {
			return err
		}
	}
	return nil
}
