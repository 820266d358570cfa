package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/database/migrations"
	"portfolio.site/database/seeders"
)

// Initialize runs the schema migrations and/or the seeders inside a single
// transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("neither migrate nor seed requested, nothing to do")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("could not begin transaction", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("database initialization panicked", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("rolling back after initialization error", zap.Error(err))
			if rbErr := tx.Rollback().Error; rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("rollback failed", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("database initialization starting...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("migration failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("migrations completed")
	}

	if seed {
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("seeding failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("seeders completed")
	}

	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("commit failed", zap.Error(err))
		return
	}

	configslog.SLog.Info("database initialization finished")
}

// RunMigrationsInOrder migrates every table. Users come first so sessions can
// reference them.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateUsersTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateSessionsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateSettingsTable(db); err != nil {
		return err
	}
	if err := migrations.MigratePagesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateBlogsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateProjectsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateExperiencesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateSkillsTable(db); err != nil {
		return err
	}
	return nil
}

// CheckAndRunSeeders runs every seeder; each one is idempotent and skips rows
// that already exist.
func CheckAndRunSeeders(db *gorm.DB) error {
	if err := seeders.SeedAdminUser(db); err != nil {
		return err
	}
	if err := seeders.SeedDefaultSettings(db); err != nil {
		return err
	}
	if err := seeders.SeedHomePage(db); err != nil {
		return err
	}
	if err := seeders.SeedSampleContent(db); err != nil {
		return err
	}
	return nil
}
