// Package journal records programs run in the playground.
package journal

import (
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"moon-go/model"
)

type Store struct {
	DB   *gorm.DB
	path string
}

// / OpenStore opens (creating if needed) the journal database at dbPath.
func OpenStore(dbPath string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.HistoryEntry{}); err != nil {
		return nil, err
	}
	return &Store{DB: db, path: dbPath}, nil
}

func (this *Store) Path() string {
	return this.path
}

func (this *Store) Close() error {
	sqlDB, err := this.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// / Record one run of source. A program seen before (even if expired) has
// / its counters updated instead of getting a new row.
func (this *Store) Record(source string, runErr error) (*model.HistoryEntry, error) {
	now := time.Now().Unix()
	digest := SourceDigest(source)
	lastError := ""
	if runErr != nil {
		lastError = runErr.Error()
	}
	var entry model.HistoryEntry
	err := this.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().Where("`digest`=?", digest).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			entry = model.HistoryEntry{
				Digest:    digest,
				Stamp:     SourceStamp(source),
				Source:    source,
				Succeeded: runErr == nil,
				LastError: lastError,
				RunCount:  1,
				CreatedAt: now,
				LastRun:   now,
			}
			return tx.Create(&entry).Error
		}
		if err != nil {
			return err
		}
		entry.Succeeded = runErr == nil
		entry.LastError = lastError
		entry.RunCount++
		entry.LastRun = now
		entry.Deleted = 0
		return tx.Unscoped().Model(&model.HistoryEntry{}).Where("`id`=?", entry.ID).
			Updates(map[string]interface{}{
				"succeeded":  entry.Succeeded,
				"last_error": entry.LastError,
				"run_count":  entry.RunCount,
				"last_run":   entry.LastRun,
				"deleted":    0,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// / Recent returns up to limit live entries, most recently run first.
func (this *Store) Recent(limit int) ([]*model.HistoryEntry, error) {
	var items []*model.HistoryEntry
	if err := this.DB.Model(&model.HistoryEntry{}).Order("last_run desc, id desc").
		Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (this *Store) Count() (int64, error) {
	var cnt int64 = 0
	if err := this.DB.Model(&model.HistoryEntry{}).Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

// / Expire soft-deletes entries not run within maxAge and returns how many.
func (this *Store) Expire(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Unix()
	result := this.DB.Where("`last_run` < ?", cutoff).Delete(&model.HistoryEntry{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
