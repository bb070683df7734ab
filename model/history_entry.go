package model

import "gorm.io/plugin/soft_delete"

// HistoryEntry is one distinct program run from the playground.
type HistoryEntry struct {
	ID int64 `json:"id" gorm:"primarykey"`
	// blake3 摘要 /* index_digest,UNIQUE */
	Digest string `json:"digest" gorm:"index:idx_digest,unique"`
	// 短指纹，显示用
	Stamp  string `json:"stamp"`
	Source string `json:"source"`
	// 最近一次是否成功
	Succeeded bool   `json:"succeeded"`
	LastError string `json:"last_error"`
	RunCount  int64  `json:"run_count"`
	CreatedAt int64  `json:"created_at"`
	LastRun   int64  `json:"last_run" gorm:"index:idx_last_run"`
	/* 0 false 1 true */
	Deleted soft_delete.DeletedAt `gorm:"softDelete:flag;default:0"`
}

func (HistoryEntry) TableName() string {
	return "history_entry"
}
