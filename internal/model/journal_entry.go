// internal/model/journal_entry.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// JournalEntry はジャーナルの1エントリーです
type JournalEntry struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       *string                     `gorm:"index" json:"title"`
	Content     string                      `gorm:"type:text;not null" json:"content"`
	BibleVerses datatypes.JSONSlice[string] `json:"bibleVerses"` // 順序付き
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`

	Tags           []Tag           `gorm:"many2many:journal_tag;" json:"tags"`
	PrayerRequests []PrayerRequest `gorm:"foreignKey:JournalEntryID" json:"prayerRequests"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// JournalEntryRequest はジャーナル作成・更新（全体）リクエストDTO
// PUTの場合は prayerRequests がエントリー配下の祈りのリクエストの完全なリストとして扱われる
type JournalEntryRequest struct {
	Title          *string              `json:"title" validate:"omitempty,max=200"`
	Content        string               `json:"content" validate:"required"`
	BibleVerses    []string             `json:"bibleVerses" validate:"omitempty,dive,required"`
	Tags           []uint               `json:"tags"`
	PrayerRequests []PrayerRequestInput `json:"prayerRequests" validate:"omitempty,dive"`
}
