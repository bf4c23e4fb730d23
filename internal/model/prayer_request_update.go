// internal/model/prayer_request_update.go
package model

import "time"

// PrayerRequestUpdate は祈りのリクエストの経過記録です。親リクエストに所有されます。
type PrayerRequestUpdate struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"index;not null" json:"title"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	Date            time.Time `gorm:"not null" json:"date"`
	PrayerRequestID uint      `gorm:"not null;index" json:"prayerRequestId"`
}

func (PrayerRequestUpdate) TableName() string {
	return "prayer_request_updates"
}

// PrayerRequestUpdateRequest は経過記録の作成・更新リクエストDTO
// Date を省略した場合は現在時刻
type PrayerRequestUpdateRequest struct {
	Title   string     `json:"title" validate:"required,max=200"`
	Content string     `json:"content" validate:"required"`
	Date    *time.Time `json:"date"`
}
