// internal/model/tag.go
package model

// Tag はジャーナルと祈りのリクエストに付与するラベルです
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	// 関連 (タグ削除時の中間テーブル掃除用、JSONには含めない)
	JournalEntries []JournalEntry  `gorm:"many2many:journal_tag;" json:"-"`
	PrayerRequests []PrayerRequest `gorm:"many2many:prayer_request_tag;" json:"-"`
}

func (Tag) TableName() string {
	return "tags"
}

// TagRequest はタグ作成・更新リクエストDTO
type TagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
