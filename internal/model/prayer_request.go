// internal/model/prayer_request.go
package model

import "time"

// PrayerRequest は祈りのリクエストです
type PrayerRequest struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"index;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	IsForMe        bool      `gorm:"not null;default:false" json:"isForMe"`
	Checked        bool      `gorm:"not null;default:false" json:"checked"`
	AssignedToID   *uint     `gorm:"index" json:"assignedToId"`
	JournalEntryID *uint     `gorm:"index" json:"journalEntryId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// 関連 (Preload用)
	AssignedTo   *Person               `gorm:"foreignKey:AssignedToID" json:"assignedTo"`
	JournalEntry *JournalEntry         `gorm:"foreignKey:JournalEntryID" json:"-"`
	Tags         []Tag                 `gorm:"many2many:prayer_request_tag;" json:"tags"`
	Updates      []PrayerRequestUpdate `gorm:"foreignKey:PrayerRequestID" json:"updates"`
}

func (PrayerRequest) TableName() string {
	return "prayer_requests"
}

// PrayerRequestRequest は祈りのリクエスト作成・更新（全体）リクエストDTO
type PrayerRequestRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description"`
	IsForMe      bool   `json:"isForMe"`
	Checked      bool   `json:"checked"`
	AssignedToID *uint  `json:"assignedToId"`
	Tags         []uint `json:"tags"`
}

// PrayerRequestInput はジャーナル配下にネストされた祈りのリクエストです。
// ID が nil なら新規作成、値があれば既存リクエストの更新を意味します。
type PrayerRequestInput struct {
	ID *uint `json:"id"`
	PrayerRequestRequest
}

// AssigneeRequest は担当者の割り当てリクエストDTO。PersonID が nil なら割り当て解除
type AssigneeRequest struct {
	PersonID *uint `json:"personId"`
}

// PrayerRequestFilter は一覧取得の条件
type PrayerRequestFilter struct {
	IsForMe *bool
	Page    Page
}
