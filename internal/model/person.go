// internal/model/person.go
package model

import "time"

// Person は祈りのリクエストの担当者です。参照されるだけで、リクエスト側からは所有されません。
type Person struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"firstName"`
	LastName  string    `gorm:"not null" json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Person) TableName() string {
	return "people"
}

// PersonRequest は担当者作成・更新リクエストDTO
type PersonRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}
