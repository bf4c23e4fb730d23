// internal/model/page.go
package model

// Page は offset/limit 形式のページング指定です
type Page struct {
	Skip  int
	Limit int
}
