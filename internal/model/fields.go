// internal/model/fields.go
package model

// FieldMapping はDBカラム名とJSONフィールド名の対応です。
// 全体更新(PUT)時に Select へ渡すカラムはここから取る。
type FieldMapping struct {
	Column string
	JSON   string
}

var (
	TagFields = []FieldMapping{
		{Column: "name", JSON: "name"},
	}
	PersonFields = []FieldMapping{
		{Column: "first_name", JSON: "firstName"},
		{Column: "last_name", JSON: "lastName"},
	}
	JournalEntryFields = []FieldMapping{
		{Column: "title", JSON: "title"},
		{Column: "content", JSON: "content"},
		{Column: "bible_verses", JSON: "bibleVerses"},
	}
	PrayerRequestFields = []FieldMapping{
		{Column: "title", JSON: "title"},
		{Column: "description", JSON: "description"},
		{Column: "is_for_me", JSON: "isForMe"},
		{Column: "checked", JSON: "checked"},
		{Column: "assigned_to_id", JSON: "assignedToId"},
	}
	PrayerRequestUpdateFields = []FieldMapping{
		{Column: "title", JSON: "title"},
		{Column: "content", JSON: "content"},
		{Column: "date", JSON: "date"},
	}
)

// Columns はマッピングからカラム名だけを取り出します
func Columns(fields []FieldMapping) []string {
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Column
	}
	return cols
}
