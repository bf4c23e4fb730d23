package model

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// マッピング表がGORMのカラム名・JSONタグとずれていないことを確認する
func TestFieldMappings_MatchModels(t *testing.T) {
	tests := []struct {
		name   string
		model  interface{}
		fields []FieldMapping
	}{
		{"Tag", &Tag{}, TagFields},
		{"Person", &Person{}, PersonFields},
		{"JournalEntry", &JournalEntry{}, JournalEntryFields},
		{"PrayerRequest", &PrayerRequest{}, PrayerRequestFields},
		{"PrayerRequestUpdate", &PrayerRequestUpdate{}, PrayerRequestUpdateFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := schema.Parse(tt.model, &sync.Map{}, schema.NamingStrategy{})
			require.NoError(t, err)

			for _, f := range tt.fields {
				field := s.LookUpField(f.Column)
				require.NotNil(t, field, "column %q not found", f.Column)
				assert.Equal(t, f.Column, field.DBName)

				sf, ok := reflect.TypeOf(tt.model).Elem().FieldByName(field.Name)
				require.True(t, ok)
				jsonName := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
				assert.Equal(t, f.JSON, jsonName, "json tag mismatch for %s", field.Name)
			}
		})
	}
}

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{"title", "description", "is_for_me", "checked", "assigned_to_id"}, Columns(PrayerRequestFields))
	assert.Empty(t, Columns(nil))
}
