package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"

	"go_5_prayer_journal/internal/model"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// fieldNameTranslations はJSONフィールド名からメッセージ用の表示名への対応です
var fieldNameTranslations = map[string]string{
	"name":           "名前",
	"title":          "タイトル",
	"content":        "本文",
	"description":    "説明",
	"bibleVerses":    "聖書箇所",
	"prayerRequests": "祈りのリクエスト",
	"firstName":      "名",
	"lastName":       "姓",
	"date":           "日付",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("min", "{0}は{1}文字以上で入力してください。")
	registerTranslation("max", "{0}は{1}文字以下で入力してください。")
}

// registerTranslation はフィールド名を日本語に置き換えるメッセージテンプレートを登録します
func registerTranslation(tag, msg string) {
	err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, translatedFieldName(fe.Field()), fe.Param())
		return t
	})
	if err != nil {
		log.Fatal(err)
	}
}

func translatedFieldName(field string) string {
	if translated, ok := fieldNameTranslations[field]; ok {
		return translated
	}
	return field
}

// ValidateStruct はリクエストDTOを検証し、失敗した場合は最初のエラーを AppError として返します。
func ValidateStruct(req interface{}) error {
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// バリデーションライブラリ自体のエラーなど
		return err
	}

	firstErr := validationErrors[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		firstErr.Translate(Trans),
		fieldPath(firstErr.Namespace()),
		errors.Join(model.ErrInvalidInput, err),
	)
}

// fieldPath は "JournalEntryRequest.prayerRequests[0].title" から構造体名を除いた
// "prayerRequests[0].title" を返します
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
