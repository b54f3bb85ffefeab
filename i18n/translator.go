package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "keyword" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_cursor":
			return "この位置では呼び出せません"
		case "invalid_keyword_value":
			return "キーワードの値が不正です"
		case "type_already_set":
			return "型は既に設定されています"
		case "duplicate_definition":
			return "定義名が重複しています"
		case "parse_error":
			return "解析エラー"
		case "unsupported_keyword":
			return "未対応のキーワードです"
		}
	default: // "en"
		switch code {
		case "invalid_cursor":
			return "call not valid at the current cursor"
		case "invalid_keyword_value":
			return "invalid keyword value"
		case "type_already_set":
			return "type already set"
		case "duplicate_definition":
			return "duplicate definition name"
		case "parse_error":
			return "parse error"
		case "unsupported_keyword":
			return "unsupported keyword"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T resolves a message for code via the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
