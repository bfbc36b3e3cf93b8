package html

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
)

type TagStr struct {
	Tag language.Tag
	Str string
}

var uiTranslations = map[string][]TagStr{
	"title": []TagStr{
		TagStr{language.AmericanEnglish, "Select your country"},
		TagStr{language.German, "Wähle dein Land"},
	},
	"intro": []TagStr{
		TagStr{language.AmericanEnglish, "The list shows %d countries and territories in the order which is common in this language."},
		TagStr{language.German, "Die Liste zeigt %d Länder und Gebiete in der Reihenfolge, die in dieser Sprache üblich ist."},
	},
	"likely": []TagStr{
		TagStr{language.AmericanEnglish, "Suggested"},
		TagStr{language.German, "Vorschläge"},
	},
	"all-regions": []TagStr{
		TagStr{language.AmericanEnglish, "All countries"},
		TagStr{language.German, "Alle Länder"},
	},
	"save": []TagStr{
		TagStr{language.AmericanEnglish, "Save"},
		TagStr{language.German, "Speichern"},
	},
	"saved": []TagStr{
		TagStr{language.AmericanEnglish, "Your selection: %s"},
		TagStr{language.German, "Deine Auswahl: %s"},
	},
	"languages": []TagStr{
		TagStr{language.AmericanEnglish, "Languages"},
		TagStr{language.German, "Sprachen"},
	},
	"about": []TagStr{
		TagStr{language.AmericanEnglish, "About"},
		TagStr{language.German, "Über"},
	},
	"error-internal": []TagStr{
		TagStr{language.AmericanEnglish, "Internal server error: "},
		TagStr{language.German, "Interner Fehler: "},
	},
	"error-bad-request": []TagStr{
		TagStr{language.AmericanEnglish, "This is not a valid region code."},
		TagStr{language.German, "Das ist kein gültiger Regionscode."},
	},
	"error-not-found": []TagStr{
		TagStr{language.AmericanEnglish, "There is no such region code."},
		TagStr{language.German, "Diesen Regionscode gibt es nicht."},
	},
}

// Language is any string. It will be matched by golang.org/x/text/language.Make and golang.org/x/text/language.NewMatcher.
type Language string

func (lang Language) Translate(key string, args ...interface{}) string {
	item, ok := uiTranslations[key]
	if !ok {
		// key not found, create language tag and print key
		return message.NewPrinter(language.Make(string(lang))).Sprintf(key, args...)
	}
	return lang.TranslateItem(item, args...)
}

func (lang Language) TranslateItem(item []TagStr, args ...interface{}) string {
	if len(item) == 0 {
		return ""
	}
	tags := make([]language.Tag, len(item))
	for i := range item {
		tags[i] = item[i].Tag
	}
	tag, i := language.MatchStrings(language.NewMatcher(tags), string(lang))
	return message.NewPrinter(tag).Sprintf(item[i].Str, args...)
}

// SelfName returns the name of the language in itself, like "Türkçe" for "tr".
func (lang Language) SelfName() string {
	tag := language.Make(string(lang))
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return string(lang)
}
