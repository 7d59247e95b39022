package domain

// Supported site languages. Polish is the source language of all content.
const (
	LangPL = "pl"
	LangEN = "en"
	LangDE = "de"
)

// IsLanguage reports whether lang is a supported site language
func IsLanguage(lang string) bool {
	return lang == LangPL || lang == LangEN || lang == LangDE
}

// LocalizedText is one text in every site language
type LocalizedText struct {
	PL string `gorm:"type:text" json:"pl"` // Polish text
	EN string `gorm:"type:text" json:"en"` // English text
	DE string `gorm:"type:text" json:"de"` // German text
}

// Text returns the text for lang, falling back to Polish when it is empty
func (l LocalizedText) Text(lang string) string {
	switch lang {
	case LangEN:
		if l.EN != "" {
			return l.EN
		}
	case LangDE:
		if l.DE != "" {
			return l.DE
		}
	}
	return l.PL
}

// Translation Model, one UI string of the website
type Translation struct {
	Key           string `gorm:"column:text_key;primaryKey;size:191" json:"key"` // Lookup key used by the website
	LocalizedText        // Texts, stored as columns
}

// GetKey returns the lookup key
func (t *Translation) GetKey() string { return t.Key }

// SetKey sets the lookup key
func (t *Translation) SetKey(key string) { t.Key = key }

// Localized returns the texts
func (t *Translation) Localized() LocalizedText { return t.LocalizedText }

// SetLocalized replaces the texts
func (t *Translation) SetLocalized(texts LocalizedText) { t.LocalizedText = texts }

// RodoContent Model, a GDPR (RODO) notice section
type RodoContent struct {
	Key           string `gorm:"column:text_key;primaryKey;size:191" json:"key"` // Section key
	LocalizedText        // Texts, stored as columns
}

// GetKey returns the section key
func (r *RodoContent) GetKey() string { return r.Key }

// SetKey sets the section key
func (r *RodoContent) SetKey(key string) { r.Key = key }

// Localized returns the texts
func (r *RodoContent) Localized() LocalizedText { return r.LocalizedText }

// SetLocalized replaces the texts
func (r *RodoContent) SetLocalized(texts LocalizedText) { r.LocalizedText = texts }
