package translate

import "web3_portal/internal/domain" // Card model and languages

// CardQuality grades each translated field of a card.
type CardQuality struct {
	Title       Quality `json:"title"`       // Card title
	Description Quality `json:"description"` // Card body
	ButtonTitle Quality `json:"buttonTitle"` // Call to action label
}

// LocalizeCard returns card with its copy rendered in lang. The id, link
// and image are left alone.
func LocalizeCard(card domain.Web3Card, lang string) domain.Web3Card {
	out := card // ID, link and image carry over
	out.Title = Translate(card.Title, lang)
	out.Description = Translate(card.Description, lang)
	out.ButtonTitle = Translate(card.ButtonTitle, lang)
	return out
}

// TranslateCard renders card in every site language.
func TranslateCard(card domain.Web3Card) domain.Web3CardTranslation {
	return domain.Web3CardTranslation{
		PL: card, // Stored card is the Polish source
		EN: LocalizeCard(card, domain.LangEN),
		DE: LocalizeCard(card, domain.LangDE),
	}
}

// AssessCard grades a localized card against its source.
func AssessCard(source, localized domain.Web3Card) CardQuality {
	return CardQuality{
		Title:       Assess(source.Title, localized.Title),
		Description: Assess(source.Description, localized.Description),
		ButtonTitle: Assess(source.ButtonTitle, localized.ButtonTitle),
	}
}
