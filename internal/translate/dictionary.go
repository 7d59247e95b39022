package translate

import "web3_portal/internal/domain" // Language codes

// entry is a Polish source text with its English and German renderings.
type entry struct {
	en string // English rendering
	de string // German rendering
}

// in returns the rendering for lang, English for anything but German
func (e entry) in(lang string) string {
	if lang == domain.LangDE {
		return e.de
	}
	return e.en
}

// words is the single-word dictionary used by the word-by-word fallback.
// Keys are lowercase.
var words = map[string]entry{
	// DeFi
	"protokół":          {"protocol", "Protokoll"},
	"zdecentralizowane": {"decentralized", "dezentral"},
	"zdecentralizowany": {"decentralized", "dezentral"},
	"zdecentralizowana": {"decentralized", "dezentral"},
	"finanse":           {"finance", "Finanzen"},
	"finansów":          {"finance", "Finanzen"},
	"finansowe":         {"financial", "finanziell"},
	"staking":           {"staking", "Staking"},
	"farming":           {"farming", "Farming"},
	"yield":             {"yield", "Ertrag"},
	"możliwość":         {"capability", "Möglichkeit"},
	"możliwościami":     {"capabilities", "Möglichkeiten"},
	"możliwością":       {"capability", "Möglichkeit"},
	"funkcje":           {"features", "Funktionen"},
	"funkcjami":         {"features", "Funktionen"},

	// NFT and marketplaces
	"marketplace":    {"marketplace", "Marktplatz"},
	"platforma":      {"platform", "Plattform"},
	"platformy":      {"platform", "Plattform"},
	"handlu":         {"trading", "Handel"},
	"handel":         {"trading", "Handel"},
	"tokenami":       {"tokens", "Token"},
	"tokeny":         {"tokens", "Token"},
	"token":          {"token", "Token"},
	"niskimi":        {"low", "niedrig"},
	"niskie":         {"low", "niedrig"},
	"opłatami":       {"fees", "Gebühren"},
	"opłaty":         {"fees", "Gebühren"},
	"transakcyjnymi": {"transaction", "Transaktions"},
	"transakcyjne":   {"transaction", "Transaktions"},
	"transakcji":     {"transactions", "Transaktionen"},

	// DAO and governance
	"zarządzania":  {"governance", "Verwaltung"},
	"zarządzanie":  {"governance", "Verwaltung"},
	"organizacją":  {"organization", "Organisation"},
	"organizacja":  {"organization", "Organisation"},
	"autonomiczną": {"autonomous", "autonom"},
	"autonomiczna": {"autonomous", "autonom"},
	"system":       {"system", "System"},
	"systemu":      {"system", "System"},

	// Blockchain and Web3
	"blockchain":   {"blockchain", "Blockchain"},
	"smart":        {"smart", "Smart"},
	"kontrakty":    {"contracts", "Verträge"},
	"kontrakt":     {"contract", "Vertrag"},
	"aplikacja":    {"application", "Anwendung"},
	"aplikacje":    {"applications", "Anwendungen"},
	"dapp":         {"dApp", "dApp"},
	"web3":         {"Web3", "Web3"},
	"kryptowaluty": {"cryptocurrencies", "Kryptowährungen"},
	"kryptowaluta": {"cryptocurrency", "Kryptowährung"},

	// Technology
	"technologia":    {"technology", "Technologie"},
	"technologie":    {"technologies", "Technologien"},
	"innowacyjny":    {"innovative", "innovativ"},
	"innowacyjna":    {"innovative", "innovativ"},
	"nowoczesny":     {"modern", "modern"},
	"nowoczesna":     {"modern", "modern"},
	"bezpieczny":     {"secure", "sicher"},
	"bezpieczna":     {"secure", "sicher"},
	"bezpieczeństwo": {"security", "Sicherheit"},

	// Calls to action
	"sprawdź":    {"check out", "schauen Sie sich an"},
	"odwiedź":    {"visit", "besuchen"},
	"zobacz":     {"see", "sehen"},
	"poznaj":     {"discover", "entdecken"},
	"rozpocznij": {"start", "starten"},
	"dołącz":     {"join", "beitreten"},
	"wypróbuj":   {"try", "ausprobieren"},
	"testuj":     {"test", "testen"},
	"korzystaj":  {"use", "nutzen"},
	"inwestuj":   {"invest", "investieren"},
	"handluj":    {"trade", "handeln"},

	// Descriptors
	"szybki":        {"fast", "schnell"},
	"szybka":        {"fast", "schnell"},
	"wydajny":       {"efficient", "effizient"},
	"wydajna":       {"efficient", "effizient"},
	"prosty":        {"simple", "einfach"},
	"prosta":        {"simple", "einfach"},
	"łatwy":         {"easy", "einfach"},
	"łatwa":         {"easy", "einfach"},
	"zaawansowany":  {"advanced", "fortgeschritten"},
	"zaawansowana":  {"advanced", "fortgeschritten"},
	"profesjonalny": {"professional", "professionell"},
	"profesjonalna": {"professional", "professionell"},
}

// phrase is a multi-word source text translated as a unit.
type phrase struct {
	pl string // Lowercase Polish phrase
	entry
}

// phrases are checked before the word dictionary. Keys are lowercase.
var phrases = []phrase{
	// DeFi
	{"protokół zdecentralizowanych finansów", entry{"Decentralized finance protocol", "Dezentrales Finanzprotokoll"}},
	{"protokół zdecentralizowanych finansów z możliwością stakingu", entry{"Decentralized finance protocol with staking capabilities", "Dezentrales Finanzprotokoll mit Staking-Funktionen"}},
	{"protokół zdecentralizowanych finansów z możliwością stakingu i yield farmingu", entry{"Decentralized finance protocol with staking and yield farming capabilities", "Dezentrales Finanzprotokoll mit Staking- und Yield-Farming-Funktionen"}},
	{"protokół defi z funkcjami stakingu", entry{"DeFi protocol with staking features", "DeFi-Protokoll mit Staking-Funktionen"}},
	{"zaawansowany protokół finansowy", entry{"Advanced financial protocol", "Fortgeschrittenes Finanzprotokoll"}},

	// NFT marketplaces
	{"platforma handlu tokenami nft", entry{"NFT trading platform", "NFT-Handelsplattform"}},
	{"platforma handlu tokenami nft z niskimi opłatami", entry{"NFT trading platform with low fees", "NFT-Handelsplattform mit niedrigen Gebühren"}},
	{"platforma handlu tokenami nft z niskimi opłatami transakcyjnymi", entry{"NFT trading platform with low transaction fees", "NFT-Handelsplattform mit niedrigen Transaktionsgebühren"}},
	{"marketplace dla tokenów nft", entry{"NFT token marketplace", "NFT-Token-Marktplatz"}},
	{"bezpieczna platforma nft", entry{"Secure NFT platform", "Sichere NFT-Plattform"}},

	// DAO
	{"system zarządzania zdecentralizowaną organizacją", entry{"Decentralized organization management system", "Verwaltungssystem für dezentrale Organisationen"}},
	{"system zarządzania zdecentralizowaną organizacją autonomiczną", entry{"Decentralized autonomous organization management system", "Verwaltungssystem für dezentrale autonome Organisationen"}},
	{"platforma zarządzania dao", entry{"DAO management platform", "DAO-Verwaltungsplattform"}},
	{"narzędzia zarządzania społecznością", entry{"Community management tools", "Community-Management-Tools"}},

	// Technology
	{"innowacyjna technologia blockchain", entry{"Innovative blockchain technology", "Innovative Blockchain-Technologie"}},
	{"nowoczesne rozwiązania web3", entry{"Modern Web3 solutions", "Moderne Web3-Lösungen"}},
	{"bezpieczne aplikacje zdecentralizowane", entry{"Secure decentralized applications", "Sichere dezentrale Anwendungen"}},

	// Button labels
	{"dowiedz się więcej", entry{"Learn More", "Mehr erfahren"}},
	{"więcej informacji", entry{"More Information", "Weitere Informationen"}},
	{"sprawdź szczegóły", entry{"Check Details", "Details prüfen"}},
	{"odwiedź stronę", entry{"Visit Website", "Website besuchen"}},
	{"rozpocznij teraz", entry{"Start Now", "Jetzt starten"}},
	{"dołącz do nas", entry{"Join Us", "Mach mit"}},
	{"wypróbuj za darmo", entry{"Try for Free", "Kostenlos testen"}},
	{"zobacz demo", entry{"View Demo", "Demo ansehen"}},
	{"rozpocznij handel", entry{"Start Trading", "Trading starten"}},
	{"inwestuj teraz", entry{"Invest Now", "Jetzt investieren"}},
}
