package consent

import "github.com/blizbi/blizbi/pkg/domain"

// storage keys owned by the consent categories
const (
	KeyBookmarks       = "blizbi_bookmarks"
	KeyUserPreferences = "blizbi_user_preferences"
	KeyI18nLanguage    = "i18nextLng"
	KeyLanguage        = "blizbi-language"
	KeyAnalytics       = "blizbi_analytics"
	KeyUsageStats      = "blizbi_usage_stats"
	KeyChatHistory     = "blizbi_chat_history"
	KeyRecommendations = "blizbi_recommendations"
)

// Registry maps each category to the keys it owns. Keys of optional categories are
// removed on consent withdrawal and data deletion, a key missing here survives both.
var Registry = map[domain.Category][]string{
	domain.CategoryEssential:       {domain.ConsentStorageKey},
	domain.CategoryFunctional:      {KeyBookmarks, KeyUserPreferences, KeyI18nLanguage, KeyLanguage},
	domain.CategoryAnalytics:       {KeyAnalytics, KeyUsageStats},
	domain.CategoryPersonalization: {KeyChatHistory, KeyRecommendations},
}

// KeyCategory returns the category owning the key
func KeyCategory(key string) (domain.Category, bool) {
	for _, c := range domain.Categories {
		for _, k := range Registry[c] {
			if k == key {
				return c, true
			}
		}
	}
	return "", false
}
