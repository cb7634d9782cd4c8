package models

// HelpCategory - категория запроса помощи с уровнем срочности по умолчанию
type HelpCategory struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Urgency     Urgency `json:"urgency"`
	Icon        string  `json:"icon"`
}

const EmergencySOSCategory = "emergency_sos"

var helpCategories = []HelpCategory{
	{ID: "missing_person", Title: "Missing Person", Description: "Report a missing group member or individual", Urgency: UrgencyHigh, Icon: "👤"},
	{ID: "fire_emergency", Title: "Fire Emergency", Description: "Fire incident or smoke detection", Urgency: UrgencyCritical, Icon: "🔥"},
	{ID: "theft_robbery", Title: "Theft/Robbery", Description: "Report stolen items or robbery incident", Urgency: UrgencyHigh, Icon: "🚨"},
	{ID: "accident", Title: "Accident", Description: "Traffic accident or injury incident", Urgency: UrgencyCritical, Icon: "🚗"},
	{ID: "medical_help", Title: "Medical Help", Description: "Non-emergency medical assistance", Urgency: UrgencyMedium, Icon: "🏥"},
	{ID: "general_help", Title: "General Help", Description: "Other assistance or information needed", Urgency: UrgencyLow, Icon: "🆘"},
}

// HelpCategories возвращает копию списка категорий
func HelpCategories() []HelpCategory {
	out := make([]HelpCategory, len(helpCategories))
	copy(out, helpCategories)
	return out
}

// LookupHelpCategory ищет категорию по идентификатору
func LookupHelpCategory(id string) (HelpCategory, bool) {
	for _, c := range helpCategories {
		if c.ID == id {
			return c, true
		}
	}
	return HelpCategory{}, false
}
