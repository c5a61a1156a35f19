package pdf

import (
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"
)

// Exported documents keep the product's Czech localization.
var categoryLabels = map[entity.Category]string{
	entity.CategoryElectrical:      "Elektřina",
	entity.CategoryPlumbing:        "Vodoinstalace",
	entity.CategoryGas:             "Plyn",
	entity.CategoryGarden:          "Zahrada",
	entity.CategoryHeating:         "Topení",
	entity.CategoryAirConditioning: "Klimatizace",
	entity.CategoryAppliances:      "Spotřebiče",
	entity.CategoryStructural:      "Konstrukce",
	entity.CategoryOther:           "Ostatní",
}

var recurringPeriodLabels = map[entity.RecurringPeriod]string{
	entity.RecurringNone:       "Nikdy",
	entity.RecurringWeekly:     "Týdně",
	entity.RecurringMonthly:    "Měsíčně",
	entity.RecurringQuarterly:  "Čtvrtletně",
	entity.RecurringBiannually: "Pololetně",
	entity.RecurringAnnually:   "Ročně",
}

// translateCategory returns the localized category label, falling back to the
// raw value for unknown categories.
func translateCategory(category entity.Category) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}

	return category.String()
}

// translateRecurringPeriod returns the localized recurrence label, falling
// back to the raw value for unknown periods.
func translateRecurringPeriod(period entity.RecurringPeriod) string {
	if label, ok := recurringPeriodLabels[period]; ok {
		return label
	}

	return period.String()
}
