package profile

import (
	"strings"

	"govista/domain/dataset"
)

// Role keyword lists. The first list that matches a case-insensitive
// substring of the header wins; order matters so "order_id" is an ID, not
// a general column.
var roleKeywords = []struct {
	role     dataset.SemanticRole
	keywords []string
}{
	{dataset.RoleID, []string{"id", "uuid", "guid", "key", "code", "sku"}},
	{dataset.RoleCurrency, []string{"price", "cost", "revenue", "sales", "amount", "salary", "income", "profit", "budget", "spend"}},
	{dataset.RoleTemporal, []string{"date", "time", "year", "month", "day", "week", "quarter", "timestamp"}},
	{dataset.RoleGeographic, []string{"country", "city", "state", "region", "province", "zip", "postal", "latitude", "longitude", "location"}},
}

// inferRole guesses a coarse real-world category purely from the header name
func inferRole(header string) dataset.SemanticRole {
	lower := strings.ToLower(header)
	for _, entry := range roleKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.role
			}
		}
	}
	return dataset.RoleGeneral
}
