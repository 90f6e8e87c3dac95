// Package testkit generates realistic sample datasets for tests and the
// offline demo mode.
package testkit

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// regions is intentionally small so region profiles come out categorical
var regions = []string{"North", "South", "East", "West", "Central"}

var categories = []string{"Electronics", "Clothing", "Home", "Garden", "Toys", "Sports"}

// SalesCSV renders a deterministic synthetic sales dataset as CSV text.
// Price and units are correlated so the regression selector has something
// to find.
func SalesCSV(rows int, seed int64) string {
	faker := gofakeit.New(seed)

	var b strings.Builder
	b.WriteString("order_id,order_date,region,category,price,units,rating\n")
	for i := 0; i < rows; i++ {
		price := faker.Float64Range(5, 500)
		// Units fall as price rises, with noise
		units := 50 - price/12 + faker.Float64Range(-5, 5)
		if units < 1 {
			units = 1
		}
		fmt.Fprintf(&b, "%d,%s,%s,%s,%.2f,%.0f,%.1f\n",
			1000+i,
			faker.DateRange(mustDate("2024-01-01"), mustDate("2024-12-31")).Format("2006-01-02"),
			regions[faker.Number(0, len(regions)-1)],
			categories[faker.Number(0, len(categories)-1)],
			price,
			units,
			faker.Float64Range(1, 5),
		)
	}
	return b.String()
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
