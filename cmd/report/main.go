package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Prints how many citizens each scheme is recommended to. Schemes with zero
// matches usually mean the eligibility bounds are too tight for the seeded
// population.
func main() {
	minCount := flag.Int("min", 0, "only show schemes with at least this many matches")
	flag.Parse()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "DB_DSN not set; export DB_DSN and retry")
		os.Exit(2)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	type Row struct {
		SchemeName string
		Matches    int64
		AvgConf    float64
	}
	var rows []Row
	err = db.Raw(`
		SELECT s.scheme_name, COUNT(r.id) AS matches, COALESCE(AVG(r.confidence), 0) AS avg_conf
		FROM schemes s
		LEFT JOIN recommendations r ON r.scheme_id = s.id
		GROUP BY s.scheme_name
		ORDER BY matches DESC, s.scheme_name`).Scan(&rows).Error
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}
	for _, r := range rows {
		if r.Matches < int64(*minCount) {
			continue
		}
		fmt.Printf("%6d  %.2f  %s\n", r.Matches, r.AvgConf, r.SchemeName)
	}
}
