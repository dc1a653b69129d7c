package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Sanl2005/citizen-dna-app/pkg/ocr"
)

// Debug helper: run the income-certificate OCR pipeline against one image and
// print what it would extract, without touching the database.
func main() {
	path := flag.String("path", "", "image path")
	flag.Parse()
	if *path == "" {
		log.Fatal("--path is required")
	}
	amt, conf, raw, err := ocr.ExtractIncomeFromImage(*path)
	if err != nil {
		log.Fatalf("ocr error: %v", err)
	}
	fmt.Printf("income=%d confidence=%.2f raw=%q\n", amt, conf, raw)
}
