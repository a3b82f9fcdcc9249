// Command seed_demo creates a demo database with a starter set of German
// vocabulary and categories.
// Usage: go run cmd/seed_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/ekaraca/wordbank/internal/database"
	"github.com/ekaraca/wordbank/internal/database/categories"
	"github.com/ekaraca/wordbank/internal/database/words"
	"github.com/ekaraca/wordbank/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func strPtr(s string) *string { return &s }

type demoWord struct {
	word       entities.Word
	categories []string
	genderPair string // german word of the counterpart, linked after insert
}

func demoCategories() []string {
	return []string{"Beruf", "Familie", "Essen", "Verben", "Alltag"}
}

func demoWords() []demoWord {
	return []demoWord{
		{
			word: entities.Word{
				GermanWord:         "Lehrer",
				EnglishTranslation: "teacher",
				TurkishTranslation: "öğretmen",
				Artikel:            strPtr("der"),
				PluralForm:         strPtr("Lehrer"),
				BasicSentence:      strPtr("Der Lehrer erklärt die Aufgabe."),
			},
			categories: []string{"Beruf"},
			genderPair: "Lehrerin",
		},
		{
			word: entities.Word{
				GermanWord:         "Lehrerin",
				EnglishTranslation: "teacher (female)",
				TurkishTranslation: "öğretmen (kadın)",
				Artikel:            strPtr("die"),
				PluralForm:         strPtr("Lehrerinnen"),
			},
			categories: []string{"Beruf"},
		},
		{
			word: entities.Word{
				GermanWord:         "Haus",
				EnglishTranslation: "house",
				TurkishTranslation: "ev",
				Artikel:            strPtr("das"),
				PluralForm:         strPtr("Häuser"),
				BasicSentence:      strPtr("Das Haus ist alt."),
				AdvancedSentence:   strPtr("Das Haus, in dem ich aufgewachsen bin, wurde verkauft."),
			},
			categories: []string{"Alltag"},
		},
		{
			word: entities.Word{
				GermanWord:         "Brot",
				EnglishTranslation: "bread",
				TurkishTranslation: "ekmek",
				Artikel:            strPtr("das"),
				PluralForm:         strPtr("Brote"),
			},
			categories: []string{"Essen", "Alltag"},
		},
		{
			word: entities.Word{
				GermanWord:         "Mutter",
				EnglishTranslation: "mother",
				TurkishTranslation: "anne",
				Artikel:            strPtr("die"),
				PluralForm:         strPtr("Mütter"),
			},
			categories: []string{"Familie"},
		},
		{
			word: entities.Word{
				GermanWord:         "sprechen",
				EnglishTranslation: "to speak",
				TurkishTranslation: "konuşmak",
				Conjugations: map[string]string{
					"ich":       "spreche",
					"du":        "sprichst",
					"er/sie/es": "spricht",
					"wir":       "sprechen",
					"Perfekt":   "hat gesprochen",
				},
				BasicSentence: strPtr("Ich spreche ein bisschen Deutsch."),
			},
			categories: []string{"Verben"},
		},
		{
			word: entities.Word{
				GermanWord:         "essen",
				EnglishTranslation: "to eat",
				TurkishTranslation: "yemek",
				Conjugations: map[string]string{
					"ich":       "esse",
					"du":        "isst",
					"er/sie/es": "isst",
					"Perfekt":   "hat gegessen",
				},
			},
			categories: []string{"Verben", "Essen"},
		},
	}
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	categoryRepo := categories.NewRepository(db.DB)
	wordRepo := words.NewRepository(db.DB)

	categoryIDs := make(map[string]uint)
	for _, name := range demoCategories() {
		category, err := categoryRepo.CreateCategory(name)
		if err != nil {
			log.Fatalf("Failed to create category %s: %v", name, err)
		}
		categoryIDs[name] = category.ID
	}
	log.Printf("Created %d categories", len(categoryIDs))

	wordIDs := make(map[string]uint)
	for _, demo := range demoWords() {
		ids := make([]uint, 0, len(demo.categories))
		for _, name := range demo.categories {
			ids = append(ids, categoryIDs[name])
		}

		created, err := wordRepo.CreateWord(&demo.word, ids)
		if err != nil {
			log.Printf("Failed to save word %s: %v", demo.word.GermanWord, err)
			continue
		}
		wordIDs[created.GermanWord] = created.ID
		log.Printf("Saved: %s (%d categories)", created.GermanWord, len(created.Categories))
	}

	// Link gender pairs once both sides exist
	for _, demo := range demoWords() {
		if demo.genderPair == "" {
			continue
		}
		pairID, ok := wordIDs[demo.genderPair]
		if !ok {
			continue
		}
		upd := words.WordUpdate{GenderPairID: entities.Some(pairID)}
		if _, err := wordRepo.UpdateWord(wordIDs[demo.word.GermanWord], upd); err != nil {
			log.Printf("Failed to link gender pair for %s: %v", demo.word.GermanWord, err)
		}
	}

	totalWords, totalCategories, err := db.GetStats()
	if err != nil {
		log.Fatalf("Failed to read stats: %v", err)
	}
	log.Printf("Demo database ready: %d words, %d categories", totalWords, totalCategories)
}
