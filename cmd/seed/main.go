package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/config"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the knowledge base with starter strains, terpenes and articles
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("LEAFLINE STOREFRONT - Knowledge Base Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	log.Println("✓ Connected to content database")

	if err := config.ContentGorm.AutoMigrate(&models.Strain{}, &models.Terpene{}, &models.Article{}); err != nil {
		log.Fatalf("Failed to migrate knowledge base tables: %v", err)
	}
	log.Println("✓ Schema migrated")

	// Upsert on slug so re-running the seeder refreshes content in place
	onSlugConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "type", "description", "effects", "terpenes", "thc_range", "updated_at"}),
	}

	strains := seedStrains()
	if err := config.ContentGorm.Clauses(onSlugConflict).Create(&strains).Error; err != nil {
		log.Fatalf("Failed to seed strains: %v", err)
	}
	log.Printf("✓ Seeded %d strains", len(strains))

	terpeneConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "aroma", "description", "also_found_in", "effects", "updated_at"}),
	}
	terpenes := seedTerpenes()
	if err := config.ContentGorm.Clauses(terpeneConflict).Create(&terpenes).Error; err != nil {
		log.Fatalf("Failed to seed terpenes: %v", err)
	}
	log.Printf("✓ Seeded %d terpenes", len(terpenes))

	articleConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "excerpt", "body", "tags", "published_at", "updated_at"}),
	}
	articles := seedArticles()
	if err := config.ContentGorm.Clauses(articleConflict).Create(&articles).Error; err != nil {
		log.Fatalf("Failed to seed articles: %v", err)
	}
	log.Printf("✓ Seeded %d articles", len(articles))

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Knowledge Base Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the storefront server: go run main.go")
	fmt.Println("2. Browse content at GET /api/v1/learn/strains")
}

func seedStrains() []models.Strain {
	return []models.Strain{
		{
			Slug:        "blue-dream",
			Name:        "Blue Dream",
			Type:        "Sativa leaning",
			Description: "A balanced cross of Blueberry and Haze. Gentle cerebral lift with a sweet berry nose, a common first recommendation for daytime use.",
			Effects:     []string{"uplifted", "creative", "relaxed"},
			Terpenes:    []string{"Myrcene", "Pinene", "Caryophyllene"},
			THCRange:    "17-24%",
		},
		{
			Slug:        "granddaddy-purple",
			Name:        "Granddaddy Purple",
			Type:        "Indica",
			Description: "Classic California indica with deep grape and berry flavors. Heavy body effects make it a popular evening and sleep-support pick.",
			Effects:     []string{"sleepy", "relaxed", "hungry"},
			Terpenes:    []string{"Myrcene", "Linalool"},
			THCRange:    "17-23%",
		},
		{
			Slug:        "sour-diesel",
			Name:        "Sour Diesel",
			Type:        "Sativa",
			Description: "Pungent fuel-forward sativa known for fast-acting energizing effects. A staple for focus and daytime productivity.",
			Effects:     []string{"energetic", "focused", "uplifted"},
			Terpenes:    []string{"Caryophyllene", "Limonene", "Myrcene"},
			THCRange:    "19-25%",
		},
		{
			Slug:        "wedding-cake",
			Name:        "Wedding Cake",
			Type:        "Indica leaning",
			Description: "Rich, tangy hybrid from Triangle Kush and Animal Mints. Calming without being fully sedating, with a dense sugary exhale.",
			Effects:     []string{"relaxed", "happy", "euphoric"},
			Terpenes:    []string{"Limonene", "Caryophyllene", "Linalool"},
			THCRange:    "20-27%",
		},
		{
			Slug:        "pineapple-express",
			Name:        "Pineapple Express",
			Type:        "Hybrid",
			Description: "Tropical hybrid of Trainwreck and Hawaiian genetics. Bright mango-pineapple flavor with a sociable, mellow buzz.",
			Effects:     []string{"happy", "social", "creative"},
			Terpenes:    []string{"Myrcene", "Pinene", "Limonene"},
			THCRange:    "16-22%",
		},
	}
}

func seedTerpenes() []models.Terpene {
	return []models.Terpene{
		{
			Slug:        "myrcene",
			Name:        "Myrcene",
			Aroma:       "Earthy, musky, ripe fruit",
			Description: "The most abundant terpene in modern cannabis. Associated with calming, couch-friendly effects at higher concentrations.",
			AlsoFoundIn: []string{"mango", "hops", "lemongrass"},
			Effects:     []string{"relaxing", "sedating"},
		},
		{
			Slug:        "limonene",
			Name:        "Limonene",
			Aroma:       "Citrus, lemon peel",
			Description: "Bright citrus terpene linked to elevated mood and stress relief. Prominent in many dessert and fuel cultivars.",
			AlsoFoundIn: []string{"citrus rind", "juniper", "peppermint"},
			Effects:     []string{"uplifting", "stress relief"},
		},
		{
			Slug:        "caryophyllene",
			Name:        "Caryophyllene",
			Aroma:       "Pepper, spice, cloves",
			Description: "The only terpene known to bind CB2 receptors directly. Often present in strains reported to ease discomfort.",
			AlsoFoundIn: []string{"black pepper", "cloves", "cinnamon"},
			Effects:     []string{"soothing", "anti-inflammatory"},
		},
		{
			Slug:        "linalool",
			Name:        "Linalool",
			Aroma:       "Floral, lavender",
			Description: "Floral terpene shared with lavender. Commonly sought in nighttime products for its calming reputation.",
			AlsoFoundIn: []string{"lavender", "coriander", "basil"},
			Effects:     []string{"calming", "sleep support"},
		},
		{
			Slug:        "pinene",
			Name:        "Pinene",
			Aroma:       "Pine, fresh forest",
			Description: "Sharp pine-scented terpene associated with alertness and memory retention, a counterweight to heavier profiles.",
			AlsoFoundIn: []string{"pine needles", "rosemary", "dill"},
			Effects:     []string{"alertness", "focus"},
		},
	}
}

func seedArticles() []models.Article {
	now := time.Now()
	publishedAt := func(daysAgo int) *time.Time {
		t := now.AddDate(0, 0, -daysAgo)
		return &t
	}
	return []models.Article{
		{
			Slug:        "indica-vs-sativa-what-actually-matters",
			Title:       "Indica vs Sativa: What Actually Matters",
			Excerpt:     "The indica/sativa split is a useful shorthand, but terpenes and cannabinoid ratios tell you far more about how a product will feel.",
			Body:        "Walk into any dispensary and the first question you'll hear is \"indica or sativa?\" The categories date back to 18th-century botany, describing plant morphology rather than effects. Modern cultivars are nearly all hybrids, and research increasingly points to terpene profiles and THC:CBD ratios as the better predictors of experience. That said, the labels persist because they work as a rough sorting tool: products labeled indica tend to carry myrcene-heavy profiles, while sativa-labeled products skew toward limonene and pinene. Use the label as a starting point, then check the terpene panel.",
			Tags:        []string{"basics", "strains"},
			PublishedAt: publishedAt(30),
		},
		{
			Slug:        "a-beginners-guide-to-dosing",
			Title:       "A Beginner's Guide to Dosing",
			Excerpt:     "Start low, go slow. How to pick a first product and a first dose without overdoing it.",
			Body:        "For edibles, 2.5mg of THC is the widely recommended starting dose, and you should wait a full two hours before taking more. For flower and vapes, effects arrive within minutes, which makes titration easier: one small inhalation, wait fifteen minutes, reassess. Products under 15% THC are a sensible ceiling for a first purchase. Look for balanced THC:CBD products if you're anxious about intensity, since CBD moderates THC's edge. Keep a simple log of product, dose and outcome; after three or four sessions you'll know your range.",
			Tags:        []string{"basics", "dosing", "beginner"},
			PublishedAt: publishedAt(21),
		},
		{
			Slug:        "terpenes-the-flavor-and-the-feeling",
			Title:       "Terpenes: The Flavor and the Feeling",
			Excerpt:     "Terpenes give cannabis its aroma, and growing evidence suggests they shape the character of the high.",
			Body:        "Terpenes are aromatic compounds produced in the same trichomes that make cannabinoids. Myrcene smells earthy and is linked to sedation; limonene is citrusy and associated with mood lift; caryophyllene is peppery and unique in binding CB2 receptors directly. The entourage effect hypothesis holds that terpenes and cannabinoids work together, which is why two products with identical THC numbers can feel completely different. When you find a product you love, note its dominant terpenes; they're a more reliable reorder signal than the strain name.",
			Tags:        []string{"terpenes", "education"},
			PublishedAt: publishedAt(14),
		},
		{
			Slug:        "how-to-read-a-cannabis-label",
			Title:       "How to Read a Cannabis Label",
			Excerpt:     "Total THC, THCa, batch dates and terpene panels, decoded.",
			Body:        "Labels list THC two ways: THCa (the raw acid form) and total THC (what you'd absorb after heating). A flower label reading \"THCa 22%, THC 0.8%\" delivers roughly 20% total THC once combusted. Ranges like \"18-24%\" reflect batch variance across the harvest. Check the packaged-on date; flower is best within six months. The terpene panel, when present, is the most useful line on the label: anything above 1% total terpenes is considered loud. Finally, the license and batch numbers let you trace any product back to its lab results.",
			Tags:        []string{"basics", "labels"},
			PublishedAt: publishedAt(7),
		},
	}
}
