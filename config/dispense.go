package config

import (
	"log"
	"os"
	"time"
)

// DispenseConfig holds the upstream commerce API settings. The storefront
// never talks to a database for products; everything comes through this
// API and is filtered in memory.
type DispenseConfig struct {
	BaseURL  string
	APIKey   string
	VenueID  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

func LoadDispenseConfig() DispenseConfig {
	cfg := DispenseConfig{
		BaseURL:  getEnv("DISPENSE_API_URL", "https://api.dispenseapp.com/v1"),
		APIKey:   os.Getenv("DISPENSE_API_KEY"),
		VenueID:  os.Getenv("DISPENSE_VENUE_ID"),
		Timeout:  15 * time.Second,
		CacheTTL: 2 * time.Minute,
	}
	if cfg.APIKey == "" {
		log.Println("⚠️ DISPENSE_API_KEY not set, upstream calls will be rejected")
	}
	if cfg.VenueID == "" {
		log.Println("⚠️ DISPENSE_VENUE_ID not set")
	}
	return cfg
}
