// Command main runs the database seeder for OOTD.
package main

import (
	"flag"
	"log"

	"ootd/internal/config"
	"ootd/internal/database"
	"ootd/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 10, "Number of users to create")
	itemsPerUser := flag.Int("items", 12, "Clothing items per user")
	outfitsPerUser := flag.Int("outfits", 6, "Outfits per user")
	postsPerUser := flag.Int("posts", 2, "Feed posts per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	preset := flag.String("preset", "", "Path to a curated wardrobe preset (e.g. wardrobe.yml)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d items each, %d outfits each, clean=%v\n",
		*numUsers, *itemsPerUser, *outfitsPerUser, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	_, err = database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	if err := s.Run(seed.Options{
		NumUsers:       *numUsers,
		ItemsPerUser:   *itemsPerUser,
		OutfitsPerUser: *outfitsPerUser,
		PostsPerUser:   *postsPerUser,
		PresetPath:     *preset,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your wardrobe is now populated with demo data.")
}
