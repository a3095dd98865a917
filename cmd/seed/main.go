// Command seed loads a demo catalog into the product store so the API has
// data to serve locally. Running it twice is safe: products are keyed by a
// stable slug-derived ID and upserts preserve the first creation timestamp.
package main

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shophub-cloud/shophub/internal/config"
	dbRedis "github.com/shophub-cloud/shophub/internal/db/redis"
	domprod "github.com/shophub-cloud/shophub/internal/domain/product"
	logpkg "github.com/shophub-cloud/shophub/internal/logger"
	productrepo "github.com/shophub-cloud/shophub/internal/repository/product"
)

// seedEntry is the authoring shape for the demo catalog.
type seedEntry struct {
	name        string
	category    domprod.Category
	price       float64
	rating      float64
	image       string
	description string
	inStock     bool
}

var demoCatalog = []seedEntry{
	{
		name:        "Wireless Noise-Cancelling Headphones",
		category:    domprod.Electronics,
		price:       199.99,
		rating:      4.7,
		image:       "https://images.shophub.dev/p/headphones.jpg",
		description: "Over-ear wireless headphones with active noise cancellation and 30-hour battery life.",
		inStock:     true,
	},
	{
		name:        "Smart Watch Series 8",
		category:    domprod.Electronics,
		price:       349.00,
		rating:      4.5,
		image:       "https://images.shophub.dev/p/smartwatch.jpg",
		description: "Fitness tracking, heart-rate monitoring, and always-on retina display.",
		inStock:     true,
	},
	{
		name:        "4K Ultra HD Streaming Stick",
		category:    domprod.Electronics,
		price:       49.99,
		rating:      4.3,
		image:       "https://images.shophub.dev/p/streaming-stick.jpg",
		description: "Stream in 4K HDR with voice remote and universal app support.",
		inStock:     false,
	},
	{
		name:        "Classic Denim Jacket",
		category:    domprod.Clothing,
		price:       79.50,
		rating:      4.2,
		image:       "https://images.shophub.dev/p/denim-jacket.jpg",
		description: "Medium-wash denim jacket with a relaxed fit, in sizes XS through XXL.",
		inStock:     true,
	},
	{
		name:        "Merino Wool Crewneck Sweater",
		category:    domprod.Clothing,
		price:       95.00,
		rating:      4.6,
		image:       "https://images.shophub.dev/p/wool-sweater.jpg",
		description: "Fine-gauge merino knit, machine washable.",
		inStock:     true,
	},
	{
		name:        "Cast Iron Dutch Oven 6 Qt",
		category:    domprod.HomeKitchen,
		price:       129.95,
		rating:      4.8,
		image:       "https://images.shophub.dev/p/dutch-oven.jpg",
		description: "Enameled cast iron dutch oven, oven-safe to 500F.",
		inStock:     true,
	},
	{
		name:        "Espresso Machine with Grinder",
		category:    domprod.HomeKitchen,
		price:       549.00,
		rating:      4.4,
		image:       "https://images.shophub.dev/p/espresso.jpg",
		description: "Semi-automatic espresso machine with built-in conical burr grinder and steam wand.",
		inStock:     true,
	},
	{
		name:        "The Art of Systems Thinking",
		category:    domprod.Books,
		price:       24.99,
		rating:      4.6,
		image:       "https://images.shophub.dev/p/systems-book.jpg",
		description: "A practical introduction to modeling feedback loops in complex systems.",
		inStock:     true,
	},
	{
		name:        "Hardcover Recipe Journal",
		category:    domprod.Books,
		price:       18.50,
		rating:      4.1,
		image:       "https://images.shophub.dev/p/recipe-journal.jpg",
		description: "Blank recipe journal with tab dividers and a lay-flat binding.",
		inStock:     true,
	},
	{
		name:        "Adjustable Dumbbell Set 5-50 lb",
		category:    domprod.Sports,
		price:       299.00,
		rating:      4.7,
		image:       "https://images.shophub.dev/p/dumbbells.jpg",
		description: "Space-saving adjustable dumbbells, 5 to 50 pounds per hand in 5 pound steps.",
		inStock:     true,
	},
	{
		name:        "Non-Slip Yoga Mat",
		category:    domprod.Sports,
		price:       39.99,
		rating:      4.3,
		image:       "https://images.shophub.dev/p/yoga-mat.jpg",
		description: "6mm thick mat with alignment lines and carry strap.",
		inStock:     false,
	},
	{
		name:        "Vitamin C Brightening Serum",
		category:    domprod.Beauty,
		price:       32.00,
		rating:      4.4,
		image:       "https://images.shophub.dev/p/vitc-serum.jpg",
		description: "15% vitamin C serum with hyaluronic acid, fragrance free.",
		inStock:     true,
	},
	{
		name:        "Ceramic Hair Straightener",
		category:    domprod.Beauty,
		price:       59.99,
		rating:      4.0,
		image:       "https://images.shophub.dev/p/straightener.jpg",
		description: "Floating ceramic plates with adjustable heat up to 450F.",
		inStock:     true,
	},
	{
		name:        "Wooden Building Blocks 100 Pieces",
		category:    domprod.Toys,
		price:       44.95,
		rating:      4.8,
		image:       "https://images.shophub.dev/p/blocks.jpg",
		description: "Solid beech blocks in assorted shapes, finished with non-toxic paint.",
		inStock:     true,
	},
	{
		name:        "Remote Control Stunt Car",
		category:    domprod.Toys,
		price:       34.99,
		rating:      4.2,
		image:       "https://images.shophub.dev/p/rc-car.jpg",
		description: "Double-sided stunt car with 360 degree flips and rechargeable battery.",
		inStock:     true,
	},
}

func main() {
	_ = godotenv.Load()

	env := config.GetEnv()
	cfg := config.MustLoad(env)

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create catalog store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Catalog store not ready", zap.Error(err))
	}

	repo := productrepo.New(store)
	if err := repo.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to ensure product index", zap.Error(err))
	}

	products := make([]domprod.Product, 0, len(demoCatalog))
	for _, e := range demoCatalog {
		p, err := domprod.New(
			seedID(e.name), e.name, e.category, e.price, e.rating,
			e.image, e.description, e.inStock,
		)
		if err != nil {
			logger.Fatal("Invalid seed entry", zap.String("name", e.name), zap.Error(err))
		}
		products = append(products, p)
	}

	start := time.Now()
	seeded, err := repo.UpsertMulti(ctx, products)
	if err != nil {
		logger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	logger.Info("Seeded demo catalog",
		zap.Int("count", len(seeded)),
		zap.Duration("took", time.Since(start)),
	)
}

// seedID derives a stable identifier from the product name so repeated runs
// update rather than duplicate. Names are unique within the demo catalog.
func seedID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(name))).String()
}
