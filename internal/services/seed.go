package services

import (
	"encoding/base64"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/quicklist/backend/internal/models"
)

var seedLocations = []models.Location{
	{City: "San Francisco", State: "CA", ZipCode: "94102", Latitude: 37.7749, Longitude: -122.4194},
	{City: "Los Angeles", State: "CA", ZipCode: "90001", Latitude: 34.0522, Longitude: -118.2437},
	{City: "New York", State: "NY", ZipCode: "10001", Latitude: 40.7128, Longitude: -74.0060},
	{City: "Austin", State: "TX", ZipCode: "73301", Latitude: 30.2672, Longitude: -97.7431},
	{City: "Seattle", State: "WA", ZipCode: "98101", Latitude: 47.6062, Longitude: -122.3321},
	{City: "Miami", State: "FL", ZipCode: "33101", Latitude: 25.7617, Longitude: -80.1918},
	{City: "Chicago", State: "IL", ZipCode: "60601", Latitude: 41.8781, Longitude: -87.6298},
	{City: "Denver", State: "CO", ZipCode: "80201", Latitude: 39.7392, Longitude: -104.9903},
}

var seedConditions = []models.Condition{
	models.ConditionExcellent,
	models.ConditionGood,
	models.ConditionFair,
}

type seedItem struct {
	title    string
	desc     string
	cat      string
	price    float64
	min      float64
	max      float64
	features []string
}

var seedItems = []seedItem{
	{"iPhone 14 Pro Max 256GB", "Space Black, unlocked, barely used with original box", "Electronics", 899, 850, 950, []string{"Unlocked for all carriers", "Original packaging included", "Battery health 100%", "No scratches or dents"}},
	{"Sony WH-1000XM5 Headphones", "Premium noise-canceling headphones, lightly used", "Electronics", 299, 280, 320, []string{"Active noise cancellation", "Includes carrying case", "30-hour battery life", "Excellent sound quality"}},
	{"Vintage Levi's 501 Jeans", "Classic fit, size 32x32, perfect worn-in look", "Fashion", 85, 70, 100, []string{"Authentic vintage", "Perfect fade", "No holes or tears", "Size 32x32"}},
	{"Nike Air Jordan 1 Retro High", "Size 10, Chicago colorway, mint condition", "Fashion", 450, 400, 500, []string{"Size 10 US", "Chicago colorway", "Includes original box", "Worn 3 times"}},
	{"KitchenAid Stand Mixer", "Artisan Series 5-Qt, Empire Red, like new", "Home & Garden", 280, 250, 300, []string{"10-speed settings", "Includes accessories", "Barely used", "Empire Red color"}},
	{"Dyson V11 Cordless Vacuum", "Powerful suction, excellent for pet hair", "Home & Garden", 399, 375, 425, []string{"60-min runtime", "LCD screen", "Great for pet hair", "Includes 5 attachments"}},
	{"Mountain Bike - Trek X-Caliber", "29er hardtail, aluminum frame, medium size", "Sports", 650, 600, 700, []string{"29-inch wheels", "Medium frame", "Recently tuned", "Shimano components"}},
	{"Fender Stratocaster Electric Guitar", "Sunburst finish, American Professional series", "Music", 1200, 1100, 1300, []string{"American made", "V-Mod pickups", "Includes hard case", "Sunburst finish"}},
	{"PlayStation 5 Digital Edition", "Like new, includes extra controller", "Electronics", 399, 375, 425, []string{"Digital edition", "Extra DualSense controller", "Original packaging", "Perfect condition"}},
	{"MacBook Air M2 2023", "13-inch, 16GB RAM, 512GB SSD, Midnight color", "Electronics", 1099, 1050, 1150, []string{"M2 chip", "16GB RAM", "512GB storage", "AppleCare+ included"}},
	{"Patagonia Down Jacket", "Men's Large, Navy Blue, excellent insulation", "Fashion", 180, 160, 200, []string{"Size Large", "700-fill down", "Water resistant", "Like new condition"}},
	{"Herman Miller Aeron Chair", "Size B, fully loaded, graphite frame", "Home & Garden", 650, 600, 700, []string{"Size B (medium)", "Fully adjustable", "PostureFit support", "Excellent condition"}},
	{"Canon EOS R6 Camera Body", "Full-frame mirrorless, low shutter count", "Electronics", 1899, 1850, 1950, []string{"Full-frame sensor", "Only 2K shutter count", "Dual card slots", "Includes battery"}},
	{"Supreme Box Logo Hoodie", "FW22, Black, Size Large, brand new with tags", "Fashion", 650, 600, 700, []string{"Size Large", "Never worn", "Tags attached", "FW22 release"}},
	{"Instant Pot Duo Plus", "6-quart pressure cooker, barely used", "Home & Garden", 79, 70, 90, []string{"6-quart capacity", "9-in-1 functions", "Includes accessories", "Like new"}},
	{"Nintendo Switch OLED", "White model, includes Joy-Cons and dock", "Electronics", 299, 280, 320, []string{"OLED screen", "White version", "Original packaging", "Excellent condition"}},
	{"Adidas Ultraboost 22", "Women's size 8.5, Cloud White, worn twice", "Fashion", 120, 110, 135, []string{"Size 8.5 women's", "Cloud White colorway", "Worn twice", "Boost cushioning"}},
	{"Espresso Machine - Breville Barista", "Pro model, stainless steel, like new", "Home & Garden", 499, 475, 525, []string{"Built-in grinder", "Dual boiler", "Professional quality", "Barely used"}},
	{"Yeti Tundra 45 Cooler", "White, bear-resistant, perfect for camping", "Sports", 275, 250, 300, []string{"45-quart capacity", "Bear-resistant", "Keeps ice for days", "Excellent condition"}},
	{"Kindle Paperwhite Signature", "32GB, auto-adjusting light, no ads", "Electronics", 139, 130, 150, []string{"32GB storage", "Auto-adjusting light", "No ads", "Waterproof"}},
	{"Ray-Ban Aviator Sunglasses", "Classic gold frame, gradient lenses", "Fashion", 120, 110, 130, []string{"Gold frame", "Gradient lenses", "Includes case", "Authentic"}},
	{"GoPro Hero 11 Black", "Action camera with accessories bundle", "Electronics", 349, 330, 370, []string{"5.3K video", "Waterproof", "Includes mounts", "Extra batteries"}},
	{"Lululemon Align Leggings", "Size 6, Diamond Dye, never worn", "Fashion", 75, 70, 85, []string{"Size 6", "Diamond Dye pattern", "Never worn", "Tags attached"}},
	{"Weber Genesis II Gas Grill", "3-burner, stainless steel, well maintained", "Home & Garden", 599, 550, 650, []string{"3 burners", "Stainless steel", "Side tables", "Works perfectly"}},
	{"Apple Watch Series 8 GPS", "45mm, Midnight aluminum, AppleCare+", "Electronics", 329, 310, 350, []string{"45mm case", "GPS model", "AppleCare+ included", "Like new"}},
	{"Carhartt Duck Canvas Jacket", "Men's XL, brown, classic work jacket", "Fashion", 95, 85, 110, []string{"Size XL", "Duck canvas", "Quilted lining", "Great condition"}},
	{"Peloton Bike Basic Package", "Indoor cycling bike, screen included", "Sports", 1200, 1100, 1300, []string{"HD touchscreen", "Adjustable seat", "Clip-in pedals", "Barely used"}},
	{"Bose SoundLink Revolve+", "Portable Bluetooth speaker, 360° sound", "Electronics", 199, 185, 215, []string{"360-degree sound", "16-hour battery", "Water resistant", "Excellent bass"}},
	{"Le Creuset Dutch Oven 5.5Qt", "Cherry red, enameled cast iron, pristine", "Home & Garden", 250, 230, 270, []string{"5.5-quart capacity", "Cherry red", "Cast iron", "Like new"}},
}

// seedListings builds demo listings: locations and conditions cycle through
// the tables above, sellers and ages are randomized.
func seedListings() []*models.Listing {
	listings := make([]*models.Listing, 0, len(seedItems))
	now := time.Now().UTC()

	for idx, item := range seedItems {
		age := time.Duration(rand.Float64() * 30 * 24 * float64(time.Hour))
		rating := math.Round((4+rand.Float64())*10) / 10

		listings = append(listings, &models.Listing{
			ID:             newULID(),
			Title:          item.title,
			Description:    item.desc,
			Condition:      seedConditions[idx%len(seedConditions)],
			Category:       item.cat,
			PriceMin:       item.min,
			PriceMax:       item.max,
			SuggestedPrice: item.price,
			Features:       item.features,
			Images:         []string{PlaceholderImage(item.cat)},
			Location:       seedLocations[idx%len(seedLocations)],
			Seller: models.Seller{
				Name:   fmt.Sprintf("User%d", 1000+idx),
				Rating: rating,
				Sales:  rand.Intn(100),
			},
			CreatedAt: now.Add(-age),
		})
	}
	return listings
}

var categoryColors = map[string]string{
	"Electronics":   "#6366f1",
	"Fashion":       "#ec4899",
	"Home & Garden": "#10b981",
	"Sports":        "#f59e0b",
	"Books":         "#8b5cf6",
	"Toys & Games":  "#ef4444",
	"Automotive":    "#3b82f6",
	"Music":         "#14b8a6",
}

// PlaceholderImage returns a color-coded SVG data URI for listings without
// real photos.
func PlaceholderImage(category string) string {
	color, ok := categoryColors[category]
	if !ok {
		color = "#64748b"
	}

	svg := fmt.Sprintf(`<svg width="400" height="400" xmlns="http://www.w3.org/2000/svg">
  <rect width="400" height="400" fill="%s"/>
  <text x="50%%" y="50%%" text-anchor="middle" dy=".3em" font-family="Arial, sans-serif" font-size="24" fill="white" opacity="0.8">%s</text>
</svg>`, color, category)

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
