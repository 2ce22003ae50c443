package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/quicklist/backend/internal/anthropic"
	"github.com/quicklist/backend/internal/config"
	"github.com/quicklist/backend/internal/handlers"
	appMiddleware "github.com/quicklist/backend/internal/middleware"
	"github.com/quicklist/backend/internal/services"
)

func main() {
	cfg := config.Load()

	if cfg.AnthropicAPIKey == "" {
		log.Printf("Warning: ANTHROPIC_API_KEY not set; photo analysis and image search will fail")
	}

	// Initialize services
	listingService := services.NewListingService()
	if cfg.SeedListings {
		listingService.Seed()
		log.Printf("Seeded %d demo listings", listingService.Count())
	}

	behaviorService := services.NewBehaviorService()
	recommendService := services.NewRecommendService(behaviorService)
	locationService := services.NewLocationService()
	cartService := services.NewCartService(listingService)
	chatService := services.NewChatService(
		listingService,
		services.CannedResponder{},
		services.CoinFlipDecider{},
		cfg.SellerReplyDelay,
		cfg.OfferResolutionDelay,
	)

	modelClient := anthropic.NewClient(cfg.AnthropicBaseURL, cfg.AnthropicAPIKey, cfg.ModelTimeout)
	draftService := services.NewDraftService(modelClient, cfg.AnthropicModel)

	// Initialize handlers
	listingHandler := handlers.NewListingHandler(listingService, behaviorService, recommendService, locationService, cfg.DefaultRadiusMiles)
	chatHandler := handlers.NewChatHandler(chatService)
	cartHandler := handlers.NewCartHandler(cartService)
	aiHandler := handlers.NewAIHandler(draftService, listingService, behaviorService, locationService, cfg.DefaultRadiusMiles)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", appMiddleware.SessionHeader},
		ExposedHeaders:   []string{appMiddleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(appMiddleware.Session)

		r.Route("/listings", func(r chi.Router) {
			r.Get("/", listingHandler.ListListings)
			r.Post("/", listingHandler.PublishListing)
			r.Get("/recommended", listingHandler.Recommended)

			r.Route("/{listingId}", func(r chi.Router) {
				r.Get("/", listingHandler.GetListing)
				r.Post("/conversation", chatHandler.StartConversation)
			})
		})

		r.Put("/location", listingHandler.SetLocation)

		r.Route("/conversations", func(r chi.Router) {
			r.Get("/", chatHandler.ListConversations)
			r.Route("/{conversationId}", func(r chi.Router) {
				r.Get("/", chatHandler.GetConversation)
				r.Post("/messages", chatHandler.PostMessage)
				r.Post("/offers", chatHandler.PostOffer)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/{listingId}", cartHandler.AddToCart)
			r.Delete("/{listingId}", cartHandler.RemoveFromCart)
		})
		r.Post("/checkout", cartHandler.Checkout)

		r.Post("/analyze", aiHandler.AnalyzeImages)
		r.Post("/search/image", aiHandler.ImageSearch)
	})

	log.Printf("QuickList API server starting on %s", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
