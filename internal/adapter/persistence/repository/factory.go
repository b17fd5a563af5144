package repository

import (
	"log"
	"strings"

	"carmarket/internal/infrastructure/database"
	"carmarket/internal/usecase/interfaces"
)

// NewListingRepositoryFromEnv selects the listing backend.
//
//	LISTINGS_BACKEND=memory   -> in-process map (default)
//	LISTINGS_BACKEND=dynamodb -> DynamoDB table (see database.ConnectDynamoDB)
func NewListingRepositoryFromEnv() interfaces.IListingRepository {
	backend := strings.ToLower(getenvDefault("LISTINGS_BACKEND", "memory"))

	switch backend {
	case "dynamodb":
		log.Printf("[marketplace][repository] using dynamodb listing backend")
		return NewListingDynamoRepository(database.ConnectDynamoDB())
	case "memory":
		return NewListingMemoryRepository()
	default:
		log.Printf("[marketplace][repository] unknown LISTINGS_BACKEND %q, falling back to memory", backend)
		return NewListingMemoryRepository()
	}
}
