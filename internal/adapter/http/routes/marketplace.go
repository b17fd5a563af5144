package routes

import (
	"carmarket/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVehicles   = "/vehicles"
	PathCart       = "/cart"
	PathOrders     = "/orders"
	PathWishlist   = "/wishlist"
	PathListings   = "/listings"
	PathValuations = "/valuations"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	cartHandler *handlers.CartHandler,
	wishlistHandler *handlers.WishlistHandler,
	listingHandler *handlers.ListingHandler,
	valuationHandler *handlers.ValuationHandler,
) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.GET("", catalogHandler.Browse)
		vehicles.GET("/featured", catalogHandler.Featured)
		vehicles.GET("/makes", catalogHandler.Makes)
		vehicles.GET("/makes/:make/models", catalogHandler.Models)
		vehicles.GET("/filters", catalogHandler.FilterMetadata)
		vehicles.GET("/:id", catalogHandler.GetVehicle)
	}

	cart := rg.Group(PathCart)
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PATCH("/items/:vehicle_id", cartHandler.UpdateQuantity)
		cart.DELETE("/items/:vehicle_id", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/checkout", cartHandler.Checkout)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", cartHandler.ListOrders)
		orders.GET("/:id", cartHandler.GetOrder)
	}

	wishlist := rg.Group(PathWishlist)
	{
		wishlist.GET("", wishlistHandler.List)
		wishlist.POST("", wishlistHandler.Add)
		wishlist.DELETE("/:vehicle_id", wishlistHandler.Remove)
	}

	listings := rg.Group(PathListings)
	{
		listings.GET("", listingHandler.ListListings)
		listings.POST("/drafts", listingHandler.StartDraft)
		listings.GET("/drafts/:id", listingHandler.GetDraft)
		listings.PATCH("/drafts/:id", listingHandler.UpdateDraft)
		listings.POST("/drafts/:id/next", listingHandler.Next)
		listings.POST("/drafts/:id/back", listingHandler.Back)
		listings.POST("/drafts/:id/photos", listingHandler.AddPhoto)
		listings.DELETE("/drafts/:id/photos/:index", listingHandler.RemovePhoto)
		listings.POST("/drafts/:id/submit", listingHandler.Submit)
		listings.GET("/:id", listingHandler.GetListing)
	}

	valuations := rg.Group(PathValuations)
	{
		valuations.POST("/drafts", valuationHandler.StartDraft)
		valuations.GET("/drafts/:id", valuationHandler.GetDraft)
		valuations.PATCH("/drafts/:id", valuationHandler.UpdateDraft)
		valuations.POST("/drafts/:id/next", valuationHandler.Next)
		valuations.POST("/drafts/:id/back", valuationHandler.Back)
		valuations.POST("/drafts/:id/submit", valuationHandler.Submit)
		valuations.GET("/:id", valuationHandler.GetValuation)
	}
}
