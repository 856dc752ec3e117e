// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/Danielluzius/coderr-backend/internal/delivery/http/middleware"
	"github.com/Danielluzius/coderr-backend/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	OfferHandler   *handler.OfferHandler
	OrderHandler   *handler.OrderHandler
	ReviewHandler  *handler.ReviewHandler
	StatsHandler   *handler.StatsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application. Paths keep
// the trailing-slash style of the public API contract.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authed := r.params.AuthMiddleware.Authenticate
	optional := r.params.AuthMiddleware.AuthenticateOptional

	// Open endpoints
	api.POST("/registration/", r.params.AuthHandler.Register)
	api.POST("/login/", r.params.AuthHandler.Login)
	api.GET("/base-info/", r.params.StatsHandler.GetBaseInfo)

	// Offer catalog; the list read is open to anonymous callers
	api.GET("/offers/", r.params.OfferHandler.ListOffers, optional)
	api.POST("/offers/", r.params.OfferHandler.CreateOffer, authed)
	api.GET("/offers/:id/", r.params.OfferHandler.GetOffer, authed)
	api.PATCH("/offers/:id/", r.params.OfferHandler.UpdateOffer, authed)
	api.DELETE("/offers/:id/", r.params.OfferHandler.DeleteOffer, authed)
	api.GET("/offerdetails/:id/", r.params.OfferHandler.GetOfferDetail, authed)

	// Order ledger
	api.GET("/orders/", r.params.OrderHandler.ListOrders, authed)
	api.POST("/orders/", r.params.OrderHandler.CreateOrder, authed)
	api.PATCH("/orders/:id/", r.params.OrderHandler.UpdateOrderStatus, authed)
	api.DELETE("/orders/:id/", r.params.OrderHandler.DeleteOrder, authed)
	api.GET("/order-count/:business_user_id/", r.params.OrderHandler.CountInProgressOrders, authed)
	api.GET("/completed-order-count/:business_user_id/", r.params.OrderHandler.CountCompletedOrders, authed)

	// Profiles
	api.GET("/profile/:user_id/", r.params.ProfileHandler.GetProfile, authed)
	api.PATCH("/profile/:user_id/", r.params.ProfileHandler.UpdateProfile, authed)
	api.GET("/profiles/business/", r.params.ProfileHandler.ListBusinessProfiles, authed)
	api.GET("/profiles/customer/", r.params.ProfileHandler.ListCustomerProfiles, authed)

	// Review ledger
	api.GET("/reviews/", r.params.ReviewHandler.ListReviews, authed)
	api.POST("/reviews/", r.params.ReviewHandler.CreateReview, authed)
	api.PATCH("/reviews/:id/", r.params.ReviewHandler.UpdateReview, authed)
	api.DELETE("/reviews/:id/", r.params.ReviewHandler.DeleteReview, authed)
}
