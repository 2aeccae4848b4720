// Package router declares every route of the HTTP delivery in one table,
// together with its access policy.
package router

import (
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds dependencies for the router, injected by Fx.
type RouterParams struct {
	fx.In

	ProductHandler   *handler.ProductHandler
	CategoryHandler  *handler.CategoryHandler
	OrderHandler     *handler.OrderHandler
	UserHandler      *handler.UserHandler
	DiscountHandler  *handler.DiscountHandler
	PromotionHandler *handler.PromotionHandler
	InventoryHandler *handler.InventoryHandler
	StoreHandler     *handler.StoreHandler
	AuthHandler      *handler.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// route is one row of the routing table: the endpoint plus its access
// policy. Public routes skip authentication entirely; a nil Roles list on a
// protected route means any authenticated principal may call it. Finer
// checks such as resource ownership live in the handlers.
type route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
	Public  bool
	Roles   entity.Roles
}

type router struct {
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
	routes         []route
	devRoutes      []route
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	admin := entity.Roles{entity.RoleAdmin}

	routes := []route{
		{Method: http.MethodGet, Path: "/health", Handler: handler.HealthCheck, Public: true},

		// Authentication
		{Method: http.MethodPost, Path: "/auth/register", Handler: params.AuthHandler.Register, Public: true},
		{Method: http.MethodPost, Path: "/auth/login", Handler: params.AuthHandler.Login, Public: true},
		{Method: http.MethodGet, Path: "/auth/verify", Handler: params.AuthHandler.Verify, Public: true},

		// Catalog reads are public; writes are admin-only.
		{Method: http.MethodGet, Path: "/products", Handler: params.ProductHandler.List, Public: true},
		{Method: http.MethodGet, Path: "/products/:id", Handler: params.ProductHandler.Get, Public: true},
		{Method: http.MethodGet, Path: "/products/:id/image", Handler: params.ProductHandler.GetImage, Public: true},
		{Method: http.MethodPost, Path: "/products", Handler: params.ProductHandler.Create, Roles: admin},
		{Method: http.MethodPatch, Path: "/products/:id", Handler: params.ProductHandler.Update, Roles: admin},
		{Method: http.MethodDelete, Path: "/products/:id", Handler: params.ProductHandler.Delete, Roles: admin},
		{Method: http.MethodPut, Path: "/products/:id/image", Handler: params.ProductHandler.UploadImage, Roles: admin},

		{Method: http.MethodGet, Path: "/categories", Handler: params.CategoryHandler.List, Public: true},
		{Method: http.MethodGet, Path: "/categories/:id", Handler: params.CategoryHandler.Get, Public: true},
		{Method: http.MethodPost, Path: "/categories", Handler: params.CategoryHandler.Create, Roles: admin},
		{Method: http.MethodPatch, Path: "/categories/:id", Handler: params.CategoryHandler.Update, Roles: admin},
		{Method: http.MethodDelete, Path: "/categories/:id", Handler: params.CategoryHandler.Delete, Roles: admin},

		{Method: http.MethodGet, Path: "/discounts", Handler: params.DiscountHandler.List, Public: true},
		{Method: http.MethodGet, Path: "/discounts/:id", Handler: params.DiscountHandler.Get, Public: true},
		{Method: http.MethodPost, Path: "/discounts", Handler: params.DiscountHandler.Create, Roles: admin},
		{Method: http.MethodPatch, Path: "/discounts/:id", Handler: params.DiscountHandler.Update, Roles: admin},
		{Method: http.MethodDelete, Path: "/discounts/:id", Handler: params.DiscountHandler.Delete, Roles: admin},

		{Method: http.MethodGet, Path: "/promotions", Handler: params.PromotionHandler.List, Public: true},
		{Method: http.MethodGet, Path: "/promotions/:id", Handler: params.PromotionHandler.Get, Public: true},
		{Method: http.MethodGet, Path: "/promotions/:id/qr", Handler: params.PromotionHandler.GetQR, Public: true},
		{Method: http.MethodPost, Path: "/promotions", Handler: params.PromotionHandler.Create, Roles: admin},
		{Method: http.MethodPatch, Path: "/promotions/:id", Handler: params.PromotionHandler.Update, Roles: admin},
		{Method: http.MethodDelete, Path: "/promotions/:id", Handler: params.PromotionHandler.Delete, Roles: admin},

		{Method: http.MethodGet, Path: "/stores", Handler: params.StoreHandler.List, Public: true},
		{Method: http.MethodGet, Path: "/stores/:id", Handler: params.StoreHandler.Get, Public: true},
		{Method: http.MethodPost, Path: "/stores", Handler: params.StoreHandler.Create, Roles: admin},
		{Method: http.MethodPatch, Path: "/stores/:id", Handler: params.StoreHandler.Update, Roles: admin},
		{Method: http.MethodDelete, Path: "/stores/:id", Handler: params.StoreHandler.Delete, Roles: admin},

		{Method: http.MethodGet, Path: "/inventory", Handler: params.InventoryHandler.List, Public: true},
		{Method: http.MethodGet, Path: "/inventory/:id", Handler: params.InventoryHandler.Get, Public: true},
		{Method: http.MethodPost, Path: "/inventory", Handler: params.InventoryHandler.Create, Roles: admin},
		{Method: http.MethodPatch, Path: "/inventory/:id", Handler: params.InventoryHandler.Update, Roles: admin},
		{Method: http.MethodDelete, Path: "/inventory/:id", Handler: params.InventoryHandler.Delete, Roles: admin},

		// Orders: any authenticated user may place and read; handlers scope
		// customers to their own orders. Mutations are back-office only.
		{Method: http.MethodPost, Path: "/orders", Handler: params.OrderHandler.Create},
		{Method: http.MethodGet, Path: "/orders", Handler: params.OrderHandler.List},
		{Method: http.MethodGet, Path: "/orders/:id", Handler: params.OrderHandler.Get},
		{Method: http.MethodPatch, Path: "/orders/:id", Handler: params.OrderHandler.Update, Roles: admin},
		{Method: http.MethodDelete, Path: "/orders/:id", Handler: params.OrderHandler.Delete, Roles: admin},

		// Profiles: owner-or-admin checks happen in the handlers.
		{Method: http.MethodGet, Path: "/users/me", Handler: params.UserHandler.GetProfile},
		{Method: http.MethodGet, Path: "/users", Handler: params.UserHandler.List, Roles: admin},
		{Method: http.MethodGet, Path: "/users/:id", Handler: params.UserHandler.Get},
		{Method: http.MethodPatch, Path: "/users/:id", Handler: params.UserHandler.Update},
		{Method: http.MethodDelete, Path: "/users/:id", Handler: params.UserHandler.Delete, Roles: admin},
		{Method: http.MethodPost, Path: "/users/:id/cart", Handler: params.UserHandler.AddCartItem},
		{Method: http.MethodDelete, Path: "/users/:id/cart/:productId", Handler: params.UserHandler.RemoveCartItem},
		{Method: http.MethodPost, Path: "/users/:id/wishlist", Handler: params.UserHandler.AddWishlistItem},
		{Method: http.MethodDelete, Path: "/users/:id/wishlist/:productId", Handler: params.UserHandler.RemoveWishlistItem},
	}

	devRoutes := []route{
		{Method: http.MethodPost, Path: "/auth/dev-token", Handler: params.AuthHandler.DevToken, Public: true},
	}

	return &router{
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
		routes:         routes,
		devRoutes:      devRoutes,
	}
}

// RegisterRoutes walks the routing table and attaches the authentication
// and authorization middleware each row asks for.
func (r *router) RegisterRoutes(e *echo.Echo) {
	for _, rt := range r.routes {
		r.register(e, rt)
	}
}

// RegisterDevRoutes attaches development-only routes. They are skipped
// entirely unless explicitly enabled in config.
func (r *router) RegisterDevRoutes(e *echo.Echo) {
	if r.config.DevRoutes == nil || !r.config.DevRoutes.Enabled {
		return
	}

	for _, rt := range r.devRoutes {
		r.register(e, rt)
	}
}

func (r *router) register(e *echo.Echo, rt route) {
	if rt.Public {
		e.Add(rt.Method, rt.Path, rt.Handler)

		return
	}

	e.Add(rt.Method, rt.Path, rt.Handler,
		r.authMiddleware.Authenticate,
		r.authMiddleware.Require(rt.Roles...),
	)
}
