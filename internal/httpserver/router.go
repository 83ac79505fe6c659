package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fashionmela/internal/catalog"
	"fashionmela/internal/domain"
	"fashionmela/internal/session"
	"fashionmela/internal/service/checkout"
	"fashionmela/internal/storage"
)

// identitySvc is the slice of the identity store the handlers need.
type identitySvc interface {
	Register(name, email, password string) error
	Login(email, password string) (session.View, error)
	Logout() error
	IsAdmin() bool
}

type cartSvc interface {
	Add(p domain.Product) error
	Decrease(p domain.Product) error
	Remove(p domain.Product) error
	Clear() error
	Lines() []domain.CartLine
	Total() int64
	ItemCount() int
}

type listsSvc interface {
	ToggleWishlist(p domain.Product) error
	ToggleCompare(p domain.Product) error
	ClearCompare() error
	Wishlist() []domain.Product
	Compare() []domain.Product
	WishlistCount() int
	CompareCount() int
}

type orderSvc interface {
	Orders() []domain.Order
	GetByID(orderID string) (*domain.Order, error)
	Delete(orderID string) error
}

type checkoutSvc interface {
	Price(lines []domain.CartLine) checkout.Pricing
	PlaceOrder(in checkout.Input) (checkout.Result, error)
}

type catalogProvider interface {
	Products() []domain.Product
	Get(id int) (*domain.Product, error)
	SpecialOffers() []domain.Product
	DiscountInfo(id int) (catalog.DiscountInfo, bool)
}

// Deps carries the services the router exposes.
type Deps struct {
	Session  *session.Session
	Identity identitySvc
	Cart     cartSvc
	Lists    listsSvc
	Orders   orderSvc
	Checkout checkoutSvc
	Catalog  catalogProvider
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, store *storage.Store, deps Deps, allowedOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(store))

	router.POST("/auth/register", registerHandler(deps.Identity))
	router.POST("/auth/login", loginHandler(deps.Identity))
	router.POST("/auth/logout", logoutHandler(deps.Identity))
	router.GET("/me", meHandler(deps.Session, deps.Identity))

	router.GET("/products", listProductsHandler(deps.Catalog))
	router.GET("/products/:id", getProductHandler(deps.Catalog))
	router.GET("/offers", listOffersHandler(deps.Catalog))

	router.GET("/cart", getCartHandler(deps.Cart, deps.Checkout))
	router.POST("/cart/items", addCartItemHandler(deps.Cart, deps.Checkout, deps.Catalog))
	router.POST("/cart/items/:id/decrease", decreaseCartItemHandler(deps.Cart, deps.Checkout))
	router.DELETE("/cart/items/:id", removeCartItemHandler(deps.Cart, deps.Checkout))
	router.DELETE("/cart", clearCartHandler(deps.Cart, deps.Checkout))

	router.GET("/wishlist", getWishlistHandler(deps.Lists))
	router.POST("/wishlist/toggle", toggleWishlistHandler(deps.Lists, deps.Catalog))
	router.GET("/compare", getCompareHandler(deps.Lists))
	router.POST("/compare/toggle", toggleCompareHandler(deps.Lists, deps.Catalog))
	router.DELETE("/compare", clearCompareHandler(deps.Lists))

	router.POST("/checkout", checkoutHandler(deps.Checkout))

	router.GET("/orders", listOrdersHandler(deps.Orders))
	router.GET("/orders/:id", getOrderHandler(deps.Orders))
	router.DELETE("/orders/:id", deleteOrderHandler(deps.Orders))

	return router, nil
}
