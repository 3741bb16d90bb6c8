// Package kernel assembles the HTTP handler: global middleware, the
// Prometheus endpoint, and the API routes.
package kernel

import (
	"net/http"
	"runtime"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/freshbasket/app/controllers"
	"github.com/shashiranjanraj/freshbasket/app/repositories"
	"github.com/shashiranjanraj/freshbasket/app/routes"
	"github.com/shashiranjanraj/freshbasket/app/services"
	"github.com/shashiranjanraj/freshbasket/pkg/metrics"
	"github.com/shashiranjanraj/freshbasket/pkg/middleware"
	"github.com/shashiranjanraj/freshbasket/pkg/reqid"
	"github.com/shashiranjanraj/freshbasket/pkg/router"
	"github.com/shashiranjanraj/freshbasket/pkg/workerpool"
)

// Kernel owns the handler and the resources it must release on shutdown.
type Kernel struct {
	router *router.Router
	pool   *workerpool.Pool
}

// New wires repositories, services, and controllers onto db and builds the
// middleware stack.
func New(db *gorm.DB) *Kernel {
	catalogRepo := repositories.NewCatalogRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)
	refRepo := repositories.NewReferenceRepository(db)
	uow := repositories.NewGormUnitOfWork(db)

	pool := workerpool.New(runtime.NumCPU())

	checkoutSvc := services.NewCheckoutService(uow)
	matcherSvc := services.NewShoppingListService(catalogRepo, pool)
	cartSvc := services.NewCartService(uow, catalogRepo, cartRepo)
	authSvc := services.NewAuthService(userRepo)
	catalogSvc := services.NewCatalogService(catalogRepo, catalogRepo)
	refSvc := services.NewReferenceService(refRepo, orderRepo)

	r := router.New()

	// Global middleware stack (outermost first):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery           — catches panics before they kill the request
	//  3. Request ID         — inject unique ID before anything logs
	//  4. Logger             — logs request_id from context
	//  5. CORS
	//  6. Rate limiter
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r, routes.Controllers{
		Auth:         controllers.NewAuthController(authSvc),
		Products:     controllers.NewProductController(catalogSvc),
		Cart:         controllers.NewCartController(cartSvc),
		Orders:       controllers.NewOrderController(checkoutSvc, refSvc),
		ShoppingList: controllers.NewShoppingListController(matcherSvc),
		Reference:    controllers.NewReferenceController(refSvc),
	})

	return &Kernel{router: r, pool: pool}
}

func (k *Kernel) Handler() http.Handler {
	return k.router.Handler()
}

// Routes exposes the named route table for `route:list`.
func (k *Kernel) Routes() []router.RouteInfo {
	return k.router.Routes()
}

// Close releases the matcher worker pool.
func (k *Kernel) Close() {
	k.pool.Shutdown()
}
