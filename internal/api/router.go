package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/peershare/shareit-backend/internal/booking"
	bookingHttp "github.com/peershare/shareit-backend/internal/booking/http"
	"github.com/peershare/shareit-backend/internal/identity"
	"github.com/peershare/shareit-backend/internal/item"
	itemHttp "github.com/peershare/shareit-backend/internal/item/http"
	"github.com/peershare/shareit-backend/internal/itemrequest"
	requestHttp "github.com/peershare/shareit-backend/internal/itemrequest/http"
	"github.com/peershare/shareit-backend/internal/user"
	userHttp "github.com/peershare/shareit-backend/internal/user/http"
)

// Config holds the services the router exposes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	RequestService itemrequest.Service
}

// NewRouter initializes the HTTP router engine: middleware assembly
// (logging, recovery, CORS, caller identity) and per-module route
// registration.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", identity.HeaderUserID}
	r.Use(cors.New(corsConfig))

	// The edge tier conveys the caller in the X-Sharer-User-Id header;
	// everything except user management requires it.
	callerMiddleware := identity.Required()

	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService)

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHandler)
		itemHttp.RegisterRoutes(root, itemHandler, callerMiddleware)
		bookingHttp.RegisterRoutes(root, bookingHandler, callerMiddleware)
		requestHttp.RegisterRoutes(root, requestHandler, callerMiddleware)
	}

	return r
}
