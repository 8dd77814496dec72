package app

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peershare/shareit-backend/internal/api"
	"github.com/peershare/shareit-backend/internal/booking"
	"github.com/peershare/shareit-backend/internal/item"
	"github.com/peershare/shareit-backend/internal/itemrequest"
	"github.com/peershare/shareit-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Booking store first: the item module reads booking data for the
	// owner's item view and for comment eligibility.
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)

	// Item module
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	itemService := item.NewService(itemRepo, userService, bookingRepo)

	// Booking module
	bookingService := booking.NewService(bookingRepo,
		userLookup{users: userService},
		itemLookup{items: itemService},
	)

	// Item request module
	requestRepo := itemrequest.NewPgxRepository(cfg.DBPool)
	requestService := itemrequest.NewService(requestRepo, userService)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		ItemService:    itemService,
		BookingService: bookingService,
		RequestService: requestService,
	})

	return &Container{Router: router}
}

// userLookup adapts the user module to the booking core's collaborator
// contract, translating its errors into the core's taxonomy.
type userLookup struct {
	users user.Service
}

func (a userLookup) GetByID(ctx context.Context, id string) (*booking.User, error) {
	u, err := a.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, booking.ErrUserNotFound
		}
		return nil, err
	}
	return &booking.User{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}

// itemLookup adapts the item module to the booking core's collaborator
// contract.
type itemLookup struct {
	items item.Service
}

func (a itemLookup) GetByID(ctx context.Context, id string) (*booking.Item, error) {
	i, err := a.items.Get(ctx, id)
	if err != nil {
		if errors.Is(err, item.ErrNotFound) {
			return nil, booking.ErrItemNotFound
		}
		return nil, err
	}
	return &booking.Item{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
	}, nil
}
