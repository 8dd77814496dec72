package item_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peershare/shareit-backend/internal/booking"
	"github.com/peershare/shareit-backend/internal/item"
	"github.com/peershare/shareit-backend/internal/user"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

type fixture struct {
	svc      item.Service
	users    user.Service
	bookings *booking.MemoryRepository

	owner  *user.User
	booker *user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	users := user.NewService(user.NewMemoryRepository())
	owner, err := users.Create(ctx, user.CreateRequest{Name: "Olga", Email: "olga@example.com"})
	require.NoError(t, err)
	booker, err := users.Create(ctx, user.CreateRequest{Name: "Boris", Email: "boris@example.com"})
	require.NoError(t, err)

	bookings := booking.NewMemoryRepository()
	return &fixture{
		svc:      item.NewService(item.NewMemoryRepository(), users, bookings),
		users:    users,
		bookings: bookings,
		owner:    owner,
		booker:   booker,
	}
}

func (f *fixture) createItem(t *testing.T, name string) *item.Item {
	t.Helper()
	i, err := f.svc.Create(context.Background(), item.CreateRequest{
		OwnerID:     f.owner.ID,
		Name:        name,
		Description: name + " in good condition",
		Available:   boolPtr(true),
	})
	require.NoError(t, err)
	return i
}

// seedBooking stages a booking in the booking store so comment eligibility and
// the owner's last/next view have data to work with.
func (f *fixture) seedBooking(t *testing.T, itemID string, start, end time.Time, status booking.Status) *booking.Booking {
	t.Helper()
	b := &booking.Booking{
		ItemID:   itemID,
		BookerID: f.booker.ID,
		Start:    start,
		End:      end,
		Status:   status,
	}
	require.NoError(t, f.bookings.Create(context.Background(), b))
	return b
}

func TestItemCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates item", func(t *testing.T) {
		f := newFixture(t)
		i := f.createItem(t, "drill")
		assert.NotEmpty(t, i.ID)
		assert.Equal(t, f.owner.ID, i.OwnerID)
		assert.True(t, i.Available)
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, item.CreateRequest{
			OwnerID:     uuid.New().String(),
			Name:        "drill",
			Description: "a drill",
			Available:   boolPtr(true),
		})
		assert.ErrorIs(t, err, item.ErrOwnerNotFound)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture(t)
		cases := []item.CreateRequest{
			{OwnerID: f.owner.ID, Name: "  ", Description: "a drill", Available: boolPtr(true)},
			{OwnerID: f.owner.ID, Name: "drill", Description: "", Available: boolPtr(true)},
			{OwnerID: f.owner.ID, Name: "drill", Description: "a drill", Available: nil},
		}
		for i, req := range cases {
			_, err := f.svc.Create(ctx, req)
			assert.ErrorIs(t, err, item.ErrMissingFields, "case %d", i)
		}
	})
}

func TestItemUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("owner updates fields selectively", func(t *testing.T) {
		f := newFixture(t)
		i := f.createItem(t, "drill")

		got, err := f.svc.Update(ctx, i.ID, f.owner.ID, item.UpdateRequest{
			Name:      strPtr("hammer drill"),
			Available: boolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "hammer drill", got.Name)
		assert.Equal(t, i.Description, got.Description)
		assert.False(t, got.Available)
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		f := newFixture(t)
		i := f.createItem(t, "drill")

		_, err := f.svc.Update(ctx, i.ID, f.booker.ID, item.UpdateRequest{Name: strPtr("mine now")})
		assert.ErrorIs(t, err, item.ErrNotFound)

		// And the item is untouched.
		got, err := f.svc.Get(ctx, i.ID)
		require.NoError(t, err)
		assert.Equal(t, "drill", got.Name)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Update(ctx, uuid.New().String(), f.owner.ID, item.UpdateRequest{})
		assert.ErrorIs(t, err, item.ErrNotFound)
	})
}

func TestItemSearch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	drill := f.createItem(t, "Cordless Drill")
	f.createItem(t, "garden rake")
	hidden := f.createItem(t, "hidden drill")
	_, err := f.svc.Update(ctx, hidden.ID, f.owner.ID, item.UpdateRequest{Available: boolPtr(false)})
	require.NoError(t, err)

	t.Run("matches name case-insensitively, available only", func(t *testing.T) {
		got, total, err := f.svc.Search(ctx, "dRiLL", 1, 20)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, drill.ID, got[0].ID)
	})

	t.Run("blank text returns empty without querying", func(t *testing.T) {
		got, total, err := f.svc.Search(ctx, "   ", 1, 20)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, got)
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("booker with finished booking can comment", func(t *testing.T) {
		f := newFixture(t)
		i := f.createItem(t, "drill")
		f.seedBooking(t, i.ID, now.Add(-2*time.Hour), now.Add(-time.Hour), booking.StatusApproved)

		c, err := f.svc.AddComment(ctx, i.ID, f.booker.ID, "  worked great  ")
		require.NoError(t, err)
		assert.Equal(t, "worked great", c.Text)
		assert.Equal(t, "Boris", c.AuthorName)

		d, err := f.svc.GetDetail(ctx, i.ID, f.booker.ID)
		require.NoError(t, err)
		require.Len(t, d.Comments, 1)
		assert.Equal(t, c.ID, d.Comments[0].ID)
	})

	t.Run("ongoing approved booking also qualifies", func(t *testing.T) {
		f := newFixture(t)
		i := f.createItem(t, "drill")
		f.seedBooking(t, i.ID, now.Add(-time.Hour), now.Add(time.Hour), booking.StatusApproved)

		_, err := f.svc.AddComment(ctx, i.ID, f.booker.ID, "so far so good")
		assert.NoError(t, err)
	})

	t.Run("no booking at all", func(t *testing.T) {
		f := newFixture(t)
		i := f.createItem(t, "drill")

		_, err := f.svc.AddComment(ctx, i.ID, f.booker.ID, "never touched it")
		assert.ErrorIs(t, err, item.ErrNoBooking)
	})

	t.Run("future or unapproved bookings do not qualify", func(t *testing.T) {
		f := newFixture(t)
		i := f.createItem(t, "drill")
		f.seedBooking(t, i.ID, now.Add(time.Hour), now.Add(2*time.Hour), booking.StatusApproved)
		f.seedBooking(t, i.ID, now.Add(-2*time.Hour), now.Add(-time.Hour), booking.StatusWaiting)
		f.seedBooking(t, i.ID, now.Add(-4*time.Hour), now.Add(-3*time.Hour), booking.StatusRejected)

		_, err := f.svc.AddComment(ctx, i.ID, f.booker.ID, "premature")
		assert.ErrorIs(t, err, item.ErrNoBooking)
	})

	t.Run("empty text", func(t *testing.T) {
		f := newFixture(t)
		i := f.createItem(t, "drill")
		f.seedBooking(t, i.ID, now.Add(-2*time.Hour), now.Add(-time.Hour), booking.StatusApproved)

		_, err := f.svc.AddComment(ctx, i.ID, f.booker.ID, "   ")
		assert.ErrorIs(t, err, item.ErrEmptyComment)
	})
}

func TestGetDetail(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	f := newFixture(t)
	i := f.createItem(t, "drill")
	last := f.seedBooking(t, i.ID, now.Add(-2*time.Hour), now.Add(-time.Hour), booking.StatusApproved)
	next := f.seedBooking(t, i.ID, now.Add(time.Hour), now.Add(2*time.Hour), booking.StatusApproved)
	f.seedBooking(t, i.ID, now.Add(3*time.Hour), now.Add(4*time.Hour), booking.StatusRejected)

	t.Run("owner sees last and next booking", func(t *testing.T) {
		d, err := f.svc.GetDetail(ctx, i.ID, f.owner.ID)
		require.NoError(t, err)
		require.NotNil(t, d.LastBooking)
		require.NotNil(t, d.NextBooking)
		assert.Equal(t, last.ID, d.LastBooking.ID)
		assert.Equal(t, next.ID, d.NextBooking.ID)
	})

	t.Run("non-owner sees the item without bookings", func(t *testing.T) {
		d, err := f.svc.GetDetail(ctx, i.ID, f.booker.ID)
		require.NoError(t, err)
		assert.Nil(t, d.LastBooking)
		assert.Nil(t, d.NextBooking)
		assert.Equal(t, i.ID, d.ID)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := f.svc.GetDetail(ctx, uuid.New().String(), f.owner.ID)
		assert.ErrorIs(t, err, item.ErrNotFound)
	})
}

func TestListByOwner(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.createItem(t, "drill")
	f.createItem(t, "rake")

	t.Run("owner gets own items with booking views", func(t *testing.T) {
		got, err := f.svc.ListByOwner(ctx, f.owner.ID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("user without items gets empty list", func(t *testing.T) {
		got, err := f.svc.ListByOwner(ctx, f.booker.ID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.svc.ListByOwner(ctx, uuid.New().String())
		assert.ErrorIs(t, err, item.ErrOwnerNotFound)
	})
}
