package item

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peershare/item-sharing-backend/internal/user"
)

type fakeUsers struct {
	known map[string]bool
}

func (f *fakeUsers) Create(context.Context, user.CreateRequest) (*user.User, error) {
	panic("not used")
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*user.User, error) {
	if !f.known[id] {
		return nil, user.ErrNotFound
	}
	return &user.User{ID: id}, nil
}

func (f *fakeUsers) List(context.Context) ([]*user.User, error) { panic("not used") }

func (f *fakeUsers) Update(context.Context, string, user.UpdateRequest) (*user.User, error) {
	panic("not used")
}

func (f *fakeUsers) Delete(context.Context, string) error { panic("not used") }

type fakeRepo struct {
	items    map[string]*Item
	comments map[string][]*Comment
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items:    make(map[string]*Item),
		comments: make(map[string][]*Comment),
	}
}

func (f *fakeRepo) Create(_ context.Context, i *Item) error {
	f.nextID++
	i.ID = "item-" + strconv.Itoa(f.nextID)
	cp := *i
	f.items[i.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Item, error) {
	i, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *i
	return &cp, nil
}

func (f *fakeRepo) ListByOwner(_ context.Context, ownerID string) ([]*Item, error) {
	var out []*Item
	for _, i := range f.items {
		if i.OwnerID == ownerID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRepo) Search(_ context.Context, text string) ([]*Item, error) {
	needle := strings.ToLower(text)
	var out []*Item
	for _, i := range f.items {
		if i.Available && (strings.Contains(strings.ToLower(i.Name), needle) || strings.Contains(strings.ToLower(i.Description), needle)) {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, i *Item) error {
	if _, ok := f.items[i.ID]; !ok {
		return ErrNotFound
	}
	cp := *i
	f.items[i.ID] = &cp
	return nil
}

func (f *fakeRepo) CreateComment(_ context.Context, c *Comment) error {
	c.ID = "comment-" + strconv.Itoa(len(f.comments[c.ItemID])+1)
	c.AuthorName = "author of " + c.AuthorID
	cp := *c
	f.comments[c.ItemID] = append(f.comments[c.ItemID], &cp)
	return nil
}

func (f *fakeRepo) ListComments(_ context.Context, itemID string) ([]*Comment, error) {
	return f.comments[itemID], nil
}

type fakeBookings struct {
	last        *BookingRef
	next        *BookingRef
	pastBooking bool
}

func (f *fakeBookings) LastForItem(context.Context, string, time.Time) (*BookingRef, error) {
	return f.last, nil
}

func (f *fakeBookings) NextForItem(context.Context, string, time.Time) (*BookingRef, error) {
	return f.next, nil
}

func (f *fakeBookings) HasPastBooking(context.Context, string, string, time.Time) (bool, error) {
	return f.pastBooking, nil
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository, bookings BookingView, userIDs ...string) Service {
	known := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		known[id] = true
	}
	return NewService(repo, &fakeUsers{known: known}, bookings, func() time.Time { return fixedNow }, zerolog.Nop())
}

func boolPtr(v bool) *bool    { return &v }
func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func TestCreateUnknownOwner(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeBookings{})

	_, err := svc.Create(context.Background(), "ghost", CreateRequest{Name: "Drill", Description: "x", Available: true})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUpdateOwnerOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeBookings{}, "owner", "other")

	i, err := svc.Create(context.Background(), "owner", CreateRequest{Name: "Drill", Description: "electric", Available: true})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "other", i.ID, UpdateRequest{Name: strPtr("Hammer")})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeBookings{}, "owner")

	i, err := svc.Create(context.Background(), "owner", CreateRequest{Name: "Drill", Description: "electric", Available: true})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "owner", i.ID, UpdateRequest{Available: boolPtr(false)})
	require.NoError(t, err)

	assert.Equal(t, "Drill", updated.Name)
	assert.Equal(t, "electric", updated.Description)
	assert.False(t, updated.Available)
}

func TestSearchEmptyTextShortCircuits(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeBookings{}, "owner", "viewer")

	_, err := svc.Create(context.Background(), "owner", CreateRequest{Name: "Drill", Description: "electric", Available: true})
	require.NoError(t, err)

	got, err := svc.Search(context.Background(), "viewer", "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchOnlyAvailable(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeBookings{}, "owner", "viewer")

	_, err := svc.Create(context.Background(), "owner", CreateRequest{Name: "Drill", Description: "electric", Available: true})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "owner", CreateRequest{Name: "Drill press", Description: "broken", Available: false})
	require.NoError(t, err)

	got, err := svc.Search(context.Background(), "viewer", "drill")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Drill", got[0].Name)
}

func TestAddCommentRequiresPastBooking(t *testing.T) {
	repo := newFakeRepo()
	bookings := &fakeBookings{pastBooking: false}
	svc := newTestService(repo, bookings, "owner", "renter")

	i, err := svc.Create(context.Background(), "owner", CreateRequest{Name: "Drill", Description: "electric", Available: true})
	require.NoError(t, err)

	_, err = svc.AddComment(context.Background(), "renter", i.ID, "worked great")
	assert.ErrorIs(t, err, ErrCommentNotAllowed)

	bookings.pastBooking = true
	c, err := svc.AddComment(context.Background(), "renter", i.ID, "worked great")
	require.NoError(t, err)
	assert.Equal(t, "worked great", c.Text)
	assert.NotEmpty(t, c.AuthorName)
}

func TestGetByIDBookingContextOwnerOnly(t *testing.T) {
	repo := newFakeRepo()
	last := &BookingRef{ID: "b1", BookerID: "renter", Start: fixedNow.Add(-48 * time.Hour), End: fixedNow.Add(-24 * time.Hour)}
	next := &BookingRef{ID: "b2", BookerID: "renter", Start: fixedNow.Add(24 * time.Hour), End: fixedNow.Add(48 * time.Hour)}
	svc := newTestService(repo, &fakeBookings{last: last, next: next}, "owner", "viewer")

	i, err := svc.Create(context.Background(), "owner", CreateRequest{Name: "Drill", Description: "electric", Available: true})
	require.NoError(t, err)

	ownerView, err := svc.GetByID(context.Background(), i.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, last, ownerView.LastBooking)
	assert.Equal(t, next, ownerView.NextBooking)

	viewerView, err := svc.GetByID(context.Background(), i.ID, "viewer")
	require.NoError(t, err)
	assert.Nil(t, viewerView.LastBooking)
	assert.Nil(t, viewerView.NextBooking)
}

func TestListByOwnerPagination(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeBookings{}, "owner")

	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), "owner", CreateRequest{Name: "Item", Description: "d", Available: true})
		require.NoError(t, err)
	}

	page, err := svc.ListByOwner(context.Background(), "owner", 2, intPtr(2))
	require.NoError(t, err)
	assert.Len(t, page, 2)

	_, err = svc.ListByOwner(context.Background(), "owner", 6, nil)
	assert.Error(t, err)
}
