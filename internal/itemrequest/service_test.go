package itemrequest

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peershare/item-sharing-backend/internal/pkg/paging"
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
	reqs    []*ItemRequest
	answers map[string][]*Answer
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{answers: make(map[string][]*Answer)}
}

func (f *fakeRepo) Create(_ context.Context, r *ItemRequest) error {
	f.nextID++
	r.ID = "req-" + strconv.Itoa(f.nextID)
	r.CreatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.nextID) * time.Hour)
	cp := *r
	// newest first, matching the store ordering
	f.reqs = append([]*ItemRequest{&cp}, f.reqs...)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*ItemRequest, error) {
	for _, r := range f.reqs {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) ListByRequester(_ context.Context, requesterID string) ([]*ItemRequest, error) {
	var out []*ItemRequest
	for _, r := range f.reqs {
		if r.RequesterID == requesterID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListOthers(_ context.Context, requesterID string) ([]*ItemRequest, error) {
	var out []*ItemRequest
	for _, r := range f.reqs {
		if r.RequesterID != requesterID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAnswers(_ context.Context, requestIDs []string) (map[string][]*Answer, error) {
	out := make(map[string][]*Answer)
	for _, id := range requestIDs {
		if as, ok := f.answers[id]; ok {
			out[id] = as
		}
	}
	return out, nil
}

func newTestService(repo Repository, userIDs ...string) Service {
	known := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		known[id] = true
	}
	return NewService(repo, &fakeUsers{known: known}, zerolog.Nop())
}

func intPtr(v int) *int { return &v }

func TestCreateUnknownUser(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Create(context.Background(), "ghost", "need a ladder")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestCreateTrimsDescription(t *testing.T) {
	svc := newTestService(newFakeRepo(), "alice")

	req, err := svc.Create(context.Background(), "alice", "  need a ladder  ")
	require.NoError(t, err)
	assert.Equal(t, "need a ladder", req.Description)
	assert.Equal(t, "alice", req.RequesterID)
	assert.NotEmpty(t, req.ID)
}

func TestListOwnIncludesAnswers(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, "alice")

	req, err := svc.Create(context.Background(), "alice", "need a ladder")
	require.NoError(t, err)
	repo.answers[req.ID] = []*Answer{{ID: "item-1", Name: "Ladder", Available: true, OwnerID: "bob"}}

	views, err := svc.ListOwn(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Items, 1)
	assert.Equal(t, "Ladder", views[0].Items[0].Name)
}

func TestListOwnEmptyAnswers(t *testing.T) {
	svc := newTestService(newFakeRepo(), "alice")

	_, err := svc.Create(context.Background(), "alice", "need a ladder")
	require.NoError(t, err)

	views, err := svc.ListOwn(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.NotNil(t, views[0].Items)
	assert.Empty(t, views[0].Items)
}

func TestListOthersExcludesOwnAndPaginates(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, "alice", "bob")

	_, err := svc.Create(context.Background(), "alice", "mine")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), "bob", "theirs")
		require.NoError(t, err)
	}

	views, err := svc.ListOthers(context.Background(), "alice", 0, nil)
	require.NoError(t, err)
	require.Len(t, views, 3)
	for _, v := range views {
		assert.Equal(t, "bob", v.RequesterID)
	}

	page, err := svc.ListOthers(context.Background(), "alice", 1, intPtr(1))
	require.NoError(t, err)
	assert.Len(t, page, 1)

	_, err = svc.ListOthers(context.Background(), "alice", 4, nil)
	assert.ErrorIs(t, err, paging.ErrOffsetOutOfRange)
}

func TestListOthersNewestFirst(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, "alice", "bob")

	first, err := svc.Create(context.Background(), "bob", "older")
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), "bob", "newer")
	require.NoError(t, err)

	views, err := svc.ListOthers(context.Background(), "alice", 0, nil)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, second.ID, views[0].ID)
	assert.Equal(t, first.ID, views[1].ID)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), "alice")

	_, err := svc.GetByID(context.Background(), "alice", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByIDAnyKnownUser(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, "alice", "bob")

	req, err := svc.Create(context.Background(), "alice", "need a ladder")
	require.NoError(t, err)

	view, err := svc.GetByID(context.Background(), "bob", req.ID)
	require.NoError(t, err)
	assert.Equal(t, req.ID, view.ID)
}
