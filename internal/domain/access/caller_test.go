package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLookup struct {
	callers map[string]Caller
	err     error
	calls   int
}

func (s *stubLookup) LookupCaller(ctx context.Context, email string) (Caller, error) {
	s.calls++
	if s.err != nil {
		return Caller{}, s.err
	}
	c, ok := s.callers[email]
	if !ok {
		return Caller{}, ErrUnknownAccount
	}
	return c, nil
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		caller Caller
		want   Class
	}{
		{"no email", Caller{Role: RoleAdmin, Status: StatusApproved}, ClassUnauthenticated},
		{"blank email", Caller{Email: "   "}, ClassUnauthenticated},
		{"pending", Caller{Email: "a@b.co", Role: RoleUser, Status: StatusPending}, ClassPendingApproval},
		{"rejected", Caller{Email: "a@b.co", Role: RoleUser, Status: StatusRejected}, ClassPendingApproval},
		{"pending admin", Caller{Email: "a@b.co", Role: RoleAdmin, Status: StatusPending}, ClassPendingApproval},
		{"approved user", Caller{Email: "a@b.co", Role: RoleUser, Status: StatusApproved}, ClassApprovedUser},
		{"approved manager", Caller{Email: "a@b.co", Role: RoleManager, Status: StatusApproved}, ClassApprovedUser},
		{"approved admin", Caller{Email: "a@b.co", Role: RoleAdmin, Status: StatusApproved}, ClassApprovedAdmin},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.caller))
		})
	}
}

func TestAuthorize(t *testing.T) {
	user := Caller{Email: "u@b.co", Role: RoleUser, Status: StatusApproved}
	manager := Caller{Email: "m@b.co", Role: RoleManager, Status: StatusApproved}
	admin := Caller{Email: "a@b.co", Role: RoleAdmin, Status: StatusApproved}
	pending := Caller{Email: "p@b.co", Role: RoleAdmin, Status: StatusPending}

	assert.ErrorIs(t, Authorize(Caller{}, RoleUser), ErrUnauthenticated)
	assert.ErrorIs(t, Authorize(pending, RoleUser), ErrAwaitingApproval)
	assert.NoError(t, Authorize(user, RoleUser))
	assert.ErrorIs(t, Authorize(user, RoleManager), ErrForbidden)
	assert.ErrorIs(t, Authorize(user, RoleAdmin), ErrForbidden)
	assert.NoError(t, Authorize(manager, RoleManager))
	assert.ErrorIs(t, Authorize(manager, RoleAdmin), ErrForbidden)
	assert.NoError(t, Authorize(admin, RoleAdmin))
	assert.ErrorIs(t, Authorize(Caller{Email: "x@b.co", Role: "owner", Status: StatusApproved}, RoleUser), ErrForbidden)
}

func TestAllowList_CaseInsensitive(t *testing.T) {
	list := NewAllowList([]string{" Boss@Example.com ", ""})
	assert.True(t, list.Contains("boss@example.com"))
	assert.True(t, list.Contains("BOSS@EXAMPLE.COM"))
	assert.False(t, list.Contains(""))
	assert.False(t, list.Contains("other@example.com"))
}

func TestGate_AllowListPrecedesStore(t *testing.T) {
	lookup := &stubLookup{callers: map[string]Caller{}}
	gate := NewGate(NewAllowList([]string{"boss@example.com"}), lookup)

	caller, err := gate.Resolve(context.Background(), Claims{Email: "Boss@Example.com", Role: "user", Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, ClassApprovedAdmin, Classify(caller))
	assert.Equal(t, "boss@example.com", caller.Email)
	assert.Equal(t, 0, lookup.calls)
}

func TestGate_AllowListIgnoresStoreFailure(t *testing.T) {
	lookup := &stubLookup{err: errors.New("connection refused")}
	gate := NewGate(NewAllowList([]string{"boss@example.com"}), lookup)

	caller, err := gate.Resolve(context.Background(), Claims{Email: "boss@example.com"})
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, caller.Role)
}

func TestGate_PersistedStateWinsOverClaims(t *testing.T) {
	lookup := &stubLookup{callers: map[string]Caller{
		"staff@example.com": {AccountID: 7, Email: "staff@example.com", Role: RoleManager, Status: StatusApproved},
	}}
	gate := NewGate(NewAllowList(nil), lookup)

	caller, err := gate.Resolve(context.Background(), Claims{Email: "staff@example.com", Role: "user", Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), caller.AccountID)
	assert.Equal(t, RoleManager, caller.Role)
	assert.Equal(t, ClassApprovedUser, Classify(caller))
}

func TestGate_FallsBackToClaims(t *testing.T) {
	gate := NewGate(NewAllowList(nil), &stubLookup{callers: map[string]Caller{}})

	caller, err := gate.Resolve(context.Background(), Claims{Email: "new@example.com", Role: "user", Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, ClassPendingApproval, Classify(caller))
}

func TestGate_StoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	gate := NewGate(NewAllowList(nil), &stubLookup{err: storeErr})

	_, err := gate.Resolve(context.Background(), Claims{Email: "staff@example.com"})
	assert.ErrorIs(t, err, storeErr)
}

func TestGate_MissingEmail(t *testing.T) {
	gate := NewGate(NewAllowList(nil), nil)
	_, err := gate.Resolve(context.Background(), Claims{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
