package users

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	order []string
	byID  map[string]User
	next  int

	listErr error
}

func newTestRepo(usernames ...string) *testRepo {
	r := &testRepo{byID: map[string]User{}}
	for _, name := range usernames {
		_, _ = r.Create(context.Background(), User{Username: name})
	}
	return r
}

func (r *testRepo) List(ctx context.Context) ([]User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	if r.listErr != nil {
		return false, r.listErr
	}
	for _, u := range r.byID {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *testRepo) Create(ctx context.Context, u User) (User, error) {
	u.ID = fmt.Sprintf("user%d", r.next)
	r.next++
	r.order = append(r.order, u.ID)
	r.byID[u.ID] = u
	return u, nil
}

func (r *testRepo) Update(ctx context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestValidateNew(t *testing.T) {
	repo := newTestRepo("username0", "Alice")
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		want     error
	}{
		{"novel username", "newUser", nil},
		{"empty", "", ErrMissingField},
		{"blank", "   ", ErrMissingField},
		{"taken", "username0", ErrUsernameTaken},
		{"case sensitive", "alice", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNew(ctx, repo, CreateInput{Username: tc.username})
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected ok, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateNew_MissingFieldNamesField(t *testing.T) {
	err := ValidateNew(context.Background(), newTestRepo(), CreateInput{})

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FieldError, got %T", err)
	}
	if fe.Field != "username" {
		t.Fatalf("expected field username, got %q", fe.Field)
	}
}

func TestValidateNew_PropagatesRepoError(t *testing.T) {
	repo := newTestRepo()
	repo.listErr = errors.New("boom")

	err := ValidateNew(context.Background(), repo, CreateInput{Username: "x"})
	if err == nil || errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestService_Create_AppendsOne(t *testing.T) {
	repo := newTestRepo("username0", "username1")
	svc := NewService(repo)

	u, err := svc.Create(context.Background(), CreateInput{Username: "newUser"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected generated id")
	}

	items, _ := svc.List(context.Background())
	if len(items) != 3 {
		t.Fatalf("expected 3 users, got %d", len(items))
	}
	if items[2].ID != u.ID {
		t.Fatalf("expected new user last, got %#v", items)
	}
}

func TestService_Create_RejectedLeavesCollectionUnchanged(t *testing.T) {
	repo := newTestRepo("username0")
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), CreateInput{Username: "username0"}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}

	items, _ := svc.List(context.Background())
	if len(items) != 1 {
		t.Fatalf("expected 1 user, got %d", len(items))
	}
}

func TestService_Update(t *testing.T) {
	repo := newTestRepo("username0", "username1")
	svc := NewService(repo)
	ctx := context.Background()

	name := "updatedUsername"
	u, err := svc.Update(ctx, "user0", UpdateInput{Username: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if u.ID != "user0" || u.Username != name {
		t.Fatalf("unexpected user %#v", u)
	}

	// Sin campos: no cambia nada.
	u, err = svc.Update(ctx, "user0", UpdateInput{})
	if err != nil || u.Username != name {
		t.Fatalf("expected unchanged user, got %#v err=%v", u, err)
	}

	// Username repetido se acepta en update.
	dup := "username1"
	if _, err := svc.Update(ctx, "user0", UpdateInput{Username: &dup}); err != nil {
		t.Fatalf("expected update with existing username to pass, got %v", err)
	}

	blank := " "
	if _, err := svc.Update(ctx, "user0", UpdateInput{Username: &blank}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}

	if _, err := svc.Update(ctx, "user999", UpdateInput{Username: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newTestRepo("username0", "username1")
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Delete(ctx, "user999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty id, got %v", err)
	}
	if err := svc.Delete(ctx, "user1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	items, _ := svc.List(ctx)
	if len(items) != 1 || items[0].ID != "user0" {
		t.Fatalf("expected only user0 left, got %#v", items)
	}
}

func TestErrorResponse(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{ErrNotFound, 404, "no user with that userId"},
		{&FieldError{Field: "username"}, 400, "missing required field"},
		{ErrUsernameTaken, 400, "username taken"},
		{errInvalidBody, 400, "invalid request body"},
		{errors.New("db down"), 500, "internal error"},
	}

	for _, tc := range cases {
		status, msg := errorResponse(tc.err)
		if status != tc.status || msg != tc.msg {
			t.Fatalf("errorResponse(%v) = %d %q, want %d %q", tc.err, status, msg, tc.status, tc.msg)
		}
	}
}
