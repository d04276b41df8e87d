package practice

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/abhisek/molkkylog/internal/store"
)

// fakeThrowRepo is an in-memory ThrowRepo that can inject a failure into
// the next durable operation.
type fakeThrowRepo struct {
	mu       sync.Mutex
	nextID   int
	drafts   map[int]store.ThrowDraft
	records  []store.ThrowRecord
	failNext error

	discardEntered chan struct{}
	discardRelease chan struct{}
}

func newFakeThrowRepo() *fakeThrowRepo {
	return &fakeThrowRepo{drafts: make(map[int]store.ThrowDraft)}
}

func (f *fakeThrowRepo) failOnce(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = err
}

func (f *fakeThrowRepo) takeFail() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeThrowRepo) InsertDraft(_ context.Context, d store.ThrowDraft) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFail(); err != nil {
		return 0, err
	}
	f.nextID++
	d.ID = f.nextID
	f.drafts[d.ID] = d
	return d.ID, nil
}

func (f *fakeThrowRepo) DeleteDraft(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFail(); err != nil {
		return err
	}
	delete(f.drafts, id)
	return nil
}

func (f *fakeThrowRepo) DeleteLastDraft(_ context.Context, userID int, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFail(); err != nil {
		return err
	}
	last := 0
	for id, d := range f.drafts {
		if d.UserID == userID && d.SessionID == sessionID && id > last {
			last = id
		}
	}
	delete(f.drafts, last)
	return nil
}

func (f *fakeThrowRepo) DraftsByIDs(_ context.Context, ids []int) ([]store.ThrowDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFail(); err != nil {
		return nil, err
	}
	var out []store.ThrowDraft
	for _, id := range ids {
		if d, ok := f.drafts[id]; ok {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeThrowRepo) ListDrafts(_ context.Context, userID int, sessionID string) ([]store.ThrowDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.ThrowDraft
	for _, d := range f.drafts {
		if d.UserID == userID && d.SessionID == sessionID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeThrowRepo) CountDrafts(_ context.Context, userID int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, d := range f.drafts {
		if d.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeThrowRepo) CommitDrafts(_ context.Context, drafts []store.ThrowDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFail(); err != nil {
		return err
	}
	for _, d := range drafts {
		f.records = append(f.records, store.ThrowRecord{
			ID:        len(f.records) + 1,
			UserID:    d.UserID,
			Distance:  d.Distance,
			Angle:     d.Angle,
			Env:       d.Env,
			IsSuccess: d.IsSuccess,
			Timestamp: d.Timestamp,
		})
		delete(f.drafts, d.ID)
	}
	return nil
}

// blockDiscards makes every subsequent DiscardDrafts call signal arrival
// on the returned channel and wait for release before touching state.
func (f *fakeThrowRepo) blockDiscards() (entered <-chan struct{}, release func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.discardEntered = make(chan struct{}, 8)
	f.discardRelease = make(chan struct{})
	return f.discardEntered, func() { close(f.discardRelease) }
}

func (f *fakeThrowRepo) DiscardDrafts(_ context.Context, ids []int) error {
	f.mu.Lock()
	entered, release := f.discardEntered, f.discardRelease
	f.mu.Unlock()
	if entered != nil {
		entered <- struct{}{}
		<-release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFail(); err != nil {
		return err
	}
	for _, id := range ids {
		delete(f.drafts, id)
	}
	return nil
}

func (f *fakeThrowRepo) ListRecords(_ context.Context) ([]store.ThrowRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.ThrowRecord(nil), f.records...), nil
}

func (f *fakeThrowRepo) RecordsForUser(_ context.Context, userID int) ([]store.ThrowRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.ThrowRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeThrowRepo) RecordByID(_ context.Context, id int) (*store.ThrowRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.ID == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeThrowRepo) UpdateRecord(_ context.Context, rec store.ThrowRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.records {
		if r.ID == rec.ID {
			f.records[i] = rec
		}
	}
	return nil
}

func (f *fakeThrowRepo) DeleteRecord(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.records[:0]
	for _, r := range f.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return nil
}

func (f *fakeThrowRepo) draftCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.drafts)
}

// fakeUserRepo is an in-memory UserRepo. Deleting a user cascades drafts
// and records through the linked throw repo, mirroring the schema-level
// cascade.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[int]store.User
	throws *fakeThrowRepo
}

func newFakeUserRepo(throws *fakeThrowRepo) *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]store.User), throws: throws}
}

func (f *fakeUserRepo) Insert(_ context.Context, name string) (*store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	u := store.User{ID: f.nextID, Name: name}
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserRepo) ByID(_ context.Context, id int) (*store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) ByName(_ context.Context, name string) (*store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Name, name) {
			match := u
			return &match, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) All(_ context.Context) ([]store.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	delete(f.users, id)
	f.mu.Unlock()

	// Schema-level cascade.
	f.throws.mu.Lock()
	defer f.throws.mu.Unlock()
	for did, d := range f.throws.drafts {
		if d.UserID == id {
			delete(f.throws.drafts, did)
		}
	}
	kept := f.throws.records[:0]
	for _, r := range f.throws.records {
		if r.UserID != id {
			kept = append(kept, r)
		}
	}
	f.throws.records = kept
	return nil
}

func (f *fakeUserRepo) EnsureDefault(ctx context.Context) (*store.User, error) {
	if u, _ := f.ByName(ctx, store.DefaultUserName); u != nil {
		return u, nil
	}
	return f.Insert(ctx, store.DefaultUserName)
}
