package store

import "context"

// ThrowRepo is the only component allowed to touch the throw_draft and
// throw_record tables. Commit and Discard are all-or-nothing transactions:
// a failure leaves every draft exactly where it was.
type ThrowRepo interface {
	// InsertDraft stages one draft and returns its generated row id.
	InsertDraft(ctx context.Context, d ThrowDraft) (int, error)

	// DeleteDraft removes a single draft by id. Missing ids are not an error.
	DeleteDraft(ctx context.Context, id int) error

	// DeleteLastDraft removes the highest-id draft in a (user, session) scope.
	DeleteLastDraft(ctx context.Context, userID int, sessionID string) error

	// DraftsByIDs fetches the drafts that still exist among ids, in
	// ascending id (insertion) order. Missing ids are silently dropped.
	DraftsByIDs(ctx context.Context, ids []int) ([]ThrowDraft, error)

	// ListDrafts returns all drafts in a (user, session) scope in
	// insertion order.
	ListDrafts(ctx context.Context, userID int, sessionID string) ([]ThrowDraft, error)

	// CountDrafts returns the number of staged drafts for a user.
	CountDrafts(ctx context.Context, userID int) (int, error)

	// CommitDrafts converts drafts into records and deletes the source
	// drafts in one transaction.
	CommitDrafts(ctx context.Context, drafts []ThrowDraft) error

	// DiscardDrafts deletes the given draft ids in one transaction,
	// creating no records.
	DiscardDrafts(ctx context.Context, ids []int) error

	// ListRecords returns all committed records, newest first.
	ListRecords(ctx context.Context) ([]ThrowRecord, error)

	// RecordsForUser returns a user's committed records, newest first.
	RecordsForUser(ctx context.Context, userID int) ([]ThrowRecord, error)

	// RecordByID returns a record, or nil if it does not exist.
	RecordByID(ctx context.Context, id int) (*ThrowRecord, error)

	// UpdateRecord overwrites a record's payload (explicit edit from the
	// historical view).
	UpdateRecord(ctx context.Context, r ThrowRecord) error

	// DeleteRecord removes a record by id.
	DeleteRecord(ctx context.Context, id int) error
}

// UserRepo manages player identities.
type UserRepo interface {
	// Insert creates a user and returns it with its assigned id.
	Insert(ctx context.Context, name string) (*User, error)

	// ByID returns a user, or nil if absent.
	ByID(ctx context.Context, id int) (*User, error)

	// ByName returns a user matched case-insensitively, or nil if absent.
	ByName(ctx context.Context, name string) (*User, error)

	// All returns every user ordered by name.
	All(ctx context.Context) ([]User, error)

	// Delete removes a user. Drafts and records cascade at the schema level.
	Delete(ctx context.Context, id int) error

	// EnsureDefault creates the protected default user if it is missing
	// and returns it.
	EnsureDefault(ctx context.Context) (*User, error)
}
