package store

import (
	"context"
	"fmt"

	"github.com/abhisek/molkkylog/ent"
	"github.com/abhisek/molkkylog/ent/throwdraft"
	"github.com/abhisek/molkkylog/ent/throwrecord"
)

// throwRepo implements ThrowRepo using the ent client.
type throwRepo struct {
	client *ent.Client
}

func (r *throwRepo) InsertDraft(ctx context.Context, d ThrowDraft) (int, error) {
	created, err := r.client.ThrowDraft.Create().
		SetUserID(d.UserID).
		SetSessionID(d.SessionID).
		SetDistance(d.Distance).
		SetAngle(throwdraft.Angle(d.Angle)).
		SetNillableWeather(d.Env.Weather).
		SetNillableHumidity(d.Env.Humidity).
		SetNillableTemperature(d.Env.Temperature).
		SetNillableSoil(d.Env.Soil).
		SetNillableMolkkyWeight(d.Env.MolkkyWeight).
		SetIsSuccess(d.IsSuccess).
		SetTimestamp(d.Timestamp).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("insert draft: %w", err)
	}
	return created.ID, nil
}

func (r *throwRepo) DeleteDraft(ctx context.Context, id int) error {
	_, err := r.client.ThrowDraft.Delete().
		Where(throwdraft.ID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete draft %d: %w", id, err)
	}
	return nil
}

func (r *throwRepo) DeleteLastDraft(ctx context.Context, userID int, sessionID string) error {
	last, err := r.client.ThrowDraft.Query().
		Where(throwdraft.UserID(userID), throwdraft.SessionID(sessionID)).
		Order(ent.Desc(throwdraft.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("query last draft: %w", err)
	}
	if err := r.client.ThrowDraft.DeleteOne(last).Exec(ctx); err != nil {
		return fmt.Errorf("delete last draft: %w", err)
	}
	return nil
}

func (r *throwRepo) DraftsByIDs(ctx context.Context, ids []int) ([]ThrowDraft, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.client.ThrowDraft.Query().
		Where(throwdraft.IDIn(ids...)).
		Order(ent.Asc(throwdraft.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query drafts by ids: %w", err)
	}
	drafts := make([]ThrowDraft, 0, len(rows))
	for _, row := range rows {
		drafts = append(drafts, entDraftToDraft(row))
	}
	return drafts, nil
}

func (r *throwRepo) ListDrafts(ctx context.Context, userID int, sessionID string) ([]ThrowDraft, error) {
	rows, err := r.client.ThrowDraft.Query().
		Where(throwdraft.UserID(userID), throwdraft.SessionID(sessionID)).
		Order(ent.Asc(throwdraft.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	drafts := make([]ThrowDraft, 0, len(rows))
	for _, row := range rows {
		drafts = append(drafts, entDraftToDraft(row))
	}
	return drafts, nil
}

func (r *throwRepo) CountDrafts(ctx context.Context, userID int) (int, error) {
	n, err := r.client.ThrowDraft.Query().
		Where(throwdraft.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count drafts: %w", err)
	}
	return n, nil
}

func (r *throwRepo) CommitDrafts(ctx context.Context, drafts []ThrowDraft) error {
	if len(drafts) == 0 {
		return nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin commit tx: %w", err)
	}

	builders := make([]*ent.ThrowRecordCreate, 0, len(drafts))
	ids := make([]int, 0, len(drafts))
	for _, d := range drafts {
		builders = append(builders, tx.ThrowRecord.Create().
			SetUserID(d.UserID).
			SetDistance(d.Distance).
			SetAngle(throwrecord.Angle(d.Angle)).
			SetNillableWeather(d.Env.Weather).
			SetNillableHumidity(d.Env.Humidity).
			SetNillableTemperature(d.Env.Temperature).
			SetNillableSoil(d.Env.Soil).
			SetNillableMolkkyWeight(d.Env.MolkkyWeight).
			SetIsSuccess(d.IsSuccess).
			SetTimestamp(d.Timestamp))
		ids = append(ids, d.ID)
	}

	if _, err := tx.ThrowRecord.CreateBulk(builders...).Save(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("insert records: %w", err)
	}
	if _, err := tx.ThrowDraft.Delete().Where(throwdraft.IDIn(ids...)).Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete committed drafts: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit drafts tx: %w", err)
	}
	return nil
}

func (r *throwRepo) DiscardDrafts(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.client.ThrowDraft.Delete().
		Where(throwdraft.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("discard drafts: %w", err)
	}
	return nil
}

func (r *throwRepo) ListRecords(ctx context.Context) ([]ThrowRecord, error) {
	rows, err := r.client.ThrowRecord.Query().
		Order(ent.Desc(throwrecord.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	records := make([]ThrowRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entRecordToRecord(row))
	}
	return records, nil
}

func (r *throwRepo) RecordsForUser(ctx context.Context, userID int) ([]ThrowRecord, error) {
	rows, err := r.client.ThrowRecord.Query().
		Where(throwrecord.UserID(userID)).
		Order(ent.Desc(throwrecord.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records for user %d: %w", userID, err)
	}
	records := make([]ThrowRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entRecordToRecord(row))
	}
	return records, nil
}

func (r *throwRepo) RecordByID(ctx context.Context, id int) (*ThrowRecord, error) {
	row, err := r.client.ThrowRecord.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get record %d: %w", id, err)
	}
	rec := entRecordToRecord(row)
	return &rec, nil
}

func (r *throwRepo) UpdateRecord(ctx context.Context, rec ThrowRecord) error {
	err := r.client.ThrowRecord.UpdateOneID(rec.ID).
		SetDistance(rec.Distance).
		SetAngle(throwrecord.Angle(rec.Angle)).
		SetNillableWeather(rec.Env.Weather).
		SetNillableHumidity(rec.Env.Humidity).
		SetNillableTemperature(rec.Env.Temperature).
		SetNillableSoil(rec.Env.Soil).
		SetNillableMolkkyWeight(rec.Env.MolkkyWeight).
		SetIsSuccess(rec.IsSuccess).
		SetTimestamp(rec.Timestamp).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update record %d: %w", rec.ID, err)
	}
	return nil
}

func (r *throwRepo) DeleteRecord(ctx context.Context, id int) error {
	_, err := r.client.ThrowRecord.Delete().
		Where(throwrecord.ID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}
	return nil
}

// entDraftToDraft converts an ent row to the repo's plain struct.
func entDraftToDraft(row *ent.ThrowDraft) ThrowDraft {
	return ThrowDraft{
		ID:        row.ID,
		UserID:    row.UserID,
		SessionID: row.SessionID,
		Distance:  row.Distance,
		Angle:     Angle(row.Angle),
		Env: Environment{
			Weather:      row.Weather,
			Humidity:     row.Humidity,
			Temperature:  row.Temperature,
			Soil:         row.Soil,
			MolkkyWeight: row.MolkkyWeight,
		},
		IsSuccess: row.IsSuccess,
		Timestamp: row.Timestamp,
	}
}

// entRecordToRecord converts an ent row to the repo's plain struct.
func entRecordToRecord(row *ent.ThrowRecord) ThrowRecord {
	return ThrowRecord{
		ID:       row.ID,
		UserID:   row.UserID,
		Distance: row.Distance,
		Angle:    Angle(row.Angle),
		Env: Environment{
			Weather:      row.Weather,
			Humidity:     row.Humidity,
			Temperature:  row.Temperature,
			Soil:         row.Soil,
			MolkkyWeight: row.MolkkyWeight,
		},
		IsSuccess: row.IsSuccess,
		Timestamp: row.Timestamp,
	}
}
