// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ThrowDraftsColumns holds the columns for the "throw_drafts" table.
	ThrowDraftsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "distance", Type: field.TypeFloat64},
		{Name: "angle", Type: field.TypeEnum, Enums: []string{"LEFT", "CENTER", "RIGHT"}},
		{Name: "weather", Type: field.TypeString, Nullable: true},
		{Name: "humidity", Type: field.TypeFloat64, Nullable: true},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "soil", Type: field.TypeString, Nullable: true},
		{Name: "molkky_weight", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_success", Type: field.TypeBool},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ThrowDraftsTable holds the schema information for the "throw_drafts" table.
	ThrowDraftsTable = &schema.Table{
		Name:       "throw_drafts",
		Columns:    ThrowDraftsColumns,
		PrimaryKey: []*schema.Column{ThrowDraftsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "throw_drafts_users_drafts",
				Columns:    []*schema.Column{ThrowDraftsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "throwdraft_user_id_session_id",
				Unique:  false,
				Columns: []*schema.Column{ThrowDraftsColumns[11], ThrowDraftsColumns[1]},
			},
			{
				Name:    "throwdraft_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ThrowDraftsColumns[10]},
			},
		},
	}
	// ThrowRecordsColumns holds the columns for the "throw_records" table.
	ThrowRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "distance", Type: field.TypeFloat64},
		{Name: "angle", Type: field.TypeEnum, Enums: []string{"LEFT", "CENTER", "RIGHT"}},
		{Name: "weather", Type: field.TypeString, Nullable: true},
		{Name: "humidity", Type: field.TypeFloat64, Nullable: true},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "soil", Type: field.TypeString, Nullable: true},
		{Name: "molkky_weight", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_success", Type: field.TypeBool},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ThrowRecordsTable holds the schema information for the "throw_records" table.
	ThrowRecordsTable = &schema.Table{
		Name:       "throw_records",
		Columns:    ThrowRecordsColumns,
		PrimaryKey: []*schema.Column{ThrowRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "throw_records_users_records",
				Columns:    []*schema.Column{ThrowRecordsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "throwrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{ThrowRecordsColumns[10]},
			},
			{
				Name:    "throwrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ThrowRecordsColumns[9]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ThrowDraftsTable,
		ThrowRecordsTable,
		UsersTable,
	}
)

func init() {
	ThrowDraftsTable.ForeignKeys[0].RefTable = UsersTable
	ThrowRecordsTable.ForeignKeys[0].RefTable = UsersTable
}
