// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/molkkylog/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/molkkylog/ent/throwdraft"
	"github.com/abhisek/molkkylog/ent/throwrecord"
	"github.com/abhisek/molkkylog/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ThrowDraft is the client for interacting with the ThrowDraft builders.
	ThrowDraft *ThrowDraftClient
	// ThrowRecord is the client for interacting with the ThrowRecord builders.
	ThrowRecord *ThrowRecordClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ThrowDraft = NewThrowDraftClient(c.config)
	c.ThrowRecord = NewThrowRecordClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		ThrowDraft:  NewThrowDraftClient(cfg),
		ThrowRecord: NewThrowRecordClient(cfg),
		User:        NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		ThrowDraft:  NewThrowDraftClient(cfg),
		ThrowRecord: NewThrowRecordClient(cfg),
		User:        NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ThrowDraft.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ThrowDraft.Use(hooks...)
	c.ThrowRecord.Use(hooks...)
	c.User.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ThrowDraft.Intercept(interceptors...)
	c.ThrowRecord.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ThrowDraftMutation:
		return c.ThrowDraft.mutate(ctx, m)
	case *ThrowRecordMutation:
		return c.ThrowRecord.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ThrowDraftClient is a client for the ThrowDraft schema.
type ThrowDraftClient struct {
	config
}

// NewThrowDraftClient returns a client for the ThrowDraft from the given config.
func NewThrowDraftClient(c config) *ThrowDraftClient {
	return &ThrowDraftClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `throwdraft.Hooks(f(g(h())))`.
func (c *ThrowDraftClient) Use(hooks ...Hook) {
	c.hooks.ThrowDraft = append(c.hooks.ThrowDraft, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `throwdraft.Intercept(f(g(h())))`.
func (c *ThrowDraftClient) Intercept(interceptors ...Interceptor) {
	c.inters.ThrowDraft = append(c.inters.ThrowDraft, interceptors...)
}

// Create returns a builder for creating a ThrowDraft entity.
func (c *ThrowDraftClient) Create() *ThrowDraftCreate {
	mutation := newThrowDraftMutation(c.config, OpCreate)
	return &ThrowDraftCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ThrowDraft entities.
func (c *ThrowDraftClient) CreateBulk(builders ...*ThrowDraftCreate) *ThrowDraftCreateBulk {
	return &ThrowDraftCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThrowDraftClient) MapCreateBulk(slice any, setFunc func(*ThrowDraftCreate, int)) *ThrowDraftCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThrowDraftCreateBulk{err: fmt.Errorf("calling to ThrowDraftClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThrowDraftCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThrowDraftCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ThrowDraft.
func (c *ThrowDraftClient) Update() *ThrowDraftUpdate {
	mutation := newThrowDraftMutation(c.config, OpUpdate)
	return &ThrowDraftUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThrowDraftClient) UpdateOne(_m *ThrowDraft) *ThrowDraftUpdateOne {
	mutation := newThrowDraftMutation(c.config, OpUpdateOne, withThrowDraft(_m))
	return &ThrowDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThrowDraftClient) UpdateOneID(id int) *ThrowDraftUpdateOne {
	mutation := newThrowDraftMutation(c.config, OpUpdateOne, withThrowDraftID(id))
	return &ThrowDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ThrowDraft.
func (c *ThrowDraftClient) Delete() *ThrowDraftDelete {
	mutation := newThrowDraftMutation(c.config, OpDelete)
	return &ThrowDraftDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThrowDraftClient) DeleteOne(_m *ThrowDraft) *ThrowDraftDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThrowDraftClient) DeleteOneID(id int) *ThrowDraftDeleteOne {
	builder := c.Delete().Where(throwdraft.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThrowDraftDeleteOne{builder}
}

// Query returns a query builder for ThrowDraft.
func (c *ThrowDraftClient) Query() *ThrowDraftQuery {
	return &ThrowDraftQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThrowDraft},
		inters: c.Interceptors(),
	}
}

// Get returns a ThrowDraft entity by its id.
func (c *ThrowDraftClient) Get(ctx context.Context, id int) (*ThrowDraft, error) {
	return c.Query().Where(throwdraft.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThrowDraftClient) GetX(ctx context.Context, id int) *ThrowDraft {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a ThrowDraft.
func (c *ThrowDraftClient) QueryOwner(_m *ThrowDraft) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(throwdraft.Table, throwdraft.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, throwdraft.OwnerTable, throwdraft.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ThrowDraftClient) Hooks() []Hook {
	return c.hooks.ThrowDraft
}

// Interceptors returns the client interceptors.
func (c *ThrowDraftClient) Interceptors() []Interceptor {
	return c.inters.ThrowDraft
}

func (c *ThrowDraftClient) mutate(ctx context.Context, m *ThrowDraftMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThrowDraftCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThrowDraftUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThrowDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThrowDraftDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ThrowDraft mutation op: %q", m.Op())
	}
}

// ThrowRecordClient is a client for the ThrowRecord schema.
type ThrowRecordClient struct {
	config
}

// NewThrowRecordClient returns a client for the ThrowRecord from the given config.
func NewThrowRecordClient(c config) *ThrowRecordClient {
	return &ThrowRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `throwrecord.Hooks(f(g(h())))`.
func (c *ThrowRecordClient) Use(hooks ...Hook) {
	c.hooks.ThrowRecord = append(c.hooks.ThrowRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `throwrecord.Intercept(f(g(h())))`.
func (c *ThrowRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ThrowRecord = append(c.inters.ThrowRecord, interceptors...)
}

// Create returns a builder for creating a ThrowRecord entity.
func (c *ThrowRecordClient) Create() *ThrowRecordCreate {
	mutation := newThrowRecordMutation(c.config, OpCreate)
	return &ThrowRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ThrowRecord entities.
func (c *ThrowRecordClient) CreateBulk(builders ...*ThrowRecordCreate) *ThrowRecordCreateBulk {
	return &ThrowRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThrowRecordClient) MapCreateBulk(slice any, setFunc func(*ThrowRecordCreate, int)) *ThrowRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThrowRecordCreateBulk{err: fmt.Errorf("calling to ThrowRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThrowRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThrowRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ThrowRecord.
func (c *ThrowRecordClient) Update() *ThrowRecordUpdate {
	mutation := newThrowRecordMutation(c.config, OpUpdate)
	return &ThrowRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThrowRecordClient) UpdateOne(_m *ThrowRecord) *ThrowRecordUpdateOne {
	mutation := newThrowRecordMutation(c.config, OpUpdateOne, withThrowRecord(_m))
	return &ThrowRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThrowRecordClient) UpdateOneID(id int) *ThrowRecordUpdateOne {
	mutation := newThrowRecordMutation(c.config, OpUpdateOne, withThrowRecordID(id))
	return &ThrowRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ThrowRecord.
func (c *ThrowRecordClient) Delete() *ThrowRecordDelete {
	mutation := newThrowRecordMutation(c.config, OpDelete)
	return &ThrowRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThrowRecordClient) DeleteOne(_m *ThrowRecord) *ThrowRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThrowRecordClient) DeleteOneID(id int) *ThrowRecordDeleteOne {
	builder := c.Delete().Where(throwrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThrowRecordDeleteOne{builder}
}

// Query returns a query builder for ThrowRecord.
func (c *ThrowRecordClient) Query() *ThrowRecordQuery {
	return &ThrowRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThrowRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ThrowRecord entity by its id.
func (c *ThrowRecordClient) Get(ctx context.Context, id int) (*ThrowRecord, error) {
	return c.Query().Where(throwrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThrowRecordClient) GetX(ctx context.Context, id int) *ThrowRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a ThrowRecord.
func (c *ThrowRecordClient) QueryOwner(_m *ThrowRecord) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(throwrecord.Table, throwrecord.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, throwrecord.OwnerTable, throwrecord.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ThrowRecordClient) Hooks() []Hook {
	return c.hooks.ThrowRecord
}

// Interceptors returns the client interceptors.
func (c *ThrowRecordClient) Interceptors() []Interceptor {
	return c.inters.ThrowRecord
}

func (c *ThrowRecordClient) mutate(ctx context.Context, m *ThrowRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThrowRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThrowRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThrowRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThrowRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ThrowRecord mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDrafts queries the drafts edge of a User.
func (c *UserClient) QueryDrafts(_m *User) *ThrowDraftQuery {
	query := (&ThrowDraftClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(throwdraft.Table, throwdraft.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.DraftsTable, user.DraftsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecords queries the records edge of a User.
func (c *UserClient) QueryRecords(_m *User) *ThrowRecordQuery {
	query := (&ThrowRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(throwrecord.Table, throwrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.RecordsTable, user.RecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ThrowDraft, ThrowRecord, User []ent.Hook
	}
	inters struct {
		ThrowDraft, ThrowRecord, User []ent.Interceptor
	}
)
