// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/quizzine/engine/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/quizzine/engine/ent/cachedsession"
	"github.com/quizzine/engine/ent/outboxentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CachedSession is the client for interacting with the CachedSession builders.
	CachedSession *CachedSessionClient
	// OutboxEntry is the client for interacting with the OutboxEntry builders.
	OutboxEntry *OutboxEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CachedSession = NewCachedSessionClient(c.config)
	c.OutboxEntry = NewOutboxEntryClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		CachedSession: NewCachedSessionClient(cfg),
		OutboxEntry:   NewOutboxEntryClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		CachedSession: NewCachedSessionClient(cfg),
		OutboxEntry:   NewOutboxEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CachedSession.
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
	c.CachedSession.Use(hooks...)
	c.OutboxEntry.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CachedSession.Intercept(interceptors...)
	c.OutboxEntry.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CachedSessionMutation:
		return c.CachedSession.mutate(ctx, m)
	case *OutboxEntryMutation:
		return c.OutboxEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CachedSessionClient is a client for the CachedSession schema.
type CachedSessionClient struct {
	config
}

// NewCachedSessionClient returns a client for the CachedSession from the given config.
func NewCachedSessionClient(c config) *CachedSessionClient {
	return &CachedSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cachedsession.Hooks(f(g(h())))`.
func (c *CachedSessionClient) Use(hooks ...Hook) {
	c.hooks.CachedSession = append(c.hooks.CachedSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cachedsession.Intercept(f(g(h())))`.
func (c *CachedSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CachedSession = append(c.inters.CachedSession, interceptors...)
}

// Create returns a builder for creating a CachedSession entity.
func (c *CachedSessionClient) Create() *CachedSessionCreate {
	mutation := newCachedSessionMutation(c.config, OpCreate)
	return &CachedSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CachedSession entities.
func (c *CachedSessionClient) CreateBulk(builders ...*CachedSessionCreate) *CachedSessionCreateBulk {
	return &CachedSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CachedSessionClient) MapCreateBulk(slice any, setFunc func(*CachedSessionCreate, int)) *CachedSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CachedSessionCreateBulk{err: fmt.Errorf("calling to CachedSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CachedSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CachedSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CachedSession.
func (c *CachedSessionClient) Update() *CachedSessionUpdate {
	mutation := newCachedSessionMutation(c.config, OpUpdate)
	return &CachedSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CachedSessionClient) UpdateOne(_m *CachedSession) *CachedSessionUpdateOne {
	mutation := newCachedSessionMutation(c.config, OpUpdateOne, withCachedSession(_m))
	return &CachedSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CachedSessionClient) UpdateOneID(id int) *CachedSessionUpdateOne {
	mutation := newCachedSessionMutation(c.config, OpUpdateOne, withCachedSessionID(id))
	return &CachedSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CachedSession.
func (c *CachedSessionClient) Delete() *CachedSessionDelete {
	mutation := newCachedSessionMutation(c.config, OpDelete)
	return &CachedSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CachedSessionClient) DeleteOne(_m *CachedSession) *CachedSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CachedSessionClient) DeleteOneID(id int) *CachedSessionDeleteOne {
	builder := c.Delete().Where(cachedsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CachedSessionDeleteOne{builder}
}

// Query returns a query builder for CachedSession.
func (c *CachedSessionClient) Query() *CachedSessionQuery {
	return &CachedSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCachedSession},
		inters: c.Interceptors(),
	}
}

// Get returns a CachedSession entity by its id.
func (c *CachedSessionClient) Get(ctx context.Context, id int) (*CachedSession, error) {
	return c.Query().Where(cachedsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CachedSessionClient) GetX(ctx context.Context, id int) *CachedSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CachedSessionClient) Hooks() []Hook {
	return c.hooks.CachedSession
}

// Interceptors returns the client interceptors.
func (c *CachedSessionClient) Interceptors() []Interceptor {
	return c.inters.CachedSession
}

func (c *CachedSessionClient) mutate(ctx context.Context, m *CachedSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CachedSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CachedSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CachedSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CachedSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CachedSession mutation op: %q", m.Op())
	}
}

// OutboxEntryClient is a client for the OutboxEntry schema.
type OutboxEntryClient struct {
	config
}

// NewOutboxEntryClient returns a client for the OutboxEntry from the given config.
func NewOutboxEntryClient(c config) *OutboxEntryClient {
	return &OutboxEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outboxentry.Hooks(f(g(h())))`.
func (c *OutboxEntryClient) Use(hooks ...Hook) {
	c.hooks.OutboxEntry = append(c.hooks.OutboxEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outboxentry.Intercept(f(g(h())))`.
func (c *OutboxEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutboxEntry = append(c.inters.OutboxEntry, interceptors...)
}

// Create returns a builder for creating a OutboxEntry entity.
func (c *OutboxEntryClient) Create() *OutboxEntryCreate {
	mutation := newOutboxEntryMutation(c.config, OpCreate)
	return &OutboxEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutboxEntry entities.
func (c *OutboxEntryClient) CreateBulk(builders ...*OutboxEntryCreate) *OutboxEntryCreateBulk {
	return &OutboxEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutboxEntryClient) MapCreateBulk(slice any, setFunc func(*OutboxEntryCreate, int)) *OutboxEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutboxEntryCreateBulk{err: fmt.Errorf("calling to OutboxEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutboxEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutboxEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutboxEntry.
func (c *OutboxEntryClient) Update() *OutboxEntryUpdate {
	mutation := newOutboxEntryMutation(c.config, OpUpdate)
	return &OutboxEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutboxEntryClient) UpdateOne(_m *OutboxEntry) *OutboxEntryUpdateOne {
	mutation := newOutboxEntryMutation(c.config, OpUpdateOne, withOutboxEntry(_m))
	return &OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutboxEntryClient) UpdateOneID(id int) *OutboxEntryUpdateOne {
	mutation := newOutboxEntryMutation(c.config, OpUpdateOne, withOutboxEntryID(id))
	return &OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutboxEntry.
func (c *OutboxEntryClient) Delete() *OutboxEntryDelete {
	mutation := newOutboxEntryMutation(c.config, OpDelete)
	return &OutboxEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutboxEntryClient) DeleteOne(_m *OutboxEntry) *OutboxEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutboxEntryClient) DeleteOneID(id int) *OutboxEntryDeleteOne {
	builder := c.Delete().Where(outboxentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutboxEntryDeleteOne{builder}
}

// Query returns a query builder for OutboxEntry.
func (c *OutboxEntryClient) Query() *OutboxEntryQuery {
	return &OutboxEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutboxEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a OutboxEntry entity by its id.
func (c *OutboxEntryClient) Get(ctx context.Context, id int) (*OutboxEntry, error) {
	return c.Query().Where(outboxentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutboxEntryClient) GetX(ctx context.Context, id int) *OutboxEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OutboxEntryClient) Hooks() []Hook {
	return c.hooks.OutboxEntry
}

// Interceptors returns the client interceptors.
func (c *OutboxEntryClient) Interceptors() []Interceptor {
	return c.inters.OutboxEntry
}

func (c *OutboxEntryClient) mutate(ctx context.Context, m *OutboxEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutboxEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutboxEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutboxEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutboxEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CachedSession, OutboxEntry []ent.Hook
	}
	inters struct {
		CachedSession, OutboxEntry []ent.Interceptor
	}
)
