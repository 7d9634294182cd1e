// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/capitalcalldetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/distributiondetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/document"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/processinglog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CapitalCallDetail is the client for interacting with the CapitalCallDetail builders.
	CapitalCallDetail *CapitalCallDetailClient
	// DistributionDetail is the client for interacting with the DistributionDetail builders.
	DistributionDetail *DistributionDetailClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// ProcessingLog is the client for interacting with the ProcessingLog builders.
	ProcessingLog *ProcessingLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CapitalCallDetail = NewCapitalCallDetailClient(c.config)
	c.DistributionDetail = NewDistributionDetailClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.ProcessingLog = NewProcessingLogClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		CapitalCallDetail:  NewCapitalCallDetailClient(cfg),
		DistributionDetail: NewDistributionDetailClient(cfg),
		Document:           NewDocumentClient(cfg),
		ProcessingLog:      NewProcessingLogClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		CapitalCallDetail:  NewCapitalCallDetailClient(cfg),
		DistributionDetail: NewDistributionDetailClient(cfg),
		Document:           NewDocumentClient(cfg),
		ProcessingLog:      NewProcessingLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CapitalCallDetail.
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
	c.CapitalCallDetail.Use(hooks...)
	c.DistributionDetail.Use(hooks...)
	c.Document.Use(hooks...)
	c.ProcessingLog.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CapitalCallDetail.Intercept(interceptors...)
	c.DistributionDetail.Intercept(interceptors...)
	c.Document.Intercept(interceptors...)
	c.ProcessingLog.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CapitalCallDetailMutation:
		return c.CapitalCallDetail.mutate(ctx, m)
	case *DistributionDetailMutation:
		return c.DistributionDetail.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *ProcessingLogMutation:
		return c.ProcessingLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CapitalCallDetailClient is a client for the CapitalCallDetail schema.
type CapitalCallDetailClient struct {
	config
}

// NewCapitalCallDetailClient returns a client for the CapitalCallDetail from the given config.
func NewCapitalCallDetailClient(c config) *CapitalCallDetailClient {
	return &CapitalCallDetailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `capitalcalldetail.Hooks(f(g(h())))`.
func (c *CapitalCallDetailClient) Use(hooks ...Hook) {
	c.hooks.CapitalCallDetail = append(c.hooks.CapitalCallDetail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `capitalcalldetail.Intercept(f(g(h())))`.
func (c *CapitalCallDetailClient) Intercept(interceptors ...Interceptor) {
	c.inters.CapitalCallDetail = append(c.inters.CapitalCallDetail, interceptors...)
}

// Create returns a builder for creating a CapitalCallDetail entity.
func (c *CapitalCallDetailClient) Create() *CapitalCallDetailCreate {
	mutation := newCapitalCallDetailMutation(c.config, OpCreate)
	return &CapitalCallDetailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CapitalCallDetail entities.
func (c *CapitalCallDetailClient) CreateBulk(builders ...*CapitalCallDetailCreate) *CapitalCallDetailCreateBulk {
	return &CapitalCallDetailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CapitalCallDetailClient) MapCreateBulk(slice any, setFunc func(*CapitalCallDetailCreate, int)) *CapitalCallDetailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CapitalCallDetailCreateBulk{err: fmt.Errorf("calling to CapitalCallDetailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CapitalCallDetailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CapitalCallDetailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CapitalCallDetail.
func (c *CapitalCallDetailClient) Update() *CapitalCallDetailUpdate {
	mutation := newCapitalCallDetailMutation(c.config, OpUpdate)
	return &CapitalCallDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CapitalCallDetailClient) UpdateOne(_m *CapitalCallDetail) *CapitalCallDetailUpdateOne {
	mutation := newCapitalCallDetailMutation(c.config, OpUpdateOne, withCapitalCallDetail(_m))
	return &CapitalCallDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CapitalCallDetailClient) UpdateOneID(id uuid.UUID) *CapitalCallDetailUpdateOne {
	mutation := newCapitalCallDetailMutation(c.config, OpUpdateOne, withCapitalCallDetailID(id))
	return &CapitalCallDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CapitalCallDetail.
func (c *CapitalCallDetailClient) Delete() *CapitalCallDetailDelete {
	mutation := newCapitalCallDetailMutation(c.config, OpDelete)
	return &CapitalCallDetailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CapitalCallDetailClient) DeleteOne(_m *CapitalCallDetail) *CapitalCallDetailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CapitalCallDetailClient) DeleteOneID(id uuid.UUID) *CapitalCallDetailDeleteOne {
	builder := c.Delete().Where(capitalcalldetail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CapitalCallDetailDeleteOne{builder}
}

// Query returns a query builder for CapitalCallDetail.
func (c *CapitalCallDetailClient) Query() *CapitalCallDetailQuery {
	return &CapitalCallDetailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCapitalCallDetail},
		inters: c.Interceptors(),
	}
}

// Get returns a CapitalCallDetail entity by its id.
func (c *CapitalCallDetailClient) Get(ctx context.Context, id uuid.UUID) (*CapitalCallDetail, error) {
	return c.Query().Where(capitalcalldetail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CapitalCallDetailClient) GetX(ctx context.Context, id uuid.UUID) *CapitalCallDetail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a CapitalCallDetail.
func (c *CapitalCallDetailClient) QueryDocument(_m *CapitalCallDetail) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(capitalcalldetail.Table, capitalcalldetail.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, capitalcalldetail.DocumentTable, capitalcalldetail.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CapitalCallDetailClient) Hooks() []Hook {
	return c.hooks.CapitalCallDetail
}

// Interceptors returns the client interceptors.
func (c *CapitalCallDetailClient) Interceptors() []Interceptor {
	return c.inters.CapitalCallDetail
}

func (c *CapitalCallDetailClient) mutate(ctx context.Context, m *CapitalCallDetailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CapitalCallDetailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CapitalCallDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CapitalCallDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CapitalCallDetailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CapitalCallDetail mutation op: %q", m.Op())
	}
}

// DistributionDetailClient is a client for the DistributionDetail schema.
type DistributionDetailClient struct {
	config
}

// NewDistributionDetailClient returns a client for the DistributionDetail from the given config.
func NewDistributionDetailClient(c config) *DistributionDetailClient {
	return &DistributionDetailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `distributiondetail.Hooks(f(g(h())))`.
func (c *DistributionDetailClient) Use(hooks ...Hook) {
	c.hooks.DistributionDetail = append(c.hooks.DistributionDetail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `distributiondetail.Intercept(f(g(h())))`.
func (c *DistributionDetailClient) Intercept(interceptors ...Interceptor) {
	c.inters.DistributionDetail = append(c.inters.DistributionDetail, interceptors...)
}

// Create returns a builder for creating a DistributionDetail entity.
func (c *DistributionDetailClient) Create() *DistributionDetailCreate {
	mutation := newDistributionDetailMutation(c.config, OpCreate)
	return &DistributionDetailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DistributionDetail entities.
func (c *DistributionDetailClient) CreateBulk(builders ...*DistributionDetailCreate) *DistributionDetailCreateBulk {
	return &DistributionDetailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DistributionDetailClient) MapCreateBulk(slice any, setFunc func(*DistributionDetailCreate, int)) *DistributionDetailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DistributionDetailCreateBulk{err: fmt.Errorf("calling to DistributionDetailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DistributionDetailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DistributionDetailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DistributionDetail.
func (c *DistributionDetailClient) Update() *DistributionDetailUpdate {
	mutation := newDistributionDetailMutation(c.config, OpUpdate)
	return &DistributionDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DistributionDetailClient) UpdateOne(_m *DistributionDetail) *DistributionDetailUpdateOne {
	mutation := newDistributionDetailMutation(c.config, OpUpdateOne, withDistributionDetail(_m))
	return &DistributionDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DistributionDetailClient) UpdateOneID(id uuid.UUID) *DistributionDetailUpdateOne {
	mutation := newDistributionDetailMutation(c.config, OpUpdateOne, withDistributionDetailID(id))
	return &DistributionDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DistributionDetail.
func (c *DistributionDetailClient) Delete() *DistributionDetailDelete {
	mutation := newDistributionDetailMutation(c.config, OpDelete)
	return &DistributionDetailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DistributionDetailClient) DeleteOne(_m *DistributionDetail) *DistributionDetailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DistributionDetailClient) DeleteOneID(id uuid.UUID) *DistributionDetailDeleteOne {
	builder := c.Delete().Where(distributiondetail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DistributionDetailDeleteOne{builder}
}

// Query returns a query builder for DistributionDetail.
func (c *DistributionDetailClient) Query() *DistributionDetailQuery {
	return &DistributionDetailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDistributionDetail},
		inters: c.Interceptors(),
	}
}

// Get returns a DistributionDetail entity by its id.
func (c *DistributionDetailClient) Get(ctx context.Context, id uuid.UUID) (*DistributionDetail, error) {
	return c.Query().Where(distributiondetail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DistributionDetailClient) GetX(ctx context.Context, id uuid.UUID) *DistributionDetail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a DistributionDetail.
func (c *DistributionDetailClient) QueryDocument(_m *DistributionDetail) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(distributiondetail.Table, distributiondetail.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, distributiondetail.DocumentTable, distributiondetail.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DistributionDetailClient) Hooks() []Hook {
	return c.hooks.DistributionDetail
}

// Interceptors returns the client interceptors.
func (c *DistributionDetailClient) Interceptors() []Interceptor {
	return c.inters.DistributionDetail
}

func (c *DistributionDetailClient) mutate(ctx context.Context, m *DistributionDetailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DistributionDetailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DistributionDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DistributionDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DistributionDetailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DistributionDetail mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCapitalCallDetail queries the capital_call_detail edge of a Document.
func (c *DocumentClient) QueryCapitalCallDetail(_m *Document) *CapitalCallDetailQuery {
	query := (&CapitalCallDetailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(capitalcalldetail.Table, capitalcalldetail.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, document.CapitalCallDetailTable, document.CapitalCallDetailColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDistributionDetail queries the distribution_detail edge of a Document.
func (c *DocumentClient) QueryDistributionDetail(_m *Document) *DistributionDetailQuery {
	query := (&DistributionDetailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(distributiondetail.Table, distributiondetail.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, document.DistributionDetailTable, document.DistributionDetailColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogs queries the logs edge of a Document.
func (c *DocumentClient) QueryLogs(_m *Document) *ProcessingLogQuery {
	query := (&ProcessingLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(processinglog.Table, processinglog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.LogsTable, document.LogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// ProcessingLogClient is a client for the ProcessingLog schema.
type ProcessingLogClient struct {
	config
}

// NewProcessingLogClient returns a client for the ProcessingLog from the given config.
func NewProcessingLogClient(c config) *ProcessingLogClient {
	return &ProcessingLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processinglog.Hooks(f(g(h())))`.
func (c *ProcessingLogClient) Use(hooks ...Hook) {
	c.hooks.ProcessingLog = append(c.hooks.ProcessingLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processinglog.Intercept(f(g(h())))`.
func (c *ProcessingLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingLog = append(c.inters.ProcessingLog, interceptors...)
}

// Create returns a builder for creating a ProcessingLog entity.
func (c *ProcessingLogClient) Create() *ProcessingLogCreate {
	mutation := newProcessingLogMutation(c.config, OpCreate)
	return &ProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingLog entities.
func (c *ProcessingLogClient) CreateBulk(builders ...*ProcessingLogCreate) *ProcessingLogCreateBulk {
	return &ProcessingLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingLogClient) MapCreateBulk(slice any, setFunc func(*ProcessingLogCreate, int)) *ProcessingLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingLogCreateBulk{err: fmt.Errorf("calling to ProcessingLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingLog.
func (c *ProcessingLogClient) Update() *ProcessingLogUpdate {
	mutation := newProcessingLogMutation(c.config, OpUpdate)
	return &ProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingLogClient) UpdateOne(_m *ProcessingLog) *ProcessingLogUpdateOne {
	mutation := newProcessingLogMutation(c.config, OpUpdateOne, withProcessingLog(_m))
	return &ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingLogClient) UpdateOneID(id uuid.UUID) *ProcessingLogUpdateOne {
	mutation := newProcessingLogMutation(c.config, OpUpdateOne, withProcessingLogID(id))
	return &ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingLog.
func (c *ProcessingLogClient) Delete() *ProcessingLogDelete {
	mutation := newProcessingLogMutation(c.config, OpDelete)
	return &ProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingLogClient) DeleteOne(_m *ProcessingLog) *ProcessingLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingLogClient) DeleteOneID(id uuid.UUID) *ProcessingLogDeleteOne {
	builder := c.Delete().Where(processinglog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingLogDeleteOne{builder}
}

// Query returns a query builder for ProcessingLog.
func (c *ProcessingLogClient) Query() *ProcessingLogQuery {
	return &ProcessingLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingLog entity by its id.
func (c *ProcessingLogClient) Get(ctx context.Context, id uuid.UUID) (*ProcessingLog, error) {
	return c.Query().Where(processinglog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingLogClient) GetX(ctx context.Context, id uuid.UUID) *ProcessingLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ProcessingLog.
func (c *ProcessingLogClient) QueryDocument(_m *ProcessingLog) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processinglog.Table, processinglog.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processinglog.DocumentTable, processinglog.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessingLogClient) Hooks() []Hook {
	return c.hooks.ProcessingLog
}

// Interceptors returns the client interceptors.
func (c *ProcessingLogClient) Interceptors() []Interceptor {
	return c.inters.ProcessingLog
}

func (c *ProcessingLogClient) mutate(ctx context.Context, m *ProcessingLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CapitalCallDetail, DistributionDetail, Document, ProcessingLog []ent.Hook
	}
	inters struct {
		CapitalCallDetail, DistributionDetail, Document, ProcessingLog []ent.Interceptor
	}
)
