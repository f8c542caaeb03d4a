// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"slopewatch.io/slopewatch/ent/deliveryqueueentry"
	"slopewatch.io/slopewatch/ent/notification"
	"slopewatch.io/slopewatch/ent/predicate"
	"slopewatch.io/slopewatch/ent/user"
)

// DeliveryQueueEntryQuery is the builder for querying DeliveryQueueEntry entities.
type DeliveryQueueEntryQuery struct {
	config
	ctx              *QueryContext
	order            []deliveryqueueentry.OrderOption
	inters           []Interceptor
	predicates       []predicate.DeliveryQueueEntry
	withNotification *NotificationQuery
	withUser         *UserQuery
	withFKs          bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DeliveryQueueEntryQuery builder.
func (_q *DeliveryQueueEntryQuery) Where(ps ...predicate.DeliveryQueueEntry) *DeliveryQueueEntryQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DeliveryQueueEntryQuery) Limit(limit int) *DeliveryQueueEntryQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DeliveryQueueEntryQuery) Offset(offset int) *DeliveryQueueEntryQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DeliveryQueueEntryQuery) Unique(unique bool) *DeliveryQueueEntryQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DeliveryQueueEntryQuery) Order(o ...deliveryqueueentry.OrderOption) *DeliveryQueueEntryQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryNotification chains the current query on the "notification" edge.
func (_q *DeliveryQueueEntryQuery) QueryNotification() *NotificationQuery {
	query := (&NotificationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deliveryqueueentry.Table, deliveryqueueentry.FieldID, selector),
			sqlgraph.To(notification.Table, notification.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, deliveryqueueentry.NotificationTable, deliveryqueueentry.NotificationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUser chains the current query on the "user" edge.
func (_q *DeliveryQueueEntryQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deliveryqueueentry.Table, deliveryqueueentry.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deliveryqueueentry.UserTable, deliveryqueueentry.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DeliveryQueueEntry entity from the query.
// Returns a *NotFoundError when no DeliveryQueueEntry was found.
func (_q *DeliveryQueueEntryQuery) First(ctx context.Context) (*DeliveryQueueEntry, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{deliveryqueueentry.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DeliveryQueueEntryQuery) FirstX(ctx context.Context) *DeliveryQueueEntry {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DeliveryQueueEntry ID from the query.
// Returns a *NotFoundError when no DeliveryQueueEntry ID was found.
func (_q *DeliveryQueueEntryQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{deliveryqueueentry.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DeliveryQueueEntryQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DeliveryQueueEntry entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DeliveryQueueEntry entity is found.
// Returns a *NotFoundError when no DeliveryQueueEntry entities are found.
func (_q *DeliveryQueueEntryQuery) Only(ctx context.Context) (*DeliveryQueueEntry, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{deliveryqueueentry.Label}
	default:
		return nil, &NotSingularError{deliveryqueueentry.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DeliveryQueueEntryQuery) OnlyX(ctx context.Context) *DeliveryQueueEntry {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DeliveryQueueEntry ID in the query.
// Returns a *NotSingularError when more than one DeliveryQueueEntry ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DeliveryQueueEntryQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{deliveryqueueentry.Label}
	default:
		err = &NotSingularError{deliveryqueueentry.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DeliveryQueueEntryQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DeliveryQueueEntries.
func (_q *DeliveryQueueEntryQuery) All(ctx context.Context) ([]*DeliveryQueueEntry, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DeliveryQueueEntry, *DeliveryQueueEntryQuery]()
	return withInterceptors[[]*DeliveryQueueEntry](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DeliveryQueueEntryQuery) AllX(ctx context.Context) []*DeliveryQueueEntry {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DeliveryQueueEntry IDs.
func (_q *DeliveryQueueEntryQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(deliveryqueueentry.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DeliveryQueueEntryQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DeliveryQueueEntryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DeliveryQueueEntryQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DeliveryQueueEntryQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DeliveryQueueEntryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DeliveryQueueEntryQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DeliveryQueueEntryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DeliveryQueueEntryQuery) Clone() *DeliveryQueueEntryQuery {
	if _q == nil {
		return nil
	}
	return &DeliveryQueueEntryQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]deliveryqueueentry.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.DeliveryQueueEntry{}, _q.predicates...),
		withNotification: _q.withNotification.Clone(),
		withUser:         _q.withUser.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithNotification tells the query-builder to eager-load the nodes that are connected to
// the "notification" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeliveryQueueEntryQuery) WithNotification(opts ...func(*NotificationQuery)) *DeliveryQueueEntryQuery {
	query := (&NotificationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNotification = query
	return _q
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeliveryQueueEntryQuery) WithUser(opts ...func(*UserQuery)) *DeliveryQueueEntryQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUser = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DeliveryQueueEntry.Query().
//		GroupBy(deliveryqueueentry.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DeliveryQueueEntryQuery) GroupBy(field string, fields ...string) *DeliveryQueueEntryGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DeliveryQueueEntryGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = deliveryqueueentry.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.DeliveryQueueEntry.Query().
//		Select(deliveryqueueentry.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *DeliveryQueueEntryQuery) Select(fields ...string) *DeliveryQueueEntrySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DeliveryQueueEntrySelect{DeliveryQueueEntryQuery: _q}
	sbuild.label = deliveryqueueentry.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DeliveryQueueEntrySelect configured with the given aggregations.
func (_q *DeliveryQueueEntryQuery) Aggregate(fns ...AggregateFunc) *DeliveryQueueEntrySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DeliveryQueueEntryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !deliveryqueueentry.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DeliveryQueueEntryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DeliveryQueueEntry, error) {
	var (
		nodes       = []*DeliveryQueueEntry{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withNotification != nil,
			_q.withUser != nil,
		}
	)
	if _q.withNotification != nil || _q.withUser != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, deliveryqueueentry.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DeliveryQueueEntry).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DeliveryQueueEntry{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withNotification; query != nil {
		if err := _q.loadNotification(ctx, query, nodes, nil,
			func(n *DeliveryQueueEntry, e *Notification) { n.Edges.Notification = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUser; query != nil {
		if err := _q.loadUser(ctx, query, nodes, nil,
			func(n *DeliveryQueueEntry, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DeliveryQueueEntryQuery) loadNotification(ctx context.Context, query *NotificationQuery, nodes []*DeliveryQueueEntry, init func(*DeliveryQueueEntry), assign func(*DeliveryQueueEntry, *Notification)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*DeliveryQueueEntry)
	for i := range nodes {
		if nodes[i].notification_queue_entry == nil {
			continue
		}
		fk := *nodes[i].notification_queue_entry
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(notification.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "notification_queue_entry" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DeliveryQueueEntryQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*DeliveryQueueEntry, init func(*DeliveryQueueEntry), assign func(*DeliveryQueueEntry, *User)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*DeliveryQueueEntry)
	for i := range nodes {
		if nodes[i].user_queue_entries == nil {
			continue
		}
		fk := *nodes[i].user_queue_entries
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_queue_entries" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *DeliveryQueueEntryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DeliveryQueueEntryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(deliveryqueueentry.Table, deliveryqueueentry.Columns, sqlgraph.NewFieldSpec(deliveryqueueentry.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliveryqueueentry.FieldID)
		for i := range fields {
			if fields[i] != deliveryqueueentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DeliveryQueueEntryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(deliveryqueueentry.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = deliveryqueueentry.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DeliveryQueueEntryGroupBy is the group-by builder for DeliveryQueueEntry entities.
type DeliveryQueueEntryGroupBy struct {
	selector
	build *DeliveryQueueEntryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DeliveryQueueEntryGroupBy) Aggregate(fns ...AggregateFunc) *DeliveryQueueEntryGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DeliveryQueueEntryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DeliveryQueueEntryQuery, *DeliveryQueueEntryGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DeliveryQueueEntryGroupBy) sqlScan(ctx context.Context, root *DeliveryQueueEntryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DeliveryQueueEntrySelect is the builder for selecting fields of DeliveryQueueEntry entities.
type DeliveryQueueEntrySelect struct {
	*DeliveryQueueEntryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DeliveryQueueEntrySelect) Aggregate(fns ...AggregateFunc) *DeliveryQueueEntrySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DeliveryQueueEntrySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DeliveryQueueEntryQuery, *DeliveryQueueEntrySelect](ctx, _s.DeliveryQueueEntryQuery, _s, _s.inters, v)
}

func (_s *DeliveryQueueEntrySelect) sqlScan(ctx context.Context, root *DeliveryQueueEntryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
