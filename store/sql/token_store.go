package sqlstore

import (
	"context"
	"fmt"
	"maps"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-tokenstore/core"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TokenStore keeps at most one credential record per logical identity.
// The *bun.DB is owned by the caller and never closed here.
type TokenStore struct {
	db             *bun.DB
	repo           repository.Repository[*credentialRecord]
	environment    core.EnvironmentResolver
	logger         core.Logger
	loggerProvider core.LoggerProvider
	metrics        core.MetricsRecorder
	transactional  bool
	now            func() time.Time
}

type Option func(*TokenStore)

func WithLogger(logger core.Logger) Option {
	return func(s *TokenStore) {
		s.logger = logger
	}
}

func WithLoggerProvider(provider core.LoggerProvider) Option {
	return func(s *TokenStore) {
		s.loggerProvider = provider
	}
}

func WithMetricsRecorder(recorder core.MetricsRecorder) Option {
	return func(s *TokenStore) {
		if recorder != nil {
			s.metrics = recorder
		}
	}
}

func WithEnvironmentResolver(resolver core.EnvironmentResolver) Option {
	return func(s *TokenStore) {
		if resolver != nil {
			s.environment = resolver
		}
	}
}

func WithEnvironment(name string) Option {
	return WithEnvironmentResolver(core.StaticEnvironment(name))
}

// WithNonTransactionalSave issues the delete and the insert of Save as two
// independent statements. A crash in between leaves the identity absent.
func WithNonTransactionalSave() Option {
	return func(s *TokenStore) {
		s.transactional = false
	}
}

// WithClock sets the clock used for created_at stamps.
func WithClock(now func() time.Time) Option {
	return func(s *TokenStore) {
		if now != nil {
			s.now = now
		}
	}
}

func NewTokenStore(db *bun.DB, opts ...Option) (*TokenStore, error) {
	if db == nil {
		return nil, fmt.Errorf("sqlstore: bun db is required")
	}
	repo := repository.NewRepository[*credentialRecord](db, credentialHandlers())
	if validator, ok := repo.(repository.Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, fmt.Errorf("sqlstore: invalid credential repository wiring: %w", err)
		}
	}

	store := &TokenStore{
		db:            db,
		repo:          repo,
		environment:   core.StaticEnvironment(core.DefaultEnvironment),
		metrics:       core.NopMetricsRecorder{},
		transactional: true,
		now:           time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(store)
	}
	store.loggerProvider, store.logger = core.ResolveLogger(store.loggerProvider, store.logger)
	return store, nil
}

// LookupByEnvironmentUserClient returns the newest record saved for the
// environment, user and client. An empty clientID matches records saved
// without one.
func (s *TokenStore) LookupByEnvironmentUserClient(
	ctx context.Context,
	environment string,
	userMail string,
	clientID string,
) (token *core.Token, found bool, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"environment": environment,
		"user_mail":   userMail,
		"client_id":   clientID,
	}
	defer func() {
		fields["found"] = found
		s.observe(ctx, startedAt, core.OperationGet, err, fields)
	}()

	if err := s.ready(); err != nil {
		return nil, false, core.OperationFailedError(core.OperationGet, err)
	}
	client := equalOrAbsent("client_id", clientID)
	records, _, err := s.repo.List(ctx,
		repository.SelectBy("environment", "=", environment),
		repository.SelectBy("user_mail", "=", userMail),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return applySelectConditions(q, []condition{client})
		}),
		repository.OrderBy("created_at DESC"),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, false, core.OperationFailedError(core.OperationGet, err)
	}
	if len(records) == 0 {
		return nil, false, nil
	}
	return records[0].toToken(), true, nil
}

// LookupMatching enriches candidate in place with the record matching its
// identity on behalf of userMail.
func (s *TokenStore) LookupMatching(ctx context.Context, userMail string, candidate *core.Token) (token *core.Token, found bool, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		fields["found"] = found
		s.observe(ctx, startedAt, core.OperationGet, err, fields)
	}()

	key, err := core.MatchKeyFor(userMail, candidate)
	if err != nil {
		return nil, false, err
	}
	fields = keyFields(key)
	if err := s.ready(); err != nil {
		return nil, false, core.OperationFailedError(core.OperationGet, err)
	}
	conditions := matchConditions(key)
	records, _, err := s.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return applySelectConditions(q, conditions)
		}),
		repository.OrderBy("created_at DESC"),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, false, core.OperationFailedError(core.OperationGet, err)
	}
	if len(records) == 0 {
		return nil, false, nil
	}
	records[0].fillToken(candidate)
	records[0].fillGrant(candidate)
	return candidate, true, nil
}

// LookupByID fills into (or a new token when nil) from the record with id.
// A missing record is an error.
func (s *TokenStore) LookupByID(ctx context.Context, id string, into *core.Token) (token *core.Token, err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, startedAt, core.OperationGetByID, err, map[string]any{"token_id": id})
	}()

	if err := s.ready(); err != nil {
		return nil, core.OperationFailedError(core.OperationGetByID, err)
	}
	records, _, err := s.repo.List(ctx,
		repository.SelectBy("id", "=", id),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, core.OperationFailedError(core.OperationGetByID, err)
	}
	if len(records) == 0 {
		return nil, core.TokenNotFoundError(id)
	}

	record := records[0]
	if into == nil {
		into = &core.Token{}
	}
	into.ClientID = record.ClientID
	into.ClientSecret = record.ClientSecret
	into.RefreshToken = record.RefreshToken
	record.fillToken(into)
	return record.fillGrant(into), nil
}

// Save replaces whatever record matches the token's identity with a new one
// for userMail in the active environment.
func (s *TokenStore) Save(ctx context.Context, userMail string, token *core.Token) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observe(ctx, startedAt, core.OperationSave, err, fields)
	}()
	return s.save(ctx, core.OperationSave, userMail, token, nil, fields)
}

// Replace saves token like Save and removes the record matching previous in
// the same transaction.
func (s *TokenStore) Replace(ctx context.Context, userMail string, previous *core.Token, token *core.Token) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observe(ctx, startedAt, core.OperationReplace, err, fields)
	}()

	if previous == nil {
		return core.InvalidTokenError("previous token is required")
	}
	stale, err := core.MatchKeyFor(userMail, previous)
	if err != nil {
		return err
	}
	fields["previous_match"] = string(stale.Kind)
	return s.save(ctx, core.OperationReplace, userMail, token, &stale, fields)
}

func (s *TokenStore) save(
	ctx context.Context,
	operation string,
	userMail string,
	token *core.Token,
	stale *core.MatchKey,
	fields map[string]any,
) error {
	key, err := core.MatchKeyFor(userMail, token)
	if err != nil {
		return err
	}
	maps.Copy(fields, keyFields(key))
	if err := s.ready(); err != nil {
		return core.OperationFailedError(operation, err)
	}
	environment, err := s.environment.ActiveEnvironment(ctx)
	if err != nil {
		return core.OperationFailedError(operation, err)
	}
	fields["environment"] = environment

	token.UserMail = key.UserMail
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	fields["token_id"] = token.ID
	record := newCredentialRecord(environment, token, s.now().UTC())

	deletes := [][]condition{matchConditions(key)}
	if stale != nil {
		deletes = append(deletes, matchConditions(*stale))
	}
	replace := func(ctx context.Context, idb bun.IDB) error {
		for _, conditions := range deletes {
			if _, err := applyDeleteConditions(idb.NewDelete().Model((*credentialRecord)(nil)), conditions).Exec(ctx); err != nil {
				return err
			}
		}
		_, err := idb.NewInsert().Model(record).Exec(ctx)
		return err
	}

	if s.transactional {
		err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			return replace(ctx, tx)
		})
	} else {
		err = replace(ctx, s.db)
	}
	if err != nil {
		return core.OperationFailedError(operation, err)
	}
	return nil
}

// Delete removes every record matching the token's identity. Matching
// nothing is not an error.
func (s *TokenStore) Delete(ctx context.Context, token *core.Token) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observe(ctx, startedAt, core.OperationDelete, err, fields)
	}()

	if token == nil {
		return core.InvalidTokenError("token is required")
	}
	key, err := core.MatchKeyFor(token.UserMail, token)
	if err != nil {
		return err
	}
	fields = keyFields(key)
	if err := s.ready(); err != nil {
		return core.OperationFailedError(core.OperationDelete, err)
	}
	result, err := applyDeleteConditions(
		s.db.NewDelete().Model((*credentialRecord)(nil)),
		matchConditions(key),
	).Exec(ctx)
	if err != nil {
		return core.OperationFailedError(core.OperationDelete, err)
	}
	if result != nil {
		if affected, affectedErr := result.RowsAffected(); affectedErr == nil {
			fields["deleted"] = affected
		}
	}
	return nil
}

// ListAll returns every record in storage order.
func (s *TokenStore) ListAll(ctx context.Context) (tokens []*core.Token, err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, startedAt, core.OperationList, err, map[string]any{"count": len(tokens)})
	}()

	if err := s.ready(); err != nil {
		return nil, core.OperationFailedError(core.OperationList, err)
	}
	var records []*credentialRecord
	if err := s.db.NewSelect().Model(&records).Scan(ctx); err != nil {
		return nil, core.OperationFailedError(core.OperationList, err)
	}
	tokens = make([]*core.Token, 0, len(records))
	for _, record := range records {
		tokens = append(tokens, record.toToken())
	}
	return tokens, nil
}

func (s *TokenStore) DeleteAll(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, startedAt, core.OperationDeleteAll, err, nil)
	}()

	if err := s.ready(); err != nil {
		return core.OperationFailedError(core.OperationDeleteAll, err)
	}
	if _, err := s.db.NewDelete().
		Model((*credentialRecord)(nil)).
		Where("1 = 1").
		Exec(ctx); err != nil {
		return core.OperationFailedError(core.OperationDeleteAll, err)
	}
	return nil
}

func (s *TokenStore) DB() *bun.DB {
	if s == nil {
		return nil
	}
	return s.db
}

func (s *TokenStore) ready() error {
	if s == nil || s.db == nil || s.repo == nil {
		return fmt.Errorf("sqlstore: token store is not configured")
	}
	return nil
}
