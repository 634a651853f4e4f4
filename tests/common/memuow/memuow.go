//go:build unit || e2e

// Package memuow is an in-memory shared.UnitOfWork. Transactions run one at a
// time against a copy of the committed state, which is swapped in only when
// the closure succeeds.
package memuow

import (
	"context"
	"sort"
	"sync"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/domain/payment"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/usecase/queries"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxRecord struct {
	Event       shared.OutboxEvent
	Status      string
	AvailableAt time.Time
	LastError   string
}

type SignalRecord struct {
	Signal  payment.Signal
	Outcome payment.Outcome
}

type state struct {
	professionals map[uuid.UUID]shared.ProfessionalSnapshot
	bookings      map[uuid.UUID]*booking.Booking
	sessions      map[uuid.UUID]*meeting.Session // keyed by booking
	signals       map[string]SignalRecord
	idempotency   map[[2]uuid.UUID]shared.IdempotencyRecord
	outbox        []OutboxRecord
}

func newState() *state {
	return &state{
		professionals: map[uuid.UUID]shared.ProfessionalSnapshot{},
		bookings:      map[uuid.UUID]*booking.Booking{},
		sessions:      map[uuid.UUID]*meeting.Session{},
		signals:       map[string]SignalRecord{},
		idempotency:   map[[2]uuid.UUID]shared.IdempotencyRecord{},
	}
}

func (s *state) clone() *state {
	out := newState()
	for k, v := range s.professionals {
		out.professionals[k] = v
	}
	for k, v := range s.bookings {
		out.bookings[k] = cloneBooking(v)
	}
	for k, v := range s.sessions {
		out.sessions[k] = cloneSession(v)
	}
	for k, v := range s.signals {
		out.signals[k] = v
	}
	for k, v := range s.idempotency {
		out.idempotency[k] = v
	}
	out.outbox = append([]OutboxRecord(nil), s.outbox...)
	return out
}

type UoW struct {
	mu      sync.Mutex
	state   *state
	commits int

	// FailCommit, when set, is returned instead of committing.
	FailCommit error
}

func New() *UoW {
	return &UoW{state: newState()}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	work := u.state.clone()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}
	if u.FailCommit != nil {
		return u.FailCommit
	}
	u.state = work
	u.commits++
	return nil
}

func (u *UoW) WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UoW) CommandReads() shared.CommandReads {
	return &committedReads{uow: u}
}

// ReadStore exposes the committed state as the booking read model.
func (u *UoW) ReadStore() queries.BookingReadStore {
	return &readStore{uow: u}
}

// Seeding and inspection helpers.

func (u *UoW) AddProfessional(p shared.ProfessionalSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.professionals[p.ID] = p
}

func (u *UoW) PutBooking(b *booking.Booking) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.bookings[b.ID()] = cloneBooking(b)
}

func (u *UoW) PutSession(s *meeting.Session) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.sessions[s.BookingID()] = cloneSession(s)
}

func (u *UoW) Booking(id uuid.UUID) *booking.Booking {
	u.mu.Lock()
	defer u.mu.Unlock()
	b, ok := u.state.bookings[id]
	if !ok {
		return nil
	}
	return cloneBooking(b)
}

func (u *UoW) Session(bookingID uuid.UUID) *meeting.Session {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.state.sessions[bookingID]
	if !ok {
		return nil
	}
	return cloneSession(s)
}

func (u *UoW) BookingCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.state.bookings)
}

func (u *UoW) Signals() map[string]SignalRecord {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make(map[string]SignalRecord, len(u.state.signals))
	for k, v := range u.state.signals {
		out[k] = v
	}
	return out
}

func (u *UoW) Outbox() []OutboxRecord {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]OutboxRecord(nil), u.state.outbox...)
}

// Topics lists the outbox topics recorded for a booking, oldest first.
func (u *UoW) Topics(bookingID uuid.UUID) []string {
	var topics []string
	for _, rec := range u.Outbox() {
		if rec.Event.AggregateID == bookingID {
			topics = append(topics, rec.Event.Topic)
		}
	}
	return topics
}

func (u *UoW) Commits() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.commits
}

// ---------------------------------------------------------------------------
// transaction

type memTx struct {
	st *state
}

func (t *memTx) Bookings() shared.BookingRepository             { return &bookingRepo{st: t.st} }
func (t *memTx) Sessions() shared.SessionRepository             { return &sessionRepo{st: t.st} }
func (t *memTx) PaymentSignals() shared.PaymentSignalRepository { return &signalRepo{st: t.st} }
func (t *memTx) Idempotency() shared.IdempotencyRepository      { return &idempotencyRepo{st: t.st} }
func (t *memTx) Outbox() shared.OutboxRepository                { return &outboxRepo{st: t.st} }
func (t *memTx) Reads() shared.CommandReads                     { return &stateReads{st: t.st} }
func (t *memTx) DB() pgquery.DBTX                               { return nil }

type bookingRepo struct{ st *state }

func (r *bookingRepo) Create(_ context.Context, _ pgquery.DBTX, b *booking.Booking) error {
	if _, ok := r.st.professionals[b.ProfessionalID()]; !ok {
		return infra.WrapRepoErr("failed to create booking", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := r.st.bookings[b.ID()]; ok {
		return infra.WrapRepoErr("failed to create booking", nil, infra.KindDuplicateKey)
	}
	r.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) Lock(_ context.Context, _ pgquery.DBTX, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return cloneBooking(b), nil
}

func (r *bookingRepo) UpdateStatus(_ context.Context, _ pgquery.DBTX, b *booking.Booking, from booking.Status) error {
	cur, ok := r.st.bookings[b.ID()]
	if !ok || cur.Status() != from {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	r.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

type sessionRepo struct{ st *state }

func (r *sessionRepo) Create(_ context.Context, _ pgquery.DBTX, s *meeting.Session) error {
	if _, ok := r.st.sessions[s.BookingID()]; ok {
		return infra.WrapRepoErr("failed to create meeting session", nil, infra.KindDuplicateKey)
	}
	r.st.sessions[s.BookingID()] = cloneSession(s)
	return nil
}

func (r *sessionRepo) LockByBookingID(_ context.Context, _ pgquery.DBTX, bookingID uuid.UUID) (*meeting.Session, error) {
	s, ok := r.st.sessions[bookingID]
	if !ok {
		return nil, infra.WrapRepoErr("meeting session not found", nil, infra.KindNotFound)
	}
	return cloneSession(s), nil
}

func (r *sessionRepo) UpdateStatus(_ context.Context, _ pgquery.DBTX, s *meeting.Session, from meeting.Status) error {
	cur, ok := r.st.sessions[s.BookingID()]
	if !ok || cur.Status() != from {
		return infra.WrapRepoErr("meeting session status changed concurrently", nil, infra.KindConflict)
	}
	r.st.sessions[s.BookingID()] = cloneSession(s)
	return nil
}

type signalRepo struct{ st *state }

func (r *signalRepo) Record(_ context.Context, _ pgquery.DBTX, sig payment.Signal, outcome payment.Outcome) (bool, error) {
	if _, ok := r.st.signals[sig.SourceEventID]; ok {
		return false, nil
	}
	r.st.signals[sig.SourceEventID] = SignalRecord{Signal: sig, Outcome: outcome}
	return true, nil
}

type idempotencyRepo struct{ st *state }

func (r *idempotencyRepo) TryInsert(_ context.Context, _ pgquery.DBTX, key, userID uuid.UUID, _, requestHash string, expiresAt time.Time) (bool, error) {
	k := [2]uuid.UUID{key, userID}
	if _, ok := r.st.idempotency[k]; ok {
		return false, nil
	}
	r.st.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *idempotencyRepo) UpdateStatusCompleted(_ context.Context, _ pgquery.DBTX, key, userID uuid.UUID, bookingID uuid.UUID) error {
	k := [2]uuid.UUID{key, userID}
	rec, ok := r.st.idempotency[k]
	if !ok {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultBookingID = &bookingID
	r.st.idempotency[k] = rec
	return nil
}

func (r *idempotencyRepo) ClaimExpiredIdempotencyKey(_ context.Context, _ pgquery.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	k := [2]uuid.UUID{key, userID}
	rec, ok := r.st.idempotency[k]
	// the new expiry is the caller's now plus the 24h key lifetime
	if !ok || rec.ExpiresAt.After(expiresAt.Add(-24*time.Hour)) {
		return 0, nil
	}
	r.st.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return 1, nil
}

type outboxRepo struct{ st *state }

func (r *outboxRepo) Append(_ context.Context, _ pgquery.DBTX, evt shared.OutboxEvent) error {
	r.st.outbox = append(r.st.outbox, OutboxRecord{Event: evt, Status: "pending", AvailableAt: evt.CreatedAt})
	return nil
}

func (r *outboxRepo) ClaimPending(_ context.Context, _ pgquery.DBTX, now time.Time, limit int32) ([]shared.OutboxEvent, error) {
	var out []shared.OutboxEvent
	for _, rec := range r.st.outbox {
		if int32(len(out)) >= limit {
			break
		}
		if rec.Status == "pending" && !rec.AvailableAt.After(now) {
			out = append(out, rec.Event)
		}
	}
	return out, nil
}

func (r *outboxRepo) MarkPublished(_ context.Context, _ pgquery.DBTX, id uuid.UUID, _ time.Time) error {
	for i := range r.st.outbox {
		if r.st.outbox[i].Event.ID == id {
			r.st.outbox[i].Status = "published"
			r.st.outbox[i].Event.Attempts++
		}
	}
	return nil
}

func (r *outboxRepo) MarkFailed(_ context.Context, _ pgquery.DBTX, id uuid.UUID, cause string, retryAt time.Time, maxAttempts int32) error {
	for i := range r.st.outbox {
		rec := &r.st.outbox[i]
		if rec.Event.ID != id {
			continue
		}
		rec.Event.Attempts++
		rec.LastError = cause
		rec.AvailableAt = retryAt
		if rec.Event.Attempts >= maxAttempts {
			rec.Status = "failed"
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// reads

type stateReads struct{ st *state }

func (r *stateReads) ProfessionalByID(_ context.Context, id uuid.UUID) (*shared.ProfessionalSnapshot, error) {
	p, ok := r.st.professionals[id]
	if !ok {
		return nil, infra.WrapRepoErr("professional not found", nil, infra.KindNotFound)
	}
	return &p, nil
}

func (r *stateReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.st.idempotency[[2]uuid.UUID{key, userID}]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return &rec, nil
}

func (r *stateReads) UnpaidBookingIDs(_ context.Context, createdBefore time.Time, limit int32) ([]uuid.UUID, error) {
	return r.bookingIDs(limit, func(b *booking.Booking) bool {
		return b.Status() == booking.StatusPendingPayment && !b.CreatedAt().After(createdBefore)
	}), nil
}

func (r *stateReads) AcceptanceOverdueBookingIDs(_ context.Context, scheduledBefore time.Time, limit int32) ([]uuid.UUID, error) {
	return r.bookingIDs(limit, func(b *booking.Booking) bool {
		return b.Status() == booking.StatusWaitingForProfessional && !b.Schedule().Start().After(scheduledBefore)
	}), nil
}

func (r *stateReads) NoShowCandidateIDs(_ context.Context, endedBefore time.Time, limit int32) ([]uuid.UUID, error) {
	return r.bookingIDs(limit, func(b *booking.Booking) bool {
		return b.Status() == booking.StatusConfirmed && !b.Schedule().End().After(endedBefore)
	}), nil
}

func (r *stateReads) OverrunSessionBookingIDs(_ context.Context, now time.Time, limit int32) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, d := range r.activeDeadlines() {
		if int32(len(ids)) >= limit {
			break
		}
		if !d.ExpiresAt.After(now) {
			ids = append(ids, d.BookingID)
		}
	}
	return ids, nil
}

func (r *stateReads) ActiveSessionDeadlines(_ context.Context, limit int32) ([]shared.SessionDeadline, error) {
	all := r.activeDeadlines()
	if int32(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *stateReads) activeDeadlines() []shared.SessionDeadline {
	var out []shared.SessionDeadline
	for _, s := range r.st.sessions {
		if s.Status() == meeting.StatusActive {
			out = append(out, shared.SessionDeadline{BookingID: s.BookingID(), ExpiresAt: *s.ExpiresAt()})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiresAt.Before(out[j].ExpiresAt) })
	return out
}

func (r *stateReads) bookingIDs(limit int32, match func(*booking.Booking) bool) []uuid.UUID {
	var matched []*booking.Booking
	for _, b := range r.st.bookings {
		if match(b) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Schedule().Start().Before(matched[j].Schedule().Start())
	})
	var ids []uuid.UUID
	for _, b := range matched {
		if int32(len(ids)) >= limit {
			break
		}
		ids = append(ids, b.ID())
	}
	return ids
}

// committedReads evaluates each call against the state committed at that time.
type committedReads struct{ uow *UoW }

func (c *committedReads) snapshot() *stateReads {
	c.uow.mu.Lock()
	defer c.uow.mu.Unlock()
	return &stateReads{st: c.uow.state.clone()}
}

func (c *committedReads) ProfessionalByID(ctx context.Context, id uuid.UUID) (*shared.ProfessionalSnapshot, error) {
	return c.snapshot().ProfessionalByID(ctx, id)
}

func (c *committedReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	return c.snapshot().IdempotencyByKey(ctx, key, userID)
}

func (c *committedReads) UnpaidBookingIDs(ctx context.Context, createdBefore time.Time, limit int32) ([]uuid.UUID, error) {
	return c.snapshot().UnpaidBookingIDs(ctx, createdBefore, limit)
}

func (c *committedReads) AcceptanceOverdueBookingIDs(ctx context.Context, scheduledBefore time.Time, limit int32) ([]uuid.UUID, error) {
	return c.snapshot().AcceptanceOverdueBookingIDs(ctx, scheduledBefore, limit)
}

func (c *committedReads) NoShowCandidateIDs(ctx context.Context, endedBefore time.Time, limit int32) ([]uuid.UUID, error) {
	return c.snapshot().NoShowCandidateIDs(ctx, endedBefore, limit)
}

func (c *committedReads) OverrunSessionBookingIDs(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error) {
	return c.snapshot().OverrunSessionBookingIDs(ctx, now, limit)
}

func (c *committedReads) ActiveSessionDeadlines(ctx context.Context, limit int32) ([]shared.SessionDeadline, error) {
	return c.snapshot().ActiveSessionDeadlines(ctx, limit)
}

// ---------------------------------------------------------------------------
// cloning

func cloneBooking(b *booking.Booking) *booking.Booking {
	var cancellation *booking.Cancellation
	if c := b.Cancellation(); c != nil {
		cp := *c
		cancellation = &cp
	}
	return booking.ReconstructBooking(
		b.ID(), b.ClientID(), b.ProfessionalID(),
		b.Schedule(), b.Price(), b.Status(), b.Note(), cancellation,
		b.CreatedAt(), b.UpdatedAt(),
	)
}

func cloneSession(s *meeting.Session) *meeting.Session {
	return meeting.ReconstructSession(
		s.ID(), s.BookingID(), s.RoomToken(), s.Status(), s.MaxDuration(),
		copyTime(s.StartedAt()), copyTime(s.EndedAt()),
		s.CreatedAt(), s.UpdatedAt(),
	)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// ---------------------------------------------------------------------------
// read model

type readStore struct{ uow *UoW }

func (r *readStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	b, ok := r.uow.state.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return r.view(b), nil
}

func (r *readStore) FindAwaitingAcceptanceFirstPage(_ context.Context, professionalID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return r.list(limit, time.Time{}, uuid.Nil, func(b *booking.Booking) bool {
		return b.ProfessionalID() == professionalID && b.Status() == booking.StatusWaitingForProfessional
	}), nil
}

func (r *readStore) FindAwaitingAcceptanceKeyset(_ context.Context, professionalID uuid.UUID, lastScheduledAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return r.list(limit, lastScheduledAt, lastID, func(b *booking.Booking) bool {
		return b.ProfessionalID() == professionalID && b.Status() == booking.StatusWaitingForProfessional
	}), nil
}

func (r *readStore) FindUpcomingFirstPage(_ context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return r.list(limit, time.Time{}, uuid.Nil, upcomingFor(userID)), nil
}

func (r *readStore) FindUpcomingKeyset(_ context.Context, userID uuid.UUID, lastScheduledAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return r.list(limit, lastScheduledAt, lastID, upcomingFor(userID)), nil
}

func upcomingFor(userID uuid.UUID) func(*booking.Booking) bool {
	return func(b *booking.Booking) bool {
		return b.IsParty(userID) && !b.Status().IsTerminal()
	}
}

func (r *readStore) list(limit int32, afterAt time.Time, afterID uuid.UUID, match func(*booking.Booking) bool) []*queries.BookingView {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()

	var matched []*booking.Booking
	for _, b := range r.uow.state.bookings {
		if !match(b) {
			continue
		}
		if afterID != uuid.Nil && !keysetAfter(b, afterAt, afterID) {
			continue
		}
		matched = append(matched, b)
	}
	sort.Slice(matched, func(i, j int) bool {
		si, sj := matched[i].Schedule().Start(), matched[j].Schedule().Start()
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return matched[i].ID().String() < matched[j].ID().String()
	})

	var out []*queries.BookingView
	for _, b := range matched {
		if int32(len(out)) >= limit {
			break
		}
		out = append(out, r.view(b))
	}
	return out
}

func keysetAfter(b *booking.Booking, at time.Time, id uuid.UUID) bool {
	start := b.Schedule().Start()
	if !start.Equal(at) {
		return start.After(at)
	}
	return b.ID().String() > id.String()
}

// view must be called with the lock held.
func (r *readStore) view(b *booking.Booking) *queries.BookingView {
	v := &queries.BookingView{
		ID:               b.ID(),
		ClientID:         b.ClientID(),
		ProfessionalID:   b.ProfessionalID(),
		ProfessionalName: r.uow.state.professionals[b.ProfessionalID()].DisplayName,
		ScheduledAt:      b.Schedule().Start(),
		DurationMinutes:  int32(b.Schedule().DurationMinutes()),
		PriceCents:       b.Price().Cents(),
		Currency:         b.Price().Currency(),
		Status:           b.Status().String(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
	if !b.Note().IsEmpty() {
		n := b.Note().String()
		v.Notes = &n
	}
	if c := b.Cancellation(); c != nil {
		reason := c.Reason.String()
		at := c.CanceledAt
		v.CancelReason = &reason
		v.CanceledAt = &at
		v.CanceledBy = c.CanceledBy
	}
	if s, ok := r.uow.state.sessions[b.ID()]; ok {
		v.Session = &queries.SessionView{
			ID:            s.ID(),
			RoomToken:     s.RoomToken().String(),
			MeetingStatus: s.Status().String(),
			StartedAt:     copyTime(s.StartedAt()),
			EndedAt:       copyTime(s.EndedAt()),
			ExpiresAt:     s.ExpiresAt(),
		}
	}
	return v
}
