package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"securite2ie_backend/internals/databases/dbtest"
	"securite2ie_backend/internals/features/demandes/demande_acces/model"
	"securite2ie_backend/internals/helpers/apperror"
)

const day = "2026-10-20"

type fixture struct {
	db      *gorm.DB
	ledger  *Ledger
	userID  uuid.UUID
	salleID uuid.UUID
}

// newFixture: clock fixed on 2026-10-17 08:00 UTC and advancing one second
// per read so created_at orders deterministically.
func newFixture(t *testing.T) fixture {
	t.Helper()
	db := dbtest.Open(t)
	u := dbtest.User(t, db, "awa@2ie.test")
	s := dbtest.Salle(t, db, "Salle A", "09:00", "18:00")

	var mu sync.Mutex
	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	l := NewLedger(db, time.UTC)
	l.Now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
	return fixture{db: db, ledger: l, userID: u.ID, salleID: s.ID}
}

func (f fixture) input(debut, fin string) SubmitInput {
	return SubmitInput{
		UserID:     f.userID.String(),
		SalleID:    f.salleID.String(),
		Date:       day,
		HeureDebut: debut,
		HeureFin:   fin,
		Motif:      "Révision de groupe",
	}
}

func TestSubmitCreatesPending(t *testing.T) {
	f := newFixture(t)

	d, err := f.ledger.Submit(context.Background(), f.input("10:00", "11:00"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, d.ID)
	assert.Equal(t, model.StatusPending, d.StatutDemande)
	assert.False(t, d.CreatedAt.IsZero())

	stored, err := f.ledger.Get(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.StatutDemande)
	assert.Equal(t, "10:00:00", stored.HeureDebut.String())
	assert.Equal(t, "11:00:00", stored.HeureFin.String())
}

func TestSubmitValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*SubmitInput)
		kind   apperror.Kind
		code   string
	}{
		{"missing motif", func(in *SubmitInput) { in.Motif = "" }, apperror.KindValidation, apperror.CodeMissingFields},
		{"missing user", func(in *SubmitInput) { in.UserID = "" }, apperror.KindValidation, apperror.CodeMissingFields},
		{"bad date", func(in *SubmitInput) { in.Date = "20/10/2026" }, apperror.KindValidation, apperror.CodeMalformed},
		{"bad time", func(in *SubmitInput) { in.HeureDebut = "10h" }, apperror.KindValidation, apperror.CodeMalformed},
		{"past date", func(in *SubmitInput) { in.Date = "2026-10-16" }, apperror.KindValidation, apperror.CodePastDate},
		{"end before start", func(in *SubmitInput) { in.HeureDebut, in.HeureFin = "11:00", "10:00" }, apperror.KindValidation, apperror.CodeTimeOrder},
		{"end equals start", func(in *SubmitInput) { in.HeureDebut, in.HeureFin = "10:00", "10:00" }, apperror.KindValidation, apperror.CodeTimeOrder},
		{"unknown user", func(in *SubmitInput) { in.UserID = uuid.NewString() }, apperror.KindNotFound, apperror.CodeUserNotFound},
		{"malformed user id", func(in *SubmitInput) { in.UserID = "42" }, apperror.KindNotFound, apperror.CodeUserNotFound},
		{"unknown salle", func(in *SubmitInput) { in.SalleID = uuid.NewString() }, apperror.KindNotFound, apperror.CodeRoomNotFound},
		{"outside hours", func(in *SubmitInput) { in.HeureDebut, in.HeureFin = "07:00", "08:00" }, apperror.KindValidation, apperror.CodeOutsideRoomHours},
		{"past closing", func(in *SubmitInput) { in.HeureDebut, in.HeureFin = "17:00", "18:30" }, apperror.KindValidation, apperror.CodeOutsideRoomHours},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := f.input("10:00", "11:00")
			tt.mutate(&in)
			_, err := f.ledger.Submit(ctx, in)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
			assert.True(t, apperror.IsCode(err, tt.code), "got %v", err)
		})
	}

	var n int64
	require.NoError(t, f.db.Model(&model.DemandeAccesModel{}).Count(&n).Error)
	assert.Zero(t, n, "rejected submissions must not persist")
}

func TestSubmitTodayIsAllowed(t *testing.T) {
	f := newFixture(t)
	in := f.input("10:00", "11:00")
	in.Date = "2026-10-17"

	_, err := f.ledger.Submit(context.Background(), in)
	assert.NoError(t, err)
}

func TestSubmitPastDateUsesInstitutionZone(t *testing.T) {
	f := newFixture(t)
	// 23:30 UTC on the 17th is already the 18th in UTC+1.
	f.ledger.Now = func() time.Time { return time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC) }
	f.ledger.Loc = time.FixedZone("UTC+1", 3600)

	in := f.input("10:00", "11:00")
	in.Date = "2026-10-17"
	_, err := f.ledger.Submit(context.Background(), in)
	assert.True(t, apperror.IsCode(err, apperror.CodePastDate))
}

func TestOutsideHoursReportsRoomHours(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.Submit(context.Background(), f.input("07:00", "08:00"))
	ae := apperror.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "La salle est disponible de 09:00:00 à 18:00:00.", ae.Message)
	assert.Equal(t, map[string]any{"heure_ouverture": "09:00:00", "heure_fermeture": "18:00:00"}, ae.Details)
}

func TestRoomHoursScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.ledger.Submit(ctx, f.input("10:00", "11:00"))
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, first.StatutDemande)

	_, err = f.ledger.Submit(ctx, f.input("10:30", "11:30"))
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.True(t, apperror.IsCode(err, apperror.CodeDuplicatePending))

	_, err = f.ledger.Submit(ctx, f.input("07:00", "08:00"))
	assert.True(t, apperror.IsCode(err, apperror.CodeOutsideRoomHours))

	approved, err := f.ledger.Approve(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, approved.StatutDemande)

	// approved rows do not block new pending ones
	second, err := f.ledger.Submit(ctx, f.input("10:30", "11:30"))
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, second.StatutDemande)
}

func TestTouchingWindowsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Submit(ctx, f.input("10:00", "11:00"))
	require.NoError(t, err)

	_, err = f.ledger.Submit(ctx, f.input("11:00", "12:00"))
	assert.True(t, apperror.IsCode(err, apperror.CodeDuplicatePending))
}

func TestConflictScopeIsUserRoomDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Submit(ctx, f.input("10:00", "11:00"))
	require.NoError(t, err)

	other := dbtest.User(t, f.db, "ibrahim@2ie.test")
	in := f.input("10:00", "11:00")
	in.UserID = other.ID.String()
	_, err = f.ledger.Submit(ctx, in)
	assert.NoError(t, err, "another user may ask for the same slot")

	salleB := dbtest.Salle(t, f.db, "Salle B", "08:00", "20:00")
	in = f.input("10:00", "11:00")
	in.SalleID = salleB.ID.String()
	_, err = f.ledger.Submit(ctx, in)
	assert.NoError(t, err, "another room is another conflict set")

	in = f.input("10:00", "11:00")
	in.Date = "2026-10-21"
	_, err = f.ledger.Submit(ctx, in)
	assert.NoError(t, err, "another day is another conflict set")
}

func TestApproveTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d, err := f.ledger.Submit(ctx, f.input("10:00", "11:00"))
	require.NoError(t, err)

	_, err = f.ledger.Approve(ctx, d.ID)
	require.NoError(t, err)

	_, err = f.ledger.Approve(ctx, d.ID)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.True(t, apperror.IsCode(err, apperror.CodeNotPending))
	assert.Equal(t, map[string]any{"statut_demande": model.StatusApproved}, apperror.As(err).Details)
}

func TestRejectThenApprove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d, err := f.ledger.Submit(ctx, f.input("10:00", "11:00"))
	require.NoError(t, err)

	rejected, err := f.ledger.Reject(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, rejected.StatutDemande)
	assert.Equal(t, d.Motif, rejected.Motif)
	assert.Equal(t, d.HeureDebut.String(), rejected.HeureDebut.String())

	_, err = f.ledger.Approve(ctx, d.ID)
	assert.True(t, apperror.IsCode(err, apperror.CodeNotPending))

	stored, err := f.ledger.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, stored.StatutDemande)
}

func TestTransitionUnknownRequest(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.Approve(context.Background(), uuid.New())
	assert.True(t, apperror.IsCode(err, apperror.CodeRequestNotFound))

	_, err = f.ledger.Reject(context.Background(), uuid.New())
	assert.True(t, apperror.IsCode(err, apperror.CodeRequestNotFound))
}

func TestListDefaultsToPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.ledger.Submit(ctx, f.input("09:00", "10:00"))
	require.NoError(t, err)
	b, err := f.ledger.Submit(ctx, f.input("12:00", "13:00"))
	require.NoError(t, err)
	c, err := f.ledger.Submit(ctx, f.input("15:00", "16:00"))
	require.NoError(t, err)

	_, err = f.ledger.Approve(ctx, a.ID)
	require.NoError(t, err)
	_, err = f.ledger.Reject(ctx, b.ID)
	require.NoError(t, err)

	pending, err := f.ledger.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, c.ID, pending[0].ID)

	approved := model.StatusApproved
	rows, err := f.ledger.List(ctx, &approved)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, a.ID, rows[0].ID)

	bogus := "archived"
	rows, err = f.ledger.List(ctx, &bogus)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListByUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.ListByUser(ctx, uuid.New())
	assert.True(t, apperror.IsCode(err, apperror.CodeUserNotFound))

	_, err = f.ledger.ListByUser(ctx, f.userID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.True(t, apperror.IsCode(err, apperror.CodeNoRequests))

	older, err := f.ledger.Submit(ctx, f.input("09:00", "10:00"))
	require.NoError(t, err)
	newer, err := f.ledger.Submit(ctx, f.input("12:00", "13:00"))
	require.NoError(t, err)

	rows, err := f.ledger.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, newer.ID, rows[0].ID, "newest first")
	assert.Equal(t, older.ID, rows[1].ID)
}

// SQLite skips FOR UPDATE and dbtest holds a single connection, so here the
// submissions queue in the pool rather than on the user row lock. This checks
// the conflict scan under concurrent callers, not the Postgres locking.
func TestConcurrentSubmitsAdmitOne(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.ledger.Submit(ctx, f.input("10:00", "11:00"))
		}(i)
	}
	wg.Wait()

	ok, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperror.IsCode(err, apperror.CodeDuplicatePending):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)

	pending, err := f.ledger.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestConcurrentApproveRejectSingleWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d, err := f.ledger.Submit(ctx, f.input("10:00", "11:00"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() { defer wg.Done(); _, errs[0] = f.ledger.Approve(ctx, d.ID) }()
	go func() { defer wg.Done(); _, errs[1] = f.ledger.Reject(ctx, d.ID) }()
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.True(t, apperror.IsCode(err, apperror.CodeNotPending), "loser must see notPending, got %v", err)
	}
	assert.Equal(t, 1, wins)
}
