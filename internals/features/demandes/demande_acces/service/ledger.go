// file: internals/features/demandes/demande_acces/service/ledger.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"securite2ie_backend/internals/features/demandes/demande_acces/model"
	"securite2ie_backend/internals/features/demandes/demande_acces/repository"
	salleRepo "securite2ie_backend/internals/features/salles/salle/repository"
	userRepo "securite2ie_backend/internals/features/users/user/repository"
	helper "securite2ie_backend/internals/helpers"
	"securite2ie_backend/internals/helpers/apperror"
	"securite2ie_backend/internals/helpers/dbtime"
	"securite2ie_backend/internals/logging"
	"securite2ie_backend/internals/metrics"
)

// Ledger owns the access request lifecycle. It holds no request state; every
// call re-reads the store.
type Ledger struct {
	DB  *gorm.DB
	Now func() time.Time
	Loc *time.Location
}

func NewLedger(db *gorm.DB, loc *time.Location) *Ledger {
	if loc == nil {
		loc = time.UTC
	}
	return &Ledger{DB: db, Now: time.Now, Loc: loc}
}

// SubmitInput carries the raw submit fields.
type SubmitInput struct {
	UserID     string
	SalleID    string
	Date       string
	HeureDebut string
	HeureFin   string
	Motif      string
}

var (
	ErrMissingFields = apperror.Validation(apperror.CodeMissingFields,
		"Tous les champs (user_id, salle_id, date, heure_debut, heure_fin, motif) sont obligatoires.")
	ErrPastDate = apperror.Validation(apperror.CodePastDate,
		"La date ne peut pas être antérieure à aujourd'hui.")
	ErrTimeOrder = apperror.Validation(apperror.CodeTimeOrder,
		"L'heure de fin doit être après l'heure de début.")
	ErrDuplicatePending = apperror.Conflict(apperror.CodeDuplicatePending,
		"Une demande en attente existe déjà pour cet utilisateur, cette salle, cette date et ce créneau horaire.")
	ErrNotPending = apperror.Validation(apperror.CodeNotPending,
		"La demande n'est plus en attente.")
	ErrUserNotFound    = apperror.NotFound(apperror.CodeUserNotFound, "Utilisateur non trouvé.")
	ErrSalleNotFound   = apperror.NotFound(apperror.CodeRoomNotFound, "Salle non trouvée.")
	ErrRequestNotFound = apperror.NotFound(apperror.CodeRequestNotFound, "Demande non trouvée.")
	ErrNoRequests      = apperror.NotFound(apperror.CodeNoRequests, "Aucune demande trouvée pour cet utilisateur.")
)

func (l *Ledger) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

/* =========================
   SUBMIT
========================= */

func (l *Ledger) Submit(ctx context.Context, in SubmitInput) (out *model.DemandeAccesModel, err error) {
	start := time.Now()
	defer func() {
		metrics.SubmitDuration.Observe(time.Since(start).Seconds())
		metrics.DemandeSubmissions.WithLabelValues(submitOutcome(err)).Inc()
	}()

	if in.UserID == "" || in.SalleID == "" || in.Date == "" ||
		in.HeureDebut == "" || in.HeureFin == "" || in.Motif == "" {
		return nil, ErrMissingFields
	}

	date, err := dbtime.ParseDate(in.Date)
	if err != nil {
		return nil, apperror.Validation(apperror.CodeMalformed, "Date invalide (format attendu AAAA-MM-JJ).")
	}
	debut, err := dbtime.Parse(in.HeureDebut)
	if err != nil {
		return nil, apperror.Validation(apperror.CodeMalformed, "Heure de début invalide (format attendu HH:MM).")
	}
	fin, err := dbtime.Parse(in.HeureFin)
	if err != nil {
		return nil, apperror.Validation(apperror.CodeMalformed, "Heure de fin invalide (format attendu HH:MM).")
	}

	if dbtime.BeforeDate(date, dbtime.Today(l.now(), l.Loc)) {
		return nil, ErrPastDate
	}
	if !fin.After(debut) {
		return nil, ErrTimeOrder
	}

	// Unparseable ids cannot name an existing row.
	userID, err := uuid.Parse(in.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	salleID, err := uuid.Parse(in.SalleID)
	if err != nil {
		return nil, ErrSalleNotFound
	}
	want := Window{Start: debut, End: fin}

	var created model.DemandeAccesModel
	err = l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The user row lock serializes every submission that could share a conflict set.
		if _, err := userRepo.FindByIDForUpdate(ctx, tx, userID); err != nil {
			if helper.IsNotFound(err) {
				return ErrUserNotFound
			}
			return err
		}

		salle, err := salleRepo.FindByID(ctx, tx, salleID)
		if err != nil {
			if helper.IsNotFound(err) {
				return ErrSalleNotFound
			}
			return err
		}
		if !want.Within(Window{Start: salle.HeureOuverture, End: salle.HeureFermeture}) {
			return apperror.Validation(apperror.CodeOutsideRoomHours,
				fmt.Sprintf("La salle est disponible de %s à %s.", salle.HeureOuverture, salle.HeureFermeture)).
				WithDetails(map[string]any{
					"heure_ouverture": salle.HeureOuverture.String(),
					"heure_fermeture": salle.HeureFermeture.String(),
				})
		}

		pending, err := repository.PendingForSlot(ctx, tx, userID, salleID, date)
		if err != nil {
			return err
		}
		for _, p := range pending {
			if want.Overlaps(Window{Start: p.HeureDebut, End: p.HeureFin}) {
				return ErrDuplicatePending
			}
		}

		now := l.now()
		created = model.DemandeAccesModel{
			UserID:        userID,
			SalleID:       salleID,
			Date:          date,
			HeureDebut:    debut,
			HeureFin:      fin,
			Motif:         in.Motif,
			StatutDemande: model.StatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		return repository.Create(ctx, tx, &created)
	})
	if err != nil {
		return nil, wrap(err)
	}

	logging.Info("demande submitted",
		zap.String("demande_id", created.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("salle_id", salleID.String()),
	)
	return &created, nil
}

func submitOutcome(err error) string {
	if err == nil {
		return "created"
	}
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return "invalid"
	case apperror.KindConflict:
		return "conflict"
	case apperror.KindNotFound:
		return "not_found"
	default:
		return "error"
	}
}

/* =========================
   APPROVE / REJECT
========================= */

func (l *Ledger) Approve(ctx context.Context, id uuid.UUID) (*model.DemandeAccesModel, error) {
	return l.transition(ctx, id, model.StatusApproved)
}

func (l *Ledger) Reject(ctx context.Context, id uuid.UUID) (*model.DemandeAccesModel, error) {
	return l.transition(ctx, id, model.StatusRejected)
}

// transition is guarded twice: the row lock orders concurrent callers and the
// conditional UPDATE lets exactly one of them leave pending.
func (l *Ledger) transition(ctx context.Context, id uuid.UUID, statut string) (out *model.DemandeAccesModel, err error) {
	defer func() {
		metrics.DemandeTransitions.WithLabelValues(statut, transitionOutcome(err)).Inc()
	}()

	var updated *model.DemandeAccesModel
	err = l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := repository.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if helper.IsNotFound(err) {
				return ErrRequestNotFound
			}
			return err
		}
		if !current.IsPending() {
			return notPending(current.StatutDemande)
		}

		ok, err := repository.TransitionFromPending(ctx, tx, id, statut, l.now())
		if err != nil {
			return err
		}
		if !ok {
			fresh, err := repository.FindByID(ctx, tx, id)
			if err != nil {
				return err
			}
			return notPending(fresh.StatutDemande)
		}

		updated, err = repository.FindByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, wrap(err)
	}

	logging.Info("demande transitioned",
		zap.String("demande_id", id.String()),
		zap.String("statut", statut),
	)
	return updated, nil
}

func notPending(current string) error {
	return ErrNotPending.WithDetails(map[string]any{"statut_demande": current})
}

func transitionOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case apperror.IsCode(err, apperror.CodeNotPending):
		return "not_pending"
	case apperror.KindOf(err) == apperror.KindNotFound:
		return "not_found"
	default:
		return "error"
	}
}

/* =========================
   QUERIES
========================= */

func (l *Ledger) Get(ctx context.Context, id uuid.UUID) (*model.DemandeAccesModel, error) {
	d, err := repository.FindByID(ctx, l.DB, id)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, ErrRequestNotFound
		}
		return nil, apperror.Unexpected(err)
	}
	return d, nil
}

// ListByUser returns the user's requests newest first. An empty result is
// reported as NotFound.
func (l *Ledger) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.DemandeAccesModel, error) {
	exists, err := userRepo.Exists(ctx, l.DB, userID)
	if err != nil {
		return nil, apperror.Unexpected(err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	rows, err := repository.ListByUser(ctx, l.DB, userID)
	if err != nil {
		return nil, apperror.Unexpected(err)
	}
	if len(rows) == 0 {
		return nil, ErrNoRequests
	}
	return rows, nil
}

// List filters by statut verbatim. A nil filter means pending only.
func (l *Ledger) List(ctx context.Context, statut *string) ([]model.DemandeAccesModel, error) {
	filter := model.StatusPending
	if statut != nil {
		filter = *statut
	}
	rows, err := repository.ListByStatut(ctx, l.DB, filter)
	if err != nil {
		return nil, apperror.Unexpected(err)
	}
	return rows, nil
}

// wrap keeps tagged errors and tags everything else as unexpected.
func wrap(err error) error {
	return apperror.As(err)
}
