// file: internals/features/statistiques/service/statistiques_service.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	demandeModel "securite2ie_backend/internals/features/demandes/demande_acces/model"
	demandeRepo "securite2ie_backend/internals/features/demandes/demande_acces/repository"
	salleModel "securite2ie_backend/internals/features/salles/salle/model"
)

type TauxOccupation struct {
	Mois           string  `json:"mois"`
	TauxOccupation float64 `json:"tauxOccupation"`
}

type UtilisationJour struct {
	Jour         string `json:"jour"`
	Reservations int    `json:"reservations"`
}

// Jours is Monday-first, the order the reporter always returns.
var Jours = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

/* =========================
   TAUX D'OCCUPATION
========================= */

// TauxOccupationParMois averages nombre_presents/capacite*100 over approved
// requests joined with their room, grouped by month label ("Jan".."Dec")
// and ordered by the earliest date in each group.
func TauxOccupationParMois(ctx context.Context, db *gorm.DB) ([]TauxOccupation, error) {
	rows, err := demandeRepo.ListApproved(ctx, db)
	if err != nil {
		return nil, err
	}
	out := []TauxOccupation{}
	if len(rows) == 0 {
		return out, nil
	}

	salles, err := sallesByID(ctx, db, rows)
	if err != nil {
		return nil, err
	}

	type group struct {
		label string
		sum   float64
		n     int
		first time.Time
	}
	groups := map[string]*group{}
	for _, r := range rows {
		s, ok := salles[r.SalleID]
		if !ok || s.Capacite <= 0 {
			continue // inner join: orphaned requests are skipped
		}
		d := time.Time(r.Date)
		label := d.Format("Jan")
		g, ok := groups[label]
		if !ok {
			g = &group{label: label, first: d}
			groups[label] = g
		}
		g.sum += float64(s.NombrePresents) / float64(s.Capacite) * 100
		g.n++
		if d.Before(g.first) {
			g.first = d
		}
	}

	list := make([]*group, 0, len(groups))
	for _, g := range groups {
		list = append(list, g)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].first.Before(list[j].first) })

	for _, g := range list {
		out = append(out, TauxOccupation{Mois: g.label, TauxOccupation: g.sum / float64(g.n)})
	}
	return out, nil
}

func sallesByID(ctx context.Context, db *gorm.DB, rows []demandeModel.DemandeAccesModel) (map[uuid.UUID]salleModel.SalleModel, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	seen := make(map[uuid.UUID]struct{}, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.SalleID]; ok {
			continue
		}
		seen[r.SalleID] = struct{}{}
		ids = append(ids, r.SalleID)
	}

	var salles []salleModel.SalleModel
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&salles).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]salleModel.SalleModel, len(salles))
	for _, s := range salles {
		byID[s.ID] = s
	}
	return byID, nil
}

/* =========================
   UTILISATION PAR JOUR
========================= */

// UtilisationParJour counts approved requests per weekday, zero-filled.
func UtilisationParJour(ctx context.Context, db *gorm.DB) ([]UtilisationJour, error) {
	rows, err := demandeRepo.ListApproved(ctx, db)
	if err != nil {
		return nil, err
	}

	out := make([]UtilisationJour, len(Jours))
	for i, j := range Jours {
		out[i] = UtilisationJour{Jour: j}
	}
	for _, r := range rows {
		out[mondayIndex(time.Time(r.Date).Weekday())].Reservations++
	}
	return out, nil
}

// mondayIndex maps Sunday=0..Saturday=6 onto Lundi=0..Dimanche=6.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
