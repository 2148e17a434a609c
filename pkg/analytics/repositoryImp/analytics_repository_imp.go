package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"msitumum/pkg/analytics"
	"msitumum/pkg/analytics/repository"
	"msitumum/pkg/apperr"
)

type analyticsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AnalyticsRepository { return &analyticsRepo{db: db} }

type outcomeRow struct {
	ID                uint
	SeedlingsPlanted  int
	SiteID            uint
	SiteName          string
	SpeciesID         uint
	SpeciesName       string
	UserID            uint
	OwnerName         string
	OwnerOrganization string
	OwnerRole         string
}

type latestRow struct {
	PlantingID    uint
	SurvivalCount int
}

type costRow struct {
	PlantingID uint
	Total      float64
}

func (r *analyticsRepo) Outcomes(ctx context.Context) ([]analytics.PlantingOutcome, error) {
	db := r.db.WithContext(ctx)

	var rows []outcomeRow
	err := db.Table("planting_records AS p").
		Select(`p.id, p.seedlings_planted, p.site_id, s.site_name, p.species_id,
			sp.common_name AS species_name, p.user_id, u.full_name AS owner_name,
			u.organization AS owner_organization, u.role AS owner_role`).
		Joins("LEFT JOIN planting_sites s ON s.id = p.site_id").
		Joins("LEFT JOIN tree_species sp ON sp.id = p.species_id").
		Joins("LEFT JOIN users u ON u.id = p.user_id").
		Order("p.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}

	// rows arrive newest first per planting; the first seen wins
	var visits []latestRow
	err = db.Table("monitoring_records").
		Select("planting_id, survival_count").
		Order("planting_id ASC, monitoring_date DESC, id DESC").
		Scan(&visits).Error
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	latest := make(map[uint]int, len(visits))
	for _, v := range visits {
		if _, ok := latest[v.PlantingID]; !ok {
			latest[v.PlantingID] = v.SurvivalCount
		}
	}

	var costs []costRow
	err = db.Table("cost_tracking").
		Select("planting_id, SUM(amount) AS total").
		Where("planting_id IS NOT NULL").
		Group("planting_id").
		Scan(&costs).Error
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	total := make(map[uint]float64, len(costs))
	for _, c := range costs {
		total[c.PlantingID] = c.Total
	}

	out := make([]analytics.PlantingOutcome, 0, len(rows))
	for _, row := range rows {
		o := analytics.PlantingOutcome{
			PlantingID:        row.ID,
			SeedlingsPlanted:  row.SeedlingsPlanted,
			SiteID:            row.SiteID,
			SiteName:          row.SiteName,
			SpeciesID:         row.SpeciesID,
			SpeciesName:       row.SpeciesName,
			OwnerID:           row.UserID,
			OwnerName:         row.OwnerName,
			OwnerOrganization: row.OwnerOrganization,
			OwnerRole:         row.OwnerRole,
		}
		if v, ok := latest[row.ID]; ok {
			o.LatestSurvival = &v
		}
		if v, ok := total[row.ID]; ok {
			o.TotalCost = &v
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *analyticsRepo) MortalityCauses(ctx context.Context) ([]analytics.MortalityCause, error) {
	out := []analytics.MortalityCause{}
	err := r.db.WithContext(ctx).Table("monitoring_records").
		Select("mortality_cause AS cause, COUNT(*) AS count").
		Where("mortality_cause IS NOT NULL AND mortality_cause <> ''").
		Group("mortality_cause").
		Order("count DESC, cause ASC").
		Limit(analytics.MortalityLimit).
		Scan(&out).Error
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	return out, nil
}

type sampleRow struct {
	PlantingID       uint
	MonitoringDate   time.Time
	SurvivalCount    int
	SeedlingsPlanted int
}

func (r *analyticsRepo) SurvivalSamples(ctx context.Context, f repository.SampleFilter) ([]analytics.SurvivalSample, error) {
	q := r.db.WithContext(ctx).Table("monitoring_records AS m").
		Select("m.planting_id, m.monitoring_date, m.survival_count, p.seedlings_planted").
		Joins("JOIN planting_records p ON p.id = m.planting_id").
		Where("m.monitoring_date >= ?", f.Since.UTC())
	if f.SiteID != nil {
		q = q.Where("p.site_id = ?", *f.SiteID)
	}
	if f.SpeciesID != nil {
		q = q.Where("p.species_id = ?", *f.SpeciesID)
	}
	var rows []sampleRow
	if err := q.Order("m.monitoring_date ASC, m.id ASC").Scan(&rows).Error; err != nil {
		return nil, apperr.FromStore(err, "")
	}
	out := make([]analytics.SurvivalSample, 0, len(rows))
	for _, row := range rows {
		out = append(out, analytics.SurvivalSample(row))
	}
	return out, nil
}
