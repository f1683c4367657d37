package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/teetime-pricing/internal/app/pricing/domain"
	"github.com/light-bringer/teetime-pricing/internal/models/m_base_product"
	"github.com/light-bringer/teetime-pricing/internal/models/m_price_rule"
	"github.com/light-bringer/teetime-pricing/internal/models/m_season"
	"github.com/light-bringer/teetime-pricing/internal/models/m_special_override"
	"github.com/light-bringer/teetime-pricing/internal/models/m_time_band"
)

// Conversions between domain records and database models. Optional domain
// fields (pointers, empty strings) map to NULL columns and back.

func seasonToData(courseID string, s *domain.Season) *m_season.Data {
	return &m_season.Data{
		CourseID:  courseID,
		SeasonID:  s.ID,
		Name:      s.Name,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Priority:  s.Priority,
		Active:    s.Active,
	}
}

func seasonFromData(d *m_season.Data) domain.Season {
	return domain.Season{
		ID:        d.SeasonID,
		CourseID:  d.CourseID,
		Name:      d.Name,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Priority:  d.Priority,
		Active:    d.Active,
	}
}

func bandToData(courseID string, b *domain.TimeBand) *m_time_band.Data {
	return &m_time_band.Data{
		CourseID:  courseID,
		BandID:    b.ID,
		Name:      b.Name,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Active:    b.Active,
	}
}

func bandFromData(d *m_time_band.Data) domain.TimeBand {
	return domain.TimeBand{
		ID:        d.BandID,
		CourseID:  d.CourseID,
		Name:      d.Name,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Active:    d.Active,
	}
}

func ruleToData(courseID string, r *domain.PriceRule, position int64) *m_price_rule.Data {
	return &m_price_rule.Data{
		CourseID:      courseID,
		RuleID:        r.ID,
		Name:          r.Name,
		PriceType:     string(r.PriceType),
		PriceValue:    r.PriceValue,
		Priority:      r.Priority,
		Active:        r.Active,
		EffectiveFrom: nullString(r.EffectiveFrom),
		EffectiveTo:   nullString(r.EffectiveTo),
		SeasonID:      nullString(r.SeasonID),
		TimeBandID:    nullString(r.TimeBandID),
		DaysOfWeek:    r.DaysOfWeek,
		LeadTimeMin:   nullFloat(r.LeadTimeMin),
		LeadTimeMax:   nullFloat(r.LeadTimeMax),
		OccupancyMin:  nullInt(r.OccupancyMin),
		OccupancyMax:  nullInt(r.OccupancyMax),
		PlayersMin:    nullInt(r.PlayersMin),
		PlayersMax:    nullInt(r.PlayersMax),
		MinPrice:      nullCents(r.MinPrice),
		MaxPrice:      nullCents(r.MaxPrice),
		RoundTo:       nullCents(r.RoundTo),
		Position:      position,
	}
}

func ruleFromData(d *m_price_rule.Data) domain.PriceRule {
	return domain.PriceRule{
		ID:            d.RuleID,
		CourseID:      d.CourseID,
		Name:          d.Name,
		PriceType:     domain.RuleType(d.PriceType),
		PriceValue:    d.PriceValue,
		Priority:      d.Priority,
		Active:        d.Active,
		EffectiveFrom: d.EffectiveFrom.StringVal,
		EffectiveTo:   d.EffectiveTo.StringVal,
		SeasonID:      d.SeasonID.StringVal,
		TimeBandID:    d.TimeBandID.StringVal,
		DaysOfWeek:    d.DaysOfWeek,
		LeadTimeMin:   floatPtr(d.LeadTimeMin),
		LeadTimeMax:   floatPtr(d.LeadTimeMax),
		OccupancyMin:  intPtr(d.OccupancyMin),
		OccupancyMax:  intPtr(d.OccupancyMax),
		PlayersMin:    intPtr(d.PlayersMin),
		PlayersMax:    intPtr(d.PlayersMax),
		MinPrice:      centsPtr(d.MinPrice),
		MaxPrice:      centsPtr(d.MaxPrice),
		RoundTo:       centsPtr(d.RoundTo),
	}
}

func overrideToData(courseID string, o *domain.SpecialOverride) *m_special_override.Data {
	data := &m_special_override.Data{
		CourseID:     courseID,
		OverrideID:   o.ID,
		Name:         o.Name,
		StartDate:    o.StartDate,
		EndDate:      o.EndDate,
		StartTime:    nullString(o.StartTime),
		EndTime:      nullString(o.EndTime),
		OverrideType: string(o.OverrideType),
		Priority:     o.Priority,
		Active:       o.Active,
	}
	if o.PriceValue != nil {
		data.PriceValue = spanner.NullInt64{Int64: int64(*o.PriceValue), Valid: true}
	}
	return data
}

func overrideFromData(d *m_special_override.Data) domain.SpecialOverride {
	o := domain.SpecialOverride{
		ID:           d.OverrideID,
		CourseID:     d.CourseID,
		Name:         d.Name,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		StartTime:    d.StartTime.StringVal,
		EndTime:      d.EndTime.StringVal,
		OverrideType: domain.OverrideType(d.OverrideType),
		Priority:     d.Priority,
		Active:       d.Active,
	}
	if d.PriceValue.Valid {
		v := domain.Cents(d.PriceValue.Int64)
		o.PriceValue = &v
	}
	return o
}

func baseToData(courseID string, bp *domain.BaseProduct) *m_base_product.Data {
	return &m_base_product.Data{
		CourseID:  courseID,
		BasePrice: int64(bp.BasePrice),
		CartFee:   int64(bp.CartFee),
		CaddieFee: int64(bp.CaddieFee),
	}
}

func baseFromData(d *m_base_product.Data) domain.BaseProduct {
	return domain.BaseProduct{
		CourseID:  d.CourseID,
		BasePrice: domain.Cents(d.BasePrice),
		CartFee:   domain.Cents(d.CartFee),
		CaddieFee: domain.Cents(d.CaddieFee),
	}
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}

func nullFloat(p *float64) spanner.NullFloat64 {
	if p == nil {
		return spanner.NullFloat64{}
	}
	return spanner.NullFloat64{Float64: *p, Valid: true}
}

func nullInt(p *int64) spanner.NullInt64 {
	if p == nil {
		return spanner.NullInt64{}
	}
	return spanner.NullInt64{Int64: *p, Valid: true}
}

func nullCents(p *domain.Cents) spanner.NullInt64 {
	if p == nil {
		return spanner.NullInt64{}
	}
	return spanner.NullInt64{Int64: int64(*p), Valid: true}
}

func floatPtr(n spanner.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func intPtr(n spanner.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func centsPtr(n spanner.NullInt64) *domain.Cents {
	if !n.Valid {
		return nil
	}
	v := domain.Cents(n.Int64)
	return &v
}
