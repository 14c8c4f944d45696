package service

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MobeenM17/SuswearGProject/internal/dto"
	"github.com/MobeenM17/SuswearGProject/internal/model"
	"github.com/MobeenM17/SuswearGProject/internal/repository"
)

// Report scopes
const (
	ScopeAll   = "all"
	ScopeDonor = "donor"
)

// ImpactFactor estimated savings per counted donation
type ImpactFactor struct {
	CO2Kg      float64
	LandfillKg float64
}

// impactTable per-category factors; unknown categories use defaultImpact
var impactTable = map[string]ImpactFactor{
	"Clothing":        {CO2Kg: 3.0, LandfillKg: 2.5},
	"Men":             {CO2Kg: 3.5, LandfillKg: 2.8},
	"Women":           {CO2Kg: 3.5, LandfillKg: 2.8},
	"Children":        {CO2Kg: 2.0, LandfillKg: 1.5},
	"Coats & Jackets": {CO2Kg: 12.0, LandfillKg: 10.0},
	"Tops":            {CO2Kg: 2.5, LandfillKg: 1.8},
}

var defaultImpact = ImpactFactor{CO2Kg: 3.0, LandfillKg: 2.0}

// FactorFor looks up the impact factor of a category name
func FactorFor(category string) ImpactFactor {
	if f, ok := impactTable[category]; ok {
		return f
	}
	return defaultImpact
}

// ReportService impact report calculator
type ReportService interface {
	// Generate empty donorEmail means the global scope, which also
	// overwrites today's metrics row
	Generate(ctx context.Context, donorEmail string) (*dto.ReportResponse, error)
	// Export renders the same report as an xlsx workbook
	Export(ctx context.Context, donorEmail string) (*bytes.Buffer, string, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService creates a ReportService
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Generate ──────────────────────

func (s *reportService) Generate(ctx context.Context, donorEmail string) (*dto.ReportResponse, error) {
	donorEmail = strings.TrimSpace(donorEmail)

	var report *dto.ReportResponse
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		r, err := s.compute(ctx, tx, donorEmail)
		if err != nil {
			return err
		}
		report = r

		if r.Scope != ScopeAll {
			return nil
		}
		return tx.Metric.Upsert(ctx, &model.Metric{
			MetricDate:      s.now().UTC().Format(time.DateOnly),
			TotalDonations:  r.TotalDonations,
			CO2SavedKg:      r.TotalCO2,
			LandfillSavedKg: r.LandfillSavedKG,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrDonorNotFound) {
			s.logger.Error("failed to generate impact report", zap.String("donor_email", donorEmail), zap.Error(err))
		}
		return nil, err
	}

	if report.Scope == ScopeAll {
		// global reports carry no breakdown
		report.Donations = nil
	}
	return report, nil
}

// compute sums the factors of every counted donation in scope.
// The breakdown is always filled; callers drop it where it does not belong.
func (s *reportService) compute(ctx context.Context, repo *repository.Repository, donorEmail string) (*dto.ReportResponse, error) {
	report := &dto.ReportResponse{Scope: ScopeAll}

	var donorID *int
	if donorEmail != "" {
		user, err := repo.User.GetByEmail(ctx, donorEmail)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDonorNotFound
			}
			return nil, err
		}
		donor, err := repo.Donor.GetByUserID(ctx, user.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDonorNotFound
			}
			return nil, err
		}
		donorID = &donor.UserID
		report.Scope = ScopeDonor
		report.Donor = donor.FullName
		report.Email = donor.Email
	}

	rows, err := repo.Donation.ListCounted(ctx, donorID)
	if err != nil {
		return nil, err
	}

	var co2, landfill float64
	report.Donations = make([]dto.DonationImpact, 0, len(rows))
	for _, r := range rows {
		category := r.CategoryName
		if category == "" {
			category = "Clothing"
		}
		f := FactorFor(category)
		co2 += f.CO2Kg
		landfill += f.LandfillKg
		report.Donations = append(report.Donations, dto.DonationImpact{
			DonationID:  r.DonationID,
			Description: r.Description,
			Type:        category,
			CO2Saved:    f.CO2Kg,
			Landfill:    f.LandfillKg,
		})
	}

	report.TotalDonations = len(rows)
	report.TotalCO2 = round1(co2)
	report.LandfillSavedKG = round1(landfill)
	return report, nil
}

// round1 rounds half away from zero to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
