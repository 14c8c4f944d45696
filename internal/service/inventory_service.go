package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/internal/dto"
	"github.com/MobeenM17/SuswearGProject/internal/repository"
)

// InventoryService read-only projections for the public shop and the send form
type InventoryService interface {
	ListShopItems(ctx context.Context) ([]dto.ShopItemResponse, error)
	ListCharities(ctx context.Context) ([]dto.CharityResponse, error)
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
}

type inventoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInventoryService creates an InventoryService
func NewInventoryService(repo *repository.Repository, logger *zap.Logger) InventoryService {
	return &inventoryService{repo: repo, logger: logger}
}

func (s *inventoryService) ListShopItems(ctx context.Context) ([]dto.ShopItemResponse, error) {
	rows, err := s.repo.Inventory.ListShop(ctx)
	if err != nil {
		s.logger.Error("failed to list shop items", zap.Error(err))
		return nil, err
	}

	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.DonationID)
	}
	photos, err := s.repo.Photo.URLsByDonation(ctx, ids)
	if err != nil {
		s.logger.Error("failed to load shop photos", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ShopItemResponse, 0, len(rows))
	for _, r := range rows {
		urls := photos[r.DonationID]
		if urls == nil {
			urls = []string{}
		}
		out = append(out, dto.ShopItemResponse{
			InventoryID:    r.InventoryID,
			DonationID:     r.DonationID,
			Description:    r.Description,
			Category:       r.CategoryName,
			WeightKg:       r.WeightKg,
			ConditionGrade: r.ConditionGrade,
			SizeLabel:      r.SizeLabel,
			GenderLabel:    r.GenderLabel,
			SeasonType:     r.SeasonType,
			Status:         r.Status,
			CharityName:    r.CharityName,
			PhotoURLs:      urls,
			UpdatedAt:      r.UpdatedAt,
		})
	}
	return out, nil
}

func (s *inventoryService) ListCharities(ctx context.Context) ([]dto.CharityResponse, error) {
	list, err := s.repo.Charity.List(ctx)
	if err != nil {
		s.logger.Error("failed to list charities", zap.Error(err))
		return nil, err
	}
	out := make([]dto.CharityResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CharityResponse{ID: c.CharityID, Name: c.CharityName})
	}
	return out, nil
}

func (s *inventoryService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.repo.Category.List(ctx)
	if err != nil {
		s.logger.Error("failed to list categories", zap.Error(err))
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.CategoryID, Name: c.Name})
	}
	return out, nil
}
