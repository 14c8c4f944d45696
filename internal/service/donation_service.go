package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MobeenM17/SuswearGProject/internal/dto"
	"github.com/MobeenM17/SuswearGProject/internal/model"
	"github.com/MobeenM17/SuswearGProject/internal/repository"
	apperr "github.com/MobeenM17/SuswearGProject/pkg/errors"
	"github.com/MobeenM17/SuswearGProject/pkg/photostore"
)

// ── donation errors ──

var (
	ErrInvalidWeight      = apperr.New(apperr.Unprocessable, "weight must be greater than 0")
	ErrPhotoNotImage      = apperr.New(apperr.Validation, "photo must be an image")
	ErrDonorNotFound      = apperr.New(apperr.NotFound, "donor not found")
	ErrCategoryNotFound   = apperr.New(apperr.NotFound, "category not found")
	ErrDonationNotFound   = apperr.New(apperr.NotFound, "donation not found")
	ErrCharityNotFound    = apperr.New(apperr.NotFound, "charity not found")
	ErrStaffOnly          = apperr.New(apperr.Unauthorized, "only staff can review donations")
	ErrInvalidAction      = apperr.New(apperr.Validation, "action must be accept or reject")
	ErrAlreadyReviewed    = apperr.New(apperr.Conflict, "donation has already been reviewed")
	ErrNotDonationOwner   = apperr.New(apperr.Forbidden, "donation belongs to another donor")
	ErrNotAwaitingArrival = apperr.New(apperr.Conflict, "donation has no inventory awaiting shipment")
)

// Review actions
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// DonationService donation lifecycle: Pending → Accepted/Rejected, then Sent
type DonationService interface {
	Submit(ctx context.Context, donorUserID int, in *dto.SubmitDonationInput) (int, error)
	Review(ctx context.Context, staffID int, role string, req *dto.ReviewRequest) (*dto.ReviewResponse, error)
	MarkSent(ctx context.Context, donorUserID int, req *dto.SendRequest) error
	ListPending(ctx context.Context) ([]dto.PendingDonationResponse, error)
	ListMine(ctx context.Context, donorUserID int) ([]dto.MyDonationResponse, error)
	ListSent(ctx context.Context, donorUserID int) ([]dto.SentDonationResponse, error)
}

type donationService struct {
	repo     *repository.Repository
	photos   photostore.Store
	notifier NotificationService
	logger   *zap.Logger
}

// NewDonationService creates a DonationService
func NewDonationService(
	repo *repository.Repository,
	photos photostore.Store,
	notifier NotificationService,
	logger *zap.Logger,
) DonationService {
	return &donationService{
		repo:     repo,
		photos:   photos,
		notifier: notifier,
		logger:   logger,
	}
}

// ────────────────────── Submit ──────────────────────

func (s *donationService) Submit(ctx context.Context, donorUserID int, in *dto.SubmitDonationInput) (int, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" || in.CategoryName == "" || in.Photo == nil {
		return 0, ErrMissingFields
	}
	if in.WeightKg <= 0 || math.IsNaN(in.WeightKg) || math.IsInf(in.WeightKg, 0) {
		return 0, ErrInvalidWeight
	}

	// 1. lookups
	if _, err := s.repo.Donor.GetByUserID(ctx, donorUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrDonorNotFound
		}
		return 0, err
	}
	category, err := s.repo.Category.GetByName(ctx, in.CategoryName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCategoryNotFound
		}
		return 0, err
	}

	// 2. photo goes to the blob store before the database
	mimeType, body, err := photostore.SniffImage(in.Photo)
	if err != nil {
		if errors.Is(err, photostore.ErrNotImage) {
			return 0, ErrPhotoNotImage
		}
		return 0, err
	}
	key, err := s.photos.Save(ctx, in.PhotoName, mimeType, body)
	if err != nil {
		s.logger.Error("failed to store donation photo", zap.Int("donor_id", donorUserID), zap.Error(err))
		return 0, err
	}

	// 3. donation + photo row
	donation := &model.Donation{
		DonorID:     donorUserID,
		Description: description,
		CategoryID:  category.CategoryID,
		WeightKg:    in.WeightKg,
		Status:      model.DonationPending,
	}
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Donation.Create(ctx, donation); err != nil {
			return err
		}
		return tx.Photo.Create(ctx, &model.PhotoDonation{
			DonationID: donation.DonationID,
			PhotoURL:   s.photos.URL(key),
		})
	})
	if err != nil {
		s.logger.Error("failed to save donation, removing stored photo",
			zap.Int("donor_id", donorUserID), zap.String("photo", key), zap.Error(err))
		if derr := s.photos.Delete(ctx, key); derr != nil {
			s.logger.Error("orphaned donation photo", zap.String("photo", key), zap.Error(derr))
		}
		return 0, err
	}

	s.logger.Info("donation submitted",
		zap.Int("donation_id", donation.DonationID), zap.Int("donor_id", donorUserID))

	return donation.DonationID, nil
}

// ────────────────────── Review ──────────────────────

func (s *donationService) Review(ctx context.Context, staffID int, role string, req *dto.ReviewRequest) (*dto.ReviewResponse, error) {
	if role != model.RoleStaff {
		return nil, ErrStaffOnly
	}
	action := strings.ToLower(strings.TrimSpace(req.Action))
	if action != ActionAccept && action != ActionReject {
		return nil, ErrInvalidAction
	}

	resp := &dto.ReviewResponse{}
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		d, err := tx.Donation.GetByID(ctx, req.DonationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDonationNotFound
			}
			return err
		}
		if d.Status != model.DonationPending {
			return ErrAlreadyReviewed
		}

		updates := map[string]interface{}{}
		if action == ActionAccept {
			tracking, err := newTrackingCode()
			if err != nil {
				return err
			}
			updates["status"] = model.DonationAccepted
			updates["tracking"] = tracking
			if grade := trimmedOrNil(req.ConditionGrade); grade != nil {
				updates["condition_grade"] = *grade
			}
			resp.Status = model.DonationAccepted
			resp.Tracking = &tracking
		} else {
			updates["status"] = model.DonationRejected
			resp.Status = model.DonationRejected
		}

		// re-checks Pending in the same statement that writes the decision
		changed, err := tx.Donation.DecidePending(ctx, d.DonationID, updates)
		if err != nil {
			return err
		}
		if !changed {
			return ErrAlreadyReviewed
		}

		if action == ActionAccept {
			if err := tx.Inventory.Upsert(ctx, &model.Inventory{
				DonationID:  d.DonationID,
				SizeLabel:   trimmedOrNil(req.SizeLabel),
				GenderLabel: trimmedOrNil(req.GenderLabel),
				SeasonType:  trimmedOrNil(req.SeasonType),
				Status:      model.InventoryArriving,
			}); err != nil {
				return err
			}
		}

		if err := tx.Review.Create(ctx, &model.Review{
			DonationID: d.DonationID,
			StaffID:    staffID,
			Decision:   resp.Status,
			Notes:      trimmedOrNil(req.Notes),
		}); err != nil {
			return err
		}

		return s.notifier.WithTx(tx).Notify(ctx, d.DonorID, d.DonationID, resp.Status)
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.Internal {
			s.logger.Error("failed to review donation",
				zap.Int("donation_id", req.DonationID), zap.Int("staff_id", staffID), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("donation reviewed",
		zap.Int("donation_id", req.DonationID), zap.Int("staff_id", staffID), zap.String("status", resp.Status))

	return resp, nil
}

// ────────────────────── MarkSent ──────────────────────

func (s *donationService) MarkSent(ctx context.Context, donorUserID int, req *dto.SendRequest) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		d, err := tx.Donation.GetByID(ctx, req.DonationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDonationNotFound
			}
			return err
		}
		if d.DonorID != donorUserID {
			return ErrNotDonationOwner
		}

		if _, err := tx.Charity.GetByID(ctx, req.CharityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCharityNotFound
			}
			return err
		}

		inv, err := tx.Inventory.GetByDonationID(ctx, d.DonationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotAwaitingArrival
			}
			return err
		}
		if inv.Status != model.InventoryArriving {
			return ErrNotAwaitingArrival
		}

		moved, err := tx.Inventory.MoveToStock(ctx, d.DonationID, req.CharityID)
		if err != nil {
			return err
		}
		if !moved {
			return apperr.ErrOptimisticLock
		}
		if err := tx.Donation.MarkSent(ctx, d.DonationID); err != nil {
			return err
		}

		staffIDs, err := tx.User.ListIDsByRole(ctx, model.RoleStaff)
		if err != nil {
			return err
		}
		return s.notifier.WithTx(tx).NotifyMany(ctx, staffIDs, d.DonationID, model.NotificationDonationSent)
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.Internal {
			s.logger.Error("failed to mark donation sent",
				zap.Int("donation_id", req.DonationID), zap.Int("donor_id", donorUserID), zap.Error(err))
		}
		return err
	}

	s.logger.Info("donation sent",
		zap.Int("donation_id", req.DonationID), zap.Int("charity_id", req.CharityID))
	return nil
}

// ────────────────────── queues ──────────────────────

func (s *donationService) ListPending(ctx context.Context) ([]dto.PendingDonationResponse, error) {
	rows, err := s.repo.Donation.ListPending(ctx)
	if err != nil {
		s.logger.Error("failed to list pending donations", zap.Error(err))
		return nil, err
	}

	out := make([]dto.PendingDonationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PendingDonationResponse{
			DonationID:     r.DonationID,
			DonorID:        r.DonorID,
			DonorName:      r.DonorName,
			Description:    r.Description,
			Category:       r.CategoryName,
			WeightKg:       r.WeightKg,
			ConditionGrade: r.ConditionGrade,
			SubmittedAt:    r.SubmittedAt,
		})
	}
	return out, nil
}

func (s *donationService) ListMine(ctx context.Context, donorUserID int) ([]dto.MyDonationResponse, error) {
	list, err := s.repo.Donation.ListByDonor(ctx, donorUserID)
	if err != nil {
		s.logger.Error("failed to list donor donations", zap.Int("donor_id", donorUserID), zap.Error(err))
		return nil, err
	}

	out := make([]dto.MyDonationResponse, 0, len(list))
	for _, d := range list {
		item := dto.MyDonationResponse{
			DonationID:     d.DonationID,
			Description:    d.Description,
			WeightKg:       d.WeightKg,
			ConditionGrade: d.ConditionGrade,
			Status:         d.Status,
			SentStatus:     d.SentStatus,
			Tracking:       d.Tracking,
			PhotoURLs:      make([]string, 0, len(d.Photos)),
			SubmittedAt:    d.SubmittedAt,
		}
		if d.Category != nil {
			item.Category = d.Category.Name
		}
		for _, p := range d.Photos {
			item.PhotoURLs = append(item.PhotoURLs, p.PhotoURL)
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *donationService) ListSent(ctx context.Context, donorUserID int) ([]dto.SentDonationResponse, error) {
	rows, err := s.repo.Donation.ListSentByDonor(ctx, donorUserID)
	if err != nil {
		s.logger.Error("failed to list sent donations", zap.Int("donor_id", donorUserID), zap.Error(err))
		return nil, err
	}

	out := make([]dto.SentDonationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SentDonationResponse{
			DonationID:      r.DonationID,
			Description:     r.Description,
			Category:        r.CategoryName,
			Tracking:        r.Tracking,
			SentStatus:      r.SentStatus,
			InventoryStatus: r.InventoryStatus,
			SubmittedAt:     r.SubmittedAt,
		})
	}
	return out, nil
}

// ────────────────────── helpers ──────────────────────

var trackingSpace = big.NewInt(10_000_000_000)

// newTrackingCode returns TRK- followed by 10 random digits
func newTrackingCode() (string, error) {
	n, err := rand.Int(rand.Reader, trackingSpace)
	if err != nil {
		return "", fmt.Errorf("generate tracking code: %w", err)
	}
	return fmt.Sprintf("TRK-%010d", n.Int64()), nil
}

// trimmedOrNil maps blank optional strings to nil so they never overwrite stored values
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
