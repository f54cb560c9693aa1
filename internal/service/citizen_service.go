package service

import (
	"context"
	"fmt"
	"strconv"

	"citizen_registry/internal/model"
	"citizen_registry/internal/repository"
)

// maxDigits bounds phone and no_identification: the decimal rendering must
// not exceed 10 characters even though the column is BIGINT.
const maxDigits = 10

// CitizenService provides CRUD over citizen records. Every operation takes
// the authenticated caller id; ownership is checked here, per request.
type CitizenService interface {
	Create(ctx context.Context, userID int64, req model.CitizenRequest) (*model.Citizen, error)
	Get(ctx context.Context, id, userID int64) (*model.CitizenDetail, error)
	List(ctx context.Context, userID int64) ([]model.CitizenDetail, error)
	Update(ctx context.Context, id, userID int64, req model.UpdateCitizenRequest) (*model.Citizen, error)
	Delete(ctx context.Context, id, userID int64) error
}

type citizenService struct {
	repo   repository.CitizenRepository
	cities repository.CityRepository
}

// NewCitizenService creates a new CitizenService
func NewCitizenService(repo repository.CitizenRepository, cities repository.CityRepository) CitizenService {
	return &citizenService{repo: repo, cities: cities}
}

// parseNumeric accepts a decimal string of at most maxDigits digits
func parseNumeric(field, value string) (int64, error) {
	if len(value) > maxDigits {
		return 0, NewValidationError(field, fmt.Sprintf("ensure this field has no more than %d characters", maxDigits))
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		return 0, NewValidationError(field, "a valid number is required")
	}
	return n, nil
}

func (s *citizenService) checkCity(ctx context.Context, id int64) error {
	city, err := s.cities.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check city reference: %w", err)
	}
	if city == nil {
		return NewValidationError("city", fmt.Sprintf("city with id %d does not exist", id))
	}
	return nil
}

// Create registers a citizen under the authenticated caller. Any owner in
// the payload was never bound; the caller id wins unconditionally.
func (s *citizenService) Create(ctx context.Context, userID int64, req model.CitizenRequest) (*model.Citizen, error) {
	phone, err := parseNumeric("phone", req.Phone)
	if err != nil {
		return nil, err
	}
	noID, err := parseNumeric("no_identification", req.NoIdentification)
	if err != nil {
		return nil, err
	}
	if err := s.checkCity(ctx, req.City); err != nil {
		return nil, err
	}

	citizen := &model.Citizen{
		Name:             req.Name,
		LastName:         req.LastName,
		Address:          req.Address,
		Phone:            phone,
		NoIdentification: noID,
		CityID:           req.City,
		UserID:           userID,
	}
	if err := s.repo.Create(ctx, citizen); err != nil {
		return nil, fmt.Errorf("failed to create citizen in repo: %w", err)
	}
	return citizen, nil
}

func (s *citizenService) Get(ctx context.Context, id, userID int64) (*model.CitizenDetail, error) {
	detail, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find citizen: %w", err)
	}
	if detail == nil {
		return nil, ErrNotFound
	}
	if detail.UserID != userID {
		return nil, ErrForbidden
	}
	return detail, nil
}

// List returns only the caller's records, never all of them
func (s *citizenService) List(ctx context.Context, userID int64) ([]model.CitizenDetail, error) {
	citizens, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list citizens: %w", err)
	}
	return citizens, nil
}

func (s *citizenService) Update(ctx context.Context, id, userID int64, req model.UpdateCitizenRequest) (*model.Citizen, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find citizen for update: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.LastName != nil {
		existing.LastName = *req.LastName
	}
	if req.Address != nil {
		existing.Address = *req.Address
	}
	if req.Phone != nil {
		phone, err := parseNumeric("phone", *req.Phone)
		if err != nil {
			return nil, err
		}
		existing.Phone = phone
	}
	if req.NoIdentification != nil {
		noID, err := parseNumeric("no_identification", *req.NoIdentification)
		if err != nil {
			return nil, err
		}
		existing.NoIdentification = noID
	}
	if req.City != nil {
		if err := s.checkCity(ctx, *req.City); err != nil {
			return nil, err
		}
		existing.CityID = *req.City
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update citizen in repo: %w", err)
	}
	return existing, nil
}

func (s *citizenService) Delete(ctx context.Context, id, userID int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find citizen for deletion: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.UserID != userID {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete citizen in repo: %w", err)
	}
	return nil
}
