package service

import (
	"context"
	"fmt"

	"citizen_registry/internal/model"
	"citizen_registry/internal/repository"
)

// CountryService provides CRUD over countries. Reads are public; the admin
// gate for writes sits in the route middleware.
type CountryService interface {
	Create(ctx context.Context, req model.CountryRequest) (*model.Country, error)
	Get(ctx context.Context, id int64) (*model.Country, error)
	List(ctx context.Context) ([]model.Country, error)
	Update(ctx context.Context, id int64, req model.UpdateCountryRequest) (*model.Country, error)
	Delete(ctx context.Context, id int64) error
}

// StateService provides CRUD over states; a state must reference an existing
// country.
type StateService interface {
	Create(ctx context.Context, req model.StateRequest) (*model.State, error)
	Get(ctx context.Context, id int64) (*model.StateDetail, error)
	List(ctx context.Context) ([]model.StateDetail, error)
	Update(ctx context.Context, id int64, req model.UpdateStateRequest) (*model.State, error)
	Delete(ctx context.Context, id int64) error
}

// CityService provides CRUD over cities; a city must reference an existing
// state.
type CityService interface {
	Create(ctx context.Context, req model.CityRequest) (*model.City, error)
	Get(ctx context.Context, id int64) (*model.CityDetail, error)
	List(ctx context.Context) ([]model.CityDetail, error)
	Update(ctx context.Context, id int64, req model.UpdateCityRequest) (*model.City, error)
	Delete(ctx context.Context, id int64) error
}

type countryService struct {
	repo repository.CountryRepository
}

// NewCountryService creates a new CountryService
func NewCountryService(repo repository.CountryRepository) CountryService {
	return &countryService{repo: repo}
}

func (s *countryService) Create(ctx context.Context, req model.CountryRequest) (*model.Country, error) {
	country := &model.Country{Name: req.Name, Code: *req.Code}
	if err := s.repo.Create(ctx, country); err != nil {
		return nil, fmt.Errorf("failed to create country in repo: %w", err)
	}
	return country, nil
}

func (s *countryService) Get(ctx context.Context, id int64) (*model.Country, error) {
	country, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find country: %w", err)
	}
	if country == nil {
		return nil, ErrNotFound
	}
	return country, nil
}

func (s *countryService) List(ctx context.Context) ([]model.Country, error) {
	countries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return countries, nil
}

func (s *countryService) Update(ctx context.Context, id int64, req model.UpdateCountryRequest) (*model.Country, error) {
	country, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find country for update: %w", err)
	}
	if country == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		country.Name = *req.Name
	}
	if req.Code != nil {
		country.Code = *req.Code
	}

	if err := s.repo.Update(ctx, country); err != nil {
		return nil, fmt.Errorf("failed to update country in repo: %w", err)
	}
	return country, nil
}

func (s *countryService) Delete(ctx context.Context, id int64) error {
	country, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find country for deletion: %w", err)
	}
	if country == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete country in repo: %w", err)
	}
	return nil
}

type stateService struct {
	repo      repository.StateRepository
	countries repository.CountryRepository
}

// NewStateService creates a new StateService
func NewStateService(repo repository.StateRepository, countries repository.CountryRepository) StateService {
	return &stateService{repo: repo, countries: countries}
}

func (s *stateService) checkCountry(ctx context.Context, id int64) error {
	country, err := s.countries.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check country reference: %w", err)
	}
	if country == nil {
		return NewValidationError("country", fmt.Sprintf("country with id %d does not exist", id))
	}
	return nil
}

func (s *stateService) Create(ctx context.Context, req model.StateRequest) (*model.State, error) {
	if err := s.checkCountry(ctx, req.Country); err != nil {
		return nil, err
	}
	state := &model.State{Name: req.Name, Code: *req.Code, CountryID: req.Country}
	if err := s.repo.Create(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to create state in repo: %w", err)
	}
	return state, nil
}

func (s *stateService) Get(ctx context.Context, id int64) (*model.StateDetail, error) {
	state, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find state: %w", err)
	}
	if state == nil {
		return nil, ErrNotFound
	}
	return state, nil
}

func (s *stateService) List(ctx context.Context) ([]model.StateDetail, error) {
	states, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	return states, nil
}

func (s *stateService) Update(ctx context.Context, id int64, req model.UpdateStateRequest) (*model.State, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find state for update: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	state := &model.State{ID: existing.ID, Name: existing.Name, Code: existing.Code, CountryID: existing.Country.ID}
	if req.Name != nil {
		state.Name = *req.Name
	}
	if req.Code != nil {
		state.Code = *req.Code
	}
	if req.Country != nil {
		if err := s.checkCountry(ctx, *req.Country); err != nil {
			return nil, err
		}
		state.CountryID = *req.Country
	}

	if err := s.repo.Update(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to update state in repo: %w", err)
	}
	return state, nil
}

func (s *stateService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find state for deletion: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete state in repo: %w", err)
	}
	return nil
}

type cityService struct {
	repo   repository.CityRepository
	states repository.StateRepository
}

// NewCityService creates a new CityService
func NewCityService(repo repository.CityRepository, states repository.StateRepository) CityService {
	return &cityService{repo: repo, states: states}
}

func (s *cityService) checkState(ctx context.Context, id int64) error {
	state, err := s.states.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check state reference: %w", err)
	}
	if state == nil {
		return NewValidationError("state", fmt.Sprintf("state with id %d does not exist", id))
	}
	return nil
}

func (s *cityService) Create(ctx context.Context, req model.CityRequest) (*model.City, error) {
	if err := s.checkState(ctx, req.State); err != nil {
		return nil, err
	}
	city := &model.City{Name: req.Name, Code: *req.Code, StateID: req.State}
	if err := s.repo.Create(ctx, city); err != nil {
		return nil, fmt.Errorf("failed to create city in repo: %w", err)
	}
	return city, nil
}

func (s *cityService) Get(ctx context.Context, id int64) (*model.CityDetail, error) {
	city, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find city: %w", err)
	}
	if city == nil {
		return nil, ErrNotFound
	}
	return city, nil
}

func (s *cityService) List(ctx context.Context) ([]model.CityDetail, error) {
	cities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

func (s *cityService) Update(ctx context.Context, id int64, req model.UpdateCityRequest) (*model.City, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find city for update: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	city := &model.City{ID: existing.ID, Name: existing.Name, Code: existing.Code, StateID: existing.State.ID}
	if req.Name != nil {
		city.Name = *req.Name
	}
	if req.Code != nil {
		city.Code = *req.Code
	}
	if req.State != nil {
		if err := s.checkState(ctx, *req.State); err != nil {
			return nil, err
		}
		city.StateID = *req.State
	}

	if err := s.repo.Update(ctx, city); err != nil {
		return nil, fmt.Errorf("failed to update city in repo: %w", err)
	}
	return city, nil
}

func (s *cityService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find city for deletion: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete city in repo: %w", err)
	}
	return nil
}
