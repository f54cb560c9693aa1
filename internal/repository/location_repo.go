package repository

import (
	"context"
	"errors"
	"fmt"

	"citizen_registry/internal/model"

	"github.com/jackc/pgx/v5"
)

// CountryRepository defines operations for country data
type CountryRepository interface {
	Create(ctx context.Context, country *model.Country) error
	FindByID(ctx context.Context, id int64) (*model.Country, error)
	FindAll(ctx context.Context) ([]model.Country, error)
	Update(ctx context.Context, country *model.Country) error
	Delete(ctx context.Context, id int64) error
}

// StateRepository defines operations for state data. Reads return the
// expanded shape with the parent country embedded.
type StateRepository interface {
	Create(ctx context.Context, state *model.State) error
	FindByID(ctx context.Context, id int64) (*model.StateDetail, error)
	FindAll(ctx context.Context) ([]model.StateDetail, error)
	Update(ctx context.Context, state *model.State) error
	Delete(ctx context.Context, id int64) error
}

// CityRepository defines operations for city data. Reads return the expanded
// shape with the state/country chain embedded.
type CityRepository interface {
	Create(ctx context.Context, city *model.City) error
	FindByID(ctx context.Context, id int64) (*model.CityDetail, error)
	FindAll(ctx context.Context) ([]model.CityDetail, error)
	Update(ctx context.Context, city *model.City) error
	Delete(ctx context.Context, id int64) error
}

type countryRepository struct {
	db DB
}

// NewCountryRepository creates a new CountryRepository
func NewCountryRepository(db DB) CountryRepository {
	return &countryRepository{db: db}
}

func (r *countryRepository) Create(ctx context.Context, country *model.Country) error {
	sql := `INSERT INTO countries (name, code) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, country.Name, country.Code).Scan(&country.ID); err != nil {
		return fmt.Errorf("failed to create country: %w", err)
	}
	return nil
}

func (r *countryRepository) FindByID(ctx context.Context, id int64) (*model.Country, error) {
	country := &model.Country{}
	sql := `SELECT id, name, code FROM countries WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&country.ID, &country.Name, &country.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find country by ID: %w", err)
	}
	return country, nil
}

func (r *countryRepository) FindAll(ctx context.Context) ([]model.Country, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, code FROM countries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	var countries []model.Country
	for rows.Next() {
		var c model.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code); err != nil {
			return nil, fmt.Errorf("failed to scan country row: %w", err)
		}
		countries = append(countries, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating country rows: %w", err)
	}
	return countries, nil
}

func (r *countryRepository) Update(ctx context.Context, country *model.Country) error {
	sql := `UPDATE countries SET name = $1, code = $2 WHERE id = $3`
	cmdTag, err := r.db.Exec(ctx, sql, country.Name, country.Code, country.ID)
	if err != nil {
		return fmt.Errorf("failed to update country: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("country not found for update")
	}
	return nil
}

func (r *countryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete country: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("country not found for deletion")
	}
	return nil
}

type stateRepository struct {
	db DB
}

// NewStateRepository creates a new StateRepository
func NewStateRepository(db DB) StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) Create(ctx context.Context, state *model.State) error {
	sql := `INSERT INTO states (name, code, country_id) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, state.Name, state.Code, state.CountryID).Scan(&state.ID); err != nil {
		return fmt.Errorf("failed to create state: %w", err)
	}
	return nil
}

func (r *stateRepository) FindByID(ctx context.Context, id int64) (*model.StateDetail, error) {
	s := &model.StateDetail{}
	sql := `SELECT s.id, s.name, s.code, c.id, c.name, c.code
            FROM states s JOIN countries c ON s.country_id = c.id
            WHERE s.id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&s.ID, &s.Name, &s.Code, &s.Country.ID, &s.Country.Name, &s.Country.Code,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find state by ID: %w", err)
	}
	return s, nil
}

func (r *stateRepository) FindAll(ctx context.Context) ([]model.StateDetail, error) {
	sql := `SELECT s.id, s.name, s.code, c.id, c.name, c.code
            FROM states s JOIN countries c ON s.country_id = c.id
            ORDER BY s.id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query states: %w", err)
	}
	defer rows.Close()

	var states []model.StateDetail
	for rows.Next() {
		var s model.StateDetail
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.Country.ID, &s.Country.Name, &s.Country.Code); err != nil {
			return nil, fmt.Errorf("failed to scan state row: %w", err)
		}
		states = append(states, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating state rows: %w", err)
	}
	return states, nil
}

func (r *stateRepository) Update(ctx context.Context, state *model.State) error {
	sql := `UPDATE states SET name = $1, code = $2, country_id = $3 WHERE id = $4`
	cmdTag, err := r.db.Exec(ctx, sql, state.Name, state.Code, state.CountryID, state.ID)
	if err != nil {
		return fmt.Errorf("failed to update state: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("state not found for update")
	}
	return nil
}

func (r *stateRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM states WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("state not found for deletion")
	}
	return nil
}

type cityRepository struct {
	db DB
}

// NewCityRepository creates a new CityRepository
func NewCityRepository(db DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) Create(ctx context.Context, city *model.City) error {
	sql := `INSERT INTO cities (name, code, state_id) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, city.Name, city.Code, city.StateID).Scan(&city.ID); err != nil {
		return fmt.Errorf("failed to create city: %w", err)
	}
	return nil
}

func (r *cityRepository) FindByID(ctx context.Context, id int64) (*model.CityDetail, error) {
	ct := &model.CityDetail{}
	sql := `SELECT ci.id, ci.name, ci.code, s.id, s.name, s.code, c.id, c.name, c.code
            FROM cities ci
            JOIN states s ON ci.state_id = s.id
            JOIN countries c ON s.country_id = c.id
            WHERE ci.id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&ct.ID, &ct.Name, &ct.Code,
		&ct.State.ID, &ct.State.Name, &ct.State.Code,
		&ct.State.Country.ID, &ct.State.Country.Name, &ct.State.Country.Code,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find city by ID: %w", err)
	}
	return ct, nil
}

func (r *cityRepository) FindAll(ctx context.Context) ([]model.CityDetail, error) {
	sql := `SELECT ci.id, ci.name, ci.code, s.id, s.name, s.code, c.id, c.name, c.code
            FROM cities ci
            JOIN states s ON ci.state_id = s.id
            JOIN countries c ON s.country_id = c.id
            ORDER BY ci.id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	var cities []model.CityDetail
	for rows.Next() {
		var ct model.CityDetail
		if err := rows.Scan(
			&ct.ID, &ct.Name, &ct.Code,
			&ct.State.ID, &ct.State.Name, &ct.State.Code,
			&ct.State.Country.ID, &ct.State.Country.Name, &ct.State.Country.Code,
		); err != nil {
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		cities = append(cities, ct)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating city rows: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) Update(ctx context.Context, city *model.City) error {
	sql := `UPDATE cities SET name = $1, code = $2, state_id = $3 WHERE id = $4`
	cmdTag, err := r.db.Exec(ctx, sql, city.Name, city.Code, city.StateID, city.ID)
	if err != nil {
		return fmt.Errorf("failed to update city: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("city not found for update")
	}
	return nil
}

func (r *cityRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete city: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("city not found for deletion")
	}
	return nil
}
