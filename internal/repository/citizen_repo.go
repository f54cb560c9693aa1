package repository

import (
	"context"
	"errors"
	"fmt"

	"citizen_registry/internal/model"

	"github.com/jackc/pgx/v5"
)

// CitizenRepository defines operations for citizen data
type CitizenRepository interface {
	Create(ctx context.Context, citizen *model.Citizen) error
	FindByID(ctx context.Context, id int64) (*model.Citizen, error)
	FindDetail(ctx context.Context, id int64) (*model.CitizenDetail, error)
	FindByUser(ctx context.Context, userID int64) ([]model.CitizenDetail, error)
	Update(ctx context.Context, citizen *model.Citizen) error
	Delete(ctx context.Context, id int64) error
}

type citizenRepository struct {
	db DB
}

// NewCitizenRepository creates a new CitizenRepository
func NewCitizenRepository(db DB) CitizenRepository {
	return &citizenRepository{db: db}
}

// Create inserts a new citizen record
func (r *citizenRepository) Create(ctx context.Context, citizen *model.Citizen) error {
	sql := `INSERT INTO citizens (name, last_name, address, phone, no_identification, city_id, user_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRow(ctx, sql,
		citizen.Name, citizen.LastName, citizen.Address,
		citizen.Phone, citizen.NoIdentification, citizen.CityID, citizen.UserID,
	).Scan(&citizen.ID)
	if err != nil {
		return fmt.Errorf("failed to create citizen: %w", err)
	}
	return nil
}

// FindByID retrieves the shallow record, owner included
func (r *citizenRepository) FindByID(ctx context.Context, id int64) (*model.Citizen, error) {
	cz := &model.Citizen{}
	sql := `SELECT id, name, last_name, address, phone, no_identification, city_id, user_id
            FROM citizens WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&cz.ID, &cz.Name, &cz.LastName, &cz.Address,
		&cz.Phone, &cz.NoIdentification, &cz.CityID, &cz.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find citizen by ID: %w", err)
	}
	return cz, nil
}

// FindDetail retrieves one record with the city/state/country chain embedded
func (r *citizenRepository) FindDetail(ctx context.Context, id int64) (*model.CitizenDetail, error) {
	d := &model.CitizenDetail{}
	sql := `SELECT z.id, z.name, z.last_name, z.address, z.phone, z.no_identification, z.user_id,
                   ci.id, ci.name, ci.code, s.id, s.name, s.code, c.id, c.name, c.code
            FROM citizens z
            JOIN cities ci ON z.city_id = ci.id
            JOIN states s ON ci.state_id = s.id
            JOIN countries c ON s.country_id = c.id
            WHERE z.id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&d.ID, &d.Name, &d.LastName, &d.Address, &d.Phone, &d.NoIdentification, &d.UserID,
		&d.City.ID, &d.City.Name, &d.City.Code,
		&d.City.State.ID, &d.City.State.Name, &d.City.State.Code,
		&d.City.State.Country.ID, &d.City.State.Country.Name, &d.City.State.Country.Code,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find citizen detail: %w", err)
	}
	return d, nil
}

// FindByUser retrieves the records owned by one user, expanded
func (r *citizenRepository) FindByUser(ctx context.Context, userID int64) ([]model.CitizenDetail, error) {
	sql := `SELECT z.id, z.name, z.last_name, z.address, z.phone, z.no_identification, z.user_id,
                   ci.id, ci.name, ci.code, s.id, s.name, s.code, c.id, c.name, c.code
            FROM citizens z
            JOIN cities ci ON z.city_id = ci.id
            JOIN states s ON ci.state_id = s.id
            JOIN countries c ON s.country_id = c.id
            WHERE z.user_id = $1
            ORDER BY z.id`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query citizens by user: %w", err)
	}
	defer rows.Close()

	var citizens []model.CitizenDetail
	for rows.Next() {
		var d model.CitizenDetail
		if err := rows.Scan(
			&d.ID, &d.Name, &d.LastName, &d.Address, &d.Phone, &d.NoIdentification, &d.UserID,
			&d.City.ID, &d.City.Name, &d.City.Code,
			&d.City.State.ID, &d.City.State.Name, &d.City.State.Code,
			&d.City.State.Country.ID, &d.City.State.Country.Name, &d.City.State.Country.Code,
		); err != nil {
			return nil, fmt.Errorf("failed to scan citizen row: %w", err)
		}
		citizens = append(citizens, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating citizen rows: %w", err)
	}
	return citizens, nil
}

// Update rewrites a citizen record; the owner never changes
func (r *citizenRepository) Update(ctx context.Context, citizen *model.Citizen) error {
	sql := `UPDATE citizens
            SET name = $1, last_name = $2, address = $3, phone = $4, no_identification = $5, city_id = $6
            WHERE id = $7 AND user_id = $8`
	cmdTag, err := r.db.Exec(ctx, sql,
		citizen.Name, citizen.LastName, citizen.Address,
		citizen.Phone, citizen.NoIdentification, citizen.CityID,
		citizen.ID, citizen.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update citizen: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("citizen not found or not owned by user for update")
	}
	return nil
}

// Delete removes a citizen record
func (r *citizenRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM citizens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete citizen: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("citizen not found for deletion")
	}
	return nil
}
