package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/verihub/company-registry/internal/core/domain"
	"github.com/verihub/company-registry/internal/core/ports"
)

// CompanyRepository persists company profiles. Ownership is part of every
// mutation's WHERE clause, so a non-owner's update or delete simply matches
// zero rows.
type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = `id, owner_id, company_name, address, city, state, country,
	zip_code, logo_url, banner_url, created_at, updated_at`

func (r *CompanyRepository) Create(ctx context.Context, ownerID int64, in ports.CompanyInput) (*domain.CompanyProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO company_profile (owner_id, company_name, address, city, state, country, zip_code, logo_url, banner_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+companyColumns,
		ownerID, in.CompanyName, in.Address, in.City, in.State, in.Country, in.ZipCode, in.LogoURL, in.BannerURL,
	)

	profile, err := scanCompany(row)
	if err != nil {
		return nil, fmt.Errorf("insert company profile: %w", err)
	}
	return profile, nil
}

func (r *CompanyRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.CompanyProfile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+companyColumns+`
		 FROM company_profile
		 WHERE owner_id = $1
		 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list company profiles: %w", err)
	}
	defer rows.Close()

	profiles := []domain.CompanyProfile{}
	for rows.Next() {
		var p domain.CompanyProfile
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.CompanyName, &p.Address, &p.City, &p.State, &p.Country,
			&p.ZipCode, &p.LogoURL, &p.BannerURL, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list company profiles: %w", err)
	}
	return profiles, nil
}

func (r *CompanyRepository) Update(ctx context.Context, ownerID, profileID int64, in ports.CompanyInput) (*domain.CompanyProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE company_profile
		 SET company_name = $1, address = $2, city = $3, state = $4, country = $5,
		     zip_code = $6, logo_url = $7, banner_url = $8, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $9 AND owner_id = $10
		 RETURNING `+companyColumns,
		in.CompanyName, in.Address, in.City, in.State, in.Country, in.ZipCode, in.LogoURL, in.BannerURL,
		profileID, ownerID,
	)

	profile, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("update company profile: %w", err)
	}
	return profile, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, ownerID, profileID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM company_profile WHERE id = $1 AND owner_id = $2`,
		profileID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete company profile: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete company profile: %w", err)
	}
	if affected == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func scanCompany(row *sql.Row) (*domain.CompanyProfile, error) {
	var p domain.CompanyProfile
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.CompanyName, &p.Address, &p.City, &p.State, &p.Country,
		&p.ZipCode, &p.LogoURL, &p.BannerURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var _ ports.CompanyRepository = (*CompanyRepository)(nil)
