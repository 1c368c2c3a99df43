package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/verihub/company-registry/internal/core/domain"
	"github.com/verihub/company-registry/internal/core/ports"
)

const uniqueViolation = "23505"

// UserRepository persists user identities in the users table.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, firebase_uid, email, full_name, gender, mobile_number,
	signup_type, is_email_verified, is_mobile_verified, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO users (firebase_uid, email, full_name, gender, mobile_number, signup_type, is_email_verified)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+userColumns,
		in.FirebaseUID, in.Email, in.FullName, in.Gender, in.MobileNumber, in.SignupType, in.IsEmailVerified,
	)

	user, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findBy(ctx, "id = $1", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findBy(ctx, "email = $1", email)
}

func (r *UserRepository) FindByFirebaseUID(ctx context.Context, uid string) (*domain.User, error) {
	return r.findBy(ctx, "firebase_uid = $1", uid)
}

// findBy runs a single-row lookup. The predicate is one of the fixed
// column-equality clauses above, never caller data.
func (r *UserRepository) findBy(ctx context.Context, predicate string, arg any) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+predicate, arg)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, in ports.UpdateProfileInput) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE users
		 SET full_name = $1, mobile_number = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3
		 RETURNING `+userColumns,
		in.FullName, in.MobileNumber, id,
	)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("update user profile: %w", err)
	}
	return user, nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.FirebaseUID, &u.Email, &u.FullName, &u.Gender, &u.MobileNumber,
		&u.SignupType, &u.IsEmailVerified, &u.IsMobileVerified, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
