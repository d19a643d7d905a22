package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/registration-service/internal/models"
)

// FindUserByEmail возвращает пользователя по email или nil, если запись не найдена.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.FindUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, first_name, last_name, email, phone_number, gender,
			      birthdate, district, blood_group, password_hash, photo, created_at
			  FROM users
			  WHERE email = $1`
	row := s.DB.QueryRowContext(ctx, query, email)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// AddUser добавляет запись пользователя в коллекцию.
func (s *Storage) AddUser(ctx context.Context, user models.User) error {
	const op = "storage.AddUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (id, first_name, last_name, email, phone_number, gender,
			      birthdate, district, blood_group, password_hash, photo, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	if _, err := s.DB.ExecContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PhoneNumber, user.Gender,
		user.Birthdate, user.District, user.BloodGroup, user.PasswordHash, user.Photo,
		user.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListUsers возвращает пользователей, отсортированных по дате создания, с пагинацией.
func (s *Storage) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, first_name, last_name, email, phone_number, gender,
			      birthdate, district, blood_group, password_hash, photo, created_at
			  FROM users
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// scanner объединяет *sql.Row и *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*models.User, error) {
	u := &models.User{}
	var phoneNumber, birthdate, district, bloodGroup, photo sql.NullString
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &phoneNumber, &u.Gender,
		&birthdate, &district, &bloodGroup, &u.PasswordHash, &photo, &u.CreatedAt); err != nil {
		return nil, err
	}
	if phoneNumber.Valid {
		u.PhoneNumber = &phoneNumber.String
	}
	if birthdate.Valid {
		u.Birthdate = &birthdate.String
	}
	if district.Valid {
		u.District = &district.String
	}
	if bloodGroup.Valid {
		u.BloodGroup = &bloodGroup.String
	}
	if photo.Valid {
		u.Photo = &photo.String
	}
	return u, nil
}
