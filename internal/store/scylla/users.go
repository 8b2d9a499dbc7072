package scylla

import (
	"context"
	"time"

	"ecomm_back_end/internal/database"
	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store"

	"github.com/gocql/gocql"
)

// Users implémente store.UserStore sur le keyspace users.
// users_by_email est le miroir d'index pour le login.
type Users struct{}

const userColumns = `user_id, email, password, name, address, role, provider, created_at`

func scanUser(q *gocql.Query) (*models.User, error) {
	var u models.User
	var uid gocql.UUID
	var createdAt time.Time
	err := q.Scan(&uid, &u.Email, &u.Password, &u.Name, &u.Address, &u.Role, &u.Provider, &createdAt)
	if err == gocql.ErrNotFound {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, store.Gateway("users.scan", err)
	}
	u.ID = uid.String()
	u.CreatedAt = createdAt
	return &u, nil
}

func (Users) Get(ctx context.Context, userID string) (*models.User, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, store.Gateway("users.session", err)
	}

	uid, err := gocql.ParseUUID(userID)
	if err != nil {
		return nil, store.ErrNotFound
	}

	return scanUser(session.Query(`SELECT `+userColumns+` FROM users WHERE user_id = ?`, uid).WithContext(ctx))
}

func (Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, store.Gateway("users.session", err)
	}

	return scanUser(session.Query(`SELECT `+userColumns+` FROM users_by_email WHERE email = ?`, email).WithContext(ctx))
}

func (Users) Create(ctx context.Context, u *models.User) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return store.Gateway("users.session", err)
	}

	if u.ID == "" {
		u.ID = gocql.TimeUUID().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	uid, err := gocql.ParseUUID(u.ID)
	if err != nil {
		return store.Gateway("users.create", err)
	}

	if err := session.Query(`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uid, u.Email, u.Password, u.Name, u.Address, u.Role, u.Provider, u.CreatedAt).
		WithContext(ctx).Exec(); err != nil {
		return store.Gateway("users.create", err)
	}

	err = session.Query(`INSERT INTO users_by_email (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uid, u.Email, u.Password, u.Name, u.Address, u.Role, u.Provider, u.CreatedAt).
		WithContext(ctx).Exec()
	return store.Gateway("users.create_by_email", err)
}

func (s Users) Update(ctx context.Context, userID string, up models.ProfileUpdate) error {
	// Charge l'utilisateur pour connaître l'email : le miroir users_by_email
	// est partitionné par email et doit rester synchronisé
	current, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}

	if up.Name != nil {
		current.Name = *up.Name
	}
	if up.Address != nil {
		current.Address = *up.Address
	}

	session, err := database.GetUsersSession()
	if err != nil {
		return store.Gateway("users.session", err)
	}

	uid, _ := gocql.ParseUUID(userID)
	if err := session.Query(`UPDATE users SET name = ?, address = ? WHERE user_id = ?`,
		current.Name, current.Address, uid).WithContext(ctx).Exec(); err != nil {
		return store.Gateway("users.update", err)
	}

	err = session.Query(`UPDATE users_by_email SET name = ?, address = ? WHERE email = ?`,
		current.Name, current.Address, current.Email).WithContext(ctx).Exec()
	return store.Gateway("users.update_by_email", err)
}

func (Users) Delete(ctx context.Context, userID, email string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return store.Gateway("users.session", err)
	}

	uid, err := gocql.ParseUUID(userID)
	if err != nil {
		return store.ErrNotFound
	}

	if err := session.Query(`DELETE FROM users_by_email WHERE email = ?`, email).
		WithContext(ctx).Exec(); err != nil {
		return store.Gateway("users.delete_by_email", err)
	}

	err = session.Query(`DELETE FROM users WHERE user_id = ?`, uid).WithContext(ctx).Exec()
	return store.Gateway("users.delete", err)
}
