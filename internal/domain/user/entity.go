package user

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName    = errors.New("user name cannot be empty")
	ErrInvalidEmail = errors.New("invalid email address")
)

type User struct {
	id    int64
	name  string
	email Email
}

func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	addr, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	return &User{
		name:  name,
		email: addr,
	}, nil
}

func Reconstruct(id int64, name string, email Email) *User {
	return &User{
		id:    id,
		name:  name,
		email: email,
	}
}

func (u *User) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	u.name = name
	return nil
}

func (u *User) ChangeEmail(email string) error {
	addr, err := NewEmail(email)
	if err != nil {
		return err
	}
	u.email = addr
	return nil
}

func (u *User) ID() int64    { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() Email { return u.email }
