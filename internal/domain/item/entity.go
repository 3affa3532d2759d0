package item

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName        = errors.New("item name cannot be empty")
	ErrEmptyDescription = errors.New("item description cannot be empty")
	ErrNameTooLong      = errors.New("item name is too long (max 255 characters)")
)

const MaxNameLength = 255

// Item is a listed rental item. The booking engine reads items but never
// mutates them; mutation happens only through the owner-facing item flow.
type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
}

func NewItem(name, description string, available bool, ownerID int64) (*Item, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	return &Item{
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
	}, nil
}

func Reconstruct(id int64, name, description string, available bool, ownerID int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
	}
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (i *Item) IsOwnedBy(userID int64) bool {
	return i.ownerID == userID
}

func (i *Item) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	i.name = name
	return nil
}

func (i *Item) Describe(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	i.description = description
	return nil
}

func (i *Item) SetAvailable(available bool) {
	i.available = available
}

func (i *Item) ID() int64           { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) OwnerID() int64      { return i.ownerID }
