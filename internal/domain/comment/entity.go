package comment

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyText   = errors.New("comment text cannot be blank")
	ErrTextTooLong = errors.New("comment text is too long (max 2000 characters)")
)

const MaxTextLength = 2000

// Comment is feedback left by a renter on an item after a completed,
// owner-approved rental. Eligibility is decided by the booking engine, not
// here.
type Comment struct {
	id        int64
	text      string
	itemID    int64
	authorID  int64
	createdAt time.Time
}

func NewComment(text string, itemID, authorID int64, now time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	return &Comment{
		text:      text,
		itemID:    itemID,
		authorID:  authorID,
		createdAt: now,
	}, nil
}

func (c *Comment) ID() int64            { return c.id }
func (c *Comment) Text() string         { return c.text }
func (c *Comment) ItemID() int64        { return c.itemID }
func (c *Comment) AuthorID() int64      { return c.authorID }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
