package excerpt

import "time"

// Excerpt is a passage a user copied from a book, with a personal memo.
type Excerpt struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	BookInfoID string    `json:"book_info_id"`
	Content    string    `json:"content"`
	Memo       string    `json:"memo"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateRequest needs both content and memo present. Either may be empty,
// e.g. a quote saved without a note.
type CreateRequest struct {
	BookInfoID string  `json:"book_info_id" validate:"required"`
	Content    *string `json:"content" validate:"required,max=5000"`
	Memo       *string `json:"memo" validate:"required,max=2000"`
}

type UpdateRequest struct {
	Content *string `json:"content" validate:"required,max=5000"`
	Memo    *string `json:"memo" validate:"required,max=2000"`
}
