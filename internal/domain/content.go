package domain

import "time"

type Publisher struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Article starts unapproved and becomes visible to readers only after an
// editor approves it. The approved flag is one-way: there is no unapprove.
type Article struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Body         string    `db:"body" json:"content"`
	Approved     bool      `db:"approved" json:"approved"`
	PublisherID  int64     `db:"publisher_id" json:"publisher_id"`
	JournalistID int64     `db:"journalist_id" json:"journalist_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Newsletter has no author column; journalist ownership is tracked through
// the newsletter_owners membership table.
type Newsletter struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Body        string    `db:"body" json:"content"`
	PublisherID int64     `db:"publisher_id" json:"publisher_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ArticleSummary is the reader-feed projection: an approved article joined
// with its publisher and journalist names.
type ArticleSummary struct {
	ID             int64     `db:"id" json:"id"`
	Title          string    `db:"title" json:"title"`
	Content        string    `db:"content" json:"content"`
	PublisherName  string    `db:"publisher_name" json:"publisher_name"`
	JournalistName string    `db:"journalist_name" json:"journalist_name"`
	Approved       bool      `db:"approved" json:"approved"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
