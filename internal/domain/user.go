package domain

// Role is the closed set of user roles. Every authorization decision
// switches exhaustively over these values; unknown strings are rejected
// at the edges instead of falling through to a fallback branch.
type Role string

const (
	RoleReader     Role = "reader"
	RoleJournalist Role = "journalist"
	RoleEditor     Role = "editor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleReader, RoleJournalist, RoleEditor:
		return true
	}
	return false
}

// User is an authenticated identity. Subscriptions (for readers) and
// newsletter ownership (for journalists) live in join tables and are not
// loaded onto the struct; article authorship is a direct reference on
// Article.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`
	Role     Role   `db:"role" json:"role"`
}
