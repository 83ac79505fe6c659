package domain

// Principal is a registered account. The email is the unique key; the
// password is an opaque demo credential stored verbatim, never hashed.
type Principal struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Roles assignable to a principal. Registration always yields RoleUser;
// admin accounts are created by the seeder only.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
