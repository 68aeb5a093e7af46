package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
	RoleStaff    UserRole = "staff"
)

// IsPrivileged reports whether the role carries staff access
func (r UserRole) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleStaff
}

type User struct {
	Base
	Email        string   `db:"email"`
	FirstName    string   `db:"first_name"`
	SecondName   string   `db:"second_name"`
	PhoneNumber  string   `db:"phone_number"`
	PasswordHash string   `db:"hashed_password"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
	IsStaff      bool     `db:"is_staff"`
}
