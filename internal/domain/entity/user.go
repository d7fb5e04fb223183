package entity

import "time"

// UserColumns is the CSV header of the users table.
var UserColumns = []string{"user_id", "password", "name", "phone_num", "birth", "email"}

// User is a marketplace account. Every user later becomes exactly one of Guest or Host.
type User struct {
	ID       string
	Password string
	Name     string
	Phone    string
	Birth    time.Time // date only
	Email    string
}

// Values returns the cells of u in UserColumns order.
func (u User) Values() []string {
	return []string{u.ID, u.Password, u.Name, u.Phone, formatDate(u.Birth), u.Email}
}

// RoleColumns is the CSV header shared by the guests and hosts tables.
var RoleColumns = []string{"user_id"}

// Guest is a user who books properties.
type Guest struct {
	UserID string
}

// Values returns the cells of g in RoleColumns order.
func (g Guest) Values() []string {
	return []string{g.UserID}
}

// Host is a user who lists properties.
type Host struct {
	UserID string
}

// Values returns the cells of h in RoleColumns order.
func (h Host) Values() []string {
	return []string{h.UserID}
}
