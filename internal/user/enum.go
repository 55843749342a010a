package user

type UserRole string

const (
	RolePatient UserRole = "PATIENT"
	RoleDoctor  UserRole = "DOCTOR"
	RoleAdmin   UserRole = "ADMIN"
)

var AllRoles = []UserRole{
	RolePatient,
	RoleDoctor,
	RoleAdmin,
}

func (r UserRole) IsValid() bool {
	for _, v := range AllRoles {
		if r == v {
			return true
		}
	}
	return false
}
