package users

// User es una cuenta expuesta por la API.
// ID lo asigna el store y no cambia; Username es único al momento de crearse.
type User struct {
	ID       string
	Username string
}
