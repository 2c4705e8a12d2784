package auth

// Claims es la información extraída del token de sesión.
type Claims struct {
	UserID string // acá usamos el email como identidad estable del reporter
	Email  string
}
