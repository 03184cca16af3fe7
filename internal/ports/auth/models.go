package auth

// Claims representa la información extraída del token.
// UserID es la única parte que el dominio usa: calendario y preferencias
// se guardan por usuario.
type Claims struct {
	UserID string
	Email  string
}
