package ports

// PasswordHasher encapsula o armazenamento de credenciais.
// O domínio nunca inspeciona o conteúdo do digest.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
