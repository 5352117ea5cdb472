package entity

import "time"

// User representa un usuario registrado. Cada usuario es el tenant de sus
// propios datos: contactos, empresas, negocios y campos personalizados.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
