package vault

// Type represents the type of vault.
type Type string

const (
	// TypeDotEnv represents a vault backed by the process environment and .env files.
	TypeDotEnv Type = "dotenv"
)
