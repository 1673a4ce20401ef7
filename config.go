package qreg

type Config struct {
	// Tolerance bounds the normalization drift |alpha|²+|beta|² may
	// accumulate before a qubit is considered denormalized.
	Tolerance float64

	// StrictBind makes binding two qubits that already belong to distinct
	// groups fail instead of merging the groups.
	StrictBind bool

	// Seed feeds the register's generator when no source is supplied.
	Seed uint64
}

func NewConfig() *Config {
	return &Config{
		Tolerance: 1e-9,
		Seed:      1,
	}
}
