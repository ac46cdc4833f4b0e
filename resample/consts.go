package resample

const (
	// DefaultInterpHz is the rate traces from different planes are brought to
	// before they are compared.
	DefaultInterpHz = 30.0

	DefaultKind = Nearest
)

func getDefaultInterpHz() float64 {
	return DefaultInterpHz
}

func getDefaultKind() Kind {
	return DefaultKind
}
