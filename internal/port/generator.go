package port

// StubGenerator turns one line of descriptive text into a test method stub.
type StubGenerator interface {
	// Generate returns line unchanged when it does not qualify.
	Generate(line string) string
}
