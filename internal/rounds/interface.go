package rounds

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/wannabet/internal/rounds RoundGenerator

// RoundGenerator builds the assignments of a round
type RoundGenerator interface {
	Generate(input *GenerateInput) (*GenerateOutput, error)
}

var _ RoundGenerator = (*Generator)(nil)
