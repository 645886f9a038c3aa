package models

// RoundAssignment pairs a question with the player answering it and the player asking it
type RoundAssignment struct {
	// Question is the card drawn for this turn
	Question *Question

	// AnswererIndex is the roster index of the player answering
	AnswererIndex int

	// AskerIndex is the roster index of the player reading the question
	AskerIndex int
}
