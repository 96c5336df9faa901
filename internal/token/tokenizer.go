package token

// Tokenizer converts formula text into a token sequence.
type Tokenizer interface {
	Tokenize(input string) (Sequence, error)
}

// Validator runs the textual checks that precede tokenization.
type Validator interface {
	Validate(input string) error
}
