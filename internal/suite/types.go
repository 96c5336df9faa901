package suite

// Suite is a named list of formulas with the outcome each is expected to have.
type Suite struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description" toml:"description"`
	Cases       []Case `yaml:"cases" toml:"cases"`
}

type Case struct {
	ID          string      `yaml:"id" toml:"id"`
	Description string      `yaml:"description" toml:"description"`
	Formula     string      `yaml:"formula" toml:"formula"`
	Expect      Expectation `yaml:"expect" toml:"expect"`
}

// Expectation holds any combination of checks. Error excludes the others.
type Expectation struct {
	// Column is the expected result column in ascending row order. V, T and 1
	// mean true; F and 0 mean false.
	Column         string `yaml:"column,omitempty" toml:"column,omitempty"`
	Classification string `yaml:"classification,omitempty" toml:"classification,omitempty"`
	EquivalentTo   string `yaml:"equivalent_to,omitempty" toml:"equivalent_to,omitempty"`
	// Error is an error kind such as "missing_operand".
	Error string `yaml:"error,omitempty" toml:"error,omitempty"`
}

func (e Expectation) IsEmpty() bool {
	return e.Column == "" && e.Classification == "" && e.EquivalentTo == "" && e.Error == ""
}
