package token

import (
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/truthtable/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogicTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTypes []Type
		wantVals  []string
		wantPos   []int
	}{
		{
			name:      "spaced conjunction",
			input:     "A & b",
			wantTypes: []Type{PROP, OP, PROP},
			wantVals:  []string{"A", "&", "b"},
			wantPos:   []int{0, 2, 4},
		},
		{
			name:      "implication and biconditional",
			input:     "A->B<->C",
			wantTypes: []Type{PROP, OP, PROP, OP, PROP},
			wantVals:  []string{"A", "->", "B", "<->", "C"},
			wantPos:   []int{0, 1, 3, 4, 7},
		},
		{
			name:      "negated group",
			input:     "~(A|B)",
			wantTypes: []Type{OP, LPAREN, PROP, OP, PROP, RPAREN},
			wantVals:  []string{"~", "(", "A", "|", "B", ")"},
			wantPos:   []int{0, 1, 2, 3, 4, 5},
		},
		{
			name:      "tabs and newlines are skipped",
			input:     "\tA\n|\rB",
			wantTypes: []Type{PROP, OP, PROP},
			wantVals:  []string{"A", "|", "B"},
			wantPos:   []int{1, 3, 5},
		},
		{
			name:      "trailing negation is left to the evaluator",
			input:     "A~",
			wantTypes: []Type{PROP, OP},
			wantVals:  []string{"A", "~"},
			wantPos:   []int{0, 1},
		},
		{
			name:      "adjacent propositions are left to the evaluator",
			input:     "AB",
			wantTypes: []Type{PROP, PROP},
			wantVals:  []string{"A", "B"},
			wantPos:   []int{0, 1},
		},
		{
			name:      "binary operator after closing paren",
			input:     "(A)&B",
			wantTypes: []Type{LPAREN, PROP, RPAREN, OP, PROP},
			wantVals:  []string{"(", "A", ")", "&", "B"},
			wantPos:   []int{0, 1, 2, 3, 4},
		},
	}

	tokenizer := NewLogicTokenizer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := tokenizer.Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, tokens, len(tt.wantTypes))

			for i, tok := range tokens {
				assert.Equal(t, tt.wantTypes[i], tok.Type, "token %d type", i)
				assert.Equal(t, tt.wantVals[i], tok.Value, "token %d value", i)
				assert.Equal(t, tt.wantPos[i], tok.Pos, "token %d position", i)
			}
		})
	}
}

func TestLogicTokenizer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind apperr.Kind
		wantPos  int
		contains string
	}{
		{name: "invalid symbol", input: "A$B", wantKind: apperr.InvalidSymbol, wantPos: 1, contains: "'$'"},
		{name: "digit", input: "A&1", wantKind: apperr.InvalidSymbol, wantPos: 2, contains: "'1'"},
		{name: "non-ascii letter", input: "A&é", wantKind: apperr.InvalidSymbol, wantPos: 2, contains: "'é'"},
		{name: "dash without arrow head", input: "A-B", wantKind: apperr.InvalidSymbol, wantPos: 1},
		{name: "incomplete biconditional", input: "A<-B", wantKind: apperr.InvalidSymbol, wantPos: 1},
		{name: "leading and", input: "&A", wantKind: apperr.MissingOperand, wantPos: 0},
		{name: "or after open paren", input: "(|A)", wantKind: apperr.MissingOperand, wantPos: 1},
		{name: "implication after negation", input: "~->A", wantKind: apperr.MissingOperand, wantPos: 1},
		{name: "leading biconditional", input: "<->A", wantKind: apperr.MissingOperand, wantPos: 0},
		{name: "trailing and", input: "A&", wantKind: apperr.MissingOperand, wantPos: 1},
		{name: "trailing implication", input: "A ->  ", wantKind: apperr.MissingOperand, wantPos: 5, contains: "no right operand"},
		{name: "too many tokens", input: strings.Repeat("A", MaxTokens+1), wantKind: apperr.ExpressionTooLong, wantPos: MaxTokens},
	}

	tokenizer := NewLogicTokenizer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := tokenizer.Tokenize(tt.input)
			require.Error(t, err)
			assert.Nil(t, tokens)
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			assert.Equal(t, tt.wantPos, apperr.PositionOf(err))
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestLogicTokenizer_EmptyInput(t *testing.T) {
	tokenizer := NewLogicTokenizer()

	for _, input := range []string{"", "   ", "\t\n"} {
		tokens, err := tokenizer.Tokenize(input)
		require.NoError(t, err)
		assert.Empty(t, tokens)
	}
}

func TestLogicTokenizer_MaxTokensAccepted(t *testing.T) {
	tokens, err := NewLogicTokenizer().Tokenize(strings.Repeat("A", MaxTokens))
	require.NoError(t, err)
	assert.Len(t, tokens, MaxTokens)
}

func TestLogicTokenizer_OperatorRoundTrip(t *testing.T) {
	tests := []struct {
		lexeme string
		want   Operator
	}{
		{lexeme: "&", want: And},
		{lexeme: "|", want: Or},
		{lexeme: "->", want: Implies},
		{lexeme: "<->", want: Iff},
	}

	tokenizer := NewLogicTokenizer()

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			tokens, err := tokenizer.Tokenize("A" + tt.lexeme + "B")
			require.NoError(t, err)
			require.Len(t, tokens, 3)

			op := tokens[1]
			assert.Equal(t, tt.want, op.Op)
			assert.Equal(t, tt.lexeme, op.Op.Lexeme())

			parsed, err := ParseOperator(op.Value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, parsed)
		})
	}

	tokens, err := tokenizer.Tokenize("~A")
	require.NoError(t, err)
	assert.Equal(t, Not, tokens[0].Op)
	assert.Equal(t, "~", tokens[0].Op.Lexeme())
}

func TestSequence_String(t *testing.T) {
	tokens, err := NewLogicTokenizer().Tokenize(" ( A -> b ) <-> ~ C ")
	require.NoError(t, err)
	assert.Equal(t, "(A->b)<->~C", tokens.String())

	again, err := NewLogicTokenizer().Tokenize(tokens.String())
	require.NoError(t, err)
	require.Len(t, again, len(tokens))
	for i := range tokens {
		assert.Equal(t, tokens[i].Type, again[i].Type)
		assert.Equal(t, tokens[i].Op, again[i].Op)
		assert.Equal(t, tokens[i].Value, again[i].Value)
	}
}

func TestOperator_Precedence(t *testing.T) {
	assert.Greater(t, Not.Precedence(), And.Precedence())
	assert.Greater(t, And.Precedence(), Or.Precedence())
	assert.Greater(t, Or.Precedence(), Implies.Precedence())
	assert.Greater(t, Implies.Precedence(), Iff.Precedence())

	assert.True(t, Implies.RightAssociative())
	for _, op := range []Operator{Not, And, Or, Iff} {
		assert.False(t, op.RightAssociative(), op.String())
	}
	assert.True(t, Not.IsUnary())
	assert.False(t, And.IsUnary())

	_, err := ParseOperator("=>")
	assert.Error(t, err)
}

func TestToken_Letter(t *testing.T) {
	assert.Equal(t, byte('q'), NewProp('q', 3).Letter())
	assert.Equal(t, byte(0), NewOp(And, 1).Letter())
	assert.Equal(t, byte(0), NewParen(true, 0).Letter())
}
