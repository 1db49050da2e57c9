package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, word string) *State {
	t.Helper()
	s, err := NewState(word)
	require.NoError(t, err)
	return s
}

func TestResolveInvalidInput(t *testing.T) {
	r := NewResolver()
	s := mustState(t, "cat")

	for _, token := range []string{"123", "a1", "it's", "", "   ", "c a"} {
		res, err := r.Resolve(s, token)
		require.NoError(t, err)
		assert.Equal(t, SignalInvalidInput, res.Signal, "token %q", token)
	}

	// Nothing was recorded.
	assert.Empty(t, s.Log())
	assert.Empty(t, s.GuessedLetters())
	assert.Zero(t, s.WrongCount())
	assert.False(t, s.Terminal())
}

func TestResolveSingleLetter(t *testing.T) {
	r := NewResolver()
	s := mustState(t, "cat")

	res, err := r.Resolve(s, "C")
	require.NoError(t, err)
	assert.Equal(t, KindLetter, res.Kind)
	assert.Equal(t, []string{"c"}, res.Correct)
	assert.Equal(t, []string{"c"}, s.CorrectLetters())
	assert.Zero(t, s.WrongCount())

	res, err = r.Resolve(s, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, res.Wrong)
	assert.Equal(t, 1, s.WrongCount())
	assert.Equal(t, []string{"x"}, s.WrongGuesses())

	assert.Equal(t, []GuessRecord{
		{Token: "c", Correct: true},
		{Token: "x", Correct: false},
	}, s.Log())
}

func TestResolveRepeatLetterIsFree(t *testing.T) {
	r := NewResolver()
	s := mustState(t, "cat")

	_, err := r.Resolve(s, "x")
	require.NoError(t, err)

	res, err := r.Resolve(s, "x")
	require.NoError(t, err)
	assert.Equal(t, SignalAlreadyGuessed, res.Signal)
	assert.Equal(t, 1, s.WrongCount())
	assert.Len(t, s.Log(), 1, "repeats are not logged")

	res, err = r.Resolve(s, "c")
	require.NoError(t, err)
	require.Equal(t, SignalApplied, res.Signal)
	res, err = r.Resolve(s, "c")
	require.NoError(t, err)
	assert.Equal(t, SignalAlreadyGuessed, res.Signal)
	assert.Equal(t, []string{"c"}, s.CorrectLetters())
}

func TestResolveWinScenario(t *testing.T) {
	r := NewResolver()
	s := mustState(t, "cat")

	for _, token := range []string{"x", "c", "a"} {
		_, err := r.Resolve(s, token)
		require.NoError(t, err)
		assert.False(t, s.Terminal())
	}

	_, err := r.Resolve(s, "t")
	require.NoError(t, err)
	assert.True(t, s.Won())
	assert.Equal(t, 25, Score(s)) // 3*10 - 1*5
}

func TestResolveLossAfterSixWrong(t *testing.T) {
	r := NewResolver()
	s := mustState(t, "dog")

	for i, token := range []string{"x", "y", "z", "q", "w", "e"} {
		_, err := r.Resolve(s, token)
		require.NoError(t, err)
		if i < 5 {
			assert.False(t, s.Terminal(), "guess %d", i+1)
		}
	}

	assert.True(t, s.Lost())
	assert.Equal(t, MaxWrong, s.WrongCount())
	assert.Zero(t, Score(s))
}

func TestResolveMultiLetter(t *testing.T) {
	r := NewResolver()
	s := mustState(t, "sun")

	res, err := r.Resolve(s, "su")
	require.NoError(t, err)
	assert.Equal(t, KindMulti, res.Kind)
	assert.Equal(t, []string{"s", "u"}, res.Correct)
	assert.Empty(t, res.Wrong)
	assert.False(t, s.Won(), "n is still hidden")

	// One aggregate log entry keyed by the whole token.
	assert.Equal(t, []GuessRecord{{Token: "MULTI:su", Correct: true}}, s.Log())

	res, err = r.Resolve(s, "n")
	require.NoError(t, err)
	assert.True(t, s.Won())
}

func TestResolveMultiSkipsRepeats(t *testing.T) {
	r := NewResolver()
	s := mustState(t, "sun")

	_, err := r.Resolve(s, "s")
	require.NoError(t, err)

	res, err := r.Resolve(s, "sxyz")
	require.NoError(t, err)
	assert.Equal(t, []string{"s"}, res.Skipped)
	assert.Equal(t, []string{"x", "y", "z"}, res.Wrong)
	assert.Equal(t, 3, s.WrongCount())
	assert.Equal(t, 3, len(s.WrongGuesses()))
}

func TestResolveMultiWithNoNewCorrectLogsFalse(t *testing.T) {
	r := NewResolver()
	s := mustState(t, "sun")

	_, err := r.Resolve(s, "xy")
	require.NoError(t, err)
	assert.Equal(t, []GuessRecord{{Token: "MULTI:xy", Correct: false}}, s.Log())
}

func TestResolveFullWordWin(t *testing.T) {
	r := NewResolver()
	s := mustState(t, "cat")

	// Prior misses persist into the score but a word hit takes no penalty.
	_, err := r.Resolve(s, "dog")
	require.NoError(t, err)
	assert.Equal(t, 1, s.WrongCount())
	assert.Equal(t, []string{"WORD:dog"}, s.WrongGuesses())

	res, err := r.Resolve(s, "CAT")
	require.NoError(t, err)
	assert.Equal(t, KindWord, res.Kind)
	assert.True(t, res.WordHit)
	assert.True(t, s.Won())
	assert.Equal(t, 1, s.WrongCount(), "a word hit never adds a penalty")
	assert.Equal(t, []string{"a", "c", "t"}, s.CorrectLetters())
	assert.Equal(t, []string{"a", "c", "t"}, s.GuessedLetters())
	assert.Equal(t, 25, Score(s))
}

func TestResolveFullWordMissCostsOne(t *testing.T) {
	r := NewResolver()
	s := mustState(t, "dog")

	res, err := r.Resolve(s, "cat")
	require.NoError(t, err)
	assert.Equal(t, KindWord, res.Kind)
	assert.False(t, res.WordHit)
	assert.Equal(t, 1, s.WrongCount())
	assert.Equal(t, []GuessRecord{{Token: "WORD:cat", Correct: false}}, s.Log())
}

func TestResolveWordMissesCanLose(t *testing.T) {
	r := NewResolver()
	s := mustState(t, "dog")

	for _, token := range []string{"rat", "cat", "bat", "hat", "mat", "sat"} {
		_, err := r.Resolve(s, token)
		require.NoError(t, err)
	}
	assert.True(t, s.Lost())
}

func TestResolveRejectsFinishedRound(t *testing.T) {
	r := NewResolver()
	s := mustState(t, "cat")

	_, err := r.Resolve(s, "cat")
	require.NoError(t, err)
	require.True(t, s.Won())

	_, err = r.Resolve(s, "x")
	assert.ErrorIs(t, err, ErrRoundOver)
}

// TestResolveInvariants throws random guess sequences at random words and
// checks the bookkeeping that must hold after every guess.
func TestResolveInvariants(t *testing.T) {
	words := []string{"cat", "sun", "elephant", "a", "strawberry"}
	alphabet := "abcdefghijklmnopqrstuvwxyz0!"
	rng := rand.New(rand.NewSource(42))
	r := NewResolver()

	for round := 0; round < 200; round++ {
		s := mustState(t, words[rng.Intn(len(words))])
		wordLetters := letterSet(s.Word())

		for !s.Terminal() {
			n := 1 + rng.Intn(8)
			token := make([]byte, n)
			for i := range token {
				token[i] = alphabet[rng.Intn(len(alphabet))]
			}

			_, err := r.Resolve(s, string(token))
			require.NoError(t, err)

			assert.Equal(t, len(s.WrongGuesses()), s.WrongCount())
			for _, letter := range s.CorrectLetters() {
				assert.True(t, wordLetters[[]rune(letter)[0]],
					"correct letter %q not in word %q", letter, s.Word())
			}
			if s.WrongCount() >= MaxWrong {
				assert.True(t, s.Terminal())
			}
		}

		assert.NotEqual(t, s.Won(), s.Lost(), "terminal outcome must be exactly one of won/lost")
	}
}
