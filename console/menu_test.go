package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sahilchouksey/todo-monkeys/model"
	"github.com/sahilchouksey/todo-monkeys/services/monkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMenu(t *testing.T, svc MonkeyService, input string) string {
	t.Helper()
	var out bytes.Buffer
	menu := NewMenu(svc, strings.NewReader(input), &out, Options{MaxDistance: 3, NoColor: true})
	require.NoError(t, menu.Run())
	return out.String()
}

func TestMenuListsAllMonkeys(t *testing.T) {
	out := runMenu(t, monkey.NewService(), "1\n5\n")

	assert.Contains(t, out, "1. List all monkeys")
	assert.Contains(t, out, "6. Performance")
	assert.Contains(t, out, "All monkeys (17)")
	assert.Contains(t, out, "Baboon")
	assert.Contains(t, out, "Gelada")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestMenuSearchAndFuzzySearch(t *testing.T) {
	out := runMenu(t, monkey.NewService(), "2\nsnub\n3\nbabon\n3\nzzzzzzzzzz\n5\n")

	assert.Contains(t, out, `3 monkey(s) match "snub"`)
	assert.Contains(t, out, "Golden Snub-nosed Monkey")
	assert.Contains(t, out, "Baboon (distance 1)")
	assert.Contains(t, out, `No monkeys within distance 3 of "zzzzzzzzzz".`)
}

func TestMenuSearchShowsExactMatchFirst(t *testing.T) {
	out := runMenu(t, monkey.NewService(), "2\n  MANDRILL \n2\nbaboon\n5\n")

	exact := strings.Index(out, "Exact match")
	require.NotEqual(t, -1, exact)
	assert.Contains(t, out[exact:], "Mandrill")
	assert.Equal(t, 2, strings.Count(out, "Exact match"))
	assert.NotContains(t, out, "No monkeys match")
	assert.NotContains(t, out, "other monkey(s)")
}

func TestMenuSearchListsOtherHitsAfterExactMatch(t *testing.T) {
	svc := monkey.NewService(monkey.WithMonkeys([]model.Monkey{
		{Name: "Howler"},
		{Name: "Howler Monkey"},
	}))
	out := runMenu(t, svc, "2\nhowler\n5\n")

	exact := strings.Index(out, "Exact match")
	others := strings.Index(out, `1 other monkey(s) contain "howler"`)
	require.NotEqual(t, -1, exact)
	require.NotEqual(t, -1, others)
	assert.Less(t, exact, others)
	assert.Contains(t, out[others:], "Howler Monkey")
}

func TestMenuRandomIsCountedInPerformance(t *testing.T) {
	svc := monkey.NewService(monkey.WithRandom(func(int) int { return 0 }))
	out := runMenu(t, svc, "4\n4\n6\n")

	assert.Contains(t, out, "Your random monkey")
	assert.Contains(t, out, "Picked 1 time(s) this session")
	assert.Contains(t, out, "Picked 2 time(s) this session")
	assert.Contains(t, out, "Performance")
	assert.Contains(t, out, "monkey.random")
	assert.Contains(t, out, "Baboon: 2")
}

func TestMenuRejectsInvalidChoice(t *testing.T) {
	out := runMenu(t, monkey.NewService(), "seven\n9\n5\n")

	assert.Contains(t, out, `Invalid option "seven"`)
	assert.Contains(t, out, `Invalid option "9"`)
	assert.Contains(t, out, "Goodbye!")
}

func TestMenuExitsOnEOF(t *testing.T) {
	out := runMenu(t, monkey.NewService(), "")
	assert.Contains(t, out, "Goodbye!")

	out = runMenu(t, monkey.NewService(), "2\n")
	assert.Contains(t, out, "Goodbye!")
}

type panickingService struct {
	MonkeyService
}

func (panickingService) All() []model.Monkey {
	panic("table corrupted")
}

func TestMenuRecoversFromCommandPanic(t *testing.T) {
	svc := panickingService{MonkeyService: monkey.NewService()}
	out := runMenu(t, svc, "1\n1\n5\n")

	assert.Equal(t, 2, strings.Count(out, genericFailure))
	assert.Contains(t, out, "Goodbye!")
}
