package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	t.Run("plans every record kind", func(t *testing.T) {
		actions, err := Plan([]Record{
			&Issue{Header: Header{Number: 3, Title: "Issue", State: StateClosed, Comments: comments("a", "b")}},
			&ClosedPullRequest{Header: Header{Number: 5, Title: "Old", State: StateClosed, Comments: comments("a")}},
			&OpenPullRequest{Header: Header{Number: 7, Title: "New", State: StateOpen, Comments: comments("a")}, Base: "master"},
		}, defaultWriteOptions)
		require.NoError(t, err)

		assert.Equal(t, []*Action{
			{Number: 3, Kind: ActionCreateIssue, Title: "Issue", Comments: 2, Close: true},
			{Number: 5, Kind: ActionCreatePlaceholder, Title: "[PULL] Old", Close: true},
			{Number: 7, Kind: ActionCreatePullRequest, Title: "New", Base: "main", Comments: 1},
		}, actions)
	})

	t.Run("fails on an unknown record kind", func(t *testing.T) {
		_, err := Plan([]Record{nil}, defaultWriteOptions)
		assert.Error(t, err)
	})
}
