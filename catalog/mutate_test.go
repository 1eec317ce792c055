package catalog

import (
	"errors"
	"testing"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"React", "TypeScript", "Node.js"}, SplitList("React, TypeScript,  Node.js"))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,, ,b,"))
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, "React, Vue", JoinList([]string{"React", "Vue"}))
}

func TestUpsertPrependsNewAndReplacesInPlace(t *testing.T) {
	all := fixture()

	created := Upsert(all, models.Project{ID: "new", Title: "New"})
	assert.Equal(t, []string{"new", "a", "b", "c", "d", "e"}, ids(created))

	edited := Upsert(all, models.Project{ID: "c", Title: "Edited"})
	assert.Equal(t, ids(all), ids(edited))
	assert.Equal(t, "Edited", edited[2].Title)
	assert.Equal(t, "Banking Flow", all[2].Title, "input untouched")
}

func TestRemoveKeepsOthersInOrder(t *testing.T) {
	all := fixture()
	out, ok := Remove(all, "c")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "d", "e"}, ids(out))

	out, ok = Remove(all, "missing")
	assert.False(t, ok)
	assert.Equal(t, ids(all), ids(out))
}

func TestMoveToFront(t *testing.T) {
	all := fixture()
	out, err := Move(all, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "a", "b", "c", "e"}, ids(out))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(all))
}

func TestMoveDown(t *testing.T) {
	out, err := Move(fixture(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a", "d", "e"}, ids(out))
}

func TestMoveRejectsOutOfRange(t *testing.T) {
	_, err := Move(fixture(), 0, 5)
	assert.True(t, errors.Is(err, errs.ErrInvalidMove))
	_, err = Move(fixture(), -1, 0)
	assert.True(t, errors.Is(err, errs.ErrInvalidMove))
}

func TestReorder(t *testing.T) {
	out, err := Reorder(fixture(), []string{"e", "d", "c", "b", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, ids(out))

	_, err = Reorder(fixture(), []string{"a", "a", "b", "c", "d"})
	assert.True(t, errs.IsConflict(err))

	_, err = Reorder(fixture(), []string{"a", "b", "c", "d", "z"})
	assert.True(t, errors.Is(err, errs.ErrInvalidOrder))

	_, err = Reorder(fixture(), []string{"a"})
	assert.True(t, errors.Is(err, errs.ErrInvalidOrder))
}

func TestDragState(t *testing.T) {
	var d DragState

	d.Start(3)
	d.Hover(1)
	d.Hover(0)
	from, to, ok := d.Release()
	require.True(t, ok)
	assert.Equal(t, 3, from)
	assert.Equal(t, 0, to)

	d.Start(2)
	_, _, ok = d.Release()
	assert.False(t, ok, "no hover recorded")

	d.Start(2)
	d.Hover(2)
	_, _, ok = d.Release()
	assert.False(t, ok, "same index")

	d.Hover(1)
	_, _, ok = d.Release()
	assert.False(t, ok, "hover without start")

	d.Start(1)
	d.Hover(0)
	d.Cancel()
	_, _, ok = d.Release()
	assert.False(t, ok)
}
