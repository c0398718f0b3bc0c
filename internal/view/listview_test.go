package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/remotetodo/internal/model"
)

var todosMock = []model.Item{
	{ID: "1", Title: "Title 1", Body: "Body 1"},
	{ID: "2", Title: "Title 2", Body: "Body 2", Completed: true},
}

func TestRender_Empty(t *testing.T) {
	l := Render(nil, Handlers{})
	assert.True(t, l.Empty())
	assert.Equal(t, EmptyMessage, l.Placeholder)
	assert.Nil(t, l.Rows)

	l = Render([]model.Item{}, Handlers{})
	assert.Equal(t, "There is no todos!", l.Placeholder)
}

func TestRender_OneRowPerItemInOrder(t *testing.T) {
	l := Render(todosMock, Handlers{})
	require.Len(t, l.Rows, 2)
	assert.Empty(t, l.Placeholder)

	for i, it := range todosMock {
		r := l.Rows[i]
		assert.Equal(t, it.ID, r.Key)
		assert.Equal(t, it.Title, r.Title)
		assert.Equal(t, it.Body, r.Description)
		assert.Equal(t, ActionRemove, r.Delete.Name)
	}
	assert.Equal(t, StatusNotDone, l.Rows[0].Status)
	assert.Equal(t, StatusNotDone, l.Rows[0].Toggle.Name)
	assert.Equal(t, StatusDone, l.Rows[1].Status)
	assert.Equal(t, "Mark Title 2 as not done", l.Rows[1].Toggle.Label)
}

func TestRender_ActionsCarryRowID(t *testing.T) {
	var toggled, deleted []string
	l := Render(todosMock, Handlers{
		OnToggle: func(id string) { toggled = append(toggled, id) },
		OnDelete: func(id string) { deleted = append(deleted, id) },
	})

	l.Rows[1].Toggle.Activate()
	l.Rows[0].Delete.Activate()

	assert.Equal(t, []string{"2"}, toggled)
	assert.Equal(t, []string{"1"}, deleted)
}

func TestRender_NilHandlersAreNoops(t *testing.T) {
	l := Render(todosMock, Handlers{})
	assert.NotPanics(t, func() {
		l.Rows[0].Toggle.Activate()
		l.Rows[0].Delete.Activate()
	})
}

func TestList_FindByKey(t *testing.T) {
	l := Render(todosMock, Handlers{})
	r, ok := l.Find("2")
	require.True(t, ok)
	assert.Equal(t, "Title 2", r.Title)
	assert.Equal(t, 1, l.IndexOf("2"))

	_, ok = l.Find("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, l.IndexOf("missing"))
}
