package invite

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utsavhq/utsav/internal/event"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid(Classic))
	assert.True(t, Valid(Floral))
	assert.True(t, Valid(Modern))
	assert.False(t, Valid(Template("vintage")))
}

func TestRender_RequiresMessage(t *testing.T) {
	_, err := Render(event.Event{Title: "A"}, Invite{Template: Classic, Message: "  "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message is required")
}

func TestRender_RejectsUnknownTemplate(t *testing.T) {
	_, err := Render(event.Event{Title: "A"}, Invite{Template: "vintage", Message: "hi"})
	assert.Error(t, err)
}

func TestRender_OmitsEmptyFields(t *testing.T) {
	card, err := Render(event.Event{Title: "Quiet Dinner"},
		Invite{Template: Classic, Message: "Come over"})
	require.NoError(t, err)

	assert.NotContains(t, card, "When:")
	assert.NotContains(t, card, "Where:")
}

func TestRender_Golden(t *testing.T) {
	e := event.Event{
		Title:    "Sharma Wedding",
		Date:     "2025-11-20",
		Location: "Punjab Palace, Ludhiana",
	}
	card, err := Render(e, Invite{
		Template: Floral,
		Message:  "Join us for the celebration!",
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "invite_card", []byte(card))
}
