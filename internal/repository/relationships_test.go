package repository

import (
	"testing"

	"campushub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMessageRelationships(t *testing.T) {
	m := &models.Message{ID: "m1", SenderID: "u1", RecipientID: "u2"}

	rel := MessageRelationships(m)
	assert.Equal(t, "u1", rel.OwnerID)
	assert.Equal(t, []string{"u2"}, rel.ParticipantIDs)
	assert.False(t, rel.Public)
}

func TestNewsRelationships(t *testing.T) {
	published := &models.News{ID: "n1", IsPublished: true}
	draft := &models.News{ID: "n2", IsPublished: false}

	assert.True(t, NewsRelationships(published).Public)
	assert.False(t, NewsRelationships(draft).Public)
}

func TestToStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, toStringSlice([]interface{}{"a", "b"}))
	assert.Empty(t, toStringSlice([]interface{}{}))
	assert.Nil(t, toStringSlice("not an array"))
}
