package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortcut_IsBound(t *testing.T) {
	assert.True(t, Shortcut{Shortcut: "Ctrl + X"}.IsBound())
	assert.False(t, Shortcut{Description: "freed"}.IsBound())
}

func TestEntities_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Shortcut{ID: 3, MapID: 1, Description: "jump throw", Shortcut: "ctrl+x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"mapId":1,"description":"jump throw","shortcut":"ctrl+x"}`, string(data))

	data, err = json.Marshal(Map{ID: 1, Name: "Mirage", ImagePath: "assets/maps/mirage.png"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Mirage","imagePath":"assets/maps/mirage.png"}`, string(data))

	data, err = json.Marshal(Media{ID: 9, ShortcutID: 3, Type: "video", Path: "clips/a.mp4"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9,"shortcutId":3,"type":"video","path":"clips/a.mp4"}`, string(data))
}
