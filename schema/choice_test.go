package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalvas/specgen/serializer"
)

func TestBuildChoiceField(t *testing.T) {
	t.Run("string choices", func(t *testing.T) {
		fragment := BuildChoiceField(serializer.NewChoiceField("bluepill", "redpill"))
		assert.Equal(t, EnumValues{"bluepill", "redpill"}, fragment.Enum)
		assert.Equal(t, "string", fragment.Type)
	})

	t.Run("blank before null", func(t *testing.T) {
		fragment := BuildChoiceField(serializer.NewChoiceField("bluepill", "redpill").WithBlank().WithNull())
		assert.Equal(t, EnumValues{"bluepill", "redpill", "", nil}, fragment.Enum)
		assert.Equal(t, "string", fragment.Type)
	})

	t.Run("declared sentinels are not duplicated", func(t *testing.T) {
		fragment := BuildChoiceField(serializer.NewChoiceField("bluepill", "redpill", "", nil).WithBlank().WithNull())
		assert.Equal(t, EnumValues{"bluepill", "redpill", "", nil}, fragment.Enum)
		assert.Empty(t, fragment.Type)
	})

	t.Run("mixed choices leave type unset", func(t *testing.T) {
		fragment := BuildChoiceField(serializer.NewChoiceField(1, 2).WithBlank())
		assert.Equal(t, EnumValues{1, 2, ""}, fragment.Enum)
		assert.Empty(t, fragment.Type)
	})
}

func TestBuildChoiceFieldEmptyChoices(t *testing.T) {
	t.Run("no flags", func(t *testing.T) {
		fragment := BuildChoiceField(serializer.NewChoiceField())
		assert.Equal(t, EnumValues{}, fragment.Enum)
		assert.Empty(t, fragment.Type)
	})

	t.Run("null only", func(t *testing.T) {
		fragment := BuildChoiceField(serializer.NewChoiceField().WithNull())
		assert.Equal(t, EnumValues{nil}, fragment.Enum)
		assert.Empty(t, fragment.Type)
	})

	t.Run("blank only", func(t *testing.T) {
		fragment := BuildChoiceField(serializer.NewChoiceField().WithBlank())
		assert.Equal(t, EnumValues{""}, fragment.Enum)
		assert.Equal(t, "string", fragment.Type)
	})

	t.Run("blank and null", func(t *testing.T) {
		fragment := BuildChoiceField(serializer.NewChoiceField().WithBlank().WithNull())
		assert.Equal(t, EnumValues{"", nil}, fragment.Enum)
		assert.Equal(t, "string", fragment.Type)
	})
}
