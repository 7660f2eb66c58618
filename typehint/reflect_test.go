package typehint

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTypePrimitives(t *testing.T) {
	assert.Equal(t, Int, FromType(reflect.TypeOf(int(0))))
	assert.Equal(t, String, FromType(reflect.TypeOf("")))
	assert.Equal(t, DateTime, FromType(reflect.TypeOf(time.Time{})))
	assert.Equal(t, Bytes, FromType(reflect.TypeOf([]byte(nil))))
	assert.Nil(t, FromType(nil))
	assert.Nil(t, FromType(reflect.TypeOf((*any)(nil)).Elem()))
}

func TestOf(t *testing.T) {
	assert.Equal(t, Int, Of(42))
	assert.Equal(t, Basic{Type: reflect.TypeOf(time.Duration(0))}, Of(time.Second))
}

func TestFromTypeComposites(t *testing.T) {
	t.Run("pointer", func(t *testing.T) {
		hint := FromType(reflect.TypeOf((*string)(nil)))
		assert.Equal(t, Optional{Inner: String}, hint)
	})

	t.Run("slice", func(t *testing.T) {
		hint := FromType(reflect.TypeOf([]int{}))
		assert.Equal(t, Sequence{Elem: Int}, hint)
	})

	t.Run("array", func(t *testing.T) {
		hint := FromType(reflect.TypeOf([4]string{}))
		assert.Equal(t, Tuple{Elem: String, Arity: 4}, hint)
	})

	t.Run("map", func(t *testing.T) {
		hint := FromType(reflect.TypeOf(map[string]float64{}))
		assert.Equal(t, Map{Key: String, Elem: Float}, hint)
	})
}

func TestFromTypeStruct(t *testing.T) {
	type address struct {
		City string `json:"city"`
		Zip  string `json:"zip,omitempty"`
	}

	type person struct {
		Name    string   `json:"name"`
		Age     int      `json:"age,omitempty"`
		Address *address `json:"address"`
		Secret  string   `json:"-"`
		hidden  bool // unexported fields are skipped
	}

	hint := FromType(reflect.TypeOf(person{}))
	record, ok := hint.(Record)
	require.True(t, ok)
	assert.Equal(t, "person", record.Name)
	assert.Equal(t, RecordMap, record.Kind)

	require.Len(t, record.Fields, 3)
	assert.Equal(t, RecordField{Name: "name", Type: String}, record.Fields[0])
	assert.Equal(t, RecordField{Name: "age", Type: Int, Optional: true}, record.Fields[1])
	assert.Equal(t, "address", record.Fields[2].Name)
	assert.Equal(t, Optional{Inner: Record{
		Name: "address",
		Kind: RecordMap,
		Fields: []RecordField{
			{Name: "city", Type: String},
			{Name: "zip", Type: String, Optional: true},
		},
	}}, record.Fields[2].Type)
}

func TestFromTypeEmbedding(t *testing.T) {
	type base struct {
		ID int `json:"id"`
	}

	type nested struct {
		base
		Name string `json:"name"`
	}

	type viaPointer struct {
		*base
		Name string `json:"name"`
	}

	t.Run("embedded struct is inlined", func(t *testing.T) {
		record := FromType(reflect.TypeOf(nested{})).(Record)
		require.Len(t, record.Fields, 2)
		assert.Equal(t, RecordField{Name: "id", Type: Int}, record.Fields[0])
		assert.Equal(t, RecordField{Name: "name", Type: String}, record.Fields[1])
	})

	t.Run("pointer embedding makes inlined fields optional", func(t *testing.T) {
		record := FromType(reflect.TypeOf(viaPointer{})).(Record)
		require.Len(t, record.Fields, 2)
		assert.Equal(t, RecordField{Name: "id", Type: Int, Optional: true}, record.Fields[0])
		assert.Equal(t, RecordField{Name: "name", Type: String}, record.Fields[1])
	})

	t.Run("named embedding stays a field", func(t *testing.T) {
		type named struct {
			Base base `json:"base"`
		}
		record := FromType(reflect.TypeOf(named{})).(Record)
		require.Len(t, record.Fields, 1)
		assert.Equal(t, "base", record.Fields[0].Name)
	})
}
