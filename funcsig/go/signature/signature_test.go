package signature

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/interviewkickstart/funcsig/funcsig/go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature_String_ParsesBackToEqualSignature(t *testing.T) {
	for _, s := range []string{
		"int32  fun1(a:int32 , b:  int32)",
		"list[int32] fun(z:list[list[char  ]])",
		"int32 fun(   )",
		"SinglyLinkedListNode[int32] f(x: SinglyLinkedListNode[int32])",
		"list[SinglyLinkedListNode[list[str]]] g(a:bool, b:float, c:int64)",
	} {
		sig, err := Parse(s)
		require.NoError(t, err, s)
		again, err := Parse(sig.String())
		require.NoError(t, err, sig.String())
		assert.True(t, sig.Equal(again), "%s != %s", sig, again)
		assert.Empty(t, cmp.Diff(sig.Dict(), again.Dict()))
	}
}

func TestSignature_String_IsCanonical(t *testing.T) {
	sig, err := Parse("  list[ int32 ]   fun(a :int32 ,b:list[ list[char ] ])")
	require.NoError(t, err)
	assert.Equal(t, "list[int32] fun(a:int32, b:list[list[char]])", sig.String())

	sig, err = Parse("int32 fun( )")
	require.NoError(t, err)
	assert.Equal(t, "int32 fun()", sig.String())
}

func TestSignature_Args_ReturnsCopy(t *testing.T) {
	sig, err := Parse("int32 fun(a:int32, b:str)")
	require.NoError(t, err)
	args := sig.Args()
	args[0].Name = "changed"
	assert.Equal(t, "a", sig.Arg(0).Name)
	assert.Equal(t, 2, sig.NumArgs())
}

func TestSignature_Equal(t *testing.T) {
	a, err := Parse("int32 fun(a:int32, b:list[str])")
	require.NoError(t, err)
	b, err := Parse("int32   fun(a: int32,b:list[ str ])")
	require.NoError(t, err)
	c, err := Parse("int32 fun(a:int32, b:list[char])")
	require.NoError(t, err)
	d, err := Parse("int32 fun(b:list[str], a:int32)")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))

	var nilSig *Signature
	assert.True(t, nilSig.Equal(nil))
}

func TestSignature_CustomTypes(t *testing.T) {
	sig, err := Parse("int32 f(a:int32, b:list[str])")
	require.NoError(t, err)
	assert.Empty(t, sig.CustomTypes())

	sig, err = Parse("list[SinglyLinkedListNode[str]] f(a:SinglyLinkedListNode[str])")
	require.NoError(t, err)
	custom := sig.CustomTypes()
	require.Len(t, custom, 1)
	assert.Equal(t, types.SinglyLinkedListNode, custom[0].Name())
	assert.Equal(t, types.Str, custom[0].Elem().Name())
}

func TestSignature_Dict(t *testing.T) {
	sig, err := Parse("list[int32] two_sum(numbers:list[int32], target:int32)")
	require.NoError(t, err)

	expected := &Dict{
		Name: "two_sum",
		Type: &types.Dict{
			Name: types.List,
			ElementType: &types.Dict{
				Name:      types.Int32,
				Primitive: true,
			},
		},
		Args: []ArgumentDict{
			{
				Name: "numbers",
				Type: &types.Dict{
					Name: types.List,
					ElementType: &types.Dict{
						Name:      types.Int32,
						Primitive: true,
					},
				},
			},
			{
				Name: "target",
				Type: &types.Dict{
					Name:      types.Int32,
					Primitive: true,
				},
			},
		},
	}
	assert.Empty(t, cmp.Diff(expected, sig.Dict()))
}

func TestSignature_MarshalJSON(t *testing.T) {
	sig, err := Parse("SinglyLinkedListNode[int32] head(x:char)")
	require.NoError(t, err)
	b, err := json.Marshal(sig)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "head",
		"type": {
			"name": "SinglyLinkedListNode",
			"element_type": {"name": "int32", "element_type": null, "primitive": true, "custom": false},
			"primitive": false,
			"custom": true
		},
		"args": [
			{"name": "x", "type": {"name": "char", "element_type": null, "primitive": true, "custom": false}}
		]
	}`, string(b))
}

func TestSignature_MarshalJSON_NoArgsIsEmptyList(t *testing.T) {
	sig, err := Parse("bool f()")
	require.NoError(t, err)
	b, err := json.Marshal(sig)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"args":[]`)
}
