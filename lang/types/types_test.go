package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	require.False(t, Truthy(Nil{}))
	require.False(t, Truthy(Bool(false)))
	require.True(t, Truthy(Bool(true)))
	require.True(t, Truthy(Number(0)))
	require.True(t, Truthy(String("")))
}

func TestEqualCrossTypeIsAlwaysFalse(t *testing.T) {
	require.False(t, Equal(Number(0), String("")))
	require.False(t, Equal(Number(1), Bool(true)))
	require.True(t, Equal(Nil{}, Nil{}))
	require.False(t, Equal(Nil{}, Bool(false)))
}

func TestEqualSameTypeByValue(t *testing.T) {
	require.True(t, Equal(Number(3), Number(3)))
	require.False(t, Equal(Number(3), Number(4)))
	require.True(t, Equal(String("a"), String("a")))
}

func TestEqualInstancesByIdentity(t *testing.T) {
	class := NewClass("C", nil, nil)
	a := NewInstance(class)
	b := NewInstance(class)
	require.True(t, Equal(a, a))
	require.False(t, Equal(a, b))
}

func TestNumberStringDropsTrailingZero(t *testing.T) {
	require.Equal(t, "3", Number(3).String())
	require.Equal(t, "3.5", Number(3.5).String())
}

func TestEnvironmentDefineGetAssign(t *testing.T) {
	global := NewEnvironment()
	global.Define("a", Number(1))

	v, ok := global.Get("a")
	require.True(t, ok)
	require.Equal(t, Number(1), v)

	require.True(t, global.Assign("a", Number(2)))
	v, _ = global.Get("a")
	require.Equal(t, Number(2), v)

	require.False(t, global.Assign("undefined", Number(0)))
}

func TestEnvironmentAncestorWalk(t *testing.T) {
	global := NewEnvironment()
	global.Define("a", String("global"))

	block := NewChildEnvironment(global)
	block.Define("a", String("block"))

	inner := NewChildEnvironment(block)

	v, ok := inner.GetAt(1, "a")
	require.True(t, ok)
	require.Equal(t, String("block"), v)

	v, ok = inner.GetAt(2, "a")
	require.True(t, ok)
	require.Equal(t, String("global"), v)
}

func TestClassFindMethodWalksSuperclassChain(t *testing.T) {
	base := NewClass("A", nil, map[string]*LoxFunction{
		"show": {IsInitializer: false},
	})
	derived := NewClass("B", base, map[string]*LoxFunction{})

	_, ok := derived.FindMethod("show")
	require.True(t, ok)
	_, ok = derived.FindMethod("missing")
	require.False(t, ok)
}

func TestInstanceFieldShadowsMethod(t *testing.T) {
	class := NewClass("C", nil, map[string]*LoxFunction{
		"show": {IsInitializer: false},
	})
	instance := NewInstance(class)
	instance.Set("show", Number(42))

	v, ok := instance.Get("show")
	require.True(t, ok)
	require.Equal(t, Number(42), v)
}

func TestInstanceUndefinedPropertyNotFound(t *testing.T) {
	class := NewClass("C", nil, nil)
	instance := NewInstance(class)
	_, ok := instance.Get("nope")
	require.False(t, ok)
}
