package object

import "testing"

func TestStringHashKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	if hello1.HashKey() != hello2.HashKey() {
		t.Errorf("strings with same content have different hash keys")
	}
	if diff1.HashKey() != diff2.HashKey() {
		t.Errorf("strings with same content have different hash keys")
	}
	if hello1.HashKey() == diff1.HashKey() {
		t.Errorf("strings with different content have same hash keys")
	}
}

func TestEnvironmentEnclosedLookup(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("y", &Integer{Value: 2})

	if _, ok := inner.Get("x"); !ok {
		t.Fatal("expected inner env to resolve x from outer")
	}
	if _, ok := outer.Get("y"); ok {
		t.Fatal("outer env should not see inner bindings")
	}
}

func TestBuiltinsLenPushFirstLastRest(t *testing.T) {
	push := GetBuiltinByName("push")
	arr := &Array{Elements: []Object{&Integer{Value: 1}}}
	result := push.Fn(arr, &Integer{Value: 2})

	newArr, ok := result.(*Array)
	if !ok {
		t.Fatalf("push did not return an Array, got %T", result)
	}
	if len(newArr.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(newArr.Elements))
	}
	if len(arr.Elements) != 1 {
		t.Fatalf("push mutated the original array")
	}

	lenFn := GetBuiltinByName("len")
	if got := lenFn.Fn(&String{Value: "four"}); got.(*Integer).Value != 4 {
		t.Fatalf("len(\"four\") = %v, want 4", got)
	}

	first := GetBuiltinByName("first")
	if got := first.Fn(&Array{}); got != nil {
		t.Fatalf("first([]) = %v, want nil", got)
	}

	last := GetBuiltinByName("last")
	if got := last.Fn(newArr); got.(*Integer).Value != 2 {
		t.Fatalf("last([1, 2]) = %v, want 2", got)
	}

	rest := GetBuiltinByName("rest")
	restArr, ok := rest.Fn(newArr).(*Array)
	if !ok || len(restArr.Elements) != 1 || restArr.Elements[0].(*Integer).Value != 2 {
		t.Fatalf("rest([1, 2]) = %v, want [2]", restArr)
	}
}
