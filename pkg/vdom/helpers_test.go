package vdom

import "testing"

func TestText(t *testing.T) {
	node := Text("Hello, World!")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Hello, World!" {
		t.Errorf("Text = %v, want 'Hello, World!'", node.Text)
	}
}

func TestTextf(t *testing.T) {
	node := Textf("Count: %d", 42)

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Count: 42" {
		t.Errorf("Text = %v, want 'Count: 42'", node.Text)
	}
}

func TestRaw(t *testing.T) {
	node := Raw("<strong>Bold</strong>")

	if node.Kind != KindRaw {
		t.Errorf("Kind = %v, want KindRaw", node.Kind)
	}
	if node.Text != "<strong>Bold</strong>" {
		t.Errorf("Text = %v, want '<strong>Bold</strong>'", node.Text)
	}
}

func TestFragment(t *testing.T) {
	t.Run("with VNodes", func(t *testing.T) {
		node := Fragment(Div(), Span(), P())
		if node.Kind != KindFragment {
			t.Errorf("Kind = %v, want KindFragment", node.Kind)
		}
		if len(node.Children) != 3 {
			t.Errorf("Children len = %v, want 3", len(node.Children))
		}
	})

	t.Run("with nil filtered", func(t *testing.T) {
		node := Fragment(Div(), nil, Span())
		if len(node.Children) != 2 {
			t.Errorf("Children len = %v, want 2", len(node.Children))
		}
	})

	t.Run("with slice", func(t *testing.T) {
		children := []*VNode{Div(), Span()}
		node := Fragment(children)
		if len(node.Children) != 2 {
			t.Errorf("Children len = %v, want 2", len(node.Children))
		}
	})

	t.Run("with string", func(t *testing.T) {
		node := Fragment("Hello")
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Kind != KindText {
			t.Errorf("Child kind = %v, want KindText", node.Children[0].Kind)
		}
	})

	t.Run("with key", func(t *testing.T) {
		node := Fragment(Key("frag"), Div())
		if node.Key != "frag" {
			t.Errorf("Key = %q, want 'frag'", node.Key)
		}
		if len(node.Children) != 1 {
			t.Errorf("Children len = %v, want 1", len(node.Children))
		}
	})
}

func TestFragmentWithComponent(t *testing.T) {
	var comp ComponentFunc = func(props Props) *VNode { return Span() }
	node := Fragment(comp)
	if len(node.Children) != 1 {
		t.Fatalf("Children len = %v, want 1", len(node.Children))
	}
	if node.Children[0].Kind != KindComponent {
		t.Errorf("Child kind = %v, want KindComponent", node.Children[0].Kind)
	}
}

func TestIf(t *testing.T) {
	node := Div()

	t.Run("condition true", func(t *testing.T) {
		result := If(true, node)
		if result != node {
			t.Error("Expected node when condition is true")
		}
	})

	t.Run("condition false", func(t *testing.T) {
		result := If(false, node)
		if result != nil {
			t.Error("Expected nil when condition is false")
		}
	})
}

func TestIfElse(t *testing.T) {
	nodeA := Div(ID("a"))
	nodeB := Div(ID("b"))

	t.Run("condition true", func(t *testing.T) {
		result := IfElse(true, nodeA, nodeB)
		if result != nodeA {
			t.Error("Expected nodeA when condition is true")
		}
	})

	t.Run("condition false", func(t *testing.T) {
		result := IfElse(false, nodeA, nodeB)
		if result != nodeB {
			t.Error("Expected nodeB when condition is false")
		}
	})
}

func TestWhen(t *testing.T) {
	called := false
	fn := func() *VNode {
		called = true
		return Div()
	}

	t.Run("condition true", func(t *testing.T) {
		called = false
		result := When(true, fn)
		if !called {
			t.Error("Function should be called when condition is true")
		}
		if result == nil {
			t.Error("Expected non-nil result")
		}
	})

	t.Run("condition false", func(t *testing.T) {
		called = false
		result := When(false, fn)
		if called {
			t.Error("Function should not be called when condition is false")
		}
		if result != nil {
			t.Error("Expected nil result")
		}
	})
}

func TestUnless(t *testing.T) {
	node := Div()

	t.Run("condition true", func(t *testing.T) {
		result := Unless(true, node)
		if result != nil {
			t.Error("Expected nil when condition is true")
		}
	})

	t.Run("condition false", func(t *testing.T) {
		result := Unless(false, node)
		if result != node {
			t.Error("Expected node when condition is false")
		}
	})
}

func TestSwitch(t *testing.T) {
	nodeA := Div(ID("a"))
	nodeB := Div(ID("b"))
	nodeDefault := Div(ID("default"))

	t.Run("matching case", func(t *testing.T) {
		result := Switch("a",
			Case_("a", nodeA),
			Case_("b", nodeB),
		)
		if result != nodeA {
			t.Error("Expected nodeA for value 'a'")
		}
	})

	t.Run("default case", func(t *testing.T) {
		result := Switch("c",
			Case_("a", nodeA),
			Case_("b", nodeB),
			Default[string](nodeDefault),
		)
		if result != nodeDefault {
			t.Error("Expected default node for unmatched value")
		}
	})

	t.Run("no match no default", func(t *testing.T) {
		result := Switch("c",
			Case_("a", nodeA),
			Case_("b", nodeB),
		)
		if result != nil {
			t.Error("Expected nil for unmatched value without default")
		}
	})

	t.Run("with int values", func(t *testing.T) {
		node1 := Div(ID("1"))
		node2 := Div(ID("2"))
		result := Switch(2,
			Case_(1, node1),
			Case_(2, node2),
		)
		if result != node2 {
			t.Error("Expected node2 for value 2")
		}
	})
}

func TestRange(t *testing.T) {
	items := []string{"a", "b", "c"}

	nodes := Range(items, func(item string, index int) *VNode {
		return Li(Key(item), Text(item))
	})

	if len(nodes) != 3 {
		t.Fatalf("nodes len = %v, want 3", len(nodes))
	}

	for i, node := range nodes {
		if node.Tag != "li" {
			t.Errorf("nodes[%d].Tag = %v, want li", i, node.Tag)
		}
		if node.Key != Key(items[i]) {
			t.Errorf("nodes[%d].Key = %v, want %v", i, node.Key, items[i])
		}
		if len(node.Children) != 1 {
			t.Errorf("nodes[%d].Children len = %v, want 1", i, len(node.Children))
		}
		if node.Children[0].Text != items[i] {
			t.Errorf("nodes[%d] text = %v, want %v", i, node.Children[0].Text, items[i])
		}
	}
}

func TestRangeWithNilFiltered(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	nodes := Range(items, func(item int, index int) *VNode {
		if item%2 == 0 {
			return nil // Filter out even numbers
		}
		return Li(Textf("%d", item))
	})

	if len(nodes) != 3 {
		t.Errorf("nodes len = %v, want 3 (odd numbers only)", len(nodes))
	}
}

func TestRangeMap(t *testing.T) {
	items := map[string]int{"a": 1, "b": 2}

	nodes := RangeMap(items, func(key string, value int) *VNode {
		return Li(Textf("%s: %d", key, value))
	})

	if len(nodes) != 2 {
		t.Errorf("nodes len = %v, want 2", len(nodes))
	}
}

func TestRepeat(t *testing.T) {
	nodes := Repeat(5, func(i int) *VNode {
		return Li(Textf("Item %d", i))
	})

	if len(nodes) != 5 {
		t.Fatalf("nodes len = %v, want 5", len(nodes))
	}

	for i, node := range nodes {
		if node.Children[0].Text != Textf("Item %d", i).Text {
			t.Errorf("nodes[%d] text mismatch", i)
		}
	}
}

func TestRepeatZero(t *testing.T) {
	nodes := Repeat(0, func(i int) *VNode {
		return Li()
	})

	if nodes != nil {
		t.Errorf("Repeat(0) should return nil, got len %d", len(nodes))
	}
}

func TestRepeatNegative(t *testing.T) {
	nodes := Repeat(-5, func(i int) *VNode {
		return Li()
	})

	if nodes != nil {
		t.Errorf("Repeat(-5) should return nil, got len %d", len(nodes))
	}
}

func TestNothing(t *testing.T) {
	if Nothing() != nil {
		t.Error("Nothing() should return nil")
	}
}
