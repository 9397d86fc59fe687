package model

import "testing"

func TestNewWindowNode_Depth(t *testing.T) {
	root := sampleTree()
	if root.Depth != 0 {
		t.Errorf("root depth: got %d, want 0", root.Depth)
	}
	root.Walk(func(n *WindowNode) bool {
		if n.Parent != nil && n.Depth != n.Parent.Depth+1 {
			t.Errorf("window %d: depth %d, parent depth %d", n.ID, n.Depth, n.Parent.Depth)
		}
		return true
	})
}

func TestNewWindowNode_ChildOrder(t *testing.T) {
	root := sampleTree()
	if len(root.Children) != 2 || root.Children[0].ID != 2 || root.Children[1].ID != 3 {
		t.Fatalf("unexpected children of root: %+v", root.Children)
	}
}

func TestSetTitle(t *testing.T) {
	n := NewWindowNode(42, nil)
	n.SetTitle("")
	if n.DisplayName != "42" {
		t.Errorf("untitled display name: got %q, want %q", n.DisplayName, "42")
	}
	n.SetTitle("Firefox")
	if n.DisplayName != "42: Firefox" {
		t.Errorf("titled display name: got %q, want %q", n.DisplayName, "42: Firefox")
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	var seen []WindowID
	sampleTree().Walk(func(n *WindowNode) bool {
		seen = append(seen, n.ID)
		return n.ID != 3
	})
	want := []WindowID{1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("visited %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("visit %d: got %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestParseWindowID(t *testing.T) {
	tests := []struct {
		input string
		want  WindowID
	}{
		{"1", 1},
		{"12345", 12345},
		{"0x1e00003", 0x1e00003},
		{"0X10", 16},
	}
	for _, tt := range tests {
		got, err := ParseWindowID(tt.input)
		if err != nil {
			t.Errorf("ParseWindowID(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWindowID(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseWindowID_Invalid(t *testing.T) {
	for _, s := range []string{"", "abc", "-1", "0x1ffffffff"} {
		if _, err := ParseWindowID(s); err == nil {
			t.Errorf("ParseWindowID(%q) should fail", s)
		}
	}
}
