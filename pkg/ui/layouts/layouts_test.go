package layouts

import (
	"testing"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/layout"
)

func TestAliasesAreTheSameTypes(t *testing.T) {
	var n layout.Navigation = NewNavigation(NavItem{ID: "a"}, NavItem{ID: "b"})
	n, cmd := n.Next()
	if n.Active != 1 || cmd == nil {
		t.Fatal("navigation through the barrel did not advance")
	}
	if msg, ok := cmd().(layout.NavigateMsg); !ok || msg.ID != "b" {
		t.Errorf("cmd() = %#v", cmd())
	}
}

func TestSplitForwards(t *testing.T) {
	got := Split(10, 0, 1, 1)
	if len(got) != 2 || got[0] != 5 || got[1] != 5 {
		t.Errorf("Split = %v", got)
	}
}
