package canvas

import "testing"

func TestCoord(t *testing.T) {
	n := Num(2.5)
	if n.IsCategorical() || n.Float() != 2.5 {
		t.Errorf("Num(2.5) = %v", n)
	}
	if got := n.Offset(1).Float(); got != 3.5 {
		t.Errorf("Offset(1) = %v, want 3.5", got)
	}

	c := Cat("a")
	if !c.IsCategorical() || c.Label() != "a" {
		t.Errorf("Cat(a) = %v", c)
	}
	if got := c.Offset(1); got != c {
		t.Errorf("Cat.Offset() = %v, want unchanged", got)
	}
	if got := c.String(); got != `"a"` {
		t.Errorf("String() = %s, want \"a\"", got)
	}
}
